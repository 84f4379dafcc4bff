package config

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var DefaultConfig Config
var DefaultTheme Theme

// Labels are the user-facing strings of one locale.
type Labels struct {
	Timer     string // prefix of the timer display, including its separator
	Unit      string
	Complete  string // prefix of the end-of-game message, including its separator
	Title     string
	PlayAgain string
	Hint      string
}

// Locales maps locale names to their display strings.
var Locales = map[string]Labels{
	"en": {
		Timer:     "Time: ",
		Unit:      "s",
		Complete:  "Challenge complete! Total time: ",
		Title:     "NUMBER GRID",
		PlayAgain: "Play again",
		Hint:      "tap 1 to 50 in order   r reset   q quit",
	},
	"zh-TW": {
		Timer:     "時間：",
		Unit:      "秒",
		Complete:  "完成挑戰！總耗時：",
		Title:     "數字方格",
		PlayAgain: "再玩一次",
		Hint:      "依序點擊 1 到 50   r 重來   q 離開",
	},
}

func init() {
	DefaultTheme = Theme{
		CellWidth:            8,
		CellHeight:           3,
		DrawCursorBackground: true,
		Colors: ConfigColors{
			Background: 16,
			CellLow:    255,
			CellHigh:   250,
			Label:      236,
			CursorBG:   109,
			Status:     250,
		},
	}

	DefaultConfig = Config{
		Theme:  DefaultTheme,
		Locale: DefaultLocale,
		Timing: TimingConfig{
			TickMillis:         10,
			SummaryDelayMillis: 100,
		},
		LogLevel: "info",
		Seed:     0,
	}
}
