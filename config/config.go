package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"numgrid/engine"
)

var (
	cfgFile = "numgrid/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	Background int `json:"background"`
	CellLow    int `json:"cell_low"`  // cells holding 1..25
	CellHigh   int `json:"cell_high"` // cells holding 26..50, darker
	Label      int `json:"label"`
	CursorBG   int `json:"cursor_bg"`
	Status     int `json:"status"`
}

type Theme struct {
	CellWidth            int          `json:"cell_width"`
	CellHeight           int          `json:"cell_height"`
	DrawCursorBackground bool         `json:"draw_cursor_bg"`
	Colors               ConfigColors `json:"colors"`
}

// TimingConfig holds the timer refresh and summary delay in milliseconds.
type TimingConfig struct {
	TickMillis         int `json:"tick_ms"`
	SummaryDelayMillis int `json:"summary_delay_ms"`
}

type Config struct {
	Theme    Theme        `json:"theme"`
	Locale   string       `json:"locale"`
	Timing   TimingConfig `json:"timing"`
	LogLevel string       `json:"log_level"`
	Seed     uint64       `json:"seed"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	ApplyEnv(&config)
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Theme.CellWidth < 3 {
		return &InvalidConfig{"cell_width must be at least 3"}
	}
	if c.Theme.CellHeight < 1 {
		return &InvalidConfig{"cell_height must be at least 1"}
	}
	colors := c.Theme.Colors
	for _, color := range []int{colors.Background, colors.CellLow, colors.CellHigh, colors.Label, colors.CursorBG, colors.Status} {
		if color < 0 || color > 255 {
			return &InvalidConfig{fmt.Sprintf("palette color %d is outside 0-255", color)}
		}
	}
	if c.Timing.TickMillis <= 0 {
		return &InvalidConfig{"tick_ms must be positive"}
	}
	if c.Timing.SummaryDelayMillis < 0 {
		return &InvalidConfig{"summary_delay_ms must not be negative"}
	}
	if _, ok := Locales[c.Locale]; !ok {
		return &InvalidConfig{fmt.Sprintf("unknown locale %q", c.Locale)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// Labels returns the display strings for the configured locale.
func (c *Config) Labels() Labels {
	if l, ok := Locales[c.Locale]; ok {
		return l
	}
	return Locales[DefaultLocale]
}

// GameConfig converts the config into engine settings.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Seed:         c.Seed,
		TickInterval: time.Duration(c.Timing.TickMillis) * time.Millisecond,
		SummaryDelay: time.Duration(c.Timing.SummaryDelayMillis) * time.Millisecond,
	}
}

// Save writes the config to the XDG config dir and returns the file it wrote.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("locate config file: %w", err)
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
