// Package classic implements the classic 1 to 50 number grid ruleset.
package classic

import (
	"math/rand/v2"

	"numgrid/types"
)

// newRand returns a generator for the given seed. Seed 0 draws a random seed.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// sequence returns the numbers from..to inclusive in order.
func sequence(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

// shuffle permutes nums in place with Fisher-Yates.
func shuffle(r *rand.Rand, nums []int) {
	r.Shuffle(len(nums), func(i, j int) {
		nums[i], nums[j] = nums[j], nums[i]
	})
}

// deal builds a fresh board of 1..25 and a pending queue of 26..50,
// each shuffled independently.
func deal(r *rand.Rand) (board [types.Cells]int, pending []int) {
	first := sequence(1, types.Cells)
	shuffle(r, first)
	copy(board[:], first)

	pending = sequence(types.Cells+1, types.MaxNumber)
	shuffle(r, pending)
	return board, pending
}
