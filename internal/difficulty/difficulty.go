// Package difficulty maps a child's age band to round count and
// per-round difficulty level. The mapping is a static table: older bands
// start at a higher base level and a second round raises the level one
// step, capped at MaxLevel. No per-answer adaptivity.
package difficulty

import "strings"

// AgeBands in ascending age order. The slice index of a band is its base
// difficulty level.
var AgeBands = []string{"4-5", "6-7", "8-9", "10-11"}

// DefaultAgeBand is used whenever the input does not match a known band.
const DefaultAgeBand = "6-7"

// MaxLevel is the highest difficulty level served by the catalog.
const MaxLevel = 3

// NormalizeAgeBand maps free-form input onto one of AgeBands. Unknown or
// empty input silently falls back to DefaultAgeBand; no error is raised.
func NormalizeAgeBand(input string) string {
	normalized := strings.TrimSpace(input)
	for _, band := range AgeBands {
		if normalized == band {
			return band
		}
	}
	return DefaultAgeBand
}

// TotalRounds returns how many rounds a session gets for the given
// normalized band: one for the two younger bands, two for the older.
func TotalRounds(ageBand string) int {
	if ageBand == "4-5" || ageBand == "6-7" {
		return 1
	}
	return 2
}

// Level computes the difficulty level in [0, MaxLevel] for a normalized
// band and a 1-based round number.
func Level(ageBand string, roundNumber int) int {
	base := 0
	for i, band := range AgeBands {
		if band == ageBand {
			base = i
			break
		}
	}
	step := roundNumber - 1
	if step < 0 {
		step = 0
	}
	level := base + step
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
