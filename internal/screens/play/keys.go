package play

import (
	"slices"

	"github.com/abhisek/phonix/internal/modes"
)

// digit returns the zero-based index of a 1-9 key.
func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// inputFor maps a key to the round input it means for v. cursor is the
// keyboard focus inside choices or letters.
func inputFor(key string, v modes.View, cursor int) (modes.Input, bool) {
	switch {
	case len(v.Letters) > 0:
		if i, ok := digit(key); ok && i < len(v.Letters) {
			return modes.Input{Kind: modes.InputTap, Index: i}, true
		}
		switch key {
		case "space":
			return modes.Input{Kind: modes.InputTap, Index: cursor}, true
		case "enter":
			return modes.Input{Kind: modes.InputGroup}, true
		}

	case len(v.Choices) > 0:
		if i, ok := digit(key); ok && i < len(v.Choices) {
			return modes.Input{Kind: modes.InputChoose, Index: i}, true
		}
		if key == "enter" {
			return modes.Input{Kind: modes.InputChoose, Index: cursor}, true
		}
	}

	switch key {
	case "space", "enter":
		if v.Mode == modes.KeyBlend && !v.CanAssess {
			return modes.Input{Kind: modes.InputReveal}, true
		}
	case "r":
		return modes.Input{Kind: modes.InputReplay}, true
	case "y":
		if v.CanAssess {
			return modes.Input{Kind: modes.InputAssess, Yes: true}, true
		}
	case "n":
		if v.CanAssess {
			return modes.Input{Kind: modes.InputAssess, Yes: false}, true
		}
	case "+", "=":
		if v.Mode == modes.KeyListen {
			return modes.Input{Kind: modes.InputSpeed, Speed: stepSpeed(v.Speed, 1)}, true
		}
	case "-":
		if v.Mode == modes.KeyListen {
			return modes.Input{Kind: modes.InputSpeed, Speed: stepSpeed(v.Speed, -1)}, true
		}
	}
	return modes.Input{}, false
}

// stepSpeed moves dir steps through modes.Speeds, clamping at the ends.
func stepSpeed(current float64, dir int) float64 {
	i := slices.Index(modes.Speeds, current)
	if i < 0 {
		i = len(modes.Speeds) - 1
	}
	i = min(max(i+dir, 0), len(modes.Speeds)-1)
	return modes.Speeds[i]
}

// nextGroup cycles through groups after current. An empty current starts
// at the first group.
func nextGroup(groups []string, current string) string {
	if len(groups) == 0 {
		return ""
	}
	i := slices.Index(groups, current)
	return groups[(i+1)%len(groups)]
}
