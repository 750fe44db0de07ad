package curriculum

import (
	"fmt"
	"strings"
)

// Validate performs the structural checks on a stage list.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(stages []Stage, knownGroups []string) error {
	var errs []string

	if len(stages) == 0 {
		return fmt.Errorf("curriculum validation failed:\n  no stages defined")
	}

	var groupSet map[string]bool
	if knownGroups != nil {
		groupSet = make(map[string]bool, len(knownGroups))
		for _, g := range knownGroups {
			groupSet[g] = true
		}
	}

	if stages[0].Prerequisite != "" {
		errs = append(errs, fmt.Sprintf("first stage %q must not have a prerequisite", stages[0].ID))
	}

	declared := make(map[string]bool, len(stages))
	for i, s := range stages {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("stage %d has an empty id", i))
		}
		if declared[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage ID: %q", s.ID))
		}

		if s.Prerequisite != "" {
			if s.Prerequisite == s.ID {
				errs = append(errs, fmt.Sprintf("stage %q lists itself as prerequisite", s.ID))
			} else if !declared[s.Prerequisite] {
				// Stages are evaluated in order, so a prerequisite must come first.
				errs = append(errs, fmt.Sprintf("stage %q references prerequisite %q that is not declared before it", s.ID, s.Prerequisite))
			}
			if s.RequiredMastery <= 0 || s.RequiredMastery > 1.0 {
				errs = append(errs, fmt.Sprintf("stage %q: RequiredMastery must be in (0, 1.0], got %f", s.ID, s.RequiredMastery))
			}
		}

		if len(s.Groups) == 0 {
			errs = append(errs, fmt.Sprintf("stage %q has no groups", s.ID))
		}
		for _, g := range s.Groups {
			if groupSet != nil && !groupSet[g] {
				errs = append(errs, fmt.Sprintf("stage %q references unknown group %q", s.ID, g))
			}
		}

		declared[s.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
