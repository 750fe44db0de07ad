package curriculum

import (
	"strings"
	"testing"

	"github.com/abhisek/phonix/internal/words"
)

func TestValidate_DefaultPassesAgainstWordBank(t *testing.T) {
	var groups []string
	for _, g := range words.Default().Groups() {
		groups = append(groups, g.Key)
	}
	if err := Validate(defaultStages, groups); err != nil {
		t.Fatalf("default curriculum validation failed: %v", err)
	}
}

func TestValidate_DetectsProblems(t *testing.T) {
	tests := []struct {
		name   string
		stages []Stage
		want   string
	}{
		{
			name:   "empty",
			stages: nil,
			want:   "no stages",
		},
		{
			name: "duplicate",
			stages: []Stage{
				{ID: "a", Groups: []string{"g"}},
				{ID: "a", Groups: []string{"g"}, RequiredMastery: 0.5, Prerequisite: "a"},
			},
			want: "duplicate",
		},
		{
			name: "dangling prerequisite",
			stages: []Stage{
				{ID: "a", Groups: []string{"g"}},
				{ID: "b", Groups: []string{"g"}, RequiredMastery: 0.5, Prerequisite: "nonexistent"},
			},
			want: "nonexistent",
		},
		{
			name: "prerequisite declared later",
			stages: []Stage{
				{ID: "a", Groups: []string{"g"}},
				{ID: "b", Groups: []string{"g"}, RequiredMastery: 0.5, Prerequisite: "c"},
				{ID: "c", Groups: []string{"g"}, RequiredMastery: 0.5, Prerequisite: "a"},
			},
			want: "not declared before",
		},
		{
			name: "first stage gated",
			stages: []Stage{
				{ID: "a", Groups: []string{"g"}, RequiredMastery: 0.5, Prerequisite: "b"},
				{ID: "b", Groups: []string{"g"}},
			},
			want: "must not have a prerequisite",
		},
		{
			name: "mastery out of range",
			stages: []Stage{
				{ID: "a", Groups: []string{"g"}},
				{ID: "b", Groups: []string{"g"}, RequiredMastery: 1.5, Prerequisite: "a"},
			},
			want: "RequiredMastery",
		},
		{
			name: "unknown group",
			stages: []Stage{
				{ID: "a", Groups: []string{"zzz"}},
			},
			want: "unknown group",
		},
		{
			name: "no groups",
			stages: []Stage{
				{ID: "a"},
			},
			want: "no groups",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.stages, []string{"g"})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestNew_NilGroupsSkipsGroupCheck(t *testing.T) {
	_, err := New([]Stage{{ID: "a", Groups: []string{"anything"}}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
