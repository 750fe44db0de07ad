package curriculum

import (
	"slices"
	"testing"
)

func TestDefault_Stages(t *testing.T) {
	c := Default()
	stages := c.Stages()
	if len(stages) != 6 {
		t.Fatalf("got %d stages, want 6", len(stages))
	}
	if stages[0].Prerequisite != "" {
		t.Errorf("first stage has prerequisite %q", stages[0].Prerequisite)
	}
	s, ok := c.Stage("stage-2")
	if !ok || s.RequiredMastery != 0.7 {
		t.Errorf("stage-2 = %+v, %v", s, ok)
	}
}

func TestUnlockedStages_FirstAlwaysUnlocked(t *testing.T) {
	got := Default().UnlockedStages(nil)
	if !slices.Equal(got, []string{"stage-1"}) {
		t.Errorf("UnlockedStages(nil) = %v, want [stage-1]", got)
	}
}

func TestUnlockedStages_Gating(t *testing.T) {
	c := Default()

	below := map[string]float64{"short-a": 0.6, "short-i": 0.7}
	if slices.Contains(c.UnlockedStages(below), "stage-2") {
		t.Error("stage-2 unlocked at mean accuracy 0.65")
	}

	at := map[string]float64{"short-a": 0.7, "short-i": 0.7}
	if !slices.Contains(c.UnlockedStages(at), "stage-2") {
		t.Error("stage-2 locked at mean accuracy 0.70")
	}
}

func TestUnlockedStages_RequiresPrerequisiteUnlocked(t *testing.T) {
	c := Default()
	// stage-2 groups are mastered but stage-2 itself is locked, so stage-3 stays locked.
	gm := map[string]float64{"short-o": 1, "short-u": 1, "short-e": 1}
	got := c.UnlockedStages(gm)
	if slices.Contains(got, "stage-3") {
		t.Errorf("stage-3 unlocked without stage-2: %v", got)
	}
}

func TestUnlockedStages_Chain(t *testing.T) {
	c := Default()
	gm := map[string]float64{
		"short-a": 0.9, "short-i": 0.9,
		"short-o": 0.8, "short-u": 0.8, "short-e": 0.8,
		"digraphs": 0.76,
		"blends":   0.5,
	}
	got := c.UnlockedStages(gm)
	want := []string{"stage-1", "stage-2", "stage-3", "stage-4"}
	if !slices.Equal(got, want) {
		t.Errorf("UnlockedStages = %v, want %v", got, want)
	}
}

func TestRecommendedStage(t *testing.T) {
	c := Default()

	s, ok := c.RecommendedStage(nil)
	if !ok || s.ID != "stage-1" {
		t.Errorf("RecommendedStage(nil) = %q, %v; want stage-1", s.ID, ok)
	}

	gm := map[string]float64{"short-a": 0.9, "short-i": 0.9, "short-o": 0.5}
	s, _ = c.RecommendedStage(gm)
	if s.ID != "stage-2" {
		t.Errorf("RecommendedStage = %q, want stage-2", s.ID)
	}

	all := map[string]float64{}
	for _, st := range c.Stages() {
		for _, g := range st.Groups {
			all[g] = 1
		}
	}
	s, _ = c.RecommendedStage(all)
	if s.ID != "stage-6" {
		t.Errorf("RecommendedStage(all mastered) = %q, want last unlocked stage-6", s.ID)
	}
}

func TestStageMastery(t *testing.T) {
	s := Stage{Groups: []string{"a", "b"}}
	if got := StageMastery(s, map[string]float64{"a": 1}); got != 0.5 {
		t.Errorf("StageMastery = %f, want 0.5", got)
	}
	if got := StageMastery(Stage{}, nil); got != 0 {
		t.Errorf("StageMastery(empty) = %f, want 0", got)
	}
}

func TestStageForGroup(t *testing.T) {
	s, ok := Default().StageForGroup("blends")
	if !ok || s.ID != "stage-4" {
		t.Errorf("StageForGroup(blends) = %q, %v", s.ID, ok)
	}
	if _, ok := Default().StageForGroup("nope"); ok {
		t.Error("expected no stage for unknown group")
	}
}

func TestUnlockedGroups(t *testing.T) {
	got := Default().UnlockedGroups(nil)
	if !slices.Equal(got, []string{"short-a", "short-i"}) {
		t.Errorf("UnlockedGroups(nil) = %v", got)
	}
}
