package curriculum

import "fmt"

// masteryEpsilon absorbs float error when averaging group accuracies.
const masteryEpsilon = 1e-9

// Stage is one node of the curriculum. A stage unlocks when its
// prerequisite is unlocked and the prerequisite's mean group accuracy
// reaches this stage's RequiredMastery.
type Stage struct {
	ID              string
	Name            string
	Groups          []string
	RequiredMastery float64
	Prerequisite    string
}

// Curriculum is an ordered, validated set of stages.
type Curriculum struct {
	stages []Stage
	byID   map[string]int
}

// defaultStages is the built-in teaching order.
var defaultStages = []Stage{
	{ID: "stage-1", Name: "Short A & I", Groups: []string{"short-a", "short-i"}},
	{ID: "stage-2", Name: "Short O, U & E", Groups: []string{"short-o", "short-u", "short-e"}, RequiredMastery: 0.7, Prerequisite: "stage-1"},
	{ID: "stage-3", Name: "Digraphs", Groups: []string{"digraphs"}, RequiredMastery: 0.75, Prerequisite: "stage-2"},
	{ID: "stage-4", Name: "Blends", Groups: []string{"blends"}, RequiredMastery: 0.75, Prerequisite: "stage-3"},
	{ID: "stage-5", Name: "Magic E", Groups: []string{"magic-e"}, RequiredMastery: 0.8, Prerequisite: "stage-4"},
	{ID: "stage-6", Name: "R-Controlled & Vowel Teams", Groups: []string{"r-controlled", "vowel-teams"}, RequiredMastery: 0.8, Prerequisite: "stage-5"},
}

// Default returns the built-in curriculum.
func Default() *Curriculum {
	c, err := New(defaultStages, nil)
	if err != nil {
		panic(fmt.Sprintf("built-in curriculum is invalid: %v", err))
	}
	return c
}

// New validates stages and builds a Curriculum. A nil knownGroups skips
// the group membership check.
func New(stages []Stage, knownGroups []string) (*Curriculum, error) {
	if err := Validate(stages, knownGroups); err != nil {
		return nil, err
	}
	c := &Curriculum{
		stages: make([]Stage, len(stages)),
		byID:   make(map[string]int, len(stages)),
	}
	for i, s := range stages {
		s.Groups = append([]string(nil), s.Groups...)
		c.stages[i] = s
		c.byID[s.ID] = i
	}
	return c, nil
}

// Stages returns every stage in declared order.
func (c *Curriculum) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// Stage returns the stage with the given id.
func (c *Curriculum) Stage(id string) (Stage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Stage{}, false
	}
	return c.stages[i], true
}

// StageForGroup returns the first stage that teaches group.
func (c *Curriculum) StageForGroup(group string) (Stage, bool) {
	for _, s := range c.stages {
		for _, g := range s.Groups {
			if g == group {
				return s, true
			}
		}
	}
	return Stage{}, false
}

// StageMastery is the mean accuracy over the stage's groups. Groups with
// no recorded mastery count as 0.
func StageMastery(s Stage, groupMastery map[string]float64) float64 {
	if len(s.Groups) == 0 {
		return 0
	}
	var sum float64
	for _, g := range s.Groups {
		sum += groupMastery[g]
	}
	return sum / float64(len(s.Groups))
}

// UnlockedStages returns the ids of unlocked stages in declared order.
func (c *Curriculum) UnlockedStages(groupMastery map[string]float64) []string {
	unlocked := make(map[string]bool, len(c.stages))
	var ids []string
	for _, s := range c.stages {
		if c.isUnlocked(s, unlocked, groupMastery) {
			unlocked[s.ID] = true
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func (c *Curriculum) isUnlocked(s Stage, unlocked map[string]bool, groupMastery map[string]float64) bool {
	if s.Prerequisite == "" {
		return true
	}
	if !unlocked[s.Prerequisite] {
		return false
	}
	prereq := c.stages[c.byID[s.Prerequisite]]
	return StageMastery(prereq, groupMastery)+masteryEpsilon >= s.RequiredMastery
}

// IsUnlocked reports whether the stage with the given id is unlocked.
func (c *Curriculum) IsUnlocked(id string, groupMastery map[string]float64) bool {
	for _, u := range c.UnlockedStages(groupMastery) {
		if u == id {
			return true
		}
	}
	return false
}

// RecommendedStage returns the first unlocked stage that is not yet
// mastered, or the last unlocked stage when all are mastered. ok is false
// only when nothing is unlocked.
func (c *Curriculum) RecommendedStage(groupMastery map[string]float64) (Stage, bool) {
	ids := c.UnlockedStages(groupMastery)
	if len(ids) == 0 {
		return Stage{}, false
	}
	for _, id := range ids {
		s := c.stages[c.byID[id]]
		if StageMastery(s, groupMastery) < MasteryThreshold {
			return s, true
		}
	}
	return c.stages[c.byID[ids[len(ids)-1]]], true
}

// UnlockedGroups returns the groups of every unlocked stage in order.
func (c *Curriculum) UnlockedGroups(groupMastery map[string]float64) []string {
	var groups []string
	for _, id := range c.UnlockedStages(groupMastery) {
		groups = append(groups, c.stages[c.byID[id]].Groups...)
	}
	return groups
}
