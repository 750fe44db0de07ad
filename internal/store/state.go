package store

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"time"

	"github.com/abhisek/phonix/internal/curriculum"
)

// Key names one field of the persisted session state.
type Key string

const (
	KeyXP           Key = "xp"
	KeyLevel        Key = "level"
	KeyHearts       Key = "hearts"
	KeyStreak       Key = "streak"
	KeyBestStreak   Key = "bestStreak"
	KeyDailyDone    Key = "dailyDone"
	KeyDailyGoal    Key = "dailyGoal"
	KeyLastPlayDate Key = "lastPlayDate"
	KeyDifficulty   Key = "difficulty"
	KeyCurrentMode  Key = "currentMode"
	KeyCurrentGroup Key = "currentGroup"
	KeySFXEnabled   Key = "sfxEnabled"
	KeyAutoplay     Key = "autoplay"
	KeyVoiceSpeed   Key = "voiceSpeed"
	KeyParentPIN    Key = "parentPin"
	KeyWordStats    Key = "wordStats"
	KeyGroupMastery Key = "groupMastery"
	KeyHistory      Key = "history"

	// Wildcard subscribes to every key.
	Wildcard Key = "*"
)

// HistoryCap is the maximum number of history entries kept.
const HistoryCap = 100

var (
	// ErrUnknownKey is returned when a key is not part of the state.
	ErrUnknownKey = errors.New("unknown state key")

	// ErrInvalidValue is returned when a value has the wrong type or range for its key.
	ErrInvalidValue = errors.New("invalid state value")
)

// WordStat is the attempt record for one word.
type WordStat struct {
	Attempts int        `json:"attempts"`
	Correct  int        `json:"correct"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}

// Accuracy returns Correct/Attempts, or 0 when there are no attempts.
func (w WordStat) Accuracy() float64 {
	if w.Attempts == 0 {
		return 0
	}
	return float64(w.Correct) / float64(w.Attempts)
}

// HistoryEntry records a single answered round.
type HistoryEntry struct {
	WordID    string    `json:"wordId"`
	Correct   bool      `json:"correct"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the full persisted session state. History is newest-first.
type State struct {
	XP           int                 `json:"xp"`
	Level        int                 `json:"level"`
	Hearts       int                 `json:"hearts"`
	Streak       int                 `json:"streak"`
	BestStreak   int                 `json:"bestStreak"`
	DailyDone    int                 `json:"dailyDone"`
	DailyGoal    int                 `json:"dailyGoal"`
	LastPlayDate string              `json:"lastPlayDate"`
	Difficulty   int                 `json:"difficulty"`
	CurrentMode  string              `json:"currentMode"`
	CurrentGroup string              `json:"currentGroup"`
	SFXEnabled   bool                `json:"sfxEnabled"`
	Autoplay     bool                `json:"autoplay"`
	VoiceSpeed   float64             `json:"voiceSpeed"`
	ParentPIN    string              `json:"parentPin"`
	WordStats    map[string]WordStat `json:"wordStats"`
	GroupMastery map[string]float64  `json:"groupMastery"`
	History      []HistoryEntry      `json:"history"`
}

// DefaultState returns the state a fresh install starts from.
func DefaultState() State {
	return State{
		Level:        1,
		Hearts:       curriculum.MaxHearts,
		DailyGoal:    10,
		Difficulty:   1,
		CurrentMode:  "blend",
		SFXEnabled:   true,
		Autoplay:     true,
		VoiceSpeed:   0.8,
		WordStats:    map[string]WordStat{},
		GroupMastery: map[string]float64{},
		History:      []HistoryEntry{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.WordStats = cloneWordStats(s.WordStats)
	out.GroupMastery = maps.Clone(s.GroupMastery)
	if out.GroupMastery == nil {
		out.GroupMastery = map[string]float64{}
	}
	out.History = slices.Clone(s.History)
	if out.History == nil {
		out.History = []HistoryEntry{}
	}
	return out
}

func cloneWordStats(in map[string]WordStat) map[string]WordStat {
	out := make(map[string]WordStat, len(in))
	for id, ws := range in {
		if ws.LastSeen != nil {
			t := *ws.LastSeen
			ws.LastSeen = &t
		}
		out[id] = ws
	}
	return out
}

// field binds a Key to its slot in State.
type field struct {
	get func(*State) any
	set func(*State, any) error
}

func invalid(key Key, v any) error {
	return fmt.Errorf("%w: %s cannot hold %T(%v)", ErrInvalidValue, key, v, v)
}

func counterField(key Key, p func(*State) *int) field {
	return field{
		get: func(s *State) any { return *p(s) },
		set: func(s *State, v any) error {
			n, ok := v.(int)
			if !ok || n < 0 {
				return invalid(key, v)
			}
			*p(s) = n
			return nil
		},
	}
}

func boundedField(key Key, limit int, p func(*State) *int) field {
	f := counterField(key, p)
	set := f.set
	f.set = func(s *State, v any) error {
		if n, ok := v.(int); ok && n > limit {
			return invalid(key, v)
		}
		return set(s, v)
	}
	return f
}

func stringField(key Key, p func(*State) *string) field {
	return field{
		get: func(s *State) any { return *p(s) },
		set: func(s *State, v any) error {
			str, ok := v.(string)
			if !ok {
				return invalid(key, v)
			}
			*p(s) = str
			return nil
		},
	}
}

func boolField(key Key, p func(*State) *bool) field {
	return field{
		get: func(s *State) any { return *p(s) },
		set: func(s *State, v any) error {
			b, ok := v.(bool)
			if !ok {
				return invalid(key, v)
			}
			*p(s) = b
			return nil
		},
	}
}

var fields = map[Key]field{
	KeyXP:           counterField(KeyXP, func(s *State) *int { return &s.XP }),
	KeyLevel:        counterField(KeyLevel, func(s *State) *int { return &s.Level }),
	KeyHearts:       boundedField(KeyHearts, curriculum.MaxHearts, func(s *State) *int { return &s.Hearts }),
	KeyStreak:       counterField(KeyStreak, func(s *State) *int { return &s.Streak }),
	KeyBestStreak:   counterField(KeyBestStreak, func(s *State) *int { return &s.BestStreak }),
	KeyDailyDone:    counterField(KeyDailyDone, func(s *State) *int { return &s.DailyDone }),
	KeyDailyGoal:    counterField(KeyDailyGoal, func(s *State) *int { return &s.DailyGoal }),
	KeyDifficulty:   counterField(KeyDifficulty, func(s *State) *int { return &s.Difficulty }),
	KeyLastPlayDate: stringField(KeyLastPlayDate, func(s *State) *string { return &s.LastPlayDate }),
	KeyCurrentMode:  stringField(KeyCurrentMode, func(s *State) *string { return &s.CurrentMode }),
	KeyCurrentGroup: stringField(KeyCurrentGroup, func(s *State) *string { return &s.CurrentGroup }),
	KeyParentPIN:    stringField(KeyParentPIN, func(s *State) *string { return &s.ParentPIN }),
	KeySFXEnabled:   boolField(KeySFXEnabled, func(s *State) *bool { return &s.SFXEnabled }),
	KeyAutoplay:     boolField(KeyAutoplay, func(s *State) *bool { return &s.Autoplay }),
	KeyVoiceSpeed: {
		get: func(s *State) any { return s.VoiceSpeed },
		set: func(s *State, v any) error {
			f, ok := v.(float64)
			if !ok || f <= 0 {
				return invalid(KeyVoiceSpeed, v)
			}
			s.VoiceSpeed = f
			return nil
		},
	},
	KeyWordStats: {
		get: func(s *State) any { return cloneWordStats(s.WordStats) },
		set: func(s *State, v any) error {
			m, ok := v.(map[string]WordStat)
			if !ok {
				return invalid(KeyWordStats, v)
			}
			for id, ws := range m {
				if ws.Attempts < 0 || ws.Correct < 0 || ws.Correct > ws.Attempts {
					return fmt.Errorf("%w: word %q has %d/%d correct", ErrInvalidValue, id, ws.Correct, ws.Attempts)
				}
			}
			s.WordStats = cloneWordStats(m)
			return nil
		},
	},
	KeyGroupMastery: {
		get: func(s *State) any { return maps.Clone(s.GroupMastery) },
		set: func(s *State, v any) error {
			m, ok := v.(map[string]float64)
			if !ok {
				return invalid(KeyGroupMastery, v)
			}
			for g, acc := range m {
				if acc < 0 || acc > 1 {
					return fmt.Errorf("%w: group %q mastery %f outside [0, 1]", ErrInvalidValue, g, acc)
				}
			}
			s.GroupMastery = maps.Clone(m)
			if s.GroupMastery == nil {
				s.GroupMastery = map[string]float64{}
			}
			return nil
		},
	},
	KeyHistory: {
		get: func(s *State) any { return slices.Clone(s.History) },
		set: func(s *State, v any) error {
			h, ok := v.([]HistoryEntry)
			if !ok {
				return invalid(KeyHistory, v)
			}
			if len(h) > HistoryCap {
				h = h[:HistoryCap]
			}
			s.History = slices.Clone(h)
			if s.History == nil {
				s.History = []HistoryEntry{}
			}
			return nil
		},
	},
}

// Keys returns every state key in declaration order.
func Keys() []Key {
	return []Key{
		KeyXP, KeyLevel, KeyHearts, KeyStreak, KeyBestStreak, KeyDailyDone,
		KeyDailyGoal, KeyLastPlayDate, KeyDifficulty, KeyCurrentMode,
		KeyCurrentGroup, KeySFXEnabled, KeyAutoplay, KeyVoiceSpeed,
		KeyParentPIN, KeyWordStats, KeyGroupMastery, KeyHistory,
	}
}

// sanitize copies every valid field of loaded over defaults. Word stats
// that cannot hold are dropped and group mastery is clamped to [0, 1];
// any other invalid field keeps its default and is reported.
func sanitize(loaded, defaults State) (State, []Key) {
	out := defaults.Clone()

	stats := make(map[string]WordStat, len(loaded.WordStats))
	for id, ws := range loaded.WordStats {
		if ws.Attempts >= 0 && ws.Correct >= 0 && ws.Correct <= ws.Attempts {
			stats[id] = ws
		}
	}
	dropped := len(loaded.WordStats) > len(stats)
	loaded.WordStats = stats

	mastery := make(map[string]float64, len(loaded.GroupMastery))
	for g, acc := range loaded.GroupMastery {
		mastery[g] = min(max(acc, 0), 1)
	}
	loaded.GroupMastery = mastery

	var rejected []Key
	for _, k := range Keys() {
		f := fields[k]
		if err := f.set(&out, f.get(&loaded)); err != nil {
			rejected = append(rejected, k)
		}
	}
	if dropped {
		rejected = append(rejected, KeyWordStats)
	}
	return out, rejected
}

// changedKeys lists the keys whose values differ between a and b.
func changedKeys(a, b *State, keys []Key) []Key {
	var out []Key
	for _, k := range keys {
		f := fields[k]
		if !reflect.DeepEqual(f.get(a), f.get(b)) {
			out = append(out, k)
		}
	}
	return out
}
