// Package game runs play sessions: it draws words from the progress
// engine, hands them to a mode, and feeds each round's result back into
// progress, gamification and badges.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/gamification"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

// MaxSetupAttempts bounds how many words Next draws before giving up on a
// round.
const MaxSetupAttempts = 5

var (
	// ErrNotStarted is returned by round operations before Start.
	ErrNotStarted = errors.New("game not started")

	// ErrOutOfHearts is returned by Next while every heart is spent.
	ErrOutOfHearts = errors.New("out of hearts")

	// ErrUnknownGroup is returned for a word group the bank does not have.
	ErrUnknownGroup = errors.New("unknown word group")
)

// Options configures a Game. Store and Bank are required.
type Options struct {
	Store      *store.Store
	Bank       *words.Bank
	Curriculum *curriculum.Curriculum

	// Badges defaults to a tracker over the store's backend.
	Badges *badges.Tracker

	// Speaker and Recognizer default to silence and no recognition.
	Speaker    audio.Speaker
	Recognizer audio.Recognizer

	RecognitionTimeout time.Duration
	Rewards            *curriculum.Rewards
	Rand               *rand.Rand
	Now                func() time.Time
	Logger             *zap.Logger
}

// Game is one player's game. It is not safe for concurrent use.
type Game struct {
	store      *store.Store
	bank       *words.Bank
	curriculum *curriculum.Curriculum
	progress   *progress.Engine
	gamify     *gamification.Engine
	badges     *badges.Tracker
	registry   *modes.Registry
	speaker    audio.Speaker
	recognizer audio.Recognizer
	now        func() time.Time
	logger     *zap.Logger

	mode    modes.Mode
	modeKey modes.Key
	filter  progress.Filter
	word    words.Word
	roundID string
	rounds  int

	pendingGroup string
	started      time.Time
	outcomes     []Outcome
	earned       []badges.Badge
}

// New wires the engines and runs the daily gamification check.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Store == nil {
		return nil, errors.New("game: store is required")
	}
	if opts.Bank == nil {
		return nil, errors.New("game: word bank is required")
	}

	g := &Game{
		store:      opts.Store,
		bank:       opts.Bank,
		curriculum: opts.Curriculum,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if g.curriculum == nil {
		g.curriculum = curriculum.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.progress = progress.New(g.store, g.bank, progress.Options{Rand: rng, Now: g.now, Logger: g.logger.Named("progress")})
	g.gamify = gamification.New(g.store, gamification.Options{Now: g.now, Logger: g.logger.Named("gamification"), Rewards: opts.Rewards})
	g.registry = modes.NewRegistry(g.bank, rng, g.now)

	g.badges = opts.Badges
	if g.badges == nil {
		keys := g.registry.Keys()
		all := make([]string, len(keys))
		for i, k := range keys {
			all[i] = string(k)
		}
		g.badges = badges.NewTracker(ctx, g.store.Backend(), all, g.now, g.logger.Named("badges"))
	}

	speaker := opts.Speaker
	if speaker == nil {
		speaker = audio.NewTranscript(g.logger.Named("audio"), 0)
	}
	g.speaker = newLoggingSpeaker(audio.Gate(speaker, func() bool { return g.store.Bool(store.KeySFXEnabled) }), g.logger)
	if p, ok := g.speaker.(audio.Pacer); ok {
		p.SetRate(g.store.Float(store.KeyVoiceSpeed))
	}

	rec := opts.Recognizer
	if rec == nil {
		rec = audio.Unavailable{}
	}
	timeout := opts.RecognitionTimeout
	if timeout <= 0 {
		timeout = audio.DefaultRecognitionTimeout
	}
	g.recognizer = audio.WithTimeout(rec, timeout)

	g.gamify.Init()
	g.started = g.now()
	return g, nil
}

func (g *Game) Store() *store.Store                { return g.store }
func (g *Game) Bank() *words.Bank                  { return g.bank }
func (g *Game) Curriculum() *curriculum.Curriculum { return g.curriculum }
func (g *Game) Progress() *progress.Engine         { return g.progress }
func (g *Game) Gamification() *gamification.Engine { return g.gamify }
func (g *Game) Badges() *badges.Tracker            { return g.badges }
func (g *Game) Registry() *modes.Registry          { return g.registry }

// CanListen reports whether speech recognition is available.
func (g *Game) CanListen() bool {
	return g.recognizer.Available()
}

// Start begins a session of mode key. An empty filter group plays every
// group up to the filter's level.
func (g *Game) Start(ctx context.Context, key modes.Key, f progress.Filter) error {
	if f.Group != "" {
		if _, ok := g.bank.Group(f.Group); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGroup, f.Group)
		}
	}
	m, err := g.registry.New(key)
	if err != nil {
		return err
	}

	g.Stop()
	g.mode = m
	g.modeKey = key
	g.filter = f
	g.rounds = 0
	g.outcomes = nil
	g.earned = nil
	g.started = g.now()
	g.gamify.ResetSession()

	if err := g.store.Patch(map[store.Key]any{
		store.KeyCurrentMode:  string(key),
		store.KeyCurrentGroup: f.Group,
	}); err != nil {
		g.logger.Warn("save current mode", zap.Error(err))
	}
	g.badges.RecordMode(string(key))
	g.earned = append(g.earned, g.checkBadges()...)

	g.logger.Info("session started",
		zap.String("session_id", g.gamify.SessionID()),
		zap.String("mode", string(key)),
		zap.String("group", f.Group),
		zap.Int("max_level", f.MaxLevel))

	return g.Next(ctx)
}

// Next ends the current round and sets up a new one.
func (g *Game) Next(ctx context.Context) error {
	if g.mode == nil {
		return ErrNotStarted
	}
	g.mode.Cleanup()
	g.word = words.Word{}
	g.roundID = ""

	if g.store.Int(store.KeyHearts) <= 0 {
		return ErrOutOfHearts
	}

	for attempt := 0; attempt < MaxSetupAttempts; attempt++ {
		w, sel := g.progress.NextWordSelection(g.filter)
		id := uuid.NewString()
		g.roundID = id

		err := g.mode.Setup(ctx, w, modes.Round{
			Speaker:       g.speaker,
			Recognizer:    g.recognizer,
			OnResult:      func(r modes.Result) { g.onResult(id, r) },
			OnGroupChange: g.onGroupChange,
		})
		if errors.Is(err, modes.ErrDegenerateWord) {
			g.logger.Warn("skipping unplayable word", zap.String("word", w.ID))
			continue
		}
		if err != nil {
			g.roundID = ""
			return fmt.Errorf("setting up %s round: %w", g.modeKey, err)
		}

		g.word = w
		g.rounds++
		g.logger.Debug("round started",
			zap.String("round_id", id),
			zap.String("word", w.ID),
			zap.Int("selection", int(sel)))
		return nil
	}
	g.roundID = ""
	return fmt.Errorf("no playable word after %d attempts", MaxSetupAttempts)
}

// Handle forwards child input to the active round. A group change
// requested by the mode restarts play with the new group.
func (g *Game) Handle(ctx context.Context, in modes.Input) error {
	if g.mode == nil {
		return ErrNotStarted
	}
	err := g.mode.Handle(ctx, in)

	if group := g.pendingGroup; group != "" {
		g.pendingGroup = ""
		if gerr := g.ChangeGroup(ctx, group); gerr != nil {
			return errors.Join(err, gerr)
		}
	}
	return err
}

// ChangeGroup restricts the session to group and starts a fresh round.
func (g *Game) ChangeGroup(ctx context.Context, group string) error {
	if g.mode == nil {
		return ErrNotStarted
	}
	if group != "" {
		if _, ok := g.bank.Group(group); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
		}
	}
	g.filter.Group = group
	if err := g.store.Set(store.KeyCurrentGroup, group); err != nil {
		g.logger.Warn("save current group", zap.Error(err))
	}
	g.logger.Info("group changed", zap.String("group", group))
	return g.Next(ctx)
}

func (g *Game) onGroupChange(group string) {
	g.pendingGroup = group
}

// Skip abandons the current round without scoring it and moves on.
func (g *Game) Skip(ctx context.Context) error {
	if g.mode == nil {
		return ErrNotStarted
	}
	if id := g.roundID; id != "" {
		g.logger.Debug("round skipped", zap.String("round_id", id), zap.String("word", g.word.ID))
	}
	return g.Next(ctx)
}

// Stop ends the session. The summary stays available until the next Start.
func (g *Game) Stop() {
	if g.mode == nil {
		return
	}
	g.mode.Cleanup()
	g.mode = nil
	g.word = words.Word{}
	g.roundID = ""
	g.pendingGroup = ""
}

// Active reports whether a session is running.
func (g *Game) Active() bool {
	return g.mode != nil
}

// ModeKey returns the mode of the current or last session.
func (g *Game) ModeKey() modes.Key {
	return g.modeKey
}

// Filter returns the current word filter.
func (g *Game) Filter() progress.Filter {
	return g.filter
}

// Word returns the word of the current round.
func (g *Game) Word() (words.Word, bool) {
	if g.mode == nil {
		return words.Word{}, false
	}
	return g.mode.CurrentWord()
}

// View renders the current round.
func (g *Game) View() modes.View {
	if g.mode == nil {
		return modes.View{Phase: modes.PhaseIdle, Selected: -1}
	}
	return g.mode.View()
}

// Hearts returns the hearts left.
func (g *Game) Hearts() int {
	return g.store.Int(store.KeyHearts)
}

// RefillHearts restores every heart after a game over.
func (g *Game) RefillHearts() {
	g.gamify.RefillHearts()
	g.logger.Info("hearts refilled")
}

// RecommendedStage returns the stage the child should work on next.
func (g *Game) RecommendedStage() (curriculum.Stage, bool) {
	return g.curriculum.RecommendedStage(g.store.GroupMastery())
}

// ResetProgress restores the store defaults for progress and settings
// alike. Only the parent PIN survives. Badges are only cleared when
// withBadges is set.
func (g *Game) ResetProgress(withBadges bool) {
	g.Stop()
	g.store.Reset()
	g.gamify.Init()
	g.gamify.ResetSession()
	if withBadges {
		g.badges.Reset()
	}
	g.outcomes = nil
	g.earned = nil
	g.logger.Info("progress reset", zap.Bool("badges", withBadges))
}

// Close ends the session and releases the store.
func (g *Game) Close() error {
	g.Stop()
	return g.store.Close()
}
