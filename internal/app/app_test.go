package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/logging"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screens/home"
	"github.com/abhisek/phonix/internal/screens/play"
	"github.com/abhisek/phonix/internal/screens/welcome"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	st := store.Open(context.Background(), store.NewMemoryBackend(), store.DefaultState(), logging.Nop())
	g, err := game.New(context.Background(), game.Options{Store: st, Bank: words.Default()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestNewAppModel_StartScreens(t *testing.T) {
	g := newTestGame(t)

	m := newAppModel(g, Options{})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m = newAppModel(g, Options{SkipWelcome: true})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())

	m = newAppModel(g, Options{StartMode: modes.KeyBlend, RefillDelay: time.Millisecond})
	m.Init()
	assert.IsType(t, &play.PlayScreen{}, m.router.Active())
	assert.Equal(t, 2, m.router.Depth())
	assert.True(t, g.Active())
}

func TestUpdate_EscPopsScreens(t *testing.T) {
	g := newTestGame(t)
	m := newAppModel(g, Options{SkipWelcome: true})
	m.router.Push(home.New(g, time.Millisecond))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestUpdate_EscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(newTestGame(t), Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestUpdate_EscForwardedToPlay(t *testing.T) {
	g := newTestGame(t)
	m := newAppModel(g, Options{StartMode: modes.KeyBlend, RefillDelay: time.Millisecond})
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.IsType(t, &play.PlayScreen{}, m.router.Active())
	assert.Contains(t, m.router.View(80, 24), "Stop playing")
}

func TestStatus_ReadsStore(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Store().Patch(map[store.Key]any{
		store.KeyXP:     120,
		store.KeyHearts: 3,
		store.KeyStreak: 4,
	}))

	st := newAppModel(g, Options{SkipWelcome: true}).status()
	assert.Equal(t, 120, st.XP)
	assert.Equal(t, 3, st.Hearts)
	assert.Equal(t, 4, st.DayStreak)
	assert.Equal(t, curriculum.MaxHearts, st.MaxHearts)
	assert.GreaterOrEqual(t, st.Level, 1)
}

func TestRun_UnknownMode(t *testing.T) {
	err := Run(context.Background(), newTestGame(t), Options{StartMode: "nope"})
	assert.ErrorContains(t, err, "unknown mode")
}
