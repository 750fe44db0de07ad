package stagemap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/logging"
	"github.com/abhisek/phonix/internal/router"
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

func TestStageMap_StartsOnFirstGroup(t *testing.T) {
	s := New(newTestGame(t), 0)
	require.Equal(t, rowGroup, s.rows[s.cursor].kind)
	require.Equal(t, "stage-1", s.rows[s.cursor].stage.ID)
	require.True(t, s.rows[s.cursor].unlocked)
}

func TestStageMap_CursorSkipsHeaders(t *testing.T) {
	s := New(newTestGame(t), 0)
	for i := 0; i < len(s.rows); i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		require.Equal(t, rowGroup, s.rows[s.cursor].kind)
	}
	for i := 0; i < len(s.rows); i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
		require.Equal(t, rowGroup, s.rows[s.cursor].kind)
	}
}

func TestStageMap_LockedGroupDoesNotOpen(t *testing.T) {
	s := New(newTestGame(t), 0)
	for i, r := range s.rows {
		if r.kind == rowGroup && !r.unlocked {
			s.cursor = i
			break
		}
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Nil(t, cmd)
}

func TestStageMap_OpenGroupDetail(t *testing.T) {
	g := newTestGame(t)
	s := New(g, 0)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	detail := push.Screen.(*GroupDetailScreen)
	view := detail.View(80, 24)
	require.True(t, strings.Contains(view, "cat"), "detail should list the group's words")

	_, cmd = detail.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
}

func TestStageMap_ViewFitsHeight(t *testing.T) {
	s := New(newTestGame(t), 0)
	view := s.View(80, 5)
	require.LessOrEqual(t, len(strings.Split(view, "\n")), 5)
}
