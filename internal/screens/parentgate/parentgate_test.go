package parentgate

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/logging"
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

func typePIN(s *GateScreen, pin string) {
	for _, r := range pin {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestGate_FirstUseSetsPIN(t *testing.T) {
	g := newTestGame(t)
	s := New(g)
	require.Equal(t, stepChoose, s.step)

	typePIN(s, "1234")
	require.Equal(t, stepConfirm, s.step)
	typePIN(s, "1234")

	assert.Equal(t, stepUnlocked, s.step)
	assert.Equal(t, "1234", g.Store().String(store.KeyParentPIN))
}

func TestGate_MismatchedConfirmStartsOver(t *testing.T) {
	g := newTestGame(t)
	s := New(g)

	typePIN(s, "1234")
	typePIN(s, "4321")

	assert.Equal(t, stepChoose, s.step)
	assert.Empty(t, g.Store().String(store.KeyParentPIN))
}

func TestGate_ShortPINRejected(t *testing.T) {
	s := New(newTestGame(t))
	typePIN(s, "12")
	assert.Equal(t, stepChoose, s.step)
	assert.NotEmpty(t, s.message)
}

func TestGate_LettersIgnored(t *testing.T) {
	s := New(newTestGame(t))
	typePIN(s, "12ab34")
	assert.Equal(t, stepConfirm, s.step)
	assert.Equal(t, "1234", s.pending)
}

func TestGate_VerifyExistingPIN(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Store().Set(store.KeyParentPIN, "2468"))

	s := New(g)
	require.Equal(t, stepVerify, s.step)

	typePIN(s, "1111")
	assert.Equal(t, stepVerify, s.step)
	assert.Equal(t, "Wrong PIN.", s.message)

	typePIN(s, "2468")
	assert.Equal(t, stepUnlocked, s.step)
}

func TestGate_ResetKeepsPIN(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Store().Set(store.KeyParentPIN, "2468"))
	require.NoError(t, g.Store().Set(store.KeyXP, 300))

	s := New(g)
	typePIN(s, "2468")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, stepDone, s.step)
	assert.Zero(t, g.Store().Int(store.KeyXP))
	assert.Equal(t, "2468", g.Store().String(store.KeyParentPIN))
}
