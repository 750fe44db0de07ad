package progress

import (
	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/store"
)

// RecordAttempt updates the word's statistic, prepends a history entry
// and recomputes the mastery of the word's group from scratch. The three
// keys are written in one patch. Ids missing from the bank are logged and
// ignored.
func (e *Engine) RecordAttempt(wordID string, correct bool, mode string) {
	word, ok := e.bank.Get(wordID)
	if !ok {
		e.logger.Warn("attempt for unknown word ignored", zap.String("word", wordID), zap.String("mode", mode))
		return
	}

	now := e.now()

	stats := e.store.WordStats()
	ws := stats[wordID]
	ws.Attempts++
	if correct {
		ws.Correct++
	}
	ws.LastSeen = &now
	stats[wordID] = ws

	history := e.store.History(0)
	history = append([]store.HistoryEntry{{
		WordID:    wordID,
		Correct:   correct,
		Mode:      mode,
		Timestamp: now,
	}}, history...)
	if len(history) > store.HistoryCap {
		history = history[:store.HistoryCap]
	}

	mastery := e.store.GroupMastery()
	if acc, ok := groupAccuracy(e.bank.GroupWords(word.Group), stats); ok {
		mastery[word.Group] = acc
	}

	err := e.store.Patch(map[store.Key]any{
		store.KeyWordStats:    stats,
		store.KeyHistory:      history,
		store.KeyGroupMastery: mastery,
	})
	if err != nil {
		e.logger.Error("record attempt", zap.String("word", wordID), zap.Error(err))
		return
	}

	e.logger.Debug("attempt recorded",
		zap.String("word", wordID),
		zap.Bool("correct", correct),
		zap.String("mode", mode),
		zap.Int("attempts", ws.Attempts))
}
