package game

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

// loggingSpeaker swallows playback failures after logging them; a missing
// sound never interrupts a round.
type loggingSpeaker struct {
	next   audio.Speaker
	logger *zap.Logger
}

func newLoggingSpeaker(next audio.Speaker, logger *zap.Logger) *loggingSpeaker {
	return &loggingSpeaker{next: next, logger: logger.Named("audio")}
}

func (s *loggingSpeaker) SetRate(rate float64) {
	if p, ok := s.next.(audio.Pacer); ok {
		p.SetRate(rate)
	}
}

func (s *loggingSpeaker) SpeakWord(ctx context.Context, text string) error {
	if err := s.next.SpeakWord(ctx, text); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("speak word", zap.String("text", text), zap.Error(err))
	}
	return nil
}

func (s *loggingSpeaker) SpeakPhoneme(ctx context.Context, grapheme string, kind words.PhonemeType) error {
	if err := s.next.SpeakPhoneme(ctx, grapheme, kind); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("speak phoneme", zap.String("key", audio.Key(grapheme, kind)), zap.Error(err))
	}
	return nil
}
