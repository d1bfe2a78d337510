package app

import (
	"go.uber.org/zap"

	"github.com/abhisek/kanaz/internal/practice"
)

// LogObserver returns a practice.Observer that writes session events to logger.
func LogObserver(logger *zap.Logger) practice.Observer {
	return func(e practice.Event) {
		fields := []zap.Field{
			zap.String("session_id", e.SessionID),
			zap.Stringer("state", e.State),
			zap.Int("served", e.Score.Served),
			zap.Int("correct", e.Score.Correct),
		}
		if e.Question != nil {
			fields = append(fields,
				zap.String("romaji", e.Question.Record.Romaji),
				zap.Stringer("variant", e.Question.Variant),
			)
		}
		if e.Feedback != nil {
			fields = append(fields,
				zap.Stringer("outcome", e.Feedback.Outcome),
				zap.String("given", e.Feedback.Given),
			)
		}

		switch e.Kind {
		case practice.EventSessionStarted, practice.EventSessionEnded:
			logger.Info(string(e.Kind), fields...)
		default:
			logger.Debug(string(e.Kind), fields...)
		}
	}
}
