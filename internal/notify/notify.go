// Package notify defines the outbound notification boundary. Actual
// delivery (email, push) is an external collaborator; this package only
// owns the contract and a logging implementation.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/types"
)

// Notifier receives interview lifecycle events.
type Notifier interface {
	InterviewScheduled(ctx context.Context, interview types.Interview)
	InterviewCompleted(ctx context.Context, interview types.Interview)
}

// LogNotifier records notifications to the structured log. Used when no
// delivery collaborator is configured.
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

// InterviewScheduled logs a scheduling notification.
func (n *LogNotifier) InterviewScheduled(_ context.Context, interview types.Interview) {
	n.log.Info("interview scheduled",
		zap.String("interview_id", interview.ID.String()),
		zap.String("candidate_id", interview.CandidateID.String()),
		zap.Time("scheduled_at", interview.ScheduledAt))
}

// InterviewCompleted logs a completion notification.
func (n *LogNotifier) InterviewCompleted(_ context.Context, interview types.Interview) {
	fields := []zap.Field{
		zap.String("interview_id", interview.ID.String()),
		zap.String("candidate_id", interview.CandidateID.String()),
	}
	if interview.Score != nil {
		fields = append(fields, zap.Float64("score", *interview.Score))
	}
	n.log.Info("interview completed", fields...)
}
