package types

import (
	"time"

	"github.com/google/uuid"
)

// Interview is one scheduled screening session for a candidate and a job.
//
// Score is the frozen overall score computed exactly once when the
// interview transitions to COMPLETED. It is nil until then and is never
// recomputed afterwards, so analytics may report a frozen value that
// differs from a freshly computed per-type average.
type Interview struct {
	ID              uuid.UUID       `json:"id"`
	CandidateID     uuid.UUID       `json:"candidate_id"`
	JobID           uuid.UUID       `json:"job_id"`
	Status          InterviewStatus `json:"status"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	DurationMinutes int             `json:"duration_minutes"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Score           *float64        `json:"score,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Question is one interview question with its (optional) candidate
// response and evaluated score. A nil Score means "not yet evaluated"
// and is excluded from all averages.
type Question struct {
	ID          uuid.UUID    `json:"id"`
	InterviewID uuid.UUID    `json:"interview_id"`
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Response    *string      `json:"response,omitempty"`
	Score       *int         `json:"score,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// GeneratedQuestion is the question-generation oracle's output shape.
type GeneratedQuestion struct {
	Text string       `json:"text"`
	Type QuestionType `json:"type"`
}

// Evaluation is the response-evaluation oracle's output shape.
// Score is clamped to [0,100] before it ever leaves the oracle layer.
type Evaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}
