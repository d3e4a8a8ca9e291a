package types

import (
	"time"

	"github.com/google/uuid"
)

// JobDescription is an open position with its skill requirements.
type JobDescription struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Requirements string    `json:"requirements"`
	Skills       []string  `json:"skills"`
	Status       JobStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobStats summarizes completed-interview outcomes for one job.
type JobStats struct {
	TotalCandidates     int              `json:"total_candidates"`
	CompletedInterviews int              `json:"completed_interviews"`
	AverageScore        float64          `json:"average_score"`
	TopCandidates       []CandidateScore `json:"top_candidates"`
}

// CandidateScore pairs a candidate with a frozen interview score for
// job statistics rankings.
type CandidateScore struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
}
