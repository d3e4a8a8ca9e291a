package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-screen/internal/types"
)

const interviewColumns = `id, candidate_id, job_id, status, scheduled_at, duration_minutes,
	started_at, completed_at, score, created_at, updated_at`

func scanInterview(row pgx.Row) (*types.Interview, error) {
	var iv types.Interview
	err := row.Scan(&iv.ID, &iv.CandidateID, &iv.JobID, &iv.Status, &iv.ScheduledAt, &iv.DurationMinutes,
		&iv.StartedAt, &iv.CompletedAt, &iv.Score, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// CreateInterview inserts a scheduled interview and returns the stored
// record.
func (db *DB) CreateInterview(ctx context.Context, interview types.Interview) (*types.Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`INSERT INTO interviews (candidate_id, job_id, status, scheduled_at, duration_minutes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+interviewColumns,
		interview.CandidateID, interview.JobID, interview.Status, interview.ScheduledAt, interview.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return iv, nil
}

// GetInterview retrieves an interview by ID.
func (db *DB) GetInterview(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// ListInterviews returns all interviews, soonest scheduled first.
func (db *DB) ListInterviews(ctx context.Context) ([]types.Interview, error) {
	return db.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews ORDER BY scheduled_at ASC`)
}

// ListInterviewsByCandidate returns one candidate's interviews, soonest
// scheduled first.
func (db *DB) ListInterviewsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]types.Interview, error) {
	return db.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE candidate_id = $1 ORDER BY scheduled_at ASC`,
		candidateID)
}

func (db *DB) listInterviews(ctx context.Context, query string, args ...any) ([]types.Interview, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var out []types.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		out = append(out, *iv)
	}
	return out, rows.Err()
}

// SetInterviewStatus records a status transition. IN_PROGRESS stamps
// started_at and COMPLETED stamps completed_at; other transitions only
// move the status. Transition legality is the caller's responsibility.
func (db *DB) SetInterviewStatus(ctx context.Context, id uuid.UUID, status types.InterviewStatus, at time.Time) error {
	var (
		query string
		args  []any
	)
	switch status {
	case types.InterviewInProgress:
		query = `UPDATE interviews SET status = $1, started_at = $2, updated_at = NOW() WHERE id = $3`
		args = []any{status, at, id}
	case types.InterviewCompleted:
		query = `UPDATE interviews SET status = $1, completed_at = $2, updated_at = NOW() WHERE id = $3`
		args = []any{status, at, id}
	default:
		query = `UPDATE interviews SET status = $1, updated_at = NOW() WHERE id = $2`
		args = []any{status, id}
	}

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set interview status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s not found", id)
	}
	return nil
}

// SetInterviewScore stores the frozen overall score. Written exactly
// once, at completion.
func (db *DB) SetInterviewScore(ctx context.Context, id uuid.UUID, score float64) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE interviews SET score = $1, updated_at = NOW() WHERE id = $2`, score, id)
	if err != nil {
		return fmt.Errorf("failed to set interview score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s not found", id)
	}
	return nil
}
