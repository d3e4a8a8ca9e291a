package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-screen/internal/types"
)

// JobInput holds the writable job fields.
type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Skills       []string
	Status       types.JobStatus
}

// CreateJob inserts a job description and returns the stored record.
func (db *DB) CreateJob(ctx context.Context, input JobInput) (*types.JobDescription, error) {
	if input.Status == "" {
		input.Status = types.JobDraft
	}
	var j types.JobDescription
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, requirements, skills, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, title, description, requirements, skills, status, created_at, updated_at`,
		input.Title, input.Description, input.Requirements, input.Skills, input.Status,
	).Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Skills, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &j, nil
}

// GetJob retrieves a job description by ID.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobDescription, error) {
	var j types.JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, requirements, skills, status, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Skills, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// ListJobs returns all jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]types.JobDescription, error) {
	return db.listJobs(ctx,
		`SELECT id, title, description, requirements, skills, status, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC`)
}

// ListJobsByStatus returns all jobs in the given status, newest first.
// Match ranking fans out over the ACTIVE set.
func (db *DB) ListJobsByStatus(ctx context.Context, status types.JobStatus) ([]types.JobDescription, error) {
	return db.listJobs(ctx,
		`SELECT id, title, description, requirements, skills, status, created_at, updated_at
		 FROM jobs WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (db *DB) listJobs(ctx context.Context, query string, args ...any) ([]types.JobDescription, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []types.JobDescription
	for rows.Next() {
		var j types.JobDescription
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Skills, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// UpdateJob updates the writable job fields.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, input JobInput) (*types.JobDescription, error) {
	var j types.JobDescription
	err := db.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $1, description = $2, requirements = $3, skills = $4, status = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING id, title, description, requirements, skills, status, created_at, updated_at`,
		input.Title, input.Description, input.Requirements, input.Skills, input.Status, id,
	).Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Skills, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &j, nil
}

// DeleteJob removes a job description. Returns false when no record
// existed.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetJobStats aggregates completed-interview outcomes for one job.
// Only frozen interview scores contribute; interviews completed without
// any evaluated questions carry a frozen score of 0 and still count.
func (db *DB) GetJobStats(ctx context.Context, jobID uuid.UUID, topN int) (*types.JobStats, error) {
	var stats types.JobStats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT candidate_id),
		        COUNT(*) FILTER (WHERE status = 'COMPLETED'),
		        COALESCE(AVG(score) FILTER (WHERE status = 'COMPLETED'), 0)
		 FROM interviews WHERE job_id = $1`,
		jobID,
	).Scan(&stats.TotalCandidates, &stats.CompletedInterviews, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job stats: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT i.candidate_id, c.first_name, c.last_name, i.score
		 FROM interviews i
		 JOIN candidates c ON c.id = i.candidate_id
		 WHERE i.job_id = $1 AND i.status = 'COMPLETED' AND i.score IS NOT NULL
		 ORDER BY i.score DESC, i.candidate_id ASC
		 LIMIT $2`,
		jobID, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to list top candidates: %w", err)
	}
	defer rows.Close()

	stats.TopCandidates = []types.CandidateScore{}
	for rows.Next() {
		var cs types.CandidateScore
		var first, last string
		if err := rows.Scan(&cs.CandidateID, &first, &last, &cs.Score); err != nil {
			return nil, fmt.Errorf("failed to scan top candidate: %w", err)
		}
		cs.Name = (&types.Candidate{FirstName: first, LastName: last}).FullName()
		stats.TopCandidates = append(stats.TopCandidates, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}
