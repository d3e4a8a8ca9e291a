package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-screen/internal/types"
)

// CandidateInput holds the writable candidate fields.
type CandidateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateCandidate inserts a candidate and returns the stored record.
func (db *DB) CreateCandidate(ctx context.Context, input CandidateInput) (*types.Candidate, error) {
	var c types.Candidate
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (first_name, last_name, email, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, first_name, last_name, email, phone, created_at, updated_at`,
		input.FirstName, input.LastName, input.Email, input.Phone,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &c, nil
}

// GetCandidate retrieves a candidate by ID, including the extracted
// profile when one has been stored.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var c types.Candidate
	var profileJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone, COALESCE(resume_text, ''), profile, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.ResumeText, &profileJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if profileJSON != nil {
		var profile types.CandidateProfile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse stored profile: %w", err)
		}
		c.Profile = &profile
	}
	return &c, nil
}

// ListCandidates returns all candidates, newest first, without resume
// text or profiles.
func (db *DB) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, phone, created_at, updated_at
		 FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCandidate updates the writable candidate fields.
func (db *DB) UpdateCandidate(ctx context.Context, id uuid.UUID, input CandidateInput) (*types.Candidate, error) {
	var c types.Candidate
	err := db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING id, first_name, last_name, email, phone, created_at, updated_at`,
		input.FirstName, input.LastName, input.Email, input.Phone, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return &c, nil
}

// DeleteCandidate removes a candidate. Returns false when no record
// existed.
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SaveCandidateResume stores the normalized resume text and the profile
// extracted from it. The profile always replaces the previous one
// wholesale.
func (db *DB) SaveCandidateResume(ctx context.Context, id uuid.UUID, resumeText string, profile types.CandidateProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE candidates SET resume_text = $1, profile = $2, updated_at = NOW() WHERE id = $3`,
		resumeText, profileJSON, id)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found", id)
	}
	return nil
}
