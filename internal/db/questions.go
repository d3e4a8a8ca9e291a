package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-screen/internal/types"
)

const questionColumns = `id, interview_id, type, text, response, score, created_at`

func scanQuestion(row pgx.Row) (*types.Question, error) {
	var q types.Question
	err := row.Scan(&q.ID, &q.InterviewID, &q.Type, &q.Text, &q.Response, &q.Score, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuestions inserts a batch of generated questions for one
// interview and returns the stored records in insertion order.
func (db *DB) CreateQuestions(ctx context.Context, interviewID uuid.UUID, generated []types.GeneratedQuestion) ([]types.Question, error) {
	out := make([]types.Question, 0, len(generated))
	for _, g := range generated {
		q, err := scanQuestion(db.pool.QueryRow(ctx,
			`INSERT INTO questions (interview_id, type, text)
			 VALUES ($1, $2, $3)
			 RETURNING `+questionColumns,
			interviewID, g.Type, g.Text))
		if err != nil {
			return nil, fmt.Errorf("failed to create question: %w", err)
		}
		out = append(out, *q)
	}
	return out, nil
}

// GetQuestion retrieves a question by ID.
func (db *DB) GetQuestion(ctx context.Context, id uuid.UUID) (*types.Question, error) {
	q, err := scanQuestion(db.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// ListInterviewQuestions returns one interview's questions in insertion
// order.
func (db *DB) ListInterviewQuestions(ctx context.Context, interviewID uuid.UUID) ([]types.Question, error) {
	return db.listQuestions(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE interview_id = $1 ORDER BY created_at ASC, id ASC`,
		interviewID)
}

// ListQuestionsByCandidate returns all questions across one candidate's
// interviews. Candidate analytics aggregates over this set.
func (db *DB) ListQuestionsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]types.Question, error) {
	return db.listQuestions(ctx,
		`SELECT q.id, q.interview_id, q.type, q.text, q.response, q.score, q.created_at
		 FROM questions q
		 JOIN interviews i ON i.id = q.interview_id
		 WHERE i.candidate_id = $1
		 ORDER BY q.created_at ASC, q.id ASC`,
		candidateID)
}

func (db *DB) listQuestions(ctx context.Context, query string, args ...any) ([]types.Question, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var out []types.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

// SaveQuestionResponse stores a candidate response and its evaluated
// score, returning the updated question.
func (db *DB) SaveQuestionResponse(ctx context.Context, questionID uuid.UUID, response string, score int) (*types.Question, error) {
	q, err := scanQuestion(db.pool.QueryRow(ctx,
		`UPDATE questions SET response = $1, score = $2 WHERE id = $3
		 RETURNING `+questionColumns,
		response, score, questionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to save question response: %w", err)
	}
	return q, nil
}
