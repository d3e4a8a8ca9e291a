package interview

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-screen/internal/types"
)

// memStore is an in-memory Store for unit tests.
type memStore struct {
	interviews map[uuid.UUID]*types.Interview
	questions  map[uuid.UUID]*types.Question
	jobs       map[uuid.UUID]*types.JobDescription
}

func newMemStore() *memStore {
	return &memStore{
		interviews: make(map[uuid.UUID]*types.Interview),
		questions:  make(map[uuid.UUID]*types.Question),
		jobs:       make(map[uuid.UUID]*types.JobDescription),
	}
}

func (m *memStore) CreateInterview(_ context.Context, iv types.Interview) (*types.Interview, error) {
	iv.ID = uuid.New()
	m.interviews[iv.ID] = &iv
	out := iv
	return &out, nil
}

func (m *memStore) GetInterview(_ context.Context, id uuid.UUID) (*types.Interview, error) {
	iv, ok := m.interviews[id]
	if !ok {
		return nil, nil
	}
	out := *iv
	return &out, nil
}

func (m *memStore) SetInterviewStatus(_ context.Context, id uuid.UUID, status types.InterviewStatus, at time.Time) error {
	iv, ok := m.interviews[id]
	if !ok {
		return fmt.Errorf("interview missing")
	}
	iv.Status = status
	switch status {
	case types.InterviewInProgress:
		iv.StartedAt = &at
	case types.InterviewCompleted:
		iv.CompletedAt = &at
	}
	return nil
}

func (m *memStore) SetInterviewScore(_ context.Context, id uuid.UUID, score float64) error {
	iv, ok := m.interviews[id]
	if !ok {
		return fmt.Errorf("interview missing")
	}
	iv.Score = &score
	return nil
}

func (m *memStore) ListInterviewQuestions(_ context.Context, interviewID uuid.UUID) ([]types.Question, error) {
	var out []types.Question
	for _, q := range m.questions {
		if q.InterviewID == interviewID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (m *memStore) GetQuestion(_ context.Context, id uuid.UUID) (*types.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, nil
	}
	out := *q
	return &out, nil
}

func (m *memStore) SaveQuestionResponse(_ context.Context, questionID uuid.UUID, response string, score int) (*types.Question, error) {
	q, ok := m.questions[questionID]
	if !ok {
		return nil, fmt.Errorf("question missing")
	}
	q.Response = &response
	q.Score = &score
	out := *q
	return &out, nil
}

func (m *memStore) GetJob(_ context.Context, id uuid.UUID) (*types.JobDescription, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	out := *j
	return &out, nil
}

// fixedEvaluator returns a fixed evaluation, or an error.
type fixedEvaluator struct {
	eval types.Evaluation
	err  error
}

func (f *fixedEvaluator) EvaluateResponse(_ context.Context, _, _, _ string) (types.Evaluation, error) {
	return f.eval, f.err
}

func setupService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewService(store, &fixedEvaluator{eval: types.Evaluation{Score: 85, Feedback: "good"}}, nil, nil)
	return svc, store
}

func addInterview(store *memStore, status types.InterviewStatus) *types.Interview {
	iv := &types.Interview{
		ID:          uuid.New(),
		CandidateID: uuid.New(),
		JobID:       uuid.New(),
		Status:      status,
		ScheduledAt: time.Now(),
	}
	store.interviews[iv.ID] = iv
	return iv
}

func addQuestion(store *memStore, interviewID uuid.UUID, qt types.QuestionType, score *int) *types.Question {
	q := &types.Question{
		ID:          uuid.New(),
		InterviewID: interviewID,
		Type:        qt,
		Text:        "question text",
		Score:       score,
	}
	store.questions[q.ID] = q
	return q
}

func intPtr(n int) *int { return &n }

func TestSchedule_DefaultsDuration(t *testing.T) {
	svc, store := setupService(t)

	iv, err := svc.Schedule(context.Background(), uuid.New(), uuid.New(), time.Now(), 0)
	require.NoError(t, err)

	assert.Equal(t, types.InterviewScheduled, iv.Status)
	assert.Equal(t, DefaultDurationMinutes, iv.DurationMinutes)
	assert.Contains(t, store.interviews, iv.ID)
}

func TestStart(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewScheduled)

	updated, err := svc.Start(context.Background(), iv.ID)
	require.NoError(t, err)

	assert.Equal(t, types.InterviewInProgress, updated.Status)
	require.NotNil(t, updated.StartedAt)
}

func TestStart_InvalidFromCompleted(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewCompleted)

	_, err := svc.Start(context.Background(), iv.ID)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, types.InterviewCompleted, terr.From)
}

func TestStart_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Start(context.Background(), uuid.New())

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestComplete_FreezesOverallScore(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewInProgress)
	addQuestion(store, iv.ID, types.QuestionTechnical, intPtr(80))
	addQuestion(store, iv.ID, types.QuestionBehavioral, intPtr(60))
	addQuestion(store, iv.ID, types.QuestionExperience, nil) // unevaluated, excluded

	updated, err := svc.Complete(context.Background(), iv.ID)
	require.NoError(t, err)

	assert.Equal(t, types.InterviewCompleted, updated.Status)
	require.NotNil(t, updated.Score)
	assert.InDelta(t, 70.0, *updated.Score, 0.001)

	// Frozen in the store too.
	require.NotNil(t, store.interviews[iv.ID].Score)
	assert.InDelta(t, 70.0, *store.interviews[iv.ID].Score, 0.001)
}

func TestComplete_NoScoredQuestionsLeavesScoreNil(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewInProgress)
	addQuestion(store, iv.ID, types.QuestionTechnical, nil)

	updated, err := svc.Complete(context.Background(), iv.ID)
	require.NoError(t, err)

	assert.Nil(t, updated.Score)
}

func TestCancel_FromScheduledAndInProgress(t *testing.T) {
	svc, store := setupService(t)

	for _, status := range []types.InterviewStatus{types.InterviewScheduled, types.InterviewInProgress} {
		iv := addInterview(store, status)
		updated, err := svc.Cancel(context.Background(), iv.ID)
		require.NoError(t, err)
		assert.Equal(t, types.InterviewCancelled, updated.Status)
	}

	done := addInterview(store, types.InterviewCompleted)
	_, err := svc.Cancel(context.Background(), done.ID)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
}

func TestSubmitResponse(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewInProgress)
	store.jobs[iv.JobID] = &types.JobDescription{ID: iv.JobID, Requirements: "Go services"}
	q := addQuestion(store, iv.ID, types.QuestionTechnical, nil)

	updated, eval, err := svc.SubmitResponse(context.Background(), q.ID, "my answer")
	require.NoError(t, err)

	assert.Equal(t, 85, eval.Score)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 85, *updated.Score)
	require.NotNil(t, updated.Response)
	assert.Equal(t, "my answer", *updated.Response)
}

func TestSubmitResponse_EvaluatorFailureLeavesQuestionUntouched(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &fixedEvaluator{err: fmt.Errorf("oracle down")}, nil, nil)

	iv := addInterview(store, types.InterviewInProgress)
	store.jobs[iv.JobID] = &types.JobDescription{ID: iv.JobID, Requirements: "reqs"}
	q := addQuestion(store, iv.ID, types.QuestionTechnical, nil)

	_, _, err := svc.SubmitResponse(context.Background(), q.ID, "answer")
	require.Error(t, err)

	assert.Nil(t, store.questions[q.ID].Response)
	assert.Nil(t, store.questions[q.ID].Score)
}

func TestSubmitResponse_QuestionNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.SubmitResponse(context.Background(), uuid.New(), "answer")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "question", nf.Kind)
}

func TestAnalytics_ReportsFrozenScore(t *testing.T) {
	svc, store := setupService(t)
	iv := addInterview(store, types.InterviewCompleted)
	frozen := 75.0
	iv.Score = &frozen
	addQuestion(store, iv.ID, types.QuestionTechnical, intPtr(100))

	summary, err := svc.Analytics(context.Background(), iv.ID)
	require.NoError(t, err)

	require.NotNil(t, summary.OverallScore)
	assert.Equal(t, 75.0, *summary.OverallScore)
	assert.InDelta(t, 100.0, summary.AverageScoreByType[types.QuestionTechnical], 0.001)
}

func TestAnalytics_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Analytics(context.Background(), uuid.New())

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
