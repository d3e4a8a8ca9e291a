// Package interview drives the interview lifecycle: scheduling, state
// transitions, response evaluation, and the one-time overall score
// computed at completion.
package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/analytics"
	"github.com/jonathan/talent-screen/internal/notify"
	"github.com/jonathan/talent-screen/internal/types"
)

// DefaultDurationMinutes is used when a schedule request carries no
// duration.
const DefaultDurationMinutes = 30

// Store is the persistence surface the service needs. Lookups return
// (nil, nil) when the record does not exist.
type Store interface {
	CreateInterview(ctx context.Context, interview types.Interview) (*types.Interview, error)
	GetInterview(ctx context.Context, id uuid.UUID) (*types.Interview, error)
	SetInterviewStatus(ctx context.Context, id uuid.UUID, status types.InterviewStatus, at time.Time) error
	SetInterviewScore(ctx context.Context, id uuid.UUID, score float64) error
	ListInterviewQuestions(ctx context.Context, interviewID uuid.UUID) ([]types.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*types.Question, error)
	SaveQuestionResponse(ctx context.Context, questionID uuid.UUID, response string, score int) (*types.Question, error)
	GetJob(ctx context.Context, id uuid.UUID) (*types.JobDescription, error)
}

// Evaluator is the response-evaluation oracle contract.
type Evaluator interface {
	EvaluateResponse(ctx context.Context, questionText, responseText, jobRequirements string) (types.Evaluation, error)
}

// Service coordinates interview state and evaluation.
type Service struct {
	store     Store
	evaluator Evaluator
	notifier  notify.Notifier
	log       *zap.Logger
}

// NewService creates an interview service.
func NewService(store Store, evaluator Evaluator, notifier notify.Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	return &Service{store: store, evaluator: evaluator, notifier: notifier, log: log}
}

// Schedule creates a new SCHEDULED interview for a candidate and job.
func (s *Service) Schedule(ctx context.Context, candidateID, jobID uuid.UUID, scheduledAt time.Time, durationMinutes int) (*types.Interview, error) {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}

	created, err := s.store.CreateInterview(ctx, types.Interview{
		CandidateID:     candidateID,
		JobID:           jobID,
		Status:          types.InterviewScheduled,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.InterviewScheduled(ctx, *created)
	return created, nil
}

// Start moves an interview to IN_PROGRESS.
func (s *Service) Start(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	return s.transition(ctx, id, types.InterviewInProgress)
}

// Cancel moves an interview to its terminal CANCELLED state.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	return s.transition(ctx, id, types.InterviewCancelled)
}

// Complete moves an interview to COMPLETED and freezes its overall score:
// the unweighted mean of all evaluated question scores at this moment.
// The frozen value is stored and never recomputed, so analytics may later
// report it unchanged even as per-type views shift.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	iv, err := s.transition(ctx, id, types.InterviewCompleted)
	if err != nil {
		return nil, err
	}

	questions, err := s.store.ListInterviewQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	if score, ok := analytics.OverallScore(questions); ok {
		if err := s.store.SetInterviewScore(ctx, id, score); err != nil {
			return nil, err
		}
		iv.Score = &score
	}

	s.notifier.InterviewCompleted(ctx, *iv)
	return iv, nil
}

// SubmitResponse records a candidate's answer to a question, scoring it
// through the evaluation oracle against the job's requirements. Oracle
// failures surface to the caller unrecorded; nothing is persisted for a
// response the oracle could not score.
func (s *Service) SubmitResponse(ctx context.Context, questionID uuid.UUID, response string) (*types.Question, types.Evaluation, error) {
	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, types.Evaluation{}, err
	}
	if question == nil {
		return nil, types.Evaluation{}, &NotFoundError{Kind: "question", ID: questionID}
	}

	iv, err := s.store.GetInterview(ctx, question.InterviewID)
	if err != nil {
		return nil, types.Evaluation{}, err
	}
	if iv == nil {
		return nil, types.Evaluation{}, &NotFoundError{Kind: "interview", ID: question.InterviewID}
	}

	job, err := s.store.GetJob(ctx, iv.JobID)
	if err != nil {
		return nil, types.Evaluation{}, err
	}
	if job == nil {
		return nil, types.Evaluation{}, &NotFoundError{Kind: "job", ID: iv.JobID}
	}

	eval, err := s.evaluator.EvaluateResponse(ctx, question.Text, response, job.Requirements)
	if err != nil {
		return nil, types.Evaluation{}, err
	}

	updated, err := s.store.SaveQuestionResponse(ctx, questionID, response, eval.Score)
	if err != nil {
		return nil, types.Evaluation{}, err
	}
	return updated, eval, nil
}

// Analytics builds the on-demand summary for one interview, reporting
// the frozen overall score when the interview has completed.
func (s *Service) Analytics(ctx context.Context, id uuid.UUID) (types.AnalyticsSummary, error) {
	iv, err := s.store.GetInterview(ctx, id)
	if err != nil {
		return types.AnalyticsSummary{}, err
	}
	if iv == nil {
		return types.AnalyticsSummary{}, &NotFoundError{Kind: "interview", ID: id}
	}

	questions, err := s.store.ListInterviewQuestions(ctx, id)
	if err != nil {
		return types.AnalyticsSummary{}, err
	}

	return analytics.Aggregate(questions, iv.Score), nil
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to types.InterviewStatus) (*types.Interview, error) {
	iv, err := s.store.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, &NotFoundError{Kind: "interview", ID: id}
	}
	if !iv.Status.CanTransitionTo(to) {
		return nil, &TransitionError{From: iv.Status, To: to}
	}

	now := time.Now().UTC()
	if err := s.store.SetInterviewStatus(ctx, id, to, now); err != nil {
		return nil, err
	}

	iv.Status = to
	switch to {
	case types.InterviewInProgress:
		iv.StartedAt = &now
	case types.InterviewCompleted:
		iv.CompletedAt = &now
	}
	return iv, nil
}
