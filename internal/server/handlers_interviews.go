package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-screen/internal/types"
)

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

type ScheduleInterviewRequest struct {
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobID           uuid.UUID `json:"job_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CandidateID == uuid.Nil || req.JobID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "candidate_id and job_id are required")
		return
	}
	if req.ScheduledAt.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "scheduled_at is required")
		return
	}

	// Referential checks up front so a bad ID yields 404, not a DB error
	candidate, err := s.db.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	job, err := s.db.GetJob(r.Context(), req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	iv, err := s.interviews.Schedule(r.Context(), req.CandidateID, req.JobID, req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, iv)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.db.ListInterviews(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if interviews == nil {
		interviews = []types.Interview{}
	}

	s.jsonResponse(w, http.StatusOK, interviews)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if iv == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, iv)
}

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.interviews.Start)
}

func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.interviews.Complete)
}

func (s *Server) handleCancelInterview(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.interviews.Cancel)
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*types.Interview, error)) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := op(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, iv)
}

// handleGenerateQuestions generates questions for the interview's job
// through the oracle and stores them on the interview.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if iv == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}
	if iv.Status.Terminal() {
		s.errorResponse(w, http.StatusConflict, "Interview is already "+string(iv.Status))
		return
	}

	job, err := s.db.GetJob(r.Context(), iv.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	generated, err := s.oracle.GenerateQuestions(r.Context(), *job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	questions, err := s.db.CreateQuestions(r.Context(), interviewID, generated)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, questions)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if iv == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	questions, err := s.db.ListInterviewQuestions(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if questions == nil {
		questions = []types.Question{}
	}

	s.jsonResponse(w, http.StatusOK, questions)
}

func (s *Server) handleInterviewAnalytics(w http.ResponseWriter, r *http.Request) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	summary, err := s.interviews.Analytics(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// ---------------------------------------------------------------------
// Question responses
// ---------------------------------------------------------------------

type SubmitResponseRequest struct {
	Response string `json:"response"`
}

type SubmitResponseResult struct {
	Question   *types.Question  `json:"question"`
	Evaluation types.Evaluation `json:"evaluation"`
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Response == "" {
		s.errorResponse(w, http.StatusBadRequest, "response is required")
		return
	}

	question, eval, err := s.interviews.SubmitResponse(r.Context(), questionID, req.Response)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SubmitResponseResult{Question: question, Evaluation: eval})
}
