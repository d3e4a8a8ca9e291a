package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-screen/internal/analytics"
	"github.com/jonathan/talent-screen/internal/db"
	"github.com/jonathan/talent-screen/internal/extraction"
	"github.com/jonathan/talent-screen/internal/layout"
	"github.com/jonathan/talent-screen/internal/metrics"
	"github.com/jonathan/talent-screen/internal/types"
)

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

type CandidateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "first_name, last_name and email are required")
		return
	}

	candidate, err := s.db.CreateCandidate(r.Context(), db.CandidateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}

	s.jsonResponse(w, http.StatusOK, candidates)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	candidate, err := s.db.UpdateCandidate(r.Context(), candidateID, db.CandidateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	deleted, err := s.db.DeleteCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Resume extraction
// ---------------------------------------------------------------------

type UploadResumeRequest struct {
	Text string `json:"text"`
}

// handleUploadResume accepts raw resume text, extracts the structured
// profile deterministically, and stores both on the candidate.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	lines := layout.SplitPlainText(req.Text)
	text := extraction.Normalize(lines)
	profile, err := extraction.AssembleProfile(text, s.vocab)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	metrics.ProfileExtractions.Inc()

	if err := s.db.SaveCandidateResume(r.Context(), candidateID, text, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// ---------------------------------------------------------------------
// Matching and analytics
// ---------------------------------------------------------------------

// handleCandidateMatches ranks all active jobs against the candidate's
// extracted skills.
func (s *Server) handleCandidateMatches(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if candidate.Profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "Candidate has no extracted profile; upload a resume first")
		return
	}

	jobs, err := s.db.ListJobsByStatus(r.Context(), types.JobActive)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	results, err := s.ranker.Rank(r.Context(), candidate.Profile.Skills, jobs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if results == nil {
		results = []types.MatchResult{}
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleCandidateAnalytics aggregates scores across all of the
// candidate's interviews.
func (s *Server) handleCandidateAnalytics(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	interviews, err := s.db.ListInterviewsByCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	questions, err := s.db.ListQuestionsByCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analytics.AggregateCandidate(interviews, questions))
}

func (s *Server) handleListCandidateInterviews(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	interviews, err := s.db.ListInterviewsByCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if interviews == nil {
		interviews = []types.Interview{}
	}

	s.jsonResponse(w, http.StatusOK, interviews)
}
