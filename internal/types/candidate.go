package types

import (
	"time"

	"github.com/google/uuid"
)

// Education is one education entry extracted from a resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// WorkEntry is one work-history entry extracted from a resume.
//
// Responsibilities is always empty under the current extraction rules;
// responsibility-line parsing is a known gap of the work-history pattern.
type WorkEntry struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// CandidateProfile is the structured result of resume extraction.
// A profile is built wholesale per extraction run and never partially
// mutated; re-extraction replaces the whole value.
type CandidateProfile struct {
	Skills          []string    `json:"skills"`
	ExperienceYears int         `json:"experience_years"`
	Education       []Education `json:"education"`
	WorkHistory     []WorkEntry `json:"work_history"`
}

// Candidate is a person under consideration.
type Candidate struct {
	ID         uuid.UUID         `json:"id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	ResumeText string            `json:"resume_text,omitempty"`
	Profile    *CandidateProfile `json:"profile,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// FullName returns the candidate's display name.
func (c *Candidate) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
