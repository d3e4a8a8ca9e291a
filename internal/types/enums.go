// Package types defines the shared domain model for the talent screening service.
package types

// QuestionType classifies an interview question.
type QuestionType string

// Question type constants match the values stored by the question generator.
const (
	QuestionTechnical  QuestionType = "TECHNICAL"
	QuestionBehavioral QuestionType = "BEHAVIORAL"
	QuestionExperience QuestionType = "EXPERIENCE"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTechnical, QuestionBehavioral, QuestionExperience:
		return true
	}
	return false
}

// InterviewStatus represents the lifecycle state of an interview.
type InterviewStatus string

// Interview lifecycle states.
const (
	InterviewScheduled  InterviewStatus = "SCHEDULED"
	InterviewInProgress InterviewStatus = "IN_PROGRESS"
	InterviewCompleted  InterviewStatus = "COMPLETED"
	InterviewCancelled  InterviewStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are allowed from s.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewCompleted || s == InterviewCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition. Cancellation is allowed from any non-terminal state.
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case InterviewInProgress:
		return s == InterviewScheduled
	case InterviewCompleted:
		return s == InterviewInProgress
	case InterviewCancelled:
		return true
	}
	return false
}

// JobStatus represents the publication state of a job description.
type JobStatus string

// Job description states. Only ACTIVE jobs participate in matching.
const (
	JobDraft  JobStatus = "DRAFT"
	JobActive JobStatus = "ACTIVE"
	JobClosed JobStatus = "CLOSED"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobDraft, JobActive, JobClosed:
		return true
	}
	return false
}

// UserRole controls API authorization.
type UserRole string

// User roles.
const (
	RoleAdmin       UserRole = "ADMIN"
	RoleInterviewer UserRole = "INTERVIEWER"
	RoleCandidate   UserRole = "CANDIDATE"
)
