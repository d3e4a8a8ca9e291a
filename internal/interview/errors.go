package interview

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-screen/internal/types"
)

// NotFoundError indicates a referenced record does not exist.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// TransitionError indicates an illegal interview lifecycle transition.
type TransitionError struct {
	From types.InterviewStatus
	To   types.InterviewStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition interview from %s to %s", e.From, e.To)
}
