package extraction

import "fmt"

// ValidationError reports malformed extractor input, such as non-textual
// document content. Unlike absent data (which yields zero values), a
// validation error is surfaced to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}
