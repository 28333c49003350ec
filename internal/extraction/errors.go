package extraction

import (
	"errors"
	"fmt"
)

// ErrNoRawText means extraction was requested before any text was attached to the profile.
var ErrNoRawText = errors.New("candidate profile has no raw text")

// PreconditionError reports a workflow-ordering problem in the caller, as opposed
// to missing applicant data.
type PreconditionError struct {
	CandidateID int64
	Cause       error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition not met for candidate %d: %v", e.CandidateID, e.Cause)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}
