package opex

import "github.com/google/uuid"

// Outcome is the view of a Result that does not depend on its type
// parameters. It lets Results of different types be inspected together.
type Outcome interface {
	// IsOk reports whether a value is held
	IsOk() bool
	// IsErr reports whether a failure is held
	IsErr() bool
	// Err returns the failure as an error, nil on success
	Err() error
	// Describe returns the failure message, "" on success
	Describe() string
	// FailureID identifies the captured failure
	FailureID() uuid.UUID
}

var _ Outcome = Result[struct{}, error]{}

// FirstErr returns the Err of the first failed outcome, or nil.
func FirstErr(outcomes ...Outcome) error {
	for _, o := range outcomes {
		if o != nil && o.IsErr() {
			return o.Err()
		}
	}
	return nil
}
