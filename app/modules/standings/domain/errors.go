package standingstypes

import "errors"

// Domain errors. These represent invariant violations caught at record
// construction, before any standings computation runs.
var (
	// ErrHoleOutOfRange indicates a hole number outside 1-18.
	ErrHoleOutOfRange = errors.New("hole number out of range")

	// ErrBadHolePars indicates a course with a par list that is neither empty
	// nor exactly 18 holes.
	ErrBadHolePars = errors.New("hole pars must cover exactly 18 holes")

	// ErrMissingCourseName indicates a course record with no name.
	ErrMissingCourseName = errors.New("course has no name")

	// ErrTeeNameCase indicates a tee name that was not lowercased.
	ErrTeeNameCase = errors.New("tee names must be lowercase")

	// ErrFinaleNotActive indicates season-finale standings were requested
	// before the finale concluded.
	ErrFinaleNotActive = errors.New("season finale is not active")
)
