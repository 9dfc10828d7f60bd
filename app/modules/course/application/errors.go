package courseservice

import "errors"

// Course catalog and converter errors.
var (
	// ErrUnknownCourse indicates an event references a course absent from the
	// catalog.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrMissingColumn indicates a course data file is missing a required
	// column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNoTees indicates a course data file yielded no usable tee rows.
	ErrNoTees = errors.New("course has no tees")
)
