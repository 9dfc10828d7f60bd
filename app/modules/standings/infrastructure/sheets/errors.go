package sheets

import "errors"

// Workbook schema errors, surfaced at the read boundary before any
// computation starts.
var (
	// ErrMissingPlayersSheet indicates the season workbook has no Players
	// sheet.
	ErrMissingPlayersSheet = errors.New("workbook has no Players sheet")

	// ErrMalformedSheet indicates a sheet that does not match the expected
	// season workbook schema.
	ErrMalformedSheet = errors.New("malformed sheet")

	// ErrDuplicatePlayer indicates the same player name appears twice.
	ErrDuplicatePlayer = errors.New("duplicate player name")
)
