package standingsservice

import "errors"

// Service errors. Unknown references are fatal: the computation aborts and
// no partial leaderboard is produced.
var (
	// ErrUnknownTee indicates an event references a tee name absent from its
	// course record.
	ErrUnknownTee = errors.New("unknown tee")

	// ErrMissingHandicapIndex indicates a player posted scores for an event
	// they have no handicap index for.
	ErrMissingHandicapIndex = errors.New("missing handicap index")

	// ErrNoEvents indicates a season workbook with nothing to compute.
	ErrNoEvents = errors.New("season has no events")
)
