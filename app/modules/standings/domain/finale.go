package standingstypes

// FinaleStandings is the two-state season-finale result: either the finale
// has concluded and final standings exist, or it has not and there is no
// player data to hand out. Callers check IsActive before reading standings.
type FinaleStandings struct {
	active  bool
	results []SeasonResult
}

// NewActiveFinale wraps concluded finale standings.
func NewActiveFinale(results []SeasonResult) FinaleStandings {
	return FinaleStandings{active: true, results: results}
}

// NewInactiveFinale represents a finale that has not concluded.
func NewInactiveFinale() FinaleStandings {
	return FinaleStandings{}
}

// IsActive reports whether final standings are available.
func (f FinaleStandings) IsActive() bool {
	return f.active
}

// Results returns the final standings, or ErrFinaleNotActive when the
// finale has not concluded. There is no silent default.
func (f FinaleStandings) Results() ([]SeasonResult, error) {
	if !f.active {
		return nil, ErrFinaleNotActive
	}
	return f.results, nil
}
