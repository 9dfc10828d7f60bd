package standingsservice

import (
	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// maxPointsRank is the deepest rank that still pays points.
const maxPointsRank = 45

// normalEventPointsByRank and majorEventPointsByRank map rank (1-based) to
// points for standard and major events. Both are built once at startup and
// never mutated. The major table is exactly double the standard table.
var (
	normalEventPointsByRank = buildNormalPointsTable()
	majorEventPointsByRank  = buildMajorPointsTable()
)

// buildNormalPointsTable lays out the standard payout: big gaps across the
// podium ranks, then half-point steps from rank 6 (20.0) down to rank 45
// (0.5).
func buildNormalPointsTable() []float64 {
	table := []float64{50.0, 42.0, 35.0, 29.0, 24.0}
	for rank := 6; rank <= maxPointsRank; rank++ {
		table = append(table, 20.0-0.5*float64(rank-6))
	}
	return table
}

func buildMajorPointsTable() []float64 {
	table := make([]float64, len(normalEventPointsByRank))
	for i, points := range normalEventPointsByRank {
		table[i] = points * 2.0
	}
	return table
}

// PointsForRank returns the points paid for a rank at an event of the given
// type. Ranks past the table pay nothing. Tied players each receive the full
// value for their shared rank; points are never averaged across a tie.
func PointsForRank(rank int, eventType standingstypes.EventType) float64 {
	if rank < 1 || rank > maxPointsRank {
		return 0
	}
	if eventType == standingstypes.EventTypeMajor {
		return majorEventPointsByRank[rank-1]
	}
	return normalEventPointsByRank[rank-1]
}
