package standingsservice

import (
	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// AggregateScores totals a player's posted hole scores. A nine with any
// unposted hole yields a nil total for that nine; gross and net require all
// 18 holes. Missing scores are never treated as zero strokes.
func AggregateScores(scores standingstypes.HoleScores, courseHandicap int) standingstypes.ScoreTotals {
	var totals standingstypes.ScoreTotals

	totals.Front = sumHoles(scores, 1, 9)
	totals.Back = sumHoles(scores, 10, standingstypes.NumHoles)

	if totals.Front != nil && totals.Back != nil {
		gross := *totals.Front + *totals.Back
		net := gross - courseHandicap
		totals.Gross = &gross
		totals.Net = &net
	}

	return totals
}

// sumHoles sums posted strokes for holes from..to inclusive, or returns nil
// if any hole in the range has no posted score.
func sumHoles(scores standingstypes.HoleScores, from, to int) *int {
	total := 0
	for hole := from; hole <= to; hole++ {
		strokes, posted := scores.Strokes(hole)
		if !posted {
			return nil
		}
		total += strokes
	}
	return &total
}
