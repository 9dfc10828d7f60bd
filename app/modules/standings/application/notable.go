package standingsservice

import (
	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// HoleClass classifies one posted hole score against par.
type HoleClass int

const (
	HoleNormal HoleClass = iota
	HoleBirdie
	HoleEagle
	HoleOverMax
)

// ClassifyHole classifies a posted score. maxScore is the highlight
// threshold for blow-up holes; pass 0 to default to double par.
func ClassifyHole(strokes, par, maxScore int) HoleClass {
	if maxScore <= 0 {
		maxScore = 2 * par
	}
	switch {
	case strokes <= par-2:
		return HoleEagle
	case strokes == par-1:
		return HoleBirdie
	case strokes > maxScore:
		return HoleOverMax
	default:
		return HoleNormal
	}
}

// notableHoles scans one player's scores against the course pars and returns
// the holes in each notable category. Unposted holes classify as normal.
func notableHoles(player standingstypes.PlayerName, scores standingstypes.HoleScores, pars []int, maxScore int) (birdies, eagles, overMax []standingstypes.NotableHole) {
	for hole := 1; hole <= standingstypes.NumHoles; hole++ {
		strokes, posted := scores.Strokes(hole)
		if !posted {
			continue
		}
		switch ClassifyHole(strokes, pars[hole-1], maxScore) {
		case HoleBirdie:
			birdies = append(birdies, standingstypes.NotableHole{Player: player, Hole: hole})
		case HoleEagle:
			eagles = append(eagles, standingstypes.NotableHole{Player: player, Hole: hole})
		case HoleOverMax:
			overMax = append(overMax, standingstypes.NotableHole{Player: player, Hole: hole})
		}
	}
	return birdies, eagles, overMax
}
