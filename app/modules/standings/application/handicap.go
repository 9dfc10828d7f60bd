package standingsservice

import "math"

// slopeBase is the USGA neutral slope rating.
const slopeBase = 113.0

// CourseHandicap converts a handicap index into a course handicap for a set
// of tees: round(index * (slope / 113) + (rating - par)).
//
// Rounding is half away from zero at a true .5 boundary. math.Round already
// behaves that way and does not promote values like 20.49988 that merely sit
// near the boundary, which is what the USGA calculator does. Plus handicaps
// produce negative results and are preserved, not clamped.
func CourseHandicap(index float64, par int, rating float64, slope int) int {
	raw := index*(float64(slope)/slopeBase) + (rating - float64(par))
	return int(math.Round(raw))
}
