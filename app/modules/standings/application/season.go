package standingsservice

import (
	"sort"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// AggregateSeason folds per-event sheets into season totals. Events are
// summed in sorted-by-event-name order so season points are reproducible
// under exact float equality. A player with only incomplete scorecards still
// gets a season line (their birdies and eagles count even when no round
// ranked).
func AggregateSeason(sheets []standingstypes.EventSheet) []standingstypes.SeasonResult {
	ordered := make([]standingstypes.EventSheet, len(sheets))
	copy(ordered, sheets)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Event < ordered[j].Event })

	totals := make(map[standingstypes.PlayerName]*standingstypes.SeasonResult)
	line := func(player standingstypes.PlayerName) *standingstypes.SeasonResult {
		if sr, ok := totals[player]; ok {
			return sr
		}
		sr := &standingstypes.SeasonResult{
			Player:        player,
			PointsByEvent: make(map[standingstypes.EventName]float64),
		}
		totals[player] = sr
		return sr
	}

	for _, sheet := range ordered {
		for _, result := range sheet.Results {
			sr := line(result.Player)
			if result.EventRank == 0 {
				continue
			}
			sr.EventsPlayed++
			sr.SeasonPoints += result.EventPoints
			sr.PointsByEvent[sheet.Event] = result.EventPoints
			if result.EventRank == 1 {
				sr.Wins++
			}
			if result.EventRank <= 5 {
				sr.Top5s++
			}
			if result.EventRank <= 10 {
				sr.Top10s++
			}
		}
		for _, nh := range sheet.Birdies {
			line(nh.Player).Birdies++
		}
		for _, nh := range sheet.Eagles {
			line(nh.Player).Eagles++
		}
	}

	leaderboard := make([]standingstypes.SeasonResult, 0, len(totals))
	for _, sr := range totals {
		leaderboard = append(leaderboard, *sr)
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		if leaderboard[i].SeasonPoints == leaderboard[j].SeasonPoints {
			return leaderboard[i].Player < leaderboard[j].Player
		}
		return leaderboard[i].SeasonPoints > leaderboard[j].SeasonPoints
	})
	return leaderboard
}
