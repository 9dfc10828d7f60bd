package standingsservice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

func TestAggregateSeason(t *testing.T) {
	sheets := []standingstypes.EventSheet{
		{
			Event: "June Open",
			Results: []standingstypes.EventResult{
				{Player: "alice", EventRank: 1, EventPoints: 50.0},
				{Player: "bob", EventRank: 2, EventPoints: 42.0},
				{Player: "carol", EventRank: 11, EventPoints: 17.5},
			},
			Birdies: []standingstypes.NotableHole{
				{Player: "alice", Hole: 3},
				{Player: "alice", Hole: 12},
			},
			Eagles: []standingstypes.NotableHole{{Player: "bob", Hole: 9}},
		},
		{
			Event: "April Scramble",
			Results: []standingstypes.EventResult{
				{Player: "bob", EventRank: 1, EventPoints: 50.0},
				{Player: "alice", EventRank: 4, EventPoints: 29.0},
				// Incomplete scorecard: on the sheet but never ranked.
				{Player: "carol"},
			},
			Birdies: []standingstypes.NotableHole{{Player: "carol", Hole: 7}},
		},
	}

	leaderboard := AggregateSeason(sheets)
	require.Len(t, leaderboard, 3)

	want := []standingstypes.SeasonResult{
		{
			Player:       "bob",
			SeasonPoints: 92.0,
			EventsPlayed: 2,
			Eagles:       1,
			Wins:         1,
			Top5s:        2,
			Top10s:       2,
			PointsByEvent: map[standingstypes.EventName]float64{
				"April Scramble": 50.0,
				"June Open":      42.0,
			},
		},
		{
			Player:       "alice",
			SeasonPoints: 79.0,
			EventsPlayed: 2,
			Birdies:      2,
			Wins:         1,
			Top5s:        2,
			Top10s:       2,
			PointsByEvent: map[standingstypes.EventName]float64{
				"April Scramble": 29.0,
				"June Open":      50.0,
			},
		},
		{
			Player:       "carol",
			SeasonPoints: 17.5,
			EventsPlayed: 1,
			Birdies:      1,
			Top10s:       0,
			PointsByEvent: map[standingstypes.EventName]float64{
				"June Open": 17.5,
			},
		},
	}
	if diff := cmp.Diff(want, leaderboard); diff != "" {
		t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSeason_PointsSumExactly(t *testing.T) {
	// Season points must equal the per-event breakdown under exact float
	// equality, which the sorted-by-event-name summation order guarantees.
	sheets := []standingstypes.EventSheet{
		{Event: "C", Results: []standingstypes.EventResult{{Player: "alice", EventRank: 7, EventPoints: 19.5}}},
		{Event: "A", Results: []standingstypes.EventResult{{Player: "alice", EventRank: 9, EventPoints: 18.5}}},
		{Event: "B", Results: []standingstypes.EventResult{{Player: "alice", EventRank: 45, EventPoints: 0.5}}},
	}

	leaderboard := AggregateSeason(sheets)
	require.Len(t, leaderboard, 1)

	sum := 18.5 + 0.5 + 19.5 // A, B, C order
	require.Equal(t, sum, leaderboard[0].SeasonPoints)

	total := 0.0
	for _, points := range leaderboard[0].PointsByEvent {
		total += points
	}
	require.InDelta(t, leaderboard[0].SeasonPoints, total, 1e-12)
}

func TestAggregateSeason_OnlyIncompleteCards(t *testing.T) {
	sheets := []standingstypes.EventSheet{
		{
			Event:   "Lonely Open",
			Results: []standingstypes.EventResult{{Player: "dave"}},
			Birdies: []standingstypes.NotableHole{{Player: "dave", Hole: 2}},
		},
	}

	leaderboard := AggregateSeason(sheets)
	require.Len(t, leaderboard, 1)
	require.Equal(t, 0, leaderboard[0].EventsPlayed)
	require.Equal(t, 0.0, leaderboard[0].SeasonPoints)
	require.Equal(t, 1, leaderboard[0].Birdies)
}
