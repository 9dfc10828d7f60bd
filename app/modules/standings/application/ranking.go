package standingsservice

import (
	"sort"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// RankedScore is one player's defined stroke total entering a ranking.
type RankedScore struct {
	Player  standingstypes.PlayerName
	Strokes int
}

// RankScores assigns standard competition ranks, lowest strokes first.
// Players on equal strokes share a rank and the tie consumes rank slots: two
// players tied at rank 3 push the next distinct score to rank 5.
func RankScores(scores []RankedScore) map[standingstypes.PlayerName]int {
	sorted := make([]RankedScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Strokes == sorted[j].Strokes {
			return sorted[i].Player < sorted[j].Player
		}
		return sorted[i].Strokes < sorted[j].Strokes
	})

	ranks := make(map[standingstypes.PlayerName]int, len(sorted))
	for i, entry := range sorted {
		rank := i + 1
		if i > 0 && entry.Strokes == sorted[i-1].Strokes {
			rank = ranks[sorted[i-1].Player]
		}
		ranks[entry.Player] = rank
	}
	return ranks
}
