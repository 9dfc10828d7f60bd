package standingstypes

import (
	"fmt"
	"strings"
)

// NumHoles is the number of holes in a regulation round.
const NumHoles = 18

// PlayerName identifies a player. Unique within a season.
type PlayerName string

// EventName identifies an event. Unique within a season.
type EventName string

// CourseName identifies a course in the course catalog.
type CourseName string

// EventType distinguishes standard events from majors, which pay double points.
type EventType string

const (
	EventTypeStandard EventType = "STANDARD"
	EventTypeMajor    EventType = "MAJOR"
)

// Tee holds the USGA ratings for one set of tees.
type Tee struct {
	Par    int     `json:"par" yaml:"par"`
	Rating float64 `json:"rating" yaml:"rating"`
	Slope  int     `json:"slope" yaml:"slope"`
}

// Course is one entry in the course catalog. HolePars is either empty or
// exactly 18 entries; tee names are lowercased and unique per gender.
type Course struct {
	Name       CourseName     `json:"name" yaml:"name"`
	HolePars   []int          `json:"hole_pars,omitempty" yaml:"hole_pars,omitempty"`
	MensTees   map[string]Tee `json:"mens_tees" yaml:"mens_tees"`
	WomensTees map[string]Tee `json:"womens_tees" yaml:"womens_tees"`
}

// Validate checks the course invariants after decoding from JSON or YAML.
func (c Course) Validate() error {
	if c.Name == "" {
		return ErrMissingCourseName
	}
	if len(c.HolePars) != 0 && len(c.HolePars) != NumHoles {
		return fmt.Errorf("course %q: %w: got %d pars", c.Name, ErrBadHolePars, len(c.HolePars))
	}
	for name := range c.MensTees {
		if name != strings.ToLower(name) {
			return fmt.Errorf("course %q: mens tee %q: %w", c.Name, name, ErrTeeNameCase)
		}
	}
	for name := range c.WomensTees {
		if name != strings.ToLower(name) {
			return fmt.Errorf("course %q: womens tee %q: %w", c.Name, name, ErrTeeNameCase)
		}
	}
	return nil
}

// FindTee looks up a tee by its lowercased name, checking mens tees first.
func (c Course) FindTee(name string) (Tee, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if tee, ok := c.MensTees[name]; ok {
		return tee, true
	}
	if tee, ok := c.WomensTees[name]; ok {
		return tee, true
	}
	return Tee{}, false
}

// HoleScores is a player's strokes for one event, hole by hole. A hole with
// no posted score (no-show, withdrawal) is distinct from a zero score.
type HoleScores struct {
	strokes [NumHoles]*int
}

// NewHoleScores builds a HoleScores from posted strokes keyed by hole number
// 1-18. Holes absent from the map carry no score.
func NewHoleScores(posted map[int]int) (HoleScores, error) {
	var hs HoleScores
	for hole, strokes := range posted {
		if hole < 1 || hole > NumHoles {
			return HoleScores{}, fmt.Errorf("hole %d: %w", hole, ErrHoleOutOfRange)
		}
		s := strokes
		hs.strokes[hole-1] = &s
	}
	return hs, nil
}

// Strokes returns the posted strokes for a hole, and whether a score was
// posted at all.
func (h HoleScores) Strokes(hole int) (int, bool) {
	if hole < 1 || hole > NumHoles {
		return 0, false
	}
	if h.strokes[hole-1] == nil {
		return 0, false
	}
	return *h.strokes[hole-1], true
}

// Posted returns the number of holes with a posted score.
func (h HoleScores) Posted() int {
	n := 0
	for _, s := range h.strokes {
		if s != nil {
			n++
		}
	}
	return n
}

// Complete reports whether all 18 holes carry a posted score.
func (h HoleScores) Complete() bool {
	return h.Posted() == NumHoles
}

// Player is a league member with a handicap index per event they entered.
type Player struct {
	Name    PlayerName
	Indexes map[EventName]float64
}

// Index returns the player's handicap index for an event.
func (p Player) Index(event EventName) (float64, bool) {
	idx, ok := p.Indexes[event]
	return idx, ok
}

// Event is one round of league play at a course.
type Event struct {
	Name   EventName
	Course CourseName
	Tee    string
	Type   EventType
	Scores map[PlayerName]HoleScores
}

// ScoreTotals holds a player's aggregated strokes for one event. A nil total
// means the underlying holes were not all posted.
type ScoreTotals struct {
	Front *int
	Back  *int
	Gross *int
	Net   *int
}

// EventResult is one player's derived line on an event scoresheet. Rank 0
// means unranked (incomplete scorecard).
type EventResult struct {
	Player         PlayerName
	CourseHandicap int
	Totals         ScoreTotals
	GrossRank      int
	NetRank        int
	EventRank      int
	GrossPoints    float64
	NetPoints      float64
	EventPoints    float64
}

// NotableHole marks one player's hole flagged by the notable-hole detector.
type NotableHole struct {
	Player PlayerName
	Hole   int
}

// EventSheet is everything the spreadsheet writer needs for one event.
type EventSheet struct {
	Event   EventName
	Type    EventType
	Results []EventResult
	Birdies []NotableHole
	Eagles  []NotableHole
	OverMax []NotableHole
}

// SeasonResult is one player's line on the season leaderboard.
type SeasonResult struct {
	Player        PlayerName
	SeasonPoints  float64
	EventsPlayed  int
	Birdies       int
	Eagles        int
	Wins          int
	Top5s         int
	Top10s        int
	PointsByEvent map[EventName]float64
}

// SeasonSheetReadData is the immutable snapshot read from the season
// workbook before any computation starts.
type SeasonSheetReadData struct {
	Players map[PlayerName]Player
	Events  []Event
}

// SeasonSheetWriteData is the full computed output handed to the
// spreadsheet writer.
type SeasonSheetWriteData struct {
	Leaderboard []SeasonResult
	EventSheets []EventSheet
}
