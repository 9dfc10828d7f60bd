package standingsservice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// CourseCatalog resolves course references for events. An unknown course
// name is an error, never a silent default.
type CourseCatalog interface {
	Course(name standingstypes.CourseName) (standingstypes.Course, error)
}

// Options tune the standings computation.
type Options struct {
	// MaxHoleScore is the blow-up highlight threshold. 0 means double par.
	MaxHoleScore int
	// EventRankSource selects which ranking drives season points: "net"
	// (default) or "gross".
	EventRankSource string
}

// StandingsService computes event results and season standings.
type StandingsService struct {
	catalog CourseCatalog
	logger  *slog.Logger
	opts    Options
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(catalog CourseCatalog, logger *slog.Logger, opts Options) *StandingsService {
	return &StandingsService{
		catalog: catalog,
		logger:  logger,
		opts:    opts,
	}
}

// ComputeSeason runs the full pipeline over one season snapshot: course
// handicaps, score aggregation, gross/net ranking, points, notable holes,
// and the season leaderboard. Any unknown course or tee reference aborts the
// whole computation.
func (s *StandingsService) ComputeSeason(ctx context.Context, read standingstypes.SeasonSheetReadData) (standingstypes.SeasonSheetWriteData, error) {
	if len(read.Events) == 0 {
		return standingstypes.SeasonSheetWriteData{}, ErrNoEvents
	}

	sheets := make([]standingstypes.EventSheet, 0, len(read.Events))
	for _, event := range read.Events {
		sheet, err := s.computeEvent(ctx, event, read.Players)
		if err != nil {
			s.logger.ErrorContext(ctx, "Event computation failed",
				slog.String("event", string(event.Name)),
				slog.Any("error", err),
			)
			return standingstypes.SeasonSheetWriteData{}, fmt.Errorf("event %q: %w", event.Name, err)
		}
		sheets = append(sheets, sheet)
	}

	leaderboard := AggregateSeason(sheets)

	s.logger.InfoContext(ctx, "Season computed",
		slog.Int("events", len(sheets)),
		slog.Int("players", len(leaderboard)),
	)

	return standingstypes.SeasonSheetWriteData{
		Leaderboard: leaderboard,
		EventSheets: sheets,
	}, nil
}

// computeEvent derives one event's scoresheet from raw hole scores.
func (s *StandingsService) computeEvent(ctx context.Context, event standingstypes.Event, players map[standingstypes.PlayerName]standingstypes.Player) (standingstypes.EventSheet, error) {
	course, err := s.catalog.Course(event.Course)
	if err != nil {
		return standingstypes.EventSheet{}, err
	}

	tee, ok := course.FindTee(event.Tee)
	if !ok {
		return standingstypes.EventSheet{}, fmt.Errorf("%w: %q on course %q", ErrUnknownTee, event.Tee, course.Name)
	}

	par := tee.Par
	if par == 0 {
		if len(course.HolePars) != standingstypes.NumHoles {
			return standingstypes.EventSheet{}, fmt.Errorf("course %q has no par for tee %q", course.Name, event.Tee)
		}
		for _, p := range course.HolePars {
			par += p
		}
	}

	names := make([]standingstypes.PlayerName, 0, len(event.Scores))
	for name := range event.Scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	sheet := standingstypes.EventSheet{Event: event.Name, Type: event.Type}
	byPlayer := make(map[standingstypes.PlayerName]*standingstypes.EventResult, len(names))
	var grossSlate, netSlate []RankedScore

	for _, name := range names {
		index, ok := players[name].Index(event.Name)
		if !ok {
			return standingstypes.EventSheet{}, fmt.Errorf("%w: player %q, event %q", ErrMissingHandicapIndex, name, event.Name)
		}

		ch := CourseHandicap(index, par, tee.Rating, tee.Slope)
		totals := AggregateScores(event.Scores[name], ch)
		byPlayer[name] = &standingstypes.EventResult{
			Player:         name,
			CourseHandicap: ch,
			Totals:         totals,
		}

		// Incomplete scorecards stay on the sheet but never enter a ranking.
		if totals.Gross != nil {
			grossSlate = append(grossSlate, RankedScore{Player: name, Strokes: *totals.Gross})
		}
		if totals.Net != nil {
			netSlate = append(netSlate, RankedScore{Player: name, Strokes: *totals.Net})
		}
	}

	grossRanks := RankScores(grossSlate)
	netRanks := RankScores(netSlate)

	for name, result := range byPlayer {
		result.GrossRank = grossRanks[name]
		result.NetRank = netRanks[name]
		result.GrossPoints = PointsForRank(result.GrossRank, event.Type)
		result.NetPoints = PointsForRank(result.NetRank, event.Type)

		result.EventRank = result.NetRank
		if s.opts.EventRankSource == "gross" {
			result.EventRank = result.GrossRank
		}
		result.EventPoints = PointsForRank(result.EventRank, event.Type)
	}

	if len(course.HolePars) == standingstypes.NumHoles {
		for _, name := range names {
			birdies, eagles, overMax := notableHoles(name, event.Scores[name], course.HolePars, s.opts.MaxHoleScore)
			sheet.Birdies = append(sheet.Birdies, birdies...)
			sheet.Eagles = append(sheet.Eagles, eagles...)
			sheet.OverMax = append(sheet.OverMax, overMax...)
		}
	} else {
		s.logger.WarnContext(ctx, "Course has no hole pars, skipping notable-hole detection",
			slog.String("course", string(course.Name)),
			slog.String("event", string(event.Name)),
		)
	}

	for _, name := range names {
		sheet.Results = append(sheet.Results, *byPlayer[name])
	}
	sort.SliceStable(sheet.Results, func(i, j int) bool {
		ri, rj := sheet.Results[i].EventRank, sheet.Results[j].EventRank
		if ri == 0 {
			return false
		}
		if rj == 0 {
			return true
		}
		return ri < rj
	})

	return sheet, nil
}

// SeasonFinale returns the season-finale standings. The finale is active
// only once the named finale event has at least one ranked result in the
// computed season; callers must check IsActive before reading standings.
func (s *StandingsService) SeasonFinale(write standingstypes.SeasonSheetWriteData, finale standingstypes.EventName) standingstypes.FinaleStandings {
	for _, sheet := range write.EventSheets {
		if sheet.Event != finale {
			continue
		}
		for _, result := range sheet.Results {
			if result.EventRank > 0 {
				return standingstypes.NewActiveFinale(write.Leaderboard)
			}
		}
	}
	return standingstypes.NewInactiveFinale()
}
