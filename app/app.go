package app

import (
	"fmt"
	"log/slog"

	courseservice "github.com/fairway-club/standings/app/modules/course/application"
	standingsservice "github.com/fairway-club/standings/app/modules/standings/application"
	"github.com/fairway-club/standings/app/modules/standings/infrastructure/sheets"
	"github.com/fairway-club/standings/config"
)

// App wires the configuration, course catalog, and services together for
// one batch invocation.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Converter *courseservice.ConverterService
	Reader    *sheets.Reader
	Writer    *sheets.Writer

	standings *standingsservice.StandingsService
}

// NewApp builds the adapters that need no course catalog. The catalog and
// the standings service are loaded on first use so the converter can run
// before any catalog exists.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Converter: courseservice.NewConverterService(logger),
		Reader:    sheets.NewReader(logger),
		Writer:    sheets.NewWriter(logger),
	}
}

// Standings returns the standings service, loading the course catalog on
// first call.
func (a *App) Standings() (*standingsservice.StandingsService, error) {
	if a.standings != nil {
		return a.standings, nil
	}

	catalog, err := courseservice.LoadCatalog(a.Config.Courses.CatalogDir, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load course catalog: %w", err)
	}
	a.standings = standingsservice.NewStandingsService(catalog, a.Logger, standingsservice.Options{
		MaxHoleScore:    a.Config.Scoring.MaxHoleScore,
		EventRankSource: a.Config.Scoring.EventRankSource,
	})
	return a.standings, nil
}
