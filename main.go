package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fairway-club/standings/app"
	standingsservice "github.com/fairway-club/standings/app/modules/standings/application"
	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
	"github.com/fairway-club/standings/app/modules/standings/infrastructure/sheets"
	"github.com/fairway-club/standings/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cliApp := &cli.App{
		Name:  "standings",
		Usage: "compute golf league season standings from a season workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			newComputeCommand(logger),
			newConvertCommand(logger),
			newChartCommand(logger),
			newDemoCommand(logger),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadApp(c *cli.Context, logger *slog.Logger) (*app.App, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.NewApp(cfg, logger), nil
}

func newComputeCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "compute",
		Usage: "compute season standings and write the results workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "season workbook to read"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "standings.xlsx", Usage: "results workbook to write"},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c, logger)
			if err != nil {
				return err
			}

			read, err := a.Reader.ReadSeasonWorkbook(c.String("input"))
			if err != nil {
				return err
			}

			svc, err := a.Standings()
			if err != nil {
				return err
			}
			write, err := svc.ComputeSeason(c.Context, read)
			if err != nil {
				return err
			}

			if err := a.Writer.WriteSeasonWorkbook(write, c.String("output")); err != nil {
				return err
			}

			if finale := a.Config.Scoring.FinaleEvent; finale != "" {
				standings := svc.SeasonFinale(write, standingstypes.EventName(finale))
				if !standings.IsActive() {
					logger.Info("Season finale has not concluded, standings are provisional",
						slog.String("finale", finale),
					)
					return nil
				}
				final, err := standings.Results()
				if err != nil {
					return err
				}
				for i, sr := range final {
					if i >= 3 {
						break
					}
					fmt.Printf("%d. %s — %.1f points\n", i+1, sr.Player, sr.SeasonPoints)
				}
			}
			return nil
		},
	}
}

func newConvertCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "convert tab-delimited course data files to JSON and YAML",
		Action: func(c *cli.Context) error {
			a, err := loadApp(c, logger)
			if err != nil {
				return err
			}
			return a.Converter.ConvertDir(
				a.Config.Courses.DataDir,
				a.Config.Courses.JSONOutDir,
				a.Config.Courses.YAMLOutDir,
			)
		},
	}
}

func newChartCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "render a PNG points race for the season",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "season workbook to read"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "points_race.png", Usage: "chart file to write"},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c, logger)
			if err != nil {
				return err
			}

			read, err := a.Reader.ReadSeasonWorkbook(c.String("input"))
			if err != nil {
				return err
			}
			svc, err := a.Standings()
			if err != nil {
				return err
			}
			write, err := svc.ComputeSeason(c.Context, read)
			if err != nil {
				return err
			}

			png, err := standingsservice.RenderPointsRace(
				write.Leaderboard,
				standingsservice.EventOrder(read),
				standingsservice.DefaultChartPalette,
				a.Config.Chart.TopN,
			)
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("output"), png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			logger.Info("Points race chart written", slog.String("path", c.String("output")))
			return nil
		},
	}
}

func newDemoCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "write a fabricated season workbook for trying out the pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "demo_season.xlsx", Usage: "workbook to write"},
			&cli.StringFlag{Name: "course", Required: true, Usage: "course name from the catalog"},
			&cli.StringFlag{Name: "tee", Required: true, Usage: "tee name on the course"},
			&cli.IntFlag{Name: "players", Value: 12, Usage: "number of players"},
			&cli.IntFlag{Name: "events", Value: 6, Usage: "number of events"},
		},
		Action: func(c *cli.Context) error {
			return sheets.WriteDemoWorkbook(
				c.String("output"),
				standingstypes.CourseName(c.String("course")),
				c.String("tee"),
				c.Int("players"),
				c.Int("events"),
				logger,
			)
		},
	}
}
