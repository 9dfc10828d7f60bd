package sheets

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/xuri/excelize/v2"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// WriteDemoWorkbook fabricates a season workbook in the input schema so the
// pipeline can be exercised without real league data. Roughly one hole score
// in twenty is left unposted to exercise the missing-score policy, and the
// last event is a major.
func WriteDemoWorkbook(path string, course standingstypes.CourseName, tee string, players, events int, logger *slog.Logger) error {
	if players < 1 || events < 1 {
		return fmt.Errorf("demo workbook needs at least one player and one event")
	}

	faker := gofakeit.New(0)

	names := make([]string, 0, players)
	seen := make(map[string]bool, players)
	for len(names) < players {
		name := faker.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	eventNames := make([]string, events)
	sheetNames := make([]string, events)
	for i := range eventNames {
		eventNames[i] = fmt.Sprintf("Event %d", i+1)
		sheetNames[i] = eventNames[i]
		if i == events-1 {
			sheetNames[i] += majorSuffix
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(playersSheetName); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", playersSheetName, err)
	}
	header := []interface{}{"Player"}
	for _, event := range eventNames {
		header = append(header, event)
	}
	if err := setRow(f, playersSheetName, 1, header); err != nil {
		return err
	}
	for i, name := range names {
		row := []interface{}{name}
		for range eventNames {
			row = append(row, round1(faker.Float64Range(2.0, 28.0)))
		}
		if err := setRow(f, playersSheetName, i+2, row); err != nil {
			return err
		}
	}

	for _, sheetName := range sheetNames {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
		}
		if err := setRow(f, sheetName, 1, []interface{}{"Course", string(course), "Tee", tee}); err != nil {
			return err
		}
		holeHeader := []interface{}{"Player"}
		for hole := 1; hole <= standingstypes.NumHoles; hole++ {
			holeHeader = append(holeHeader, strconv.Itoa(hole))
		}
		if err := setRow(f, sheetName, 2, holeHeader); err != nil {
			return err
		}
		for i, name := range names {
			row := []interface{}{name}
			for hole := 1; hole <= standingstypes.NumHoles; hole++ {
				if faker.Number(1, 20) == 1 {
					row = append(row, nil)
					continue
				}
				row = append(row, faker.Number(3, 8))
			}
			if err := setRow(f, sheetName, i+3, row); err != nil {
				return err
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save demo workbook %q: %w", path, err)
	}

	logger.Info("Demo workbook written",
		slog.String("path", path),
		slog.Int("players", players),
		slog.Int("events", events),
	)
	return nil
}

// round1 keeps fabricated handicap indexes to one decimal place.
func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}
