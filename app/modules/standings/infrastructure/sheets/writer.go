package sheets

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

const leaderboardSheetName = "Leaderboard"

// Highlight fills for notable holes.
const (
	birdieFill  = "C6EFCE"
	eagleFill   = "FFD966"
	overMaxFill = "FFC7CE"
)

// Writer renders computed season standings back to an XLSX workbook: one
// leaderboard sheet plus one scoresheet per event.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteSeasonWorkbook writes the leaderboard and event scoresheets to path.
// Each report is stamped with a fresh report ID in the workbook properties.
func (w *Writer) WriteSeasonWorkbook(data standingstypes.SeasonSheetWriteData, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	reportID := uuid.New().String()

	if err := w.writeLeaderboardSheet(f, data); err != nil {
		return err
	}
	for _, sheet := range data.EventSheets {
		if err := w.writeEventSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:     "standings",
		Identifier:  reportID,
		Description: "Generated golf league season standings",
	}); err != nil {
		return fmt.Errorf("failed to set workbook properties: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}

	w.logger.Info("Season workbook written",
		slog.String("path", path),
		slog.String("report_id", reportID),
		slog.Int("events", len(data.EventSheets)),
	)
	return nil
}

func (w *Writer) writeLeaderboardSheet(f *excelize.File, data standingstypes.SeasonSheetWriteData) error {
	if _, err := f.NewSheet(leaderboardSheetName); err != nil {
		return fmt.Errorf("failed to create leaderboard sheet: %w", err)
	}

	header := []interface{}{"Rank", "Player", "Season Points", "Events", "Birdies", "Eagles", "Wins", "Top 5s", "Top 10s"}
	for _, sheet := range data.EventSheets {
		header = append(header, string(sheet.Event))
	}
	if err := setRow(f, leaderboardSheetName, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, leaderboardSheetName, 1, len(header)); err != nil {
		return err
	}

	for i, sr := range data.Leaderboard {
		row := []interface{}{
			i + 1,
			string(sr.Player),
			sr.SeasonPoints,
			sr.EventsPlayed,
			sr.Birdies,
			sr.Eagles,
			sr.Wins,
			sr.Top5s,
			sr.Top10s,
		}
		for _, sheet := range data.EventSheets {
			if points, ok := sr.PointsByEvent[sheet.Event]; ok {
				row = append(row, points)
			} else {
				row = append(row, nil)
			}
		}
		if err := setRow(f, leaderboardSheetName, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeEventSheet(f *excelize.File, sheet standingstypes.EventSheet) error {
	sheetName := string(sheet.Event)
	if sheet.Type == standingstypes.EventTypeMajor {
		sheetName += majorSuffix
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
	}

	header := []interface{}{"Player", "Hcp", "Front", "Back", "Gross", "Net", "Gross Rank", "Net Rank", "Gross Pts", "Net Pts", "Event Rank", "Event Pts"}
	if err := setRow(f, sheetName, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, sheetName, 1, len(header)); err != nil {
		return err
	}

	for i, result := range sheet.Results {
		row := []interface{}{
			string(result.Player),
			result.CourseHandicap,
			optInt(result.Totals.Front),
			optInt(result.Totals.Back),
			optInt(result.Totals.Gross),
			optInt(result.Totals.Net),
			optRank(result.GrossRank),
			optRank(result.NetRank),
			result.GrossPoints,
			result.NetPoints,
			optRank(result.EventRank),
			result.EventPoints,
		}
		if err := setRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}

	notableRow := len(sheet.Results) + 3
	for _, section := range []struct {
		label string
		fill  string
		holes []standingstypes.NotableHole
	}{
		{"Birdies", birdieFill, sheet.Birdies},
		{"Eagles", eagleFill, sheet.Eagles},
		{"Over Max", overMaxFill, sheet.OverMax},
	} {
		if err := setRow(f, sheetName, notableRow, []interface{}{section.label, formatNotables(section.holes)}); err != nil {
			return err
		}
		if err := fillCells(f, sheetName, notableRow, 2, section.fill); err != nil {
			return err
		}
		notableRow++
	}
	return nil
}

// formatNotables renders (player, hole) pairs as "Alice (3), Bob (17)".
func formatNotables(holes []standingstypes.NotableHole) string {
	if len(holes) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(holes))
	for _, nh := range holes {
		parts = append(parts, fmt.Sprintf("%s (%d)", nh.Player, nh.Hole))
	}
	return strings.Join(parts, ", ")
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("bad cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, width int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	return styleCells(f, sheet, row, width, style)
}

func fillCells(f *excelize.File, sheet string, row, width int, color string) error {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}
	return styleCells(f, sheet, row, width, style)
}

func styleCells(f *excelize.File, sheet string, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style %s!%s:%s: %w", sheet, first, last, err)
	}
	return nil
}

// optInt renders an optional total; nil leaves the cell blank.
func optInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// optRank renders a rank; 0 (unranked) leaves the cell blank.
func optRank(rank int) interface{} {
	if rank == 0 {
		return nil
	}
	return rank
}
