package sheets

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// Season workbook schema.
const (
	playersSheetName = "Players"
	majorSuffix      = " [Major]"
)

// Reader loads a season workbook into an immutable SeasonSheetReadData
// snapshot. All shape validation happens here; the standings service never
// sees malformed records.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a new Reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadSeasonWorkbook reads the Players sheet and one sheet per event. Event
// sheets carry a course/tee binding row, a hole header row, and one score
// row per player; a blank score cell means no score was posted.
func (r *Reader) ReadSeasonWorkbook(path string) (standingstypes.SeasonSheetReadData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return standingstypes.SeasonSheetReadData{}, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	hasPlayers := false
	var eventSheets []string
	for _, name := range sheetList {
		if name == playersSheetName {
			hasPlayers = true
			continue
		}
		eventSheets = append(eventSheets, name)
	}
	if !hasPlayers {
		return standingstypes.SeasonSheetReadData{}, ErrMissingPlayersSheet
	}

	players, err := r.readPlayersSheet(f)
	if err != nil {
		return standingstypes.SeasonSheetReadData{}, err
	}

	events := make([]standingstypes.Event, 0, len(eventSheets))
	for _, sheetName := range eventSheets {
		event, err := r.readEventSheet(f, sheetName)
		if err != nil {
			return standingstypes.SeasonSheetReadData{}, err
		}
		events = append(events, event)
	}

	r.logger.Info("Season workbook read",
		slog.String("path", path),
		slog.Int("players", len(players)),
		slog.Int("events", len(events)),
	)

	return standingstypes.SeasonSheetReadData{Players: players, Events: events}, nil
}

// readPlayersSheet parses the handicap index table: a Player column followed
// by one column per event name. A blank index cell means the player did not
// enter that event.
func (r *Reader) readPlayersSheet(f *excelize.File) (map[standingstypes.PlayerName]standingstypes.Player, error) {
	rows, err := f.GetRows(playersSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", playersSheetName, err)
	}
	if len(rows) == 0 || len(rows[0]) < 1 || !strings.EqualFold(strings.TrimSpace(rows[0][0]), "Player") {
		return nil, fmt.Errorf("%w: %s sheet must start with a Player header column", ErrMalformedSheet, playersSheetName)
	}

	eventCols := make([]standingstypes.EventName, 0, len(rows[0])-1)
	for _, col := range rows[0][1:] {
		name := strings.TrimSpace(col)
		if name == "" {
			return nil, fmt.Errorf("%w: %s sheet has a blank event column", ErrMalformedSheet, playersSheetName)
		}
		eventCols = append(eventCols, standingstypes.EventName(name))
	}

	players := make(map[standingstypes.PlayerName]standingstypes.Player)
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := standingstypes.PlayerName(strings.TrimSpace(row[0]))
		if _, exists := players[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
		}

		indexes := make(map[standingstypes.EventName]float64)
		for j, event := range eventCols {
			cell := ""
			if j+1 < len(row) {
				cell = strings.TrimSpace(row[j+1])
			}
			if cell == "" {
				continue
			}
			index, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid handicap index %q for player %q at row %d", ErrMalformedSheet, cell, name, i+2)
			}
			indexes[event] = index
		}
		players[name] = standingstypes.Player{Name: name, Indexes: indexes}
	}
	return players, nil
}

// readEventSheet parses one event: a course/tee binding row, a hole header
// row (1-18), then score rows. A " [Major]" suffix on the sheet name marks a
// major event.
func (r *Reader) readEventSheet(f *excelize.File, sheetName string) (standingstypes.Event, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return standingstypes.Event{}, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return standingstypes.Event{}, fmt.Errorf("%w: event sheet %q needs a course row and a hole header row", ErrMalformedSheet, sheetName)
	}

	eventType := standingstypes.EventTypeStandard
	eventName := sheetName
	if strings.HasSuffix(sheetName, majorSuffix) {
		eventType = standingstypes.EventTypeMajor
		eventName = strings.TrimSuffix(sheetName, majorSuffix)
	}

	meta := rows[0]
	if len(meta) < 4 || !strings.EqualFold(strings.TrimSpace(meta[0]), "Course") || !strings.EqualFold(strings.TrimSpace(meta[2]), "Tee") {
		return standingstypes.Event{}, fmt.Errorf("%w: event sheet %q row 1 must be: Course, <name>, Tee, <name>", ErrMalformedSheet, sheetName)
	}
	courseName := strings.TrimSpace(meta[1])
	teeName := strings.TrimSpace(meta[3])
	if courseName == "" || teeName == "" {
		return standingstypes.Event{}, fmt.Errorf("%w: event sheet %q has a blank course or tee name", ErrMalformedSheet, sheetName)
	}

	header := rows[1]
	if len(header) < 1+standingstypes.NumHoles || !strings.EqualFold(strings.TrimSpace(header[0]), "Player") {
		return standingstypes.Event{}, fmt.Errorf("%w: event sheet %q row 2 must be: Player, 1..18", ErrMalformedSheet, sheetName)
	}
	for hole := 1; hole <= standingstypes.NumHoles; hole++ {
		if strings.TrimSpace(header[hole]) != strconv.Itoa(hole) {
			return standingstypes.Event{}, fmt.Errorf("%w: event sheet %q hole header %q, want %d", ErrMalformedSheet, sheetName, header[hole], hole)
		}
	}

	scores := make(map[standingstypes.PlayerName]standingstypes.HoleScores)
	for i, row := range rows[2:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := standingstypes.PlayerName(strings.TrimSpace(row[0]))
		if _, exists := scores[name]; exists {
			return standingstypes.Event{}, fmt.Errorf("%w: %q on event sheet %q", ErrDuplicatePlayer, name, sheetName)
		}

		posted := make(map[int]int)
		for hole := 1; hole <= standingstypes.NumHoles; hole++ {
			cell := ""
			if hole < len(row) {
				cell = strings.TrimSpace(row[hole])
			}
			if cell == "" {
				continue
			}
			strokes, err := strconv.Atoi(cell)
			if err != nil || strokes < 0 {
				return standingstypes.Event{}, fmt.Errorf("%w: invalid score %q for player %q, hole %d, sheet %q row %d", ErrMalformedSheet, cell, name, hole, sheetName, i+3)
			}
			posted[hole] = strokes
		}

		hs, err := standingstypes.NewHoleScores(posted)
		if err != nil {
			return standingstypes.Event{}, fmt.Errorf("event sheet %q: %w", sheetName, err)
		}
		scores[name] = hs
	}

	return standingstypes.Event{
		Name:   standingstypes.EventName(eventName),
		Course: standingstypes.CourseName(courseName),
		Tee:    teeName,
		Type:   eventType,
		Scores: scores,
	}, nil
}
