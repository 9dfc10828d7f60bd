package sheets

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

func TestWriteDemoWorkbook_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xlsx")
	logger := slog.Default()

	require.NoError(t, WriteDemoWorkbook(path, "Flat Meadows", "white", 4, 3, logger))

	read, err := NewReader(logger).ReadSeasonWorkbook(path)
	require.NoError(t, err)

	require.Len(t, read.Players, 4)
	require.Len(t, read.Events, 3)

	for _, event := range read.Events {
		require.Equal(t, standingstypes.CourseName("Flat Meadows"), event.Course)
		require.Equal(t, "white", event.Tee)
		require.Len(t, event.Scores, 4)
		for name := range event.Scores {
			_, ok := read.Players[name].Index(event.Name)
			require.True(t, ok, "every demo player has an index for every event")
		}
	}

	require.Equal(t, standingstypes.EventTypeMajor, read.Events[len(read.Events)-1].Type,
		"the season closer is a major")
	for _, event := range read.Events[:len(read.Events)-1] {
		require.Equal(t, standingstypes.EventTypeStandard, event.Type)
	}
}

func TestWriteDemoWorkbook_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xlsx")
	require.Error(t, WriteDemoWorkbook(path, "Flat Meadows", "white", 0, 3, slog.Default()))
	require.Error(t, WriteDemoWorkbook(path, "Flat Meadows", "white", 4, 0, slog.Default()))
}
