package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	require.Equal(t, "courses", cfg.Courses.CatalogDir)
	require.Equal(t, "net", cfg.Scoring.EventRankSource)
	require.Equal(t, 0, cfg.Scoring.MaxHoleScore, "0 means double par")
	require.Equal(t, 10, cfg.Chart.TopN)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
courses:
  catalog_dir: /league/courses
scoring:
  max_hole_score: 10
  event_rank_source: gross
  finale_event: September Finale
chart:
  top_n: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/league/courses", cfg.Courses.CatalogDir)
	require.Equal(t, 10, cfg.Scoring.MaxHoleScore)
	require.Equal(t, "gross", cfg.Scoring.EventRankSource)
	require.Equal(t, "September Finale", cfg.Scoring.FinaleEvent)
	require.Equal(t, 5, cfg.Chart.TopN)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  event_rank_source: net\n"), 0o644))

	t.Setenv("LEAGUE_EVENT_RANK_SOURCE", "gross")
	t.Setenv("LEAGUE_MAX_HOLE_SCORE", "12")
	t.Setenv("LEAGUE_CATALOG_DIR", "/override/courses")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "gross", cfg.Scoring.EventRankSource)
	require.Equal(t, 12, cfg.Scoring.MaxHoleScore)
	require.Equal(t, "/override/courses", cfg.Courses.CatalogDir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("bad rank source", func(t *testing.T) {
		t.Setenv("LEAGUE_EVENT_RANK_SOURCE", "vibes")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
	})

	t.Run("bad max hole score", func(t *testing.T) {
		t.Setenv("LEAGUE_MAX_HOLE_SCORE", "lots")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
	})
}
