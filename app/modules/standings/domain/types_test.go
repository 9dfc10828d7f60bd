package standingstypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHoleScores(t *testing.T) {
	t.Run("posted scores are readable", func(t *testing.T) {
		hs, err := NewHoleScores(map[int]int{1: 4, 18: 5})
		require.NoError(t, err)

		strokes, ok := hs.Strokes(1)
		require.True(t, ok)
		require.Equal(t, 4, strokes)

		strokes, ok = hs.Strokes(18)
		require.True(t, ok)
		require.Equal(t, 5, strokes)

		_, ok = hs.Strokes(2)
		require.False(t, ok)
		require.Equal(t, 2, hs.Posted())
		require.False(t, hs.Complete())
	})

	t.Run("zero strokes is not a missing score", func(t *testing.T) {
		hs, err := NewHoleScores(map[int]int{3: 0})
		require.NoError(t, err)
		strokes, ok := hs.Strokes(3)
		require.True(t, ok)
		require.Equal(t, 0, strokes)
	})

	t.Run("hole numbers outside 1-18 are rejected", func(t *testing.T) {
		_, err := NewHoleScores(map[int]int{0: 4})
		require.ErrorIs(t, err, ErrHoleOutOfRange)
		_, err = NewHoleScores(map[int]int{19: 4})
		require.ErrorIs(t, err, ErrHoleOutOfRange)
	})

	t.Run("full card is complete", func(t *testing.T) {
		posted := make(map[int]int)
		for hole := 1; hole <= NumHoles; hole++ {
			posted[hole] = 4
		}
		hs, err := NewHoleScores(posted)
		require.NoError(t, err)
		require.True(t, hs.Complete())
	})
}

func TestCourseValidate(t *testing.T) {
	pars := make([]int, NumHoles)
	for i := range pars {
		pars[i] = 4
	}

	tests := []struct {
		name    string
		course  Course
		wantErr error
	}{
		{
			name:   "valid with pars",
			course: Course{Name: "Flat Meadows", HolePars: pars, MensTees: map[string]Tee{"white": {Par: 72, Rating: 72.0, Slope: 113}}},
		},
		{
			name:   "valid without pars",
			course: Course{Name: "Flat Meadows", MensTees: map[string]Tee{"white": {Par: 72, Rating: 72.0, Slope: 113}}},
		},
		{
			name:    "missing name",
			course:  Course{},
			wantErr: ErrMissingCourseName,
		},
		{
			name:    "partial pars",
			course:  Course{Name: "Nine Holer", HolePars: pars[:9]},
			wantErr: ErrBadHolePars,
		},
		{
			name:    "uppercase tee name",
			course:  Course{Name: "Flat Meadows", MensTees: map[string]Tee{"White": {}}},
			wantErr: ErrTeeNameCase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCourseFindTee(t *testing.T) {
	course := Course{
		Name:       "Flat Meadows",
		MensTees:   map[string]Tee{"white": {Par: 72, Rating: 72.0, Slope: 113}},
		WomensTees: map[string]Tee{"red": {Par: 72, Rating: 70.5, Slope: 120}},
	}

	tee, ok := course.FindTee("White")
	require.True(t, ok)
	require.Equal(t, 113, tee.Slope)

	tee, ok = course.FindTee("  RED ")
	require.True(t, ok)
	require.Equal(t, 120, tee.Slope)

	_, ok = course.FindTee("gold")
	require.False(t, ok)
}

func TestFinaleStandings(t *testing.T) {
	t.Run("inactive refuses player data", func(t *testing.T) {
		standings := NewInactiveFinale()
		require.False(t, standings.IsActive())
		_, err := standings.Results()
		require.ErrorIs(t, err, ErrFinaleNotActive)
	})

	t.Run("active hands out results", func(t *testing.T) {
		want := []SeasonResult{{Player: "alice", SeasonPoints: 50.0}}
		standings := NewActiveFinale(want)
		require.True(t, standings.IsActive())
		got, err := standings.Results()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}
