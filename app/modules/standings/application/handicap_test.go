package standingsservice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		name   string
		index  float64
		par    int
		rating float64
		slope  int
		want   int
	}{
		{name: "mid index", index: 15.6, par: 72, rating: 69.5, slope: 129, want: 15},
		{name: "low index", index: 5.2, par: 72, rating: 69.0, slope: 131, want: 3},
		{name: "whole index rounds up", index: 18, par: 72, rating: 72.7, slope: 125, want: 21},
		{name: "rounding boundary regression", index: 17.8991, par: 72, rating: 72.7, slope: 125, want: 20},
		{name: "plus handicap stays negative", index: -3.0, par: 72, rating: 68.0, slope: 113, want: -7},
		{name: "neutral slope equals index", index: 10.0, par: 72, rating: 72.0, slope: 113, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseHandicap(tt.index, tt.par, tt.rating, tt.slope)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCourseHandicap_Idempotent(t *testing.T) {
	first := CourseHandicap(17.8991, 72, 72.7, 125)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, CourseHandicap(17.8991, 72, 72.7, 125))
	}
}
