package standingsservice

import (
	"fmt"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// fakeCatalog is an in-memory CourseCatalog for tests.
type fakeCatalog struct {
	courses map[standingstypes.CourseName]standingstypes.Course
}

func (f fakeCatalog) Course(name standingstypes.CourseName) (standingstypes.Course, error) {
	course, ok := f.courses[name]
	if !ok {
		return standingstypes.Course{}, fmt.Errorf("unknown course: %q", name)
	}
	return course, nil
}

// flatCourse is a par-72 course with a neutral-slope mens tee, so a player's
// course handicap equals their rounded handicap index.
func flatCourse() standingstypes.Course {
	pars := make([]int, standingstypes.NumHoles)
	for i := range pars {
		pars[i] = 4
	}
	return standingstypes.Course{
		Name:     "Flat Meadows",
		HolePars: pars,
		MensTees: map[string]standingstypes.Tee{
			"white": {Par: 72, Rating: 72.0, Slope: 113},
		},
		WomensTees: map[string]standingstypes.Tee{
			"red": {Par: 72, Rating: 70.5, Slope: 120},
		},
	}
}
