package courseservice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// Catalog is the in-memory course reference table, keyed by course name.
// Loaded once per run and never mutated afterwards.
type Catalog struct {
	courses map[standingstypes.CourseName]standingstypes.Course
}

// LoadCatalog reads every .json, .yaml, and .yml course file in dir.
func LoadCatalog(dir string, logger *slog.Logger) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read course catalog dir: %w", err)
	}

	catalog := &Catalog{courses: make(map[standingstypes.CourseName]standingstypes.Course)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		course, err := loadCourseFile(path, ext)
		if err != nil {
			return nil, err
		}
		if err := course.Validate(); err != nil {
			return nil, fmt.Errorf("course file %q: %w", path, err)
		}
		catalog.courses[course.Name] = course
	}

	logger.Info("Course catalog loaded",
		slog.String("dir", dir),
		slog.Int("courses", len(catalog.courses)),
	)
	return catalog, nil
}

func loadCourseFile(path, ext string) (standingstypes.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return standingstypes.Course{}, fmt.Errorf("failed to read course file %q: %w", path, err)
	}

	var course standingstypes.Course
	if ext == ".json" {
		if err := json.Unmarshal(data, &course); err != nil {
			return standingstypes.Course{}, fmt.Errorf("failed to decode course file %q: %w", path, err)
		}
		return course, nil
	}
	if err := yaml.Unmarshal(data, &course); err != nil {
		return standingstypes.Course{}, fmt.Errorf("failed to decode course file %q: %w", path, err)
	}
	return course, nil
}

// Course resolves a course by name. Unknown courses are an error naming the
// missing reference, never a silent default.
func (c *Catalog) Course(name standingstypes.CourseName) (standingstypes.Course, error) {
	course, ok := c.courses[name]
	if !ok {
		return standingstypes.Course{}, fmt.Errorf("%w: %q", ErrUnknownCourse, name)
	}
	return course, nil
}

// Names lists the catalog's course names, sorted.
func (c *Catalog) Names() []standingstypes.CourseName {
	names := make([]standingstypes.CourseName, 0, len(c.courses))
	for name := range c.courses {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
