package courseservice

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	standingstypes "github.com/fairway-club/standings/app/modules/standings/domain"
)

// Column headers required in course data files.
const (
	colTeeName = "Tee Name"
	colGender  = "Gender"
	colPar     = "Par"
	colRating  = "Course Rating"
	colSlope   = "Slope Rating"
)

// ConverterService turns tab-delimited course data files into JSON and YAML
// course records for the catalog.
type ConverterService struct {
	logger *slog.Logger
}

// NewConverterService creates a new ConverterService.
func NewConverterService(logger *slog.Logger) *ConverterService {
	return &ConverterService{logger: logger}
}

// ConvertDir converts every .txt file in dir, writing one JSON and one YAML
// file per course into the output directories.
func (c *ConverterService) ConvertDir(dir, jsonDir, yamlDir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read course data dir: %w", err)
	}

	converted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		if _, err := c.ConvertFile(filepath.Join(dir, entry.Name()), jsonDir, yamlDir); err != nil {
			return err
		}
		converted++
	}

	c.logger.Info("Course data converted",
		slog.String("dir", dir),
		slog.Int("courses", converted),
	)
	return nil
}

// ConvertFile converts one tab-delimited course file. The course name is the
// file name without its extension.
func (c *ConverterService) ConvertFile(path, jsonDir, yamlDir string) (standingstypes.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return standingstypes.Course{}, fmt.Errorf("failed to open course file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	course, err := c.parseCourseData(name, f)
	if err != nil {
		return standingstypes.Course{}, fmt.Errorf("course file %q: %w", path, err)
	}

	if err := writeCourseJSON(course, jsonDir); err != nil {
		return standingstypes.Course{}, err
	}
	if err := writeCourseYAML(course, yamlDir); err != nil {
		return standingstypes.Course{}, err
	}

	c.logger.Info("Converted course",
		slog.String("course", string(course.Name)),
		slog.Int("mens_tees", len(course.MensTees)),
		slog.Int("womens_tees", len(course.WomensTees)),
	)
	return course, nil
}

// parseCourseData reads the tab-delimited tee table. Tee names are
// lowercased; rows with a gender other than M or F are dropped with a
// warning.
func (c *ConverterService) parseCourseData(name string, r io.Reader) (standingstypes.Course, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return standingstypes.Course{}, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.TrimSpace(col)] = i
	}
	for _, required := range []string{colTeeName, colGender, colPar, colRating, colSlope} {
		if _, ok := cols[required]; !ok {
			return standingstypes.Course{}, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	course := standingstypes.Course{
		Name:       standingstypes.CourseName(name),
		MensTees:   make(map[string]standingstypes.Tee),
		WomensTees: make(map[string]standingstypes.Tee),
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return standingstypes.Course{}, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		teeName := strings.ToLower(strings.TrimSpace(record[cols[colTeeName]]))
		if teeName == "" {
			continue
		}

		par, err := strconv.Atoi(strings.TrimSpace(record[cols[colPar]]))
		if err != nil {
			return standingstypes.Course{}, fmt.Errorf("line %d: invalid par: %w", line, err)
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(record[cols[colRating]]), 64)
		if err != nil {
			return standingstypes.Course{}, fmt.Errorf("line %d: invalid course rating: %w", line, err)
		}
		slope, err := strconv.Atoi(strings.TrimSpace(record[cols[colSlope]]))
		if err != nil {
			return standingstypes.Course{}, fmt.Errorf("line %d: invalid slope rating: %w", line, err)
		}

		tee := standingstypes.Tee{Par: par, Rating: rating, Slope: slope}
		switch gender := strings.ToUpper(strings.TrimSpace(record[cols[colGender]])); gender {
		case "M":
			course.MensTees[teeName] = tee
		case "F":
			course.WomensTees[teeName] = tee
		default:
			c.logger.Warn("Dropping tee with unrecognized gender code",
				slog.String("course", name),
				slog.String("tee", teeName),
				slog.String("gender", gender),
			)
		}
	}

	if len(course.MensTees) == 0 && len(course.WomensTees) == 0 {
		return standingstypes.Course{}, ErrNoTees
	}
	return course, nil
}

func writeCourseJSON(course standingstypes.Course, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create JSON output dir: %w", err)
	}
	data, err := json.MarshalIndent(course, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal course %q: %w", course.Name, err)
	}
	path := filepath.Join(dir, courseFileName(course.Name)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func writeCourseYAML(course standingstypes.Course, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create YAML output dir: %w", err)
	}
	data, err := yaml.Marshal(course)
	if err != nil {
		return fmt.Errorf("failed to marshal course %q: %w", course.Name, err)
	}
	path := filepath.Join(dir, courseFileName(course.Name)+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// courseFileName normalizes a course name for use as a file name.
func courseFileName(name standingstypes.CourseName) string {
	return strings.ReplaceAll(strings.ToLower(string(name)), " ", "_")
}
