package plan

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance for course specifications.
var validate = validator.New()

// Lecture is one unit of course material with its workload score.
type Lecture struct {
	Title      string `yaml:"title" json:"title" validate:"required"`
	Complexity int64  `yaml:"complexity" json:"complexity"`
}

// CourseSpec is the top-level course configuration.
// Loaded from YAML via LoadCourseSpec(path).
// Presence and shape rules live in validate tags; numeric bounds are checked
// by hand in Validate so failures carry the offending value.
type CourseSpec struct {
	Version  string    `yaml:"version,omitempty" json:"version,omitempty"`
	Course   string    `yaml:"course" json:"course" validate:"required"`
	Days     int       `yaml:"days,omitempty" json:"days,omitempty"`
	Lectures []Lecture `yaml:"lectures" json:"lectures" validate:"required,min=1,dive"`
}

// validVersions maps accepted course spec versions. Empty defaults to "1".
var validVersions = map[string]bool{
	"":  true,
	"1": true,
}

// LoadCourseSpec reads and parses a YAML course specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadCourseSpec(path string) (*CourseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course spec: %w", err)
	}
	var spec CourseSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing course spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid. Tag-level rules run
// through the shared validator; the day-count bound depends on the lecture
// count and is checked by hand.
func (s *CourseSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unknown course spec version %q; valid: 1", s.Version)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("course spec invalid: %w", err)
	}
	for i, l := range s.Lectures {
		if l.Complexity < 0 {
			return fmt.Errorf("lecture[%d] %q: complexity must be non-negative, got %d", i, l.Title, l.Complexity)
		}
	}
	if s.Days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", s.Days)
	}
	if s.Days > len(s.Lectures) {
		return fmt.Errorf("days is %d but the course has only %d lectures", s.Days, len(s.Lectures))
	}
	return nil
}

// Complexities projects the lecture sequence the solver consumes,
// preserving course order.
func (s *CourseSpec) Complexities() []int64 {
	out := make([]int64, len(s.Lectures))
	for i, l := range s.Lectures {
		out[i] = l.Complexity
	}
	return out
}
