package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/berkcan/schedbuilder/internal/app/models"
	"github.com/berkcan/schedbuilder/internal/pkg/apperrors"
)

// rawMeeting is one meeting entry in the catalogue file.
type rawMeeting struct {
	Days     string `json:"days"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// rawSection is one section record in the catalogue file. The scrape job
// writes the meetings array; the legacy flat days/start/end form produced by
// older catalogue dumps is still accepted and treated as a single meeting.
type rawSection struct {
	Section    string       `json:"section"`
	CRN        int          `json:"crn"`
	Title      string       `json:"title,omitempty"`
	Instructor string       `json:"instructor,omitempty"`
	Location   string       `json:"location,omitempty"`
	Meetings   []rawMeeting `json:"meetings,omitempty"`
	Days       string       `json:"days,omitempty"`
	Start      string       `json:"start,omitempty"`
	End        string       `json:"end,omitempty"`
}

// snapshot pairs a catalogue with its load time.
type snapshot struct {
	catalogue *models.Catalogue
	loadedAt  time.Time
}

// CatalogueRepository owns the catalogue file and the in-memory snapshot.
// Load replaces the snapshot wholesale via an atomic pointer swap, so
// readers always see a fully built catalogue and in-flight solves keep the
// snapshot they started with.
type CatalogueRepository struct {
	path    string
	current atomic.Pointer[snapshot]
}

// NewCatalogueRepository creates a repository for the given catalogue file.
// No catalogue is loaded until Load is called.
func NewCatalogueRepository(path string) *CatalogueRepository {
	return &CatalogueRepository{path: path}
}

// Load reads and validates the catalogue file and swaps it in as the
// current snapshot. On failure the previous snapshot stays in place.
func (r *CatalogueRepository) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return apperrors.NewMalformedCatalogueError(fmt.Sprintf("cannot read catalogue file %s: %v", r.path, err))
	}

	catalogue, err := ParseCatalogue(data)
	if err != nil {
		return err
	}

	r.current.Store(&snapshot{catalogue: catalogue, loadedAt: time.Now()})
	return nil
}

// Current returns the active catalogue snapshot.
func (r *CatalogueRepository) Current() (*models.Catalogue, error) {
	snap := r.current.Load()
	if snap == nil {
		return nil, apperrors.ErrCatalogueUnavailable
	}
	return snap.catalogue, nil
}

// LoadedAt returns when the active snapshot was loaded.
func (r *CatalogueRepository) LoadedAt() (time.Time, error) {
	snap := r.current.Load()
	if snap == nil {
		return time.Time{}, apperrors.ErrCatalogueUnavailable
	}
	return snap.loadedAt, nil
}

// Lookup resolves course codes against the active snapshot, preserving the
// request order. The first missing code fails the whole lookup.
func (r *CatalogueRepository) Lookup(codes []string) ([]models.Course, error) {
	catalogue, err := r.Current()
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(codes))
	for _, code := range codes {
		course, ok := catalogue.Course(code)
		if !ok {
			return nil, apperrors.NewUnknownCourseError(code)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// ParseCatalogue parses and validates raw catalogue JSON. Every time block
// must have a non-empty day set and a start strictly before its end;
// violations fail the whole load, identifying the offending section.
func ParseCatalogue(data []byte) (*models.Catalogue, error) {
	var raw map[string][]rawSection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewMalformedCatalogueError(fmt.Sprintf("invalid catalogue JSON: %v", err))
	}

	courses := make(map[string]models.Course, len(raw))
	for code, rawSections := range raw {
		sections := make([]models.Section, 0, len(rawSections))
		for _, rs := range rawSections {
			section, err := buildSection(code, rs)
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
		}
		courses[code] = models.Course{Code: code, Sections: sections}
	}

	return models.NewCatalogue(courses), nil
}

func buildSection(course string, rs rawSection) (models.Section, error) {
	meetings := rs.Meetings
	if len(meetings) == 0 && rs.Days != "" {
		meetings = []rawMeeting{{Days: rs.Days, Start: rs.Start, End: rs.End, Location: rs.Location}}
	}

	blocks := make([]models.TimeBlock, 0, len(meetings))
	location := rs.Location
	for _, m := range meetings {
		block, err := buildBlock(course, rs, m)
		if err != nil {
			return models.Section{}, err
		}
		blocks = append(blocks, block)
		if location == "" {
			location = m.Location
		}
	}

	return models.Section{
		Code:       rs.Section,
		CRN:        rs.CRN,
		Title:      rs.Title,
		Instructor: rs.Instructor,
		Location:   location,
		Blocks:     blocks,
	}, nil
}

func buildBlock(course string, rs rawSection, m rawMeeting) (models.TimeBlock, error) {
	badSection := func(format string, args ...interface{}) error {
		prefix := fmt.Sprintf("course %s section %s (crn %d): ", course, rs.Section, rs.CRN)
		return apperrors.NewMalformedCatalogueError(prefix + fmt.Sprintf(format, args...))
	}

	days, err := models.ParseDays(m.Days)
	if err != nil {
		return models.TimeBlock{}, badSection("%v", err)
	}
	if days.IsEmpty() {
		return models.TimeBlock{}, badSection("meeting has an empty day set")
	}

	start, err := models.ParseClock(m.Start)
	if err != nil {
		return models.TimeBlock{}, badSection("%v", err)
	}
	end, err := models.ParseClock(m.End)
	if err != nil {
		return models.TimeBlock{}, badSection("%v", err)
	}
	if start >= end {
		return models.TimeBlock{}, badSection("meeting start %s is not before end %s", m.Start, m.End)
	}

	return models.TimeBlock{Days: days, Start: start, End: end}, nil
}
