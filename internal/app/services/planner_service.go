package services

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/berkcan/schedbuilder/internal/app/models"
	"github.com/berkcan/schedbuilder/internal/app/repositories"
)

// SolveOptions carries the optional hard filters and the result limit for a
// solve. Zero values mean "unrestricted": no day filter, no earliest bound,
// no latest bound, server default limit.
type SolveOptions struct {
	Days     models.DaySet
	Earliest int
	Latest   int
	Limit    int
}

// SolveResult is the outcome of one solve: the schedules in discovery order
// and whether the limit cut the search short.
type SolveResult struct {
	Schedules []models.Schedule
	Truncated bool
}

// PlannerService finds clash-free schedules for a course selection
type PlannerService interface {
	Solve(courseCodes []string, opts SolveOptions) (*SolveResult, error)
	MaxSchedules() int
}

type plannerService struct {
	catalogueRepo *repositories.CatalogueRepository
	maxSchedules  int
	cache         *lru.Cache[string, *SolveResult]
	logger        zerolog.Logger
}

// NewPlannerService creates a new PlannerService. maxSchedules bounds every
// solve; cacheSize is the number of solve results kept in the LRU cache.
func NewPlannerService(catalogueRepo *repositories.CatalogueRepository, maxSchedules, cacheSize int, logger zerolog.Logger) (PlannerService, error) {
	cache, err := lru.New[string, *SolveResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create solve cache: %w", err)
	}
	return &plannerService{
		catalogueRepo: catalogueRepo,
		maxSchedules:  maxSchedules,
		cache:         cache,
		logger:        logger,
	}, nil
}

// MaxSchedules returns the server-side result cap.
func (s *plannerService) MaxSchedules() int {
	return s.maxSchedules
}

// Solve resolves the course codes against the current catalogue snapshot,
// applies the hard filters to each section pool and enumerates clash-free
// combinations. Results are cached per catalogue snapshot and request.
func (s *plannerService) Solve(courseCodes []string, opts SolveOptions) (*SolveResult, error) {
	limit := opts.Limit
	if limit <= 0 || limit > s.maxSchedules {
		limit = s.maxSchedules
	}

	loadedAt, err := s.catalogueRepo.LoadedAt()
	if err != nil {
		return nil, err
	}

	// Keyed by snapshot load time, so entries for a replaced catalogue can
	// never be served again and simply age out of the LRU.
	key := cacheKey(loadedAt.UnixNano(), courseCodes, opts, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	courses, err := s.catalogueRepo.Lookup(courseCodes)
	if err != nil {
		return nil, err
	}

	pools := make([]models.Course, len(courses))
	for i, course := range courses {
		pools[i] = filterSections(course, opts)
	}

	schedules, truncated := Enumerate(pools, limit)
	result := &SolveResult{Schedules: schedules, Truncated: truncated}

	s.logger.Debug().
		Strs("courses", courseCodes).
		Int("limit", limit).
		Int("found", len(schedules)).
		Bool("truncated", truncated).
		Msg("Solve completed")

	s.cache.Add(key, result)
	return result, nil
}

// filterSections drops sections with any meeting outside the allowed days
// or time window. Sections without meetings always pass.
func filterSections(course models.Course, opts SolveOptions) models.Course {
	kept := make([]models.Section, 0, len(course.Sections))
	for _, section := range course.Sections {
		if sectionAllowed(section, opts) {
			kept = append(kept, section)
		}
	}
	return models.Course{Code: course.Code, Sections: kept}
}

func sectionAllowed(section models.Section, opts SolveOptions) bool {
	for _, block := range section.Blocks {
		if !opts.Days.IsEmpty() && !block.Days.SubsetOf(opts.Days) {
			return false
		}
		if block.Start < opts.Earliest {
			return false
		}
		if opts.Latest > 0 && block.End > opts.Latest {
			return false
		}
	}
	return true
}

// Enumerate walks the combination space of one section per course with
// depth-first backtracking: courses in input order, sections in catalogue
// order, so output order is deterministic. Candidate sections are checked
// against every already-committed time block before recursing, which prunes
// any invalid prefix immediately.
//
// It returns at most limit schedules. Truncated is true only when the
// search was cut off with combinations still unexplored; if the space is
// exhausted at exactly limit schedules the flag stays false, which is why
// the search stops at the moment schedule limit+1 would be emitted rather
// than at emission of the limit-th.
func Enumerate(courses []models.Course, limit int) ([]models.Schedule, bool) {
	// No courses selected: the empty schedule is the one valid answer.
	if len(courses) == 0 {
		return []models.Schedule{{Placements: []models.Placement{}}}, false
	}

	// A course with no candidate sections can never be satisfied.
	for _, course := range courses {
		if len(course.Sections) == 0 {
			return nil, false
		}
	}

	var (
		results   []models.Schedule
		truncated bool
		chosen    = make([]models.Placement, 0, len(courses))
		committed = make([]models.TimeBlock, 0, 2*len(courses))
	)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(courses) {
			if len(results) == limit {
				truncated = true
				return
			}
			placements := make([]models.Placement, len(chosen))
			copy(placements, chosen)
			results = append(results, models.Schedule{Placements: placements})
			return
		}

		course := courses[depth]
		for _, section := range course.Sections {
			if clashesCommitted(section, committed) {
				continue
			}

			chosen = append(chosen, models.Placement{CourseCode: course.Code, Section: section})
			committed = append(committed, section.Blocks...)

			walk(depth + 1)

			committed = committed[:len(committed)-len(section.Blocks)]
			chosen = chosen[:len(chosen)-1]

			if truncated {
				return
			}
		}
	}
	walk(0)

	return results, truncated
}

// clashesCommitted reports whether any meeting of the candidate section
// overlaps a block already committed by the partial assignment.
func clashesCommitted(section models.Section, committed []models.TimeBlock) bool {
	for _, candidate := range section.Blocks {
		for _, block := range committed {
			if candidate.Overlaps(block) {
				return true
			}
		}
	}
	return false
}

func cacheKey(snapshot int64, courseCodes []string, opts SolveOptions, limit int) string {
	return fmt.Sprintf("%d|%s|%s|%d|%d|%d",
		snapshot,
		strings.Join(courseCodes, ","),
		opts.Days,
		opts.Earliest,
		opts.Latest,
		limit,
	)
}
