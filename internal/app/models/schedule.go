package models

// Placement is one chosen section for one requested course.
type Placement struct {
	CourseCode string
	Section    Section
}

// Schedule is one full assignment of exactly one section per requested
// course, in the same order as the request. Schedules are built transiently
// per solve call and discarded once serialized.
type Schedule struct {
	Placements []Placement
}

// Valid reports whether every pair of placed sections is conflict-free.
// The planner guarantees this for its output; the check exists as an
// independent invariant for tests and debugging.
func (s Schedule) Valid() bool {
	for i := 0; i < len(s.Placements); i++ {
		for j := i + 1; j < len(s.Placements); j++ {
			if s.Placements[i].Section.ConflictsWith(s.Placements[j].Section) {
				return false
			}
		}
	}
	return true
}
