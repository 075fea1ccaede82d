package models

import "sort"

// Catalogue is the immutable in-memory course catalogue. It is built once
// per load and replaced wholesale on refresh; nothing mutates a Catalogue
// that is already visible to readers.
type Catalogue struct {
	courses map[string]Course
}

// NewCatalogue builds a Catalogue from a course map. The map is owned by the
// Catalogue after the call.
func NewCatalogue(courses map[string]Course) *Catalogue {
	if courses == nil {
		courses = map[string]Course{}
	}
	return &Catalogue{courses: courses}
}

// Course returns the course with the given code, if present.
func (c *Catalogue) Course(code string) (Course, bool) {
	course, ok := c.courses[code]
	return course, ok
}

// Codes returns every course code in the catalogue, sorted.
func (c *Catalogue) Codes() []string {
	codes := make([]string, 0, len(c.courses))
	for code := range c.courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of courses in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.courses)
}

// SectionCount returns the total number of sections across all courses.
func (c *Catalogue) SectionCount() int {
	total := 0
	for _, course := range c.courses {
		total += len(course.Sections)
	}
	return total
}
