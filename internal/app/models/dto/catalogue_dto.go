package dto

import "time"

// CourseSummary represents one course in the catalogue listing
type CourseSummary struct {
	Code         string `json:"code" example:"CS280"`
	SectionCount int    `json:"sectionCount" example:"5"`
}

// CourseListResponse represents the full catalogue listing
type CourseListResponse struct {
	Courses []CourseSummary `json:"courses"`
	Total   int             `json:"total" example:"1423"`
}

// CourseResponse represents one course with all of its sections
type CourseResponse struct {
	Code     string        `json:"code" example:"CS280"`
	Sections []SectionData `json:"sections"`
}

// CatalogueStatus describes the currently loaded catalogue snapshot
type CatalogueStatus struct {
	Courses  int       `json:"courses" example:"1423"`
	Sections int       `json:"sections" example:"5310"`
	LoadedAt time.Time `json:"loadedAt" example:"2025-04-23T12:01:05.123Z"`
}
