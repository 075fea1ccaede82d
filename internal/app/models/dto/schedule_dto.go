package dto

// MeetingData represents one weekly meeting of a section
type MeetingData struct {
	Days     string `json:"days" example:"MW"`
	Start    string `json:"start" example:"10:00"`
	End      string `json:"end" example:"11:20"`
	Location string `json:"location,omitempty" example:"KUPF 202"`
}

// SectionData represents one chosen section within a schedule
type SectionData struct {
	Course     string        `json:"course" example:"CS280"`
	Section    string        `json:"section" example:"002"`
	CRN        int           `json:"crn" example:"12345"`
	Title      string        `json:"title,omitempty" example:"Programming Lang Concepts"`
	Instructor string        `json:"instructor,omitempty" example:"J. Smith"`
	Meetings   []MeetingData `json:"meetings"`
}

// ScheduleData represents one full clash-free schedule
type ScheduleData struct {
	Sections []SectionData `json:"sections"`
}

// SolveRequest represents a schedule-solve request. Courses may be empty,
// in which case the single empty schedule is returned. The optional filters
// mirror the catalogue day-letter and HH:MM formats.
type SolveRequest struct {
	Courses  []string `json:"courses" example:"CS280,CS241,MATH333"`
	Days     string   `json:"days,omitempty" example:"MTWRF"`
	Earliest string   `json:"earliest,omitempty" example:"09:00"`
	Latest   string   `json:"latest,omitempty" example:"16:00"`
	Limit    int      `json:"limit,omitempty" binding:"omitempty,gt=0" example:"50"`
}

// SolveResponse represents the result of a schedule-solve request
type SolveResponse struct {
	Schedules []ScheduleData `json:"schedules"`
	Count     int            `json:"count" example:"2"`
	Truncated bool           `json:"truncated" example:"false"`
}
