package models

// Course is a catalogue entry: a course code together with its candidate
// sections in catalogue order. Section order is preserved from the raw
// catalogue so that enumeration output stays deterministic.
type Course struct {
	Code     string
	Sections []Section
}
