package models

// Section is one offered instance of a course. A section may meet several
// times per week (one TimeBlock per meeting); a section with no blocks, such
// as an online-asynchronous offering, never conflicts with anything.
type Section struct {
	Code       string
	CRN        int
	Title      string
	Instructor string
	Location   string
	Blocks     []TimeBlock
}

// ConflictsWith reports whether any meeting of s clashes with any meeting of
// other.
func (s Section) ConflictsWith(other Section) bool {
	for _, a := range s.Blocks {
		for _, b := range other.Blocks {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
