package models

import "testing"

func TestParseDays(t *testing.T) {
	tests := []struct {
		input string
		want  DaySet
	}{
		{"M", Monday},
		{"MW", Monday | Wednesday},
		{"mwr", Monday | Wednesday | Thursday},
		{"UMTWRFS", Sunday | Monday | Tuesday | Wednesday | Thursday | Friday | Saturday},
		{"MM", Monday},
		{"", 0},
	}

	for _, tt := range tests {
		got, err := ParseDays(tt.input)
		if err != nil {
			t.Fatalf("ParseDays(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseDays(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseDays("MXW"); err == nil {
		t.Errorf("expected error for unknown day letter, got none")
	}
}

func TestDaySetString(t *testing.T) {
	days := Friday | Monday | Wednesday
	if got := days.String(); got != "MWF" {
		t.Errorf("expected week-ordered rendering MWF, got %s", got)
	}
}

func TestDaySetSubsetOf(t *testing.T) {
	weekdays := Monday | Tuesday | Wednesday | Thursday | Friday
	if !(Monday | Wednesday).SubsetOf(weekdays) {
		t.Errorf("MW should be a subset of MTWRF")
	}
	if (Monday | Saturday).SubsetOf(weekdays) {
		t.Errorf("MS should not be a subset of MTWRF")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"16:05", 965},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if back := FormatClock(got); back != tt.input {
			t.Errorf("FormatClock(%d) = %s, want %s", got, back, tt.input)
		}
	}

	for _, bad := range []string{"24:00", "12:60", "nine", "-1:30", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("expected error for %q, got none", bad)
		}
	}
}

func TestTimeBlockOverlaps(t *testing.T) {
	block := func(days DaySet, start, end int) TimeBlock {
		return TimeBlock{Days: days, Start: start, End: end}
	}

	tests := []struct {
		name string
		a, b TimeBlock
		want bool
	}{
		{"disjoint days same time", block(Monday, 540, 600), block(Tuesday, 540, 600), false},
		{"shared day overlapping", block(Monday|Wednesday, 540, 600), block(Monday, 570, 630), true},
		{"back to back", block(Monday, 540, 600), block(Monday, 600, 660), false},
		{"containment", block(Monday, 540, 720), block(Monday, 570, 600), true},
		{"identical", block(Friday, 540, 600), block(Friday, 540, 600), true},
		{"one minute overlap", block(Monday, 540, 601), block(Monday, 600, 660), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTimeBlockOverlapsAgainstBruteForce cross-checks the interval predicate
// against a minute-by-minute occupancy comparison over a grid of ranges.
func TestTimeBlockOverlapsAgainstBruteForce(t *testing.T) {
	bruteForce := func(a, b TimeBlock) bool {
		if !a.Days.Intersects(b.Days) {
			return false
		}
		for m := 0; m < 24*60; m++ {
			if m >= a.Start && m < a.End && m >= b.Start && m < b.End {
				return true
			}
		}
		return false
	}

	var blocks []TimeBlock
	for start := 480; start <= 600; start += 30 {
		for length := 30; length <= 120; length += 30 {
			blocks = append(blocks, TimeBlock{Days: Monday, Start: start, End: start + length})
			blocks = append(blocks, TimeBlock{Days: Tuesday | Thursday, Start: start, End: start + length})
		}
	}

	for _, a := range blocks {
		for _, b := range blocks {
			if got, want := a.Overlaps(b), bruteForce(a, b); got != want {
				t.Fatalf("Overlaps(%v, %v) = %v, brute force says %v", a, b, got, want)
			}
		}
	}
}

func TestSectionConflictsWith(t *testing.T) {
	lecture := Section{Code: "001", Blocks: []TimeBlock{
		{Days: Monday | Wednesday, Start: 600, End: 680},
	}}
	lab := Section{Code: "002", Blocks: []TimeBlock{
		{Days: Friday, Start: 600, End: 680},
		{Days: Wednesday, Start: 660, End: 720},
	}}
	online := Section{Code: "850"}

	if !lecture.ConflictsWith(lab) {
		t.Errorf("expected conflict via the Wednesday lab meeting")
	}
	if !lab.ConflictsWith(lecture) {
		t.Errorf("section conflict should be symmetric")
	}
	if lecture.ConflictsWith(online) || online.ConflictsWith(lecture) {
		t.Errorf("a section without meetings must never conflict")
	}
	if online.ConflictsWith(online) {
		t.Errorf("two empty sections must never conflict")
	}
}

func TestScheduleValid(t *testing.T) {
	a := Section{Code: "A1", Blocks: []TimeBlock{{Days: Monday, Start: 540, End: 600}}}
	b := Section{Code: "B1", Blocks: []TimeBlock{{Days: Monday, Start: 600, End: 660}}}
	c := Section{Code: "C1", Blocks: []TimeBlock{{Days: Monday, Start: 570, End: 630}}}

	good := Schedule{Placements: []Placement{
		{CourseCode: "A", Section: a},
		{CourseCode: "B", Section: b},
	}}
	if !good.Valid() {
		t.Errorf("back-to-back schedule should be valid")
	}

	bad := Schedule{Placements: []Placement{
		{CourseCode: "A", Section: a},
		{CourseCode: "C", Section: c},
	}}
	if bad.Valid() {
		t.Errorf("overlapping schedule should be invalid")
	}
}
