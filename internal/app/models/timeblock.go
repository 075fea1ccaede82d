package models

import (
	"fmt"
	"strings"
)

// DaySet is a bit set of weekdays using the NJIT day-letter alphabet
// (U=Sunday, M, T, W, R=Thursday, F, S=Saturday).
type DaySet uint8

const (
	Sunday DaySet = 1 << iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// dayLetters holds the letters in week order, matching the bit order above.
var dayLetters = []struct {
	letter byte
	day    DaySet
}{
	{'U', Sunday},
	{'M', Monday},
	{'T', Tuesday},
	{'W', Wednesday},
	{'R', Thursday},
	{'F', Friday},
	{'S', Saturday},
}

// ParseDays converts a day-letter string such as "MWR" into a DaySet.
// Letters are case-insensitive; duplicates are allowed and collapse.
func ParseDays(s string) (DaySet, error) {
	var days DaySet
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		matched := false
		for _, dl := range dayLetters {
			if dl.letter == c {
				days |= dl.day
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("unknown day letter %q in %q", string(s[i]), s)
		}
	}
	return days, nil
}

// String renders the set in week order, e.g. "MWR".
func (d DaySet) String() string {
	var b strings.Builder
	for _, dl := range dayLetters {
		if d&dl.day != 0 {
			b.WriteByte(dl.letter)
		}
	}
	return b.String()
}

// Intersects reports whether the two sets share at least one weekday.
func (d DaySet) Intersects(other DaySet) bool {
	return d&other != 0
}

// SubsetOf reports whether every day in d is also in other.
func (d DaySet) SubsetOf(other DaySet) bool {
	return d&^other == 0
}

// IsEmpty reports whether the set contains no days.
func (d DaySet) IsEmpty() bool {
	return d == 0
}

// ParseClock converts a 24-hour "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeBlock is one weekly recurring meeting interval of a section.
// Start and End are minutes since midnight, with Start < End enforced at
// catalogue-load time. Values are never mutated once built.
type TimeBlock struct {
	Days  DaySet
	Start int
	End   int
}

// Overlaps reports whether the two blocks clash: they share a weekday and
// their half-open time ranges intersect. Back-to-back blocks (one ending
// exactly when the other starts) do not clash.
func (t TimeBlock) Overlaps(other TimeBlock) bool {
	return t.Days.Intersects(other.Days) && t.Start < other.End && other.Start < t.End
}

// String renders the block as "MW 10:00-11:20".
func (t TimeBlock) String() string {
	return fmt.Sprintf("%s %s-%s", t.Days, FormatClock(t.Start), FormatClock(t.End))
}
