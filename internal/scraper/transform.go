package scraper

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Meeting is one weekly meeting of a section in the catalogue file schema.
type Meeting struct {
	Days     string `json:"days"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// Section is one section record in the catalogue file schema.
type Section struct {
	Section    string    `json:"section"`
	CRN        int       `json:"crn"`
	Title      string    `json:"title,omitempty"`
	Instructor string    `json:"instructor,omitempty"`
	Meetings   []Meeting `json:"meetings"`
}

// Catalogue maps course codes to their section lists.
type Catalogue map[string][]Section

// dayLetters maps the data service day numbers (1=Sunday..7=Saturday) to
// the catalogue day-letter alphabet.
var dayLetters = map[int]string{
	1: "U", 2: "M", 3: "T", 4: "W", 5: "R", 6: "F", 7: "S",
}

// Transform converts the data service's array-heavy structure into the
// catalogue schema. Each course record is an array whose first element is
// the course code and whose elements from index 3 on are section records;
// a section record carries [course, sectionID, crn, units, instructor,
// ...flags..., title, meetings]. Meetings sharing a time range collapse
// into one multi-day entry. Sections without meetings (online-async) are
// kept with an empty meetings list.
func Transform(jsonText []byte) (Catalogue, error) {
	var blob struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(jsonText, &blob); err != nil {
		return nil, fmt.Errorf("catalogue blob is not valid JSON: %w", err)
	}

	catalogue := Catalogue{}
	for _, rawCourse := range blob.Data {
		var courseArr []interface{}
		if err := json.Unmarshal(rawCourse, &courseArr); err != nil || len(courseArr) < 4 {
			continue
		}
		code, ok := courseArr[0].(string)
		if !ok || code == "" {
			continue
		}

		for _, rawSection := range courseArr[3:] {
			secArr, ok := rawSection.([]interface{})
			if !ok || len(secArr) < 7 {
				continue
			}
			section := buildRawSection(secArr)
			catalogue[code] = append(catalogue[code], section)
		}
	}

	return catalogue, nil
}

func buildRawSection(secArr []interface{}) Section {
	section := Section{
		Section:    asString(secArr[1]),
		CRN:        asInt(secArr[2]),
		Instructor: asString(secArr[4]),
		Title:      asString(secArr[len(secArr)-2]),
		Meetings:   []Meeting{},
	}

	meetings, _ := secArr[len(secArr)-1].([]interface{})
	for _, rawMeeting := range meetings {
		meetingArr, ok := rawMeeting.([]interface{})
		if ok && len(meetingArr) >= 4 {
			addMeeting(&section, meetingArr)
		}
	}
	return section
}

// addMeeting appends one meeting row, merging it into an existing entry
// when the time range matches (the same class held on several days).
func addMeeting(section *Section, meetingArr []interface{}) {
	day, okDay := dayLetters[asInt(meetingArr[0])]
	if !okDay {
		return
	}
	start := secondsToClock(asInt(meetingArr[1]))
	end := secondsToClock(asInt(meetingArr[2]))
	room := asString(meetingArr[3])

	for i := range section.Meetings {
		m := &section.Meetings[i]
		if m.Start == start && m.End == end {
			m.Days += day
			if m.Location == "" {
				m.Location = room
			}
			return
		}
	}

	section.Meetings = append(section.Meetings, Meeting{
		Days:     day,
		Start:    start,
		End:      end,
		Location: room,
	})
}

// secondsToClock converts seconds since midnight to "HH:MM".
func secondsToClock(seconds int) string {
	minutes := seconds / 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}
