package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/berkcan/schedbuilder/internal/pkg/apperrors"
)

const validCatalogue = `{
  "CS100": [
    {"section": "001", "crn": 10001, "title": "Intro", "instructor": "Doe", "meetings": [
      {"days": "MW", "start": "10:00", "end": "11:20", "location": "KUPF 100"},
      {"days": "F", "start": "13:00", "end": "14:00"}
    ]},
    {"section": "850", "crn": 10002, "meetings": []}
  ],
  "MATH111": [
    {"section": "004", "crn": 20001, "days": "TR", "start": "08:30", "end": "09:50"}
  ]
}`

func TestParseCatalogue(t *testing.T) {
	catalogue, err := ParseCatalogue([]byte(validCatalogue))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if catalogue.Len() != 2 {
		t.Errorf("expected 2 courses, got %d", catalogue.Len())
	}
	if catalogue.SectionCount() != 3 {
		t.Errorf("expected 3 sections, got %d", catalogue.SectionCount())
	}

	cs, ok := catalogue.Course("CS100")
	if !ok {
		t.Fatalf("CS100 missing")
	}
	if len(cs.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(cs.Sections))
	}
	lecture := cs.Sections[0]
	if lecture.CRN != 10001 || lecture.Instructor != "Doe" {
		t.Errorf("section metadata not carried over: %+v", lecture)
	}
	if len(lecture.Blocks) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(lecture.Blocks))
	}
	if lecture.Location != "KUPF 100" {
		t.Errorf("location = %q, want KUPF 100", lecture.Location)
	}
	if online := cs.Sections[1]; len(online.Blocks) != 0 {
		t.Errorf("online section should have no meetings, got %d", len(online.Blocks))
	}

	// Legacy flat form becomes a single meeting.
	math, _ := catalogue.Course("MATH111")
	if len(math.Sections[0].Blocks) != 1 {
		t.Fatalf("legacy section should yield one meeting, got %d", len(math.Sections[0].Blocks))
	}
	if got := math.Sections[0].Blocks[0].Start; got != 8*60+30 {
		t.Errorf("legacy meeting start = %d, want 510", got)
	}
}

func TestParseCatalogueMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		mention string
	}{
		{
			"not json",
			`define({})`,
			"invalid catalogue JSON",
		},
		{
			"bad day letter",
			`{"CS1": [{"section": "001", "crn": 1, "meetings": [{"days": "MX", "start": "10:00", "end": "11:00"}]}]}`,
			"course CS1 section 001 (crn 1)",
		},
		{
			"empty day set",
			`{"CS1": [{"section": "001", "crn": 1, "meetings": [{"days": "", "start": "10:00", "end": "11:00"}]}]}`,
			"empty day set",
		},
		{
			"unparseable time",
			`{"CS1": [{"section": "001", "crn": 1, "meetings": [{"days": "M", "start": "25:00", "end": "26:00"}]}]}`,
			"course CS1 section 001",
		},
		{
			"start not before end",
			`{"CS1": [{"section": "001", "crn": 1, "meetings": [{"days": "M", "start": "11:00", "end": "10:00"}]}]}`,
			"not before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalogue([]byte(tt.payload))
			if err == nil {
				t.Fatalf("expected parse error")
			}
			if !errors.Is(err, apperrors.ErrMalformedCatalogue) {
				t.Errorf("expected ErrMalformedCatalogue, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q should mention %q", err.Error(), tt.mention)
			}
		})
	}
}

func writeCatalogueFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write catalogue file: %v", err)
	}
	return path
}

func TestRepositoryBeforeLoad(t *testing.T) {
	repo := NewCatalogueRepository("missing.json")

	if _, err := repo.Current(); !errors.Is(err, apperrors.ErrCatalogueUnavailable) {
		t.Errorf("Current before Load should report unavailable, got %v", err)
	}
	if _, err := repo.LoadedAt(); !errors.Is(err, apperrors.ErrCatalogueUnavailable) {
		t.Errorf("LoadedAt before Load should report unavailable, got %v", err)
	}
	if _, err := repo.Lookup([]string{"CS100"}); !errors.Is(err, apperrors.ErrCatalogueUnavailable) {
		t.Errorf("Lookup before Load should report unavailable, got %v", err)
	}
}

func TestRepositoryLookup(t *testing.T) {
	repo := NewCatalogueRepository(writeCatalogueFile(t, validCatalogue))
	if err := repo.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	courses, err := repo.Lookup([]string{"MATH111", "CS100"})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if courses[0].Code != "MATH111" || courses[1].Code != "CS100" {
		t.Errorf("lookup must preserve request order, got %s, %s", courses[0].Code, courses[1].Code)
	}

	_, err = repo.Lookup([]string{"CS100", "NOPE1"})
	if !errors.Is(err, apperrors.ErrUnknownCourse) {
		t.Fatalf("expected ErrUnknownCourse, got %v", err)
	}
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details["course"] != "NOPE1" {
		t.Errorf("error should identify NOPE1, got %v", custom.Details)
	}
}

func TestRepositoryReloadSwapsSnapshot(t *testing.T) {
	path := writeCatalogueFile(t, validCatalogue)
	repo := NewCatalogueRepository(path)
	if err := repo.Load(); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	firstLoad, _ := repo.LoadedAt()

	updated := `{"PHYS121": [{"section": "001", "crn": 1, "meetings": [{"days": "MWF", "start": "09:00", "end": "09:50"}]}]}`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("rewrite catalogue file: %v", err)
	}
	if err := repo.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	catalogue, err := repo.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if _, ok := catalogue.Course("CS100"); ok {
		t.Errorf("old course survived the swap")
	}
	if _, ok := catalogue.Course("PHYS121"); !ok {
		t.Errorf("new course missing after the swap")
	}
	secondLoad, _ := repo.LoadedAt()
	if !secondLoad.After(firstLoad) {
		t.Errorf("LoadedAt did not advance across a reload")
	}
}

func TestRepositoryLoadFailureKeepsSnapshot(t *testing.T) {
	path := writeCatalogueFile(t, validCatalogue)
	repo := NewCatalogueRepository(path)
	if err := repo.Load(); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("corrupt catalogue file: %v", err)
	}
	if err := repo.Load(); err == nil {
		t.Fatalf("expected reload to fail")
	}

	catalogue, err := repo.Current()
	if err != nil {
		t.Fatalf("previous snapshot should survive a failed reload: %v", err)
	}
	if _, ok := catalogue.Course("CS100"); !ok {
		t.Errorf("previous snapshot content lost after failed reload")
	}
}
