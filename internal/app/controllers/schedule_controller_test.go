package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/app/repositories"
	"github.com/berkcan/schedbuilder/internal/app/services"
)

const testCatalogue = `{
  "CS280": [
    {"section": "002", "crn": 11111, "title": "Programming Lang Concepts", "meetings": [
      {"days": "MW", "start": "10:00", "end": "11:20", "location": "KUPF 202"}
    ]},
    {"section": "004", "crn": 11112, "meetings": [
      {"days": "TR", "start": "10:00", "end": "11:20"}
    ]}
  ],
  "CS241": [
    {"section": "002", "crn": 22222, "meetings": [
      {"days": "MW", "start": "10:30", "end": "11:50"}
    ]}
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, []byte(testCatalogue), 0644); err != nil {
		t.Fatalf("write catalogue: %v", err)
	}
	repo := repositories.NewCatalogueRepository(path)
	if err := repo.Load(); err != nil {
		t.Fatalf("load catalogue: %v", err)
	}

	planner, err := services.NewPlannerService(repo, 50, 16, zerolog.Nop())
	if err != nil {
		t.Fatalf("create planner: %v", err)
	}
	catalogueService := services.NewCatalogueService(repo, zerolog.Nop())

	scheduleController := NewScheduleController(planner)
	catalogueController := NewCatalogueController(catalogueService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/schedules/solve", scheduleController.Solve)
	v1.GET("/courses", catalogueController.GetAllCourses)
	v1.GET("/courses/:code", catalogueController.GetCourseByCode)
	return router
}

func postSolve(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/solve", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSolve(t *testing.T, w *httptest.ResponseRecorder) dto.SolveResponse {
	t.Helper()
	var envelope struct {
		Success bool              `json:"success"`
		Data    dto.SolveResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error response: %v\n%s", err, w.Body.String())
	}
	if envelope.Success || envelope.Error == nil {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
	return envelope.Error
}

func TestSolveEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postSolve(t, router, `{"courses": ["cs280", "CS241"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decodeSolve(t, w)
	// CS280-002 (MW 10:00-11:20) clashes with CS241-002 (MW 10:30-11:50);
	// only the TR section combination survives.
	if resp.Count != 1 || len(resp.Schedules) != 1 {
		t.Fatalf("expected 1 schedule, got %+v", resp)
	}
	if resp.Truncated {
		t.Errorf("expected full enumeration")
	}

	schedule := resp.Schedules[0]
	if len(schedule.Sections) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(schedule.Sections))
	}
	// Course codes are upper-cased before lookup and echo back normalized.
	if schedule.Sections[0].Course != "CS280" || schedule.Sections[0].Section != "004" {
		t.Errorf("first placement = %+v", schedule.Sections[0])
	}
	if m := schedule.Sections[1].Meetings[0]; m.Days != "MW" || m.Start != "10:30" || m.End != "11:50" {
		t.Errorf("meeting wire format = %+v", m)
	}
}

func TestSolveEndpointEmptySelection(t *testing.T) {
	router := newTestRouter(t)

	w := postSolve(t, router, `{"courses": []}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeSolve(t, w)
	if resp.Count != 1 || len(resp.Schedules) != 1 || len(resp.Schedules[0].Sections) != 0 {
		t.Errorf("empty selection should yield one empty schedule, got %+v", resp)
	}
}

func TestSolveEndpointUnknownCourse(t *testing.T) {
	router := newTestRouter(t)

	w := postSolve(t, router, `{"courses": ["CS280", "CS999"]}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	detail := decodeError(t, w)
	if detail.Code != dto.ErrorCodeUnknownCourse {
		t.Errorf("error code = %s, want %s", detail.Code, dto.ErrorCodeUnknownCourse)
	}
}

func TestSolveEndpointBadFilters(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad day letter", `{"courses": ["CS280"], "days": "MXW"}`, "days"},
		{"bad earliest", `{"courses": ["CS280"], "earliest": "25:00"}`, "earliest"},
		{"bad latest", `{"courses": ["CS280"], "latest": "noon"}`, "latest"},
		{"empty course code", `{"courses": [" "]}`, "courses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postSolve(t, router, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			detail := decodeError(t, w)
			if detail.Code != dto.ErrorCodeValidationFailed {
				t.Errorf("error code = %s, want %s", detail.Code, dto.ErrorCodeValidationFailed)
			}
			if detail.Field != tt.field {
				t.Errorf("error field = %q, want %q", detail.Field, tt.field)
			}
		})
	}

	// Negative limit is rejected by request binding.
	w := postSolve(t, router, `{"courses": ["CS280"], "limit": -1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative limit: status = %d", w.Code)
	}
	// Malformed JSON body.
	w = postSolve(t, router, `{"courses": [`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d", w.Code)
	}
}

func TestCourseEndpoints(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listEnvelope struct {
		Data dto.CourseListResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listEnvelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listEnvelope.Data.Total != 2 {
		t.Errorf("total = %d, want 2", listEnvelope.Data.Total)
	}
	// Sorted by code.
	if listEnvelope.Data.Courses[0].Code != "CS241" {
		t.Errorf("first course = %s, want CS241", listEnvelope.Data.Courses[0].Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses/cs280", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var courseEnvelope struct {
		Data dto.CourseResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &courseEnvelope); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	if courseEnvelope.Data.Code != "CS280" || len(courseEnvelope.Data.Sections) != 2 {
		t.Errorf("course = %+v", courseEnvelope.Data)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses/NOPE1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown course status = %d", w.Code)
	}
}
