package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/berkcan/schedbuilder/internal/app/models"
	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/app/services"
	"github.com/berkcan/schedbuilder/internal/middleware"
)

// ScheduleController handles schedule-solving operations
type ScheduleController struct {
	plannerService services.PlannerService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(plannerService services.PlannerService) *ScheduleController {
	return &ScheduleController{
		plannerService: plannerService,
	}
}

// Solve finds clash-free schedules for the selected courses
// @Summary Solve for clash-free schedules
// @Description Enumerates every combination of one section per selected course with no overlapping meetings, up to the configured limit. Optional day/time-window filters restrict the candidate sections.
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.SolveRequest true "Course selection and filters"
// @Success 200 {object} dto.APIResponse{data=dto.SolveResponse} "Schedules found (possibly none)"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Unknown course code"
// @Failure 503 {object} dto.ErrorResponse "Catalogue not loaded"
// @Router /schedules/solve [post]
func (c *ScheduleController) Solve(ctx *gin.Context) {
	var req dto.SolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid solve request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	opts, errorDetail := buildSolveOptions(req)
	if errorDetail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	codes := make([]string, 0, len(req.Courses))
	for _, code := range req.Courses {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Empty course code").WithField("courses")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		codes = append(codes, code)
	}

	result, err := c.plannerService.Solve(codes, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newSolveResponse(result), ""))
}

// buildSolveOptions converts the request's wire-format filters into planner
// options, reporting the first malformed filter.
func buildSolveOptions(req dto.SolveRequest) (services.SolveOptions, *dto.ErrorDetail) {
	var opts services.SolveOptions
	opts.Limit = req.Limit

	if req.Days != "" {
		days, err := models.ParseDays(req.Days)
		if err != nil {
			return opts, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid day filter").
				WithField("days").WithDetails(err.Error())
		}
		opts.Days = days
	}

	if req.Earliest != "" {
		earliest, err := models.ParseClock(req.Earliest)
		if err != nil {
			return opts, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid earliest time").
				WithField("earliest").WithDetails(err.Error())
		}
		opts.Earliest = earliest
	}

	if req.Latest != "" {
		latest, err := models.ParseClock(req.Latest)
		if err != nil {
			return opts, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid latest time").
				WithField("latest").WithDetails(err.Error())
		}
		opts.Latest = latest
	}

	return opts, nil
}

func newSolveResponse(result *services.SolveResult) dto.SolveResponse {
	schedules := make([]dto.ScheduleData, 0, len(result.Schedules))
	for _, schedule := range result.Schedules {
		sections := make([]dto.SectionData, 0, len(schedule.Placements))
		for _, placement := range schedule.Placements {
			sections = append(sections, newSectionData(placement.CourseCode, placement.Section))
		}
		schedules = append(schedules, dto.ScheduleData{Sections: sections})
	}

	return dto.SolveResponse{
		Schedules: schedules,
		Count:     len(schedules),
		Truncated: result.Truncated,
	}
}

// newSectionData maps a section to its wire representation. Shared with the
// catalogue controller.
func newSectionData(course string, section models.Section) dto.SectionData {
	meetings := make([]dto.MeetingData, 0, len(section.Blocks))
	for _, block := range section.Blocks {
		meetings = append(meetings, dto.MeetingData{
			Days:     block.Days.String(),
			Start:    models.FormatClock(block.Start),
			End:      models.FormatClock(block.End),
			Location: section.Location,
		})
	}

	return dto.SectionData{
		Course:     course,
		Section:    section.Code,
		CRN:        section.CRN,
		Title:      section.Title,
		Instructor: section.Instructor,
		Meetings:   meetings,
	}
}
