package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/app/services"
	"github.com/berkcan/schedbuilder/internal/middleware"
)

// CatalogueController handles catalogue browsing and refresh operations
type CatalogueController struct {
	catalogueService services.CatalogueService
}

// NewCatalogueController creates a new CatalogueController
func NewCatalogueController(catalogueService services.CatalogueService) *CatalogueController {
	return &CatalogueController{
		catalogueService: catalogueService,
	}
}

// GetAllCourses lists every course in the catalogue
// @Summary List catalogue courses
// @Description Returns every course code in the catalogue with its section count
// @Tags catalogue
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Catalogue not loaded"
// @Router /courses [get]
func (c *CatalogueController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.catalogueService.Courses()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, dto.CourseSummary{
			Code:         course.Code,
			SectionCount: len(course.Sections),
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses: summaries,
		Total:   len(summaries),
	}, ""))
}

// GetCourseByCode retrieves one course with all of its sections
// @Summary Get course by code
// @Description Returns a course and every offered section with meeting times
// @Tags catalogue
// @Produce json
// @Param code path string true "Course code" example(CS280)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Unknown course code"
// @Failure 503 {object} dto.ErrorResponse "Catalogue not loaded"
// @Router /courses/{code} [get]
func (c *CatalogueController) GetCourseByCode(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))

	course, err := c.catalogueService.Course(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sections := make([]dto.SectionData, 0, len(course.Sections))
	for _, section := range course.Sections {
		sections = append(sections, newSectionData(course.Code, section))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseResponse{
		Code:     course.Code,
		Sections: sections,
	}, ""))
}

// GetStatus reports the size and load time of the active catalogue
// @Summary Catalogue status
// @Description Returns course/section counts and the snapshot load time
// @Tags catalogue
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CatalogueStatus} "Status retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Catalogue not loaded"
// @Router /catalogue/status [get]
func (c *CatalogueController) GetStatus(ctx *gin.Context) {
	status, err := c.catalogueService.Status()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogueStatus{
		Courses:  status.Courses,
		Sections: status.Sections,
		LoadedAt: status.LoadedAt,
	}, ""))
}

// RefreshCatalogue reloads the catalogue file
// @Summary Refresh the catalogue
// @Description Re-reads the catalogue file written by the scrape job and swaps it in atomically
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CatalogueStatus} "Catalogue refreshed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Catalogue file is malformed"
// @Router /admin/catalogue/refresh [post]
func (c *CatalogueController) RefreshCatalogue(ctx *gin.Context) {
	if err := c.catalogueService.Refresh(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status, err := c.catalogueService.Status()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogueStatus{
		Courses:  status.Courses,
		Sections: status.Sections,
		LoadedAt: status.LoadedAt,
	}, "Catalogue refreshed"))
}
