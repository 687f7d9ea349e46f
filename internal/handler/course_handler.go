package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/model"
	"programador/internal/service"
)

// CourseHandler serves the course catalog and enrollments.
type CourseHandler struct {
	courseService     service.CourseService
	enrollmentService service.EnrollmentService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService, enrollmentService service.EnrollmentService) *CourseHandler {
	return &CourseHandler{
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// EnrollRequest represents an enrollment request.
type EnrollRequest struct {
	CourseCode string `json:"codigo_curso" validate:"required"`
}

func toCourseResponses(courses []model.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, CourseResponse{Code: course.Code, Name: course.Name})
	}
	return out
}

// Enroll godoc
// @Summary Enroll the token's user in a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Course code"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /inscrever [post]
func (h *CourseHandler) Enroll(c echo.Context) error {
	var req EnrollRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.Validation(service.MsgCourseCodeMissing))
	}

	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken)
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request().Context(), claims, req.CourseCode)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Msg: service.EnrolledMessage(enrollment.Course)})
}

// ListCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CourseResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cursos [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toCourseResponses(courses))
}

// ListMine godoc
// @Summary List the courses the token's user is enrolled in
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CourseResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cursos/meus [get]
func (h *CourseHandler) ListMine(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken)
	}

	courses, err := h.enrollmentService.ListMine(c.Request().Context(), claims)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toCourseResponses(courses))
}
