package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "programador/internal/errors"
)

const msgJSONMissing = "JSON não identificado na requisição"

// CourseResponse is the public shape of a course.
type CourseResponse struct {
	Code string `json:"codigo"`
	Name string `json:"nome"`
}

// bindJSON rejects bodies that are not declared as JSON, then binds.
func bindJSON(c echo.Context, dst interface{}) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return apperrors.Validation(msgJSONMissing)
	}
	if err := c.Bind(dst); err != nil {
		return apperrors.Validation(msgJSONMissing)
	}
	return nil
}

// respondError renders err as {"error": true, "msg": ...}.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
