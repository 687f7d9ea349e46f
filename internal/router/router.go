package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	courseHandler *handler.CourseHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/cadastrar", authHandler.Register)
	api.POST("/token", authHandler.Token)

	// Secured routes (require a bearer token)
	secured := api.Group("", jwtService.Middleware())

	secured.GET("/check", authHandler.Check)
	secured.POST("/inscrever", courseHandler.Enroll)
	secured.GET("/cursos", courseHandler.ListCourses)
	secured.GET("/cursos/meus", courseHandler.ListMine)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HTTPErrorHandler renders framework errors (unknown routes, 401s from the
// bearer middleware, recovered panics) with the API's error body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Erro interno do servidor"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	}
	if status >= http.StatusInternalServerError {
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, apperrors.ErrorResponse{Error: true, Msg: msg})
	}
	if err != nil {
		log.Printf("write error response: %v", err)
	}
}
