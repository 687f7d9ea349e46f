package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/model"
	"programador/internal/repository"
)

const (
	MsgCourseCodeMissing = "Código de curso não informado"
	MsgCourseNotFound    = "O curso informado não existe."
	MsgUnknownUser       = "Erro ao identificar usuário logado."
)

// EnrollmentService authorizes enrollments from token claims.
type EnrollmentService interface {
	Enroll(ctx context.Context, claims *auth.Claims, courseCode string) (*model.Enrollment, error)
	ListMine(ctx context.Context, claims *auth.Claims) ([]model.Course, error)
}

type enrollmentService struct {
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
) EnrollmentService {
	return &enrollmentService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Enroll creates a new enrollment row. Repeated calls for the same course
// create repeated rows. The returned enrollment has Course and User loaded.
func (s *enrollmentService) Enroll(ctx context.Context, claims *auth.Claims, courseCode string) (*model.Enrollment, error) {
	if claims == nil {
		return nil, apperrors.Authentication(MsgUnknownUser)
	}
	if courseCode == "" {
		return nil, apperrors.Validation(MsgCourseCodeMissing)
	}

	course, err := s.courseRepo.FindByCode(ctx, courseCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(MsgCourseNotFound)
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authentication(MsgUnknownUser)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	enrollment := &model.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	enrollment.User = *user
	enrollment.Course = *course
	return enrollment, nil
}

// ListMine returns the courses the claims' user is enrolled in.
func (s *enrollmentService) ListMine(ctx context.Context, claims *auth.Claims) ([]model.Course, error) {
	if claims == nil {
		return nil, apperrors.Authentication(MsgUnknownUser)
	}
	courses, err := s.enrollmentRepo.ListCoursesByUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return courses, nil
}

// EnrolledMessage is the confirmation shown after a successful enrollment.
func EnrolledMessage(course model.Course) string {
	return fmt.Sprintf("Você foi inscrito com sucesso no curso %s (%s)", course.Name, course.Code)
}
