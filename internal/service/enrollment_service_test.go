package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/model"
)

type enrollmentMocks struct {
	users       *MockUserRepository
	courses     *MockCourseRepository
	enrollments *MockEnrollmentRepository
}

func newEnrollmentService() (EnrollmentService, enrollmentMocks) {
	m := enrollmentMocks{
		users:       new(MockUserRepository),
		courses:     new(MockCourseRepository),
		enrollments: new(MockEnrollmentRepository),
	}
	return NewEnrollmentService(m.users, m.courses, m.enrollments), m
}

func anaClaims() *auth.Claims {
	return &auth.Claims{UserID: 3, Email: "ana@x.com"}
}

func TestEnrollmentService_Enroll(t *testing.T) {
	svc, m := newEnrollmentService()
	course := &model.Course{ID: 11, Code: "PY101", Name: "Python"}
	user := &model.User{ID: 3, Email: "ana@x.com"}

	m.courses.On("FindByCode", mock.Anything, "PY101").Return(course, nil)
	m.users.On("FindByID", mock.Anything, uint(3)).Return(user, nil)
	m.enrollments.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Enrollment) bool {
		return e.UserID == 3 && e.CourseID == 11
	})).Return(nil)

	enrollment, err := svc.Enroll(context.Background(), anaClaims(), "PY101")

	require.NoError(t, err)
	assert.Equal(t, "PY101", enrollment.Course.Code)
	assert.Equal(t, "Você foi inscrito com sucesso no curso Python (PY101)", EnrolledMessage(enrollment.Course))
	m.enrollments.AssertExpectations(t)
}

func TestEnrollmentService_EnrollTwiceCreatesTwoRows(t *testing.T) {
	svc, m := newEnrollmentService()

	m.courses.On("FindByCode", mock.Anything, "PY101").Return(&model.Course{ID: 11, Code: "PY101"}, nil)
	m.users.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3}, nil)
	m.enrollments.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Enroll(context.Background(), anaClaims(), "PY101")
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), anaClaims(), "PY101")
	require.NoError(t, err)

	m.enrollments.AssertNumberOfCalls(t, "Create", 2)
}

func TestEnrollmentService_UnknownCourse(t *testing.T) {
	svc, m := newEnrollmentService()
	m.courses.On("FindByCode", mock.Anything, "XX999").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Enroll(context.Background(), anaClaims(), "XX999")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, MsgCourseNotFound, err.Error())
	m.enrollments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestEnrollmentService_UserGone(t *testing.T) {
	svc, m := newEnrollmentService()
	m.courses.On("FindByCode", mock.Anything, "PY101").Return(&model.Course{ID: 11, Code: "PY101"}, nil)
	m.users.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Enroll(context.Background(), anaClaims(), "PY101")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
	assert.Equal(t, MsgUnknownUser, err.Error())
	m.enrollments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnrollmentService_MissingInput(t *testing.T) {
	svc, _ := newEnrollmentService()

	_, err := svc.Enroll(context.Background(), anaClaims(), "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Enroll(context.Background(), nil, "PY101")
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestEnrollmentService_ListMine(t *testing.T) {
	svc, m := newEnrollmentService()
	m.enrollments.On("ListCoursesByUser", mock.Anything, uint(3)).Return([]model.Course{
		{Code: "PY101", Name: "Python"},
		{Code: "PY101", Name: "Python"},
	}, nil)

	courses, err := svc.ListMine(context.Background(), anaClaims())

	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
