package repository

import (
	"context"

	"gorm.io/gorm"

	"programador/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	ListCoursesByUser(ctx context.Context, userID uint) ([]model.Course, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create inserts an enrollment row. No uniqueness check is made.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// ListCoursesByUser returns one course per enrollment row of the user, in
// enrollment order.
func (r *enrollmentRepository) ListCoursesByUser(ctx context.Context, userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Select("courses.*").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.id").
		Scan(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
