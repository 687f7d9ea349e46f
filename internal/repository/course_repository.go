package repository

import (
	"context"

	"gorm.io/gorm"

	"programador/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByCode(ctx context.Context, code string) (*model.Course, error)
	ListOrderedByName(ctx context.Context) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a course.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// FindByCode finds a course by its exact code.
func (r *courseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListOrderedByName lists every course sorted by name.
func (r *courseRepository) ListOrderedByName(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("name").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
