package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"programador/internal/cache"
	apperrors "programador/internal/errors"
	"programador/internal/model"
	"programador/internal/repository"
)

const (
	courseListCacheKey = "courses:all"
	courseListCacheTTL = 5 * time.Minute
)

// CourseService exposes the course catalog.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, code, name string) (*model.Course, error)
}

// cachedCourse is the cached form of a course. It keeps the fields that
// model.Course hides from JSON.
type cachedCourse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

type courseService struct {
	repo  repository.CourseRepository
	cache *cache.Client
}

// NewCourseService builds a CourseService with repository and cache.
func NewCourseService(repo repository.CourseRepository, cache *cache.Client) CourseService {
	return &courseService{repo: repo, cache: cache}
}

// List returns all courses ordered by name.
func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	if data, _ := s.cache.Get(ctx, courseListCacheKey); data != nil {
		var cached []cachedCourse
		if err := json.Unmarshal(data, &cached); err == nil {
			courses := make([]model.Course, 0, len(cached))
			for _, c := range cached {
				courses = append(courses, model.Course{ID: c.ID, Code: c.Code, Name: c.Name, CreatedAt: c.CreatedAt})
			}
			return courses, nil
		}
	}

	courses, err := s.repo.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	entries := make([]cachedCourse, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, cachedCourse{ID: c.ID, Code: c.Code, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, courseListCacheKey, payload, courseListCacheTTL)
	}
	return courses, nil
}

// Create adds a course to the catalog.
func (s *courseService) Create(ctx context.Context, code, name string) (*model.Course, error) {
	if code == "" || name == "" {
		return nil, apperrors.Validation(MsgInvalidData)
	}
	if len(code) > 10 {
		return nil, apperrors.Validation(fmt.Sprintf("O código %s excede 10 caracteres", code))
	}

	course := &model.Course{Code: code, Name: name}
	if err := s.repo.Create(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(fmt.Sprintf("O curso %s (%s) já está cadastrado!", name, code))
		}
		return nil, fmt.Errorf("create course: %w", err)
	}

	_ = s.cache.Delete(ctx, courseListCacheKey)
	return course, nil
}
