// Package seed loads the course catalog into the database.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"gorm.io/gorm"

	"programador/internal/repository"
	"programador/internal/service"
)

// CourseData is one catalog entry as read from a seed source.
type CourseData struct {
	Code string `json:"codigo"`
	Name string `json:"nome"`
}

// DefaultCatalog is used when no seed source is given.
var DefaultCatalog = []CourseData{
	{Code: "PY101", Name: "Python para Iniciantes"},
	{Code: "GO101", Name: "Introdução ao Go"},
	{Code: "JS101", Name: "JavaScript Essencial"},
	{Code: "SQL101", Name: "Bancos de Dados Relacionais"},
	{Code: "GIT101", Name: "Controle de Versão com Git"},
}

// Decode parses a JSON array of courses.
func Decode(r io.Reader) ([]CourseData, error) {
	var courses []CourseData
	if err := json.NewDecoder(r).Decode(&courses); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return courses, nil
}

// LoadFile reads a catalog from a JSON file.
func LoadFile(path string) ([]CourseData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Fetch downloads a catalog from an HTTP endpoint.
func Fetch(ctx context.Context, client *http.Client, url string) ([]CourseData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status code: %d", resp.StatusCode)
	}
	return Decode(resp.Body)
}

// Courses creates every course whose code is not yet present. Existing codes
// are left untouched.
func Courses(ctx context.Context, repo repository.CourseRepository, svc service.CourseService, courses []CourseData) (created int, skipped int, err error) {
	for _, course := range courses {
		existing, err := repo.FindByCode(ctx, course.Code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("error checking course %s: %w", course.Code, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		if _, err := svc.Create(ctx, course.Code, course.Name); err != nil {
			return created, skipped, fmt.Errorf("error creating course %s: %w", course.Code, err)
		}
		created++
	}
	return created, skipped, nil
}
