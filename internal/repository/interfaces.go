package repository

import (
	"context"

	"employee-directory/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RecordRepositoryInterface fetches and parses one employee record per slug.
// Failures are returned as *errors.LookupError.
type RecordRepositoryInterface interface {
	GetBySlug(ctx context.Context, slug string) (*models.EmployeeRecord, error)
}
