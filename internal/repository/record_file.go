package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"

	"github.com/go-playground/validator/v10"
)

// FileRecordRepository reads records from <root>/<slug>/data.json on local disk
type FileRecordRepository struct {
	root      string
	validator *validator.Validate
}

// NewFileRecordRepository creates a repository rooted at the employees folder
func NewFileRecordRepository(root string, validator *validator.Validate) *FileRecordRepository {
	return &FileRecordRepository{
		root:      root,
		validator: validator,
	}
}

// GetBySlug reads and parses the record for slug
func (r *FileRecordRepository) GetBySlug(ctx context.Context, slug string) (*models.EmployeeRecord, error) {
	if !isSafeSlug(slug) {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupNotFound, nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport, err)
	}

	path := filepath.Join(r.root, slug, models.RecordFileName)
	logger.WithContext(ctx).WithField("path", path).Debug("Reading employee record")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewLookupError(slug, apperrors.LookupNotFound, err)
		}
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport, err)
	}

	return decodeRecord(slug, data, r.validator)
}
