package repository

import (
	"time"

	apperrors "employee-directory/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Record sources accepted by NewRecordRepository
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

// NewRecordRepository picks the record repository for source. root is used for
// the file source, baseURL and timeout for the http source.
func NewRecordRepository(source, root, baseURL string, timeout time.Duration, validator *validator.Validate) (RecordRepositoryInterface, error) {
	switch source {
	case SourceFile:
		return NewFileRecordRepository(root, validator), nil
	case SourceHTTP:
		if baseURL == "" {
			return nil, apperrors.ErrRecordBaseURLMissing
		}
		return NewHTTPRecordRepository(baseURL, timeout, validator), nil
	default:
		return nil, apperrors.ErrUnknownRecordSource
	}
}
