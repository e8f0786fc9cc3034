package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"

	"github.com/go-playground/validator/v10"
)

// maxRecordBytes caps a single data.json download
const maxRecordBytes = 1 << 20

// HTTPRecordRepository fetches records from a static host at <baseURL>/<slug>/data.json
type HTTPRecordRepository struct {
	baseURL    string
	httpClient *http.Client
	validator  *validator.Validate
}

// NewHTTPRecordRepository creates a repository for a static host. A zero timeout disables it.
func NewHTTPRecordRepository(baseURL string, timeout time.Duration, validator *validator.Validate) *HTTPRecordRepository {
	return &HTTPRecordRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validator:  validator,
	}
}

// GetBySlug fetches and parses the record for slug
func (r *HTTPRecordRepository) GetBySlug(ctx context.Context, slug string) (*models.EmployeeRecord, error) {
	if !isSafeSlug(slug) {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupNotFound, nil)
	}

	fullURL := r.baseURL + "/" + url.PathEscape(slug) + "/" + models.RecordFileName
	logger.WithContext(ctx).Debugf("Fetching employee record GET %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport, fmt.Errorf("failed to create HTTP request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupNotFound, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport,
			fmt.Errorf("record request failed: status=%d body=%s", resp.StatusCode, string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordBytes+1))
	if err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupTransport, fmt.Errorf("failed to read record: %w", err))
	}
	if len(data) > maxRecordBytes {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupMalformed,
			fmt.Errorf("%w: more than %d bytes", apperrors.ErrRecordTooLarge, maxRecordBytes))
	}

	return decodeRecord(slug, data, r.validator)
}
