package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/models"

	"github.com/go-playground/validator/v10"
)

// decodeRecord parses a data.json payload. Anything that does not parse or
// misses a required field is reported as a malformed lookup.
func decodeRecord(slug string, data []byte, v *validator.Validate) (*models.EmployeeRecord, error) {
	var rec models.EmployeeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupMalformed, fmt.Errorf("invalid JSON: %w", err))
	}
	if err := v.Struct(&rec); err != nil {
		return nil, apperrors.NewLookupError(slug, apperrors.LookupMalformed, fmt.Errorf("validation failed: %w", err))
	}
	if rec.Media == nil {
		rec.Media = []string{}
	}
	return &rec, nil
}

// isSafeSlug rejects slugs that would escape the employees folder
func isSafeSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`) && !strings.Contains(slug, "..")
}
