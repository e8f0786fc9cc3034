package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"employee-directory/internal/archive"
	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"

	"github.com/go-playground/validator/v10"
)

// EmployeeCardService turns the self-service form into a downloadable archive
type EmployeeCardService struct {
	builder   *archive.Builder
	site      models.Site
	validator *validator.Validate
}

// NewEmployeeCardService creates a new employee card service
func NewEmployeeCardService(builder *archive.Builder, site models.Site, validator *validator.Validate) *EmployeeCardService {
	return &EmployeeCardService{
		builder:   builder,
		site:      site,
		validator: validator,
	}
}

// CreateEmployeeCardRequest represents the form fields of a new employee
type CreateEmployeeCardRequest struct {
	FirstName  string `form:"firstName" json:"firstName" validate:"required,max=100"`
	LastName   string `form:"lastName" json:"lastName" validate:"required,max=100"`
	Title      string `form:"title" json:"title" validate:"required,max=200"`
	Department string `form:"department" json:"department" validate:"required,max=200"`
	Email      string `form:"email" json:"email" validate:"required,email,max=255"`
	Phone      string `form:"phone" json:"phone" validate:"omitempty,printascii,max=40"`
	LinkedIn   string `form:"linkedin" json:"linkedin" validate:"omitempty,url,max=500"`
	BioHTML    string `form:"bioHtml" json:"bioHtml"`
}

// Upload is a file received alongside the form
type Upload struct {
	Filename string
	Blob     archive.Blob
}

// BuildEmployeeCard validates the form and packages the archive.
// Validation problems return *errors.ValidationError; packing problems *errors.PackagingError.
func (s *EmployeeCardService) BuildEmployeeCard(req *CreateEmployeeCardRequest, headshot *Upload, media []Upload) (*archive.Archive, error) {
	req.normalize()

	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(req, err)
	}
	if headshot == nil || headshot.Blob == nil {
		return nil, apperrors.ErrHeadshotRequired
	}

	items := make([]archive.MediaItem, 0, len(media))
	for i, m := range media {
		name := filepath.Base(strings.TrimSpace(m.Filename))
		if m.Blob == nil || name == "" || name == "." || name == string(filepath.Separator) {
			return nil, apperrors.NewValidationError("media", fmt.Sprintf("file %d has no name or content", i+1))
		}
		items = append(items, archive.MediaItem{Filename: name, Blob: m.Blob})
	}

	headshotData, err := archive.ReadAll(headshot.Blob)
	if err != nil {
		return nil, apperrors.NewPackagingError(fmt.Errorf("read headshot: %w", err))
	}

	rec := &models.EmployeeRecord{
		Slug:       models.DeriveSlug(req.FirstName, req.LastName),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Title:      req.Title,
		Department: req.Department,
		Email:      req.Email,
		Phone:      models.OptionalString(req.Phone),
		LinkedIn:   models.OptionalString(req.LinkedIn),
		Headshot:   models.HeadshotFilename(headshot.Filename, headshotData),
		BioHTML:    req.BioHTML,
		Media:      []string{},
	}

	a, err := s.builder.Build(archive.Input{
		Record:      rec,
		ContactCard: models.ContactCard(rec, s.site),
		Headshot:    archive.BytesBlob(headshotData),
		Media:       items,
	})
	if err != nil {
		logger.New().WithField("slug", rec.Slug).WithError(err).Error("Failed to package employee card")
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"slug":  a.Slug,
		"media": len(a.Record.Media),
		"bytes": len(a.Content),
	}).Info("Packaged employee card")

	return a, nil
}

func (r *CreateEmployeeCardRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Title = strings.TrimSpace(r.Title)
	r.Department = strings.TrimSpace(r.Department)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.LinkedIn = strings.TrimSpace(r.LinkedIn)
}

// toValidationError reports the first failing field under its form name
func toValidationError(req *CreateEmployeeCardRequest, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	name := fe.Field()
	if f, ok := reflect.TypeOf(*req).FieldByName(fe.StructField()); ok {
		if tag := f.Tag.Get("form"); tag != "" {
			name = tag
		}
	}

	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(name, "is required")
	case "email":
		return apperrors.NewValidationError(name, "must be a valid email address")
	case "url":
		return apperrors.NewValidationError(name, "must be a valid URL")
	case "printascii":
		return apperrors.NewValidationError(name, "must contain only printable characters")
	case "max":
		return apperrors.NewValidationError(name, fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return apperrors.NewValidationError(name, fmt.Sprintf("failed the %q rule", fe.Tag()))
	}
}
