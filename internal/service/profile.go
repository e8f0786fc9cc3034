package service

import (
	"context"
	"fmt"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"
	"employee-directory/internal/render"
	"employee-directory/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

// ProfileStatus is the terminal state of a profile view
type ProfileStatus string

const (
	ProfileOK               ProfileStatus = "ok"
	ProfileMissingParameter ProfileStatus = "missing_parameter"
	ProfileNotFound         ProfileStatus = "not_found"
	ProfileMalformed        ProfileStatus = "malformed"
	ProfileUnavailable      ProfileStatus = "unavailable"
)

// ProfileState is what the profile view shows: either a profile or a terminal failure state
type ProfileState struct {
	Status  ProfileStatus       `json:"status"`
	Slug    string              `json:"slug,omitempty"`
	Message string              `json:"message,omitempty"`
	Profile *render.ProfileView `json:"profile,omitempty"`
	Err     error               `json:"-"`
}

// ContactCardFile is a contact card ready for download
type ContactCardFile struct {
	Filename string
	Content  []byte
}

// ProfileService serves direct profile lookups. It never consults the directory index.
type ProfileService struct {
	repo    repository.RecordRepositoryInterface
	site    models.Site
	options render.ProfileOptions
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.RecordRepositoryInterface, site models.Site, options render.ProfileOptions) *ProfileService {
	return &ProfileService{
		repo:    repo,
		site:    site,
		options: options,
	}
}

// GetProfile looks up slug and renders its profile. An empty slug is reported
// as a missing parameter without attempting a lookup.
func (s *ProfileService) GetProfile(ctx context.Context, slug string) *ProfileState {
	if slug == "" {
		err := apperrors.NewMissingParameterError(models.ProfileQueryKey)
		return &ProfileState{Status: ProfileMissingParameter, Message: "No employee specified", Err: err}
	}

	ctx = logger.ContextWithSlug(ctx, slug)
	rec, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return s.failedState(ctx, slug, err)
	}

	view, err := render.Profile(s.site, rec, s.options)
	if err != nil {
		return s.failedState(ctx, slug, apperrors.NewLookupError(slug, apperrors.LookupMalformed, err))
	}

	return &ProfileState{Status: ProfileOK, Slug: slug, Profile: view}
}

func (s *ProfileService) failedState(ctx context.Context, slug string, err error) *ProfileState {
	state := &ProfileState{Slug: slug, Err: err}

	switch apperrors.LookupReasonOf(err) {
	case apperrors.LookupNotFound:
		state.Status = ProfileNotFound
		state.Message = fmt.Sprintf("Employee %q not found", slug)
	case apperrors.LookupMalformed:
		state.Status = ProfileMalformed
		state.Message = fmt.Sprintf("The record for %q could not be read", slug)
	default:
		state.Status = ProfileUnavailable
		state.Message = fmt.Sprintf("The record for %q is currently unavailable", slug)
	}

	logger.WithContext(ctx).WithError(err).Warnf("Profile lookup ended in state %s", state.Status)
	return state
}

// GetContactCard looks up slug and renders its contact card
func (s *ProfileService) GetContactCard(ctx context.Context, slug string) (*ContactCardFile, error) {
	if slug == "" {
		return nil, apperrors.NewMissingParameterError("slug")
	}

	rec, err := s.repo.GetBySlug(logger.ContextWithSlug(ctx, slug), slug)
	if err != nil {
		return nil, err
	}

	return &ContactCardFile{
		Filename: models.ContactCardDownloadName(rec.Slug),
		Content:  []byte(models.ContactCard(rec, s.site)),
	}, nil
}

// GetQRCode renders the profile URL of slug as a PNG at the small or large size.
// Only employees with a readable record get a code.
func (s *ProfileService) GetQRCode(ctx context.Context, slug, size string) ([]byte, error) {
	if slug == "" {
		return nil, apperrors.NewMissingParameterError("slug")
	}

	var pixels int
	switch size {
	case "", models.QRCodeSmall:
		pixels = s.options.SmallCodeSize
	case models.QRCodeLarge:
		pixels = s.options.LargeCodeSize
	default:
		return nil, apperrors.NewValidationError("size", fmt.Sprintf("must be %q or %q", models.QRCodeSmall, models.QRCodeLarge))
	}

	rec, err := s.repo.GetBySlug(logger.ContextWithSlug(ctx, slug), slug)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.site.ProfileURL(rec.Slug), qrcode.Medium, pixels)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}
