package service

import (
	"context"

	"employee-directory/internal/archive"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DirectoryServiceInterface defines the interface for the directory listing views
type DirectoryServiceInterface interface {
	ListCards(ctx context.Context) *DirectoryListResponse
	ListManagementEntries(ctx context.Context) *ManagementListResponse
}

// ProfileServiceInterface defines the interface for profile lookups and their downloads
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, slug string) *ProfileState
	GetContactCard(ctx context.Context, slug string) (*ContactCardFile, error)
	GetQRCode(ctx context.Context, slug, size string) ([]byte, error)
}

// EmployeeCardServiceInterface defines the interface for packaging new employee cards
type EmployeeCardServiceInterface interface {
	BuildEmployeeCard(req *CreateEmployeeCardRequest, headshot *Upload, media []Upload) (*archive.Archive, error)
}
