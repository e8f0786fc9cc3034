package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"employee-directory/internal/models"

	"github.com/stretchr/testify/require"
)

// EmployeeRecordFactory provides methods to create test EmployeeRecord data
type EmployeeRecordFactory struct{}

// NewEmployeeRecordFactory creates a new EmployeeRecordFactory
func NewEmployeeRecordFactory() *EmployeeRecordFactory {
	return &EmployeeRecordFactory{}
}

// Create creates a test EmployeeRecord with default values
func (f *EmployeeRecordFactory) Create() *models.EmployeeRecord {
	return &models.EmployeeRecord{
		Slug:       "jane-doe",
		FirstName:  "Jane",
		LastName:   "Doe",
		Title:      "Staff Engineer",
		Department: "Platform",
		Email:      "jane.doe@example.com",
		Phone:      nil,
		LinkedIn:   nil,
		Headshot:   "headshot.jpg",
		BioHTML:    "<p>Builds things.</p>",
		Media:      []string{},
	}
}

// WithName sets the names and the matching slug
func (f *EmployeeRecordFactory) WithName(firstName, lastName string) *models.EmployeeRecord {
	rec := f.Create()
	rec.FirstName = firstName
	rec.LastName = lastName
	rec.Slug = models.DeriveSlug(firstName, lastName)
	rec.Email = rec.Slug + "@example.com"
	return rec
}

// WithContacts sets phone and LinkedIn
func (f *EmployeeRecordFactory) WithContacts(phone, linkedIn string) *models.EmployeeRecord {
	rec := f.Create()
	rec.Phone = models.OptionalString(phone)
	rec.LinkedIn = models.OptionalString(linkedIn)
	return rec
}

// WithMedia sets bio markup and media files
func (f *EmployeeRecordFactory) WithMedia(bioHTML string, media ...string) *models.EmployeeRecord {
	rec := f.Create()
	rec.BioHTML = bioHTML
	rec.Media = append([]string{}, media...)
	return rec
}

// TestSite returns the site configuration used across tests
func TestSite() models.Site {
	return models.Site{
		BaseURL:      "https://people.example.com",
		AssetBaseURL: "https://people.example.com/employees",
		Folder:       "employees",
		Organization: "Example Corp",
	}
}

// WriteRecord stores rec as <root>/<slug>/data.json
func WriteRecord(t *testing.T, root string, rec *models.EmployeeRecord) {
	t.Helper()
	data, err := json.MarshalIndent(rec, "", "  ")
	require.NoError(t, err)
	WriteRawRecord(t, root, rec.Slug, data)
}

// WriteRawRecord stores arbitrary bytes as <root>/<slug>/data.json
func WriteRawRecord(t *testing.T, root, slug string, data []byte) {
	t.Helper()
	dir := filepath.Join(root, slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, models.RecordFileName), data, 0o644))
}

// FactorySet provides access to all factories
type FactorySet struct {
	Record *EmployeeRecordFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Record: NewEmployeeRecordFactory(),
	}
}
