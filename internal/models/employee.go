package models

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File names inside an employee folder
const (
	RecordFileName         = "data.json"
	ContactCardFileName    = "contact.vcf"
	HeadshotStem           = "headshot"
	ContactCardExtension   = ".vcf"
	EmployeeCardSuffix     = "-employee-card"
	EmployeeCardExtension  = ".zip"
	BioImagePrefix         = "bio-image-"
	defaultBinaryExtension = ".bin"
)

// EmployeeRecord is the per-employee data file stored as <slug>/data.json.
// Phone and LinkedIn are nil when absent and never hold an empty string.
type EmployeeRecord struct {
	Slug       string   `json:"slug" validate:"required"`
	FirstName  string   `json:"firstName" validate:"required"`
	LastName   string   `json:"lastName" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Department string   `json:"department" validate:"required"`
	Email      string   `json:"email" validate:"required"`
	Phone      *string  `json:"phone"`
	LinkedIn   *string  `json:"linkedin"`
	Headshot   string   `json:"headshot" validate:"required"`
	BioHTML    string   `json:"bioHtml"`
	Media      []string `json:"media"`
}

// DisplayName returns "First Last"
func (r *EmployeeRecord) DisplayName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// HasPhone reports whether a phone number is present
func (r *EmployeeRecord) HasPhone() bool {
	return r.Phone != nil
}

// HasLinkedIn reports whether a LinkedIn address is present
func (r *EmployeeRecord) HasLinkedIn() bool {
	return r.LinkedIn != nil
}

// Clone returns a deep copy so callers can rewrite fields without touching the original
func (r *EmployeeRecord) Clone() *EmployeeRecord {
	c := *r
	if r.Phone != nil {
		phone := *r.Phone
		c.Phone = &phone
	}
	if r.LinkedIn != nil {
		linkedIn := *r.LinkedIn
		c.LinkedIn = &linkedIn
	}
	c.Media = append([]string{}, r.Media...)
	return &c
}

// DirectoryIndex is the ordered list of published slugs
type DirectoryIndex []string

// DeriveSlug lowercases and trims both names, joins them with "-" and collapses
// whitespace runs into a single "-". The character set is not validated.
func DeriveSlug(firstName, lastName string) string {
	joined := strings.ToLower(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	return strings.Join(strings.Fields(joined), "-")
}

// OptionalString trims s and returns nil when nothing is left
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// HeadshotFilename keeps the extension of the uploaded file and normalizes the stem.
// When the upload has no extension it is sniffed from content.
func HeadshotFilename(originalName string, content []byte) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = SniffExtension(content)
	}
	return HeadshotStem + ext
}

// SniffExtension detects a file extension from content, falling back to ".bin"
func SniffExtension(content []byte) string {
	if ext := mimetype.Detect(content).Extension(); ext != "" {
		return ext
	}
	return defaultBinaryExtension
}

// ExtensionForMediaType maps a declared media type such as "image/png" to an extension
func ExtensionForMediaType(mediaType string) string {
	if m := mimetype.Lookup(strings.ToLower(strings.TrimSpace(mediaType))); m != nil {
		return m.Extension()
	}
	return ""
}
