package models

import (
	"net/url"
	"path"
	"strings"
)

// Profile address contract
const (
	ProfilePath     = "/profile"
	ProfileQueryKey = "id"
)

// QR code sizes shown on the profile view
const (
	QRCodeSmall = "small"
	QRCodeLarge = "large"
)

// Site carries the deployment-wide values every URL builder needs.
// It is built once from configuration and passed explicitly.
type Site struct {
	// BaseURL is the public address of the directory, e.g. https://people.example.com
	BaseURL string
	// AssetBaseURL is where employee folders are served from
	AssetBaseURL string
	// Folder is the on-disk folder holding one sub-folder per employee
	Folder string
	// Organization is written to the ORG line of every contact card
	Organization string
}

// ProfileURL returns the public profile address for slug
func (s Site) ProfileURL(slug string) string {
	return s.base() + ProfilePath + "?" + ProfileQueryKey + "=" + url.QueryEscape(slug)
}

// FolderURL returns the address of the employee's asset folder
func (s Site) FolderURL(slug string) string {
	return strings.TrimRight(s.AssetBaseURL, "/") + "/" + url.PathEscape(slug)
}

// AssetURL returns the address of a file inside the employee's folder.
// filename is a plain name or relative path; each segment is escaped.
func (s Site) AssetURL(slug, filename string) string {
	segments := strings.Split(filename, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.FolderURL(slug) + "/" + strings.Join(segments, "/")
}

// AssetReferenceURL resolves ref, a relative URL reference as written in
// markup, against the employee's folder. ref is already URL-encoded, so it is
// not escaped again.
func (s Site) AssetReferenceURL(slug, ref string) string {
	base, err := url.Parse(s.FolderURL(slug) + "/")
	if err != nil {
		return s.AssetURL(slug, ref)
	}
	rel, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return s.AssetURL(slug, ref)
	}
	return base.ResolveReference(rel).String()
}

// FolderPath returns the relative folder path, e.g. employees/jane-doe/
func (s Site) FolderPath(slug string) string {
	return path.Join(s.Folder, slug) + "/"
}

// ContactCardURL returns the download address of the employee's contact card
func (s Site) ContactCardURL(slug string) string {
	return s.base() + "/api/v1/employees/" + url.PathEscape(slug) + "/contact.vcf"
}

// QRCodeURL returns the address of the rendered scannable code at the given size
func (s Site) QRCodeURL(slug, size string) string {
	return s.base() + "/api/v1/employees/" + url.PathEscape(slug) + "/qrcode?size=" + url.QueryEscape(size)
}

func (s Site) base() string {
	return strings.TrimRight(s.BaseURL, "/")
}
