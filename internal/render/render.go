// Package render projects employee records into view-models. Every function is
// pure: same record and site in, same view-model out, no I/O.
package render

import (
	"fmt"

	"employee-directory/internal/markup"
	"employee-directory/internal/models"
)

// ListingCard is the compact directory card
type ListingCard struct {
	ImageAddress string `json:"imageAddress"`
	DisplayName  string `json:"displayName"`
	Title        string `json:"title"`
	Department   string `json:"department"`
	LinkAddress  string `json:"linkAddress"`
}

// ContactLink is a labelled contact entry with a clickable address
type ContactLink struct {
	Value string `json:"value"`
	Href  string `json:"href"`
}

// GalleryItem is one entry of the media gallery
type GalleryItem struct {
	Filename string `json:"filename"`
	Address  string `json:"address"`
}

// CodeImage is one rendering of the scannable code
type CodeImage struct {
	Size    int    `json:"size"`
	Address string `json:"address"`
}

// ScannableCode carries the payload shown as a QR code, in two sizes
type ScannableCode struct {
	Payload string    `json:"payload"`
	Small   CodeImage `json:"small"`
	Large   CodeImage `json:"large"`
}

// Download describes an on-demand file download
type Download struct {
	Filename string `json:"filename"`
	Address  string `json:"address"`
}

// ProfileView is the full profile page
type ProfileView struct {
	Slug            string        `json:"slug"`
	DisplayName     string        `json:"displayName"`
	Title           string        `json:"title"`
	Department      string        `json:"department"`
	HeadshotAddress string        `json:"headshotAddress"`
	Email           ContactLink   `json:"email"`
	Phone           *ContactLink  `json:"phone,omitempty"`
	LinkedIn        *ContactLink  `json:"linkedin,omitempty"`
	BioHTML         string        `json:"bioHtml"`
	Gallery         []GalleryItem `json:"gallery"`
	ScannableCode   ScannableCode `json:"scannableCode"`
	ContactCard     Download      `json:"contactCard"`
}

// ProfileOptions holds the pixel sizes of the two scannable code renderings
type ProfileOptions struct {
	SmallCodeSize int
	LargeCodeSize int
}

// ManagementEntry is one row of the internal management list
type ManagementEntry struct {
	DisplayName         string `json:"displayName" yaml:"displayName"`
	Slug                string `json:"slug" yaml:"slug"`
	TitleAndDepartment  string `json:"titleAndDepartment" yaml:"titleAndDepartment"`
	ProfileLinkAddress  string `json:"profileLinkAddress" yaml:"profileLinkAddress"`
	RemovalInstructions string `json:"removalInstructions" yaml:"removalInstructions"`
}

const removalTemplate = "To remove %s, delete the folder %s and remove %q from the directory index. " +
	"Nothing is deleted automatically."

// Listing projects a record into a directory card
func Listing(site models.Site, rec *models.EmployeeRecord) ListingCard {
	return ListingCard{
		ImageAddress: site.AssetURL(rec.Slug, rec.Headshot),
		DisplayName:  rec.DisplayName(),
		Title:        rec.Title,
		Department:   rec.Department,
		LinkAddress:  site.ProfileURL(rec.Slug),
	}
}

// Profile projects a record into the full profile view. Local image references
// in the bio are rewritten to absolute addresses inside the employee folder.
func Profile(site models.Site, rec *models.EmployeeRecord, opts ProfileOptions) (*ProfileView, error) {
	bio, err := markup.RewriteImageSources(rec.BioHTML, func(src string) (string, error) {
		if markup.IsLocalSource(src) {
			return site.AssetReferenceURL(rec.Slug, src), nil
		}
		return src, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render bio for %s: %w", rec.Slug, err)
	}

	view := &ProfileView{
		Slug:            rec.Slug,
		DisplayName:     rec.DisplayName(),
		Title:           rec.Title,
		Department:      rec.Department,
		HeadshotAddress: site.AssetURL(rec.Slug, rec.Headshot),
		Email:           ContactLink{Value: rec.Email, Href: "mailto:" + rec.Email},
		BioHTML:         bio,
		Gallery:         make([]GalleryItem, 0, len(rec.Media)),
		ScannableCode: ScannableCode{
			Payload: site.ProfileURL(rec.Slug),
			Small:   CodeImage{Size: opts.SmallCodeSize, Address: site.QRCodeURL(rec.Slug, models.QRCodeSmall)},
			Large:   CodeImage{Size: opts.LargeCodeSize, Address: site.QRCodeURL(rec.Slug, models.QRCodeLarge)},
		},
		ContactCard: Download{
			Filename: models.ContactCardDownloadName(rec.Slug),
			Address:  site.ContactCardURL(rec.Slug),
		},
	}

	if rec.HasPhone() {
		view.Phone = &ContactLink{Value: *rec.Phone, Href: "tel:" + *rec.Phone}
	}
	if rec.HasLinkedIn() {
		view.LinkedIn = &ContactLink{Value: *rec.LinkedIn, Href: *rec.LinkedIn}
	}

	for _, name := range rec.Media {
		view.Gallery = append(view.Gallery, GalleryItem{
			Filename: name,
			Address:  site.AssetURL(rec.Slug, name),
		})
	}

	return view, nil
}

// Management projects a record into a management list entry
func Management(site models.Site, rec *models.EmployeeRecord) ManagementEntry {
	return ManagementEntry{
		DisplayName:         rec.DisplayName(),
		Slug:                rec.Slug,
		TitleAndDepartment:  rec.Title + " · " + rec.Department,
		ProfileLinkAddress:  site.ProfileURL(rec.Slug),
		RemovalInstructions: fmt.Sprintf(removalTemplate, rec.DisplayName(), site.FolderPath(rec.Slug), rec.Slug),
	}
}

// Listings projects records in order
func Listings(site models.Site, records []*models.EmployeeRecord) []ListingCard {
	cards := make([]ListingCard, 0, len(records))
	for _, rec := range records {
		cards = append(cards, Listing(site, rec))
	}
	return cards
}

// ManagementEntries projects records in order
func ManagementEntries(site models.Site, records []*models.EmployeeRecord) []ManagementEntry {
	entries := make([]ManagementEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, Management(site, rec))
	}
	return entries
}
