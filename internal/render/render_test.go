package render

import (
	"testing"

	"employee-directory/internal/models"
	"employee-directory/internal/testutils"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opts = ProfileOptions{SmallCodeSize: 128, LargeCodeSize: 512}

func TestListing(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().Create()

	got := Listing(testutils.TestSite(), rec)

	want := ListingCard{
		ImageAddress: "https://people.example.com/employees/jane-doe/headshot.jpg",
		DisplayName:  "Jane Doe",
		Title:        "Staff Engineer",
		Department:   "Platform",
		LinkAddress:  "https://people.example.com/profile?id=jane-doe",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Listing() mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileWithoutOptionalContacts(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().Create()

	view, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	assert.Nil(t, view.Phone)
	assert.Nil(t, view.LinkedIn)
	assert.Equal(t, "mailto:jane.doe@example.com", view.Email.Href)
	assert.Equal(t, "https://people.example.com/employees/jane-doe/headshot.jpg", view.HeadshotAddress)
	assert.NotNil(t, view.Gallery)
	assert.Empty(t, view.Gallery)
}

func TestProfileWithOptionalContacts(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().WithContacts("+1 555 0100", "https://linkedin.com/in/janedoe")

	view, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	require.NotNil(t, view.Phone)
	assert.Equal(t, ContactLink{Value: "+1 555 0100", Href: "tel:+1 555 0100"}, *view.Phone)
	require.NotNil(t, view.LinkedIn)
	assert.Equal(t, "https://linkedin.com/in/janedoe", view.LinkedIn.Href)
}

func TestProfileRewritesLocalBioImages(t *testing.T) {
	bio := `<p>Hi</p><img src="bio-image-1.png"><img src="https://cdn.example.com/x.gif"><img src="/static/y.gif">`
	rec := testutils.NewEmployeeRecordFactory().WithMedia(bio, "team.gif", "bio-image-1.png")

	view, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	assert.Equal(t,
		`<p>Hi</p><img src="https://people.example.com/employees/jane-doe/bio-image-1.png">`+
			`<img src="https://cdn.example.com/x.gif"><img src="/static/y.gif">`,
		view.BioHTML)

	want := []GalleryItem{
		{Filename: "team.gif", Address: "https://people.example.com/employees/jane-doe/team.gif"},
		{Filename: "bio-image-1.png", Address: "https://people.example.com/employees/jane-doe/bio-image-1.png"},
	}
	if diff := cmp.Diff(want, view.Gallery); diff != "" {
		t.Errorf("Gallery mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileKeepsBioReferencesEncodedOnce(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().WithMedia(`<img src="img/a.png"><img src="my%20pic.png">`)

	view, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	assert.Equal(t,
		`<img src="https://people.example.com/employees/jane-doe/img/a.png">`+
			`<img src="https://people.example.com/employees/jane-doe/my%20pic.png">`,
		view.BioHTML)
}

func TestProfileScannableCodeAndDownload(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().Create()

	view, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	assert.Equal(t, "https://people.example.com/profile?id=jane-doe", view.ScannableCode.Payload)
	assert.Equal(t, 128, view.ScannableCode.Small.Size)
	assert.Equal(t, 512, view.ScannableCode.Large.Size)
	assert.Equal(t, "https://people.example.com/api/v1/employees/jane-doe/qrcode?size=small", view.ScannableCode.Small.Address)
	assert.Equal(t, "https://people.example.com/api/v1/employees/jane-doe/qrcode?size=large", view.ScannableCode.Large.Address)
	assert.Equal(t, Download{
		Filename: "jane-doe.vcf",
		Address:  "https://people.example.com/api/v1/employees/jane-doe/contact.vcf",
	}, view.ContactCard)
}

func TestManagement(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().Create()

	entry := Management(testutils.TestSite(), rec)

	assert.Equal(t, "Jane Doe", entry.DisplayName)
	assert.Equal(t, "jane-doe", entry.Slug)
	assert.Equal(t, "Staff Engineer · Platform", entry.TitleAndDepartment)
	assert.Equal(t, "https://people.example.com/profile?id=jane-doe", entry.ProfileLinkAddress)
	assert.Equal(t,
		`To remove Jane Doe, delete the folder employees/jane-doe/ and remove "jane-doe" from the directory index. Nothing is deleted automatically.`,
		entry.RemovalInstructions)
}

func TestProjectionsPreserveOrder(t *testing.T) {
	f := testutils.NewEmployeeRecordFactory()
	records := []*models.EmployeeRecord{f.WithName("Zed", "Last"), f.WithName("Amy", "First"), f.WithName("Mo", "Middle")}

	cards := Listings(testutils.TestSite(), records)
	entries := ManagementEntries(testutils.TestSite(), records)

	require.Len(t, cards, 3)
	require.Len(t, entries, 3)
	for i, rec := range records {
		assert.Equal(t, rec.DisplayName(), cards[i].DisplayName)
		assert.Equal(t, rec.Slug, entries[i].Slug)
	}
}

func TestProjectionsAreDeterministic(t *testing.T) {
	rec := testutils.NewEmployeeRecordFactory().WithMedia(`<img src="a.png">`, "a.png")

	first, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)
	second, err := Profile(testutils.TestSite(), rec, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Profile() not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, `<img src="a.png">`, rec.BioHTML)
}
