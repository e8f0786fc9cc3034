package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		expected  string
	}{
		{"simple", "John", "Doe", "john-doe"},
		{"surrounding whitespace", "John", " Doe ", "john-doe"},
		{"internal whitespace runs", "Mary  Ann", "van\tder Berg", "mary-ann-van-der-berg"},
		{"already lowercase", "jane", "doe", "jane-doe"},
		{"punctuation passes through", "O'Neil", "Smith-Jones", "o'neil-smith-jones"},
		{"non-ascii passes through", "José", "Müller", "josé-müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveSlug(tt.firstName, tt.lastName))
		})
	}
}

func TestDeriveSlugIsIdempotent(t *testing.T) {
	pairs := [][2]string{{"John", " Doe "}, {"ANNA", "lee"}, {" Kim ", "Park  Jr"}}

	for _, p := range pairs {
		slug := DeriveSlug(p[0], p[1])
		assert.Equal(t, slug, DeriveSlug(slug, ""))
		assert.Regexp(t, `^[a-z-]+$`, slug)
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("   "))

	v := OptionalString(" +1 555 0100 ")
	require.NotNil(t, v)
	assert.Equal(t, "+1 555 0100", *v)
}

func TestHeadshotFilename(t *testing.T) {
	t.Run("keeps original extension", func(t *testing.T) {
		assert.Equal(t, "headshot.JPG", HeadshotFilename("Me At The Beach.JPG", nil))
		assert.Equal(t, "headshot.webp", HeadshotFilename("portrait.webp", nil))
	})

	t.Run("sniffs extension when missing", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		assert.Equal(t, "headshot.png", HeadshotFilename("portrait", png))
	})
}

func TestExtensionForMediaType(t *testing.T) {
	assert.Equal(t, ".png", ExtensionForMediaType("image/png"))
	assert.Equal(t, ".gif", ExtensionForMediaType("IMAGE/GIF"))
	assert.Equal(t, "", ExtensionForMediaType("application/x-not-a-real-type"))
}

func TestEmployeeRecordClone(t *testing.T) {
	phone := "+1 555 0100"
	original := &EmployeeRecord{Slug: "jane-doe", Phone: &phone, Media: []string{"a.png"}}

	clone := original.Clone()
	*clone.Phone = "changed"
	clone.Media[0] = "b.png"

	assert.Equal(t, "+1 555 0100", *original.Phone)
	assert.Equal(t, []string{"a.png"}, original.Media)
	assert.False(t, clone.HasLinkedIn())
}
