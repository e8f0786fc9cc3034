package archive

import (
	"fmt"
	"strings"

	"employee-directory/internal/markup"
	"employee-directory/internal/models"

	"github.com/vincent-petithory/dataurl"
)

// ExtractInlineImages pulls every data: image out of bioHTML. Each payload is
// named bio-image-<n><ext> (1-indexed, document order) and its src is replaced
// by that bare filename. External references are left alone.
func ExtractInlineImages(bioHTML string) (string, []MediaItem, error) {
	var items []MediaItem

	rewritten, err := markup.RewriteImageSources(bioHTML, func(src string) (string, error) {
		if !markup.IsInlineSource(src) {
			return src, nil
		}
		mediaType, data, err := decodeDataURL(src)
		if err != nil {
			return "", fmt.Errorf("bio image %d: %w", len(items)+1, err)
		}

		ext := models.ExtensionForMediaType(mediaType)
		if ext == "" {
			ext = models.SniffExtension(data)
		}
		name := fmt.Sprintf("%s%d%s", models.BioImagePrefix, len(items)+1, ext)
		items = append(items, MediaItem{Filename: name, Blob: BytesBlob(data)})
		return name, nil
	})
	if err != nil {
		return "", nil, err
	}

	return rewritten, items, nil
}

// decodeDataURL returns the media type and payload of a data: URL
func decodeDataURL(src string) (string, []byte, error) {
	du, err := dataurl.DecodeString(strings.TrimSpace(src))
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URL: %w", err)
	}
	return du.MediaType.ContentType(), du.Data, nil
}
