// Package archive packs an employee record, its contact card and media into a
// single zip laid out as <slug>/{data.json, contact.vcf, headshot.<ext>, media...}.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/models"
)

// Input is everything one archive is built from
type Input struct {
	Record      *models.EmployeeRecord
	ContactCard string
	Headshot    Blob
	Media       []MediaItem
}

// Archive is the packaged, downloadable employee card
type Archive struct {
	Slug     string
	Filename string
	Content  []byte
	// Record is the record as serialized into data.json
	Record *models.EmployeeRecord
}

// Builder assembles archives. It holds no state between builds.
type Builder struct{}

// NewBuilder creates a new archive builder
func NewBuilder() *Builder {
	return &Builder{}
}

type entry struct {
	name string
	blob Blob
}

// Build extracts inline bio images, serializes the record and writes every
// entry. Any failure returns a *errors.PackagingError and no archive.
func (b *Builder) Build(in Input) (*Archive, error) {
	if in.Record == nil {
		return nil, apperrors.NewPackagingError(fmt.Errorf("record is missing"))
	}
	if in.Headshot == nil {
		return nil, apperrors.NewPackagingError(apperrors.ErrHeadshotMissing)
	}

	rec := in.Record.Clone()

	bioHTML, bioImages, err := ExtractInlineImages(rec.BioHTML)
	if err != nil {
		return nil, apperrors.NewPackagingError(err)
	}
	rec.BioHTML = bioHTML

	media := make([]MediaItem, 0, len(in.Media)+len(bioImages))
	media = append(media, in.Media...)
	media = append(media, bioImages...)

	rec.Media = make([]string, 0, len(media))
	for _, m := range media {
		rec.Media = append(rec.Media, m.Filename)
	}

	data, err := encodeRecord(rec)
	if err != nil {
		return nil, apperrors.NewPackagingError(fmt.Errorf("serialize record: %w", err))
	}

	entries := newEntrySet()
	entries.put(models.RecordFileName, BytesBlob(data))
	entries.put(models.ContactCardFileName, BytesBlob(in.ContactCard))
	entries.put(rec.Headshot, in.Headshot)
	for _, m := range media {
		entries.put(m.Filename, m.Blob)
	}

	content, err := writeZip(rec.Slug, entries.list)
	if err != nil {
		return nil, apperrors.NewPackagingError(err)
	}

	return &Archive{
		Slug:     rec.Slug,
		Filename: models.EmployeeCardDownloadName(rec.Slug),
		Content:  content,
		Record:   rec,
	}, nil
}

// encodeRecord pretty-prints the record without escaping the bio markup
func encodeRecord(rec *models.EmployeeRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// entrySet keeps insertion order; a repeated name replaces the earlier blob in place.
type entrySet struct {
	list  []entry
	index map[string]int
}

func newEntrySet() *entrySet {
	return &entrySet{index: make(map[string]int)}
}

func (s *entrySet) put(name string, blob Blob) {
	if i, ok := s.index[name]; ok {
		s.list[i].blob = blob
		return
	}
	s.index[name] = len(s.list)
	s.list = append(s.list, entry{name: name, blob: blob})
}

func writeZip(folder string, entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if _, err := zw.CreateHeader(&zip.FileHeader{Name: folder + "/", Method: zip.Store}); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", folder, err)
	}

	for _, e := range entries {
		if e.blob == nil {
			return nil, fmt.Errorf("entry %s has no content", e.name)
		}
		if err := writeEntry(zw, folder+"/"+e.name, e.blob); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, blob Blob) error {
	rc, err := blob.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
