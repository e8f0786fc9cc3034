package archive

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
)

// Blob is a readable byte source for one archive entry
type Blob interface {
	Open() (io.ReadCloser, error)
}

// BytesBlob is an in-memory blob
type BytesBlob []byte

func (b BytesBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// FileBlob reads a file from disk when opened
type FileBlob string

func (f FileBlob) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// FormFileBlob adapts an uploaded multipart file
type FormFileBlob struct {
	Header *multipart.FileHeader
}

func (f FormFileBlob) Open() (io.ReadCloser, error) {
	return f.Header.Open()
}

// MediaItem is an auxiliary image or animation stored under its own filename
type MediaItem struct {
	Filename string
	Blob     Blob
}

// ReadAll opens and drains a blob
func ReadAll(b Blob) ([]byte, error) {
	rc, err := b.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
