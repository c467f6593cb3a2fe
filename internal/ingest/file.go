package ingest

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// extensionTypes maps the extensions of supported media to their MIME types.
// Hosts without a mime.types file know none of the video types.
var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
}

// UploadExtensions returns the sorted extensions of supported media.
func UploadExtensions() []string {
	return slices.Sorted(maps.Keys(extensionTypes))
}

// File is an upload candidate.
type File interface {
	Name() string
	MIMEType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

type bytesFile struct {
	name     string
	mimeType string
	data     []byte
}

// NewBytesFile returns a File backed by data.
func NewBytesFile(name, mimeType string, data []byte) File {
	return &bytesFile{name: name, mimeType: mimeType, data: data}
}

func (f *bytesFile) Name() string     { return f.name }
func (f *bytesFile) MIMEType() string { return f.mimeType }
func (f *bytesFile) Size() int64      { return int64(len(f.data)) }

func (f *bytesFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

type localFile struct {
	path     string
	mimeType string
	size     int64
}

// NewLocalFile returns a File for a path on disk.
// The type of supported media is derived from the file extension,
// other files fall back to mimeType.
func NewLocalFile(path, mimeType string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("upload is a directory: %s", path)
	}
	ext := filepath.Ext(path)
	if t, ok := extensionTypes[strings.ToLower(ext)]; ok {
		mimeType = t
	} else if mimeType == "" || mimeType == "application/octet-stream" {
		if t := mime.TypeByExtension(ext); t != "" {
			mimeType = t
		}
	}
	return &localFile{path: path, mimeType: mimeType, size: info.Size()}, nil
}

func (f *localFile) Name() string     { return filepath.Base(f.path) }
func (f *localFile) MIMEType() string { return f.mimeType }
func (f *localFile) Size() int64      { return f.size }

func (f *localFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
