package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/skin-preview/internal/ingest"
)

// ErrNotLocalFile is returned for URIs which are not on the local disk.
var ErrNotLocalFile = errors.New("not a local file")

// fileFromURI returns an upload for a dropped or picked URI
func fileFromURI(uri fyne.URI) (ingest.File, error) {
	if uri == nil || uri.Scheme() != "file" {
		return nil, ErrNotLocalFile
	}
	return ingest.NewLocalFile(uri.Path(), uri.MimeType())
}

// uploadFilter limits the open dialog to supported media
func uploadFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter(ingest.UploadExtensions())
}
