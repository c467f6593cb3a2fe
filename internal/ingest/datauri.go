package ingest

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrNotDataURI is returned when decoding a reference which is not a base64 data URI.
var ErrNotDataURI = errors.New("not a base64 data URI")

const (
	dataURIPrefix = "data:"
	base64Marker  = ";base64,"
)

// EncodeDataURI returns data as a base64 data URI of the given MIME type.
func EncodeDataURI(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(dataURIPrefix) + len(mimeType) + len(base64Marker) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURIPrefix)
	b.WriteString(mimeType)
	b.WriteString(base64Marker)
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DecodeDataURI returns the MIME type and bytes of a base64 data URI.
func DecodeDataURI(ref string) (string, []byte, error) {
	mimeType, payload, err := splitDataURI(ref)
	if err != nil {
		return "", nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}

// DataURISize returns the number of bytes held by a base64 data URI without decoding it.
func DataURISize(ref string) (int64, error) {
	_, payload, err := splitDataURI(ref)
	if err != nil {
		return 0, err
	}
	padding := len(payload) - len(strings.TrimRight(payload, "="))
	return int64(base64.StdEncoding.DecodedLen(len(payload)) - padding), nil
}

func splitDataURI(ref string) (mimeType, payload string, err error) {
	if !strings.HasPrefix(ref, dataURIPrefix) {
		return "", "", ErrNotDataURI
	}
	header, payload, ok := strings.Cut(ref[len(dataURIPrefix):], ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", "", ErrNotDataURI
	}
	return strings.TrimSuffix(header, ";base64"), payload, nil
}
