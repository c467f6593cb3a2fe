package ingest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ytget/skin-preview/internal/model"
)

// MiB is the number of bytes in one mebibyte.
const MiB = 1024 * 1024

// Default upload limits
const (
	DefaultMaxImageBytes = 10 * MiB
	DefaultMaxVideoBytes = 50 * MiB
)

// DefaultAllowedTypes lists the MIME types accepted for wallpapers.
var DefaultAllowedTypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/webp",
	"video/mp4", "video/webm", "video/quicktime",
}

// Rejection reasons
const (
	ReasonUnsupportedType = "unsupported type"
	ReasonTooLargeFormat  = "file too large, max %d MB"
)

// Limits configure validation.
type Limits struct {
	MaxImageBytes int64
	MaxVideoBytes int64
	// AllowedTypes restricts accepted MIME types. Empty means any image or video type.
	AllowedTypes []string
}

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{
		MaxImageBytes: DefaultMaxImageBytes,
		MaxVideoBytes: DefaultMaxVideoBytes,
		AllowedTypes:  slices.Clone(DefaultAllowedTypes),
	}
}

// MaxBytes returns the size ceiling for kind.
func (l Limits) MaxBytes(kind model.MediaKind) int64 {
	if kind == model.MediaVideo {
		return l.MaxVideoBytes
	}
	return l.MaxImageBytes
}

// ValidationError is returned for files the user has to replace.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks type and size of a file and returns its media kind.
func (l Limits) Validate(mimeType string, size int64) (model.MediaKind, error) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	kind, ok := model.KindFromMIME(mt)
	if !ok {
		return "", &ValidationError{Reason: ReasonUnsupportedType}
	}
	if len(l.AllowedTypes) > 0 && !slices.Contains(l.AllowedTypes, mt) {
		return "", &ValidationError{Reason: ReasonUnsupportedType}
	}
	limit := l.MaxBytes(kind)
	if limit > 0 && size > limit {
		return "", tooLarge(limit)
	}
	return kind, nil
}

func tooLarge(limit int64) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(ReasonTooLargeFormat, limit/MiB)}
}
