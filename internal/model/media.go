package model

import "strings"

// MediaKind distinguishes still and moving wallpapers
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaKinds returns the supported media kinds.
func MediaKinds() []MediaKind {
	return []MediaKind{MediaImage, MediaVideo}
}

// KindFromMIME derives the media kind from a MIME type.
// The second value is false when the type is neither image nor video.
func KindFromMIME(mimeType string) (MediaKind, bool) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mt, "image/"):
		return MediaImage, true
	case strings.HasPrefix(mt, "video/"):
		return MediaVideo, true
	}
	return "", false
}

// DefaultWallpaper is the gradient every platform starts with.
const DefaultWallpaper = "linear-gradient(135deg, #ff69b4 0%, #007aff 100%)"

// UploadSlot holds the last upload of one media kind on one platform.
type UploadSlot struct {
	Data     string `json:"data"`
	Name     string `json:"name"`
	MIMEType string `json:"type"`
}

// Wallpaper is the active background of a platform.
// Kind is empty while the default gradient is shown.
type Wallpaper struct {
	Ref  string    `json:"ref"`
	Kind MediaKind `json:"kind,omitempty"`
}

// IsDefault reports whether the wallpaper is the built-in gradient.
func (w Wallpaper) IsDefault() bool {
	return w.Kind == "" || w.Ref == DefaultWallpaper
}
