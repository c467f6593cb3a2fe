package model

// Recent wallpaper limits
const (
	RecentGlobalCap      = 12
	RecentPerPlatformCap = 6
)

// RecentItem is one entry of the recently used wallpapers list.
// Timestamp only orders items by creation, it is not a wall clock value.
type RecentItem struct {
	Data      string     `json:"data"`
	MIMEType  string     `json:"type"`
	Platform  PlatformID `json:"platform"`
	FileName  string     `json:"fileName"`
	Timestamp int64      `json:"timestamp"`
	MediaKind MediaKind  `json:"mediaType"`
}

// SameContent reports whether both items refer to the same media on the same platform.
func (r RecentItem) SameContent(other RecentItem) bool {
	return r.Data == other.Data && r.Platform == other.Platform && r.MediaKind == other.MediaKind
}

// DisplayName returns the file name, or a placeholder for unnamed uploads.
func (r RecentItem) DisplayName() string {
	if r.FileName == "" {
		return "Unnamed"
	}
	return r.FileName
}
