package model

// AppEntry is one icon on a platform's home screen or dock.
type AppEntry struct {
	Icon  string `json:"icon" yaml:"icon"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Catalog maps each platform to its default apps.
type Catalog map[PlatformID][]AppEntry

// For returns a copy of the catalog entries of p.
func (c Catalog) For(p PlatformID) []AppEntry {
	src := c[p]
	out := make([]AppEntry, len(src))
	copy(out, src)
	return out
}

// DefaultCatalog returns the built-in app catalog.
// Platform C has no app grid and therefore no entries.
func DefaultCatalog() Catalog {
	return Catalog{
		PlatformA: {
			{Icon: "fas fa-phone", Name: "Phone", Color: "#34C759"},
			{Icon: "fas fa-message", Name: "Messages", Color: "#007AFF"},
			{Icon: "fab fa-safari", Name: "Safari", Color: "#FF9500"},
			{Icon: "fas fa-music", Name: "Music", Color: "#FF2D55"},
			{Icon: "fas fa-envelope", Name: "Mail", Color: "#007AFF"},
			{Icon: "fas fa-camera", Name: "Camera", Color: "#5856D6"},
			{Icon: "fas fa-map", Name: "Maps", Color: "#FF9500"},
			{Icon: "fas fa-calendar", Name: "Calendar", Color: "#FF2D55"},
		},
		PlatformB: {
			{Icon: "fas fa-phone", Name: "Phone", Color: "#34C759"},
			{Icon: "fas fa-message", Name: "Messages", Color: "#4285F4"},
			{Icon: "fab fa-chrome", Name: "Chrome", Color: "#EA4335"},
			{Icon: "fas fa-camera", Name: "Camera", Color: "#FBBC05"},
			{Icon: "fas fa-envelope", Name: "Gmail", Color: "#34A853"},
			{Icon: "fab fa-youtube", Name: "YouTube", Color: "#FF0000"},
			{Icon: "fab fa-instagram", Name: "Instagram", Color: "#E4405F"},
			{Icon: "fas fa-map", Name: "Maps", Color: "#4285F4"},
		},
		PlatformC: {},
		PlatformD: {
			{Icon: "fab fa-safari", Name: "Safari", Color: "#1B9CFC"},
			{Icon: "fas fa-envelope", Name: "Mail", Color: "#FF9F43"},
			{Icon: "fas fa-message", Name: "Messages", Color: "#32FF7E"},
			{Icon: "fas fa-music", Name: "Music", Color: "#FF3838"},
		},
	}
}
