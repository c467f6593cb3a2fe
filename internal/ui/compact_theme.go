package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes.
// The variant follows the dark mode preference instead of the OS.
type CompactTheme struct {
	dark bool
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme(dark bool) fyne.Theme {
	return &CompactTheme{dark: dark}
}

// IsDark reports whether the theme renders the dark variant.
func (t *CompactTheme) IsDark() bool {
	return t.dark
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := theme.VariantLight
	if t.dark {
		variant = theme.VariantDark
	}
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 52, G: 199, B: 89, A: 255} // Green for applied uploads
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 59, B: 48, A: 255} // Red for rejections
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 149, B: 0, A: 255} // Orange for storage warnings
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 122, B: 255, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns the default fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the default icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size tightens padding and text so the side panel fits next to the preview.
// Captions stay readable under the recent thumbnails.
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	}
	return theme.DefaultTheme().Size(name)
}
