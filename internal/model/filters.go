package model

// Filter bounds and defaults
const (
	DefaultBrightness = 100
	DefaultContrast   = 100
	DefaultBlur       = 0

	MaxBrightness = 200
	MaxContrast   = 200
)

// FilterKind names one adjustable filter.
type FilterKind string

const (
	FilterBrightness FilterKind = "brightness"
	FilterContrast   FilterKind = "contrast"
	FilterBlur       FilterKind = "blur"
)

// FilterSettings are the wallpaper adjustments of a platform.
// Brightness and contrast are percentages, blur is in pixels.
type FilterSettings struct {
	Brightness int `json:"brightness" yaml:"brightness"`
	Contrast   int `json:"contrast" yaml:"contrast"`
	Blur       int `json:"blur" yaml:"blur"`
}

// DefaultFilters returns the neutral filter values.
func DefaultFilters() FilterSettings {
	return FilterSettings{
		Brightness: DefaultBrightness,
		Contrast:   DefaultContrast,
		Blur:       DefaultBlur,
	}
}

// IsDefault reports whether f equals the neutral filter values.
func (f FilterSettings) IsDefault() bool {
	return f == DefaultFilters()
}

// Clamp returns a copy of f with every value inside its allowed range.
func (f FilterSettings) Clamp() FilterSettings {
	f.Brightness = clamp(f.Brightness, 0, MaxBrightness)
	f.Contrast = clamp(f.Contrast, 0, MaxContrast)
	if f.Blur < 0 {
		f.Blur = 0
	}
	return f
}

// With returns a copy of f with one filter replaced. Unknown kinds leave f unchanged.
func (f FilterSettings) With(kind FilterKind, value int) FilterSettings {
	switch kind {
	case FilterBrightness:
		f.Brightness = value
	case FilterContrast:
		f.Contrast = value
	case FilterBlur:
		f.Blur = value
	}
	return f.Clamp()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
