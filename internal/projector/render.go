package projector

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"

	"github.com/ytget/skin-preview/internal/model"
)

// Render applies f to img in the order brightness, contrast, blur.
// Neutral values are skipped, so a default filter returns img itself.
func Render(img image.Image, f model.FilterSettings) image.Image {
	f = f.Clamp()
	out := img
	if f.Brightness != model.DefaultBrightness {
		out = adjust.Brightness(out, percentToChange(f.Brightness))
	}
	if f.Contrast != model.DefaultContrast {
		out = adjust.Contrast(out, percentToChange(f.Contrast))
	}
	if f.Blur > 0 {
		out = blur.Gaussian(out, float64(f.Blur))
	}
	return out
}

// percentToChange converts a percentage where 100 is neutral to bild's [-1, 1] range.
func percentToChange(pct int) float64 {
	return float64(pct)/100 - 1
}
