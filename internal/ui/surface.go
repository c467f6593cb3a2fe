package ui

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"

	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/poster"
	"github.com/ytget/skin-preview/internal/projector"
)

// WallpaperSurface shows the wallpaper of one platform with its filters applied.
// Videos are shown as their first frame once it has been extracted.
type WallpaperSurface struct {
	widget.BaseWidget

	platform model.PlatformID
	size     fyne.Size
	poster   poster.Extractor

	frame    *canvas.Rectangle
	gradient *canvas.LinearGradient
	image    *canvas.Image
	badge    *canvas.Text
	lock     fyne.CanvasObject
	home     fyne.CanvasObject

	source   image.Image
	filters  model.FilterSettings
	videoRef string
	mode     model.ScreenMode
}

var _ projector.Surface = (*WallpaperSurface)(nil)

// NewWallpaperSurface returns a surface of the given size.
// lock and home are the layers shown for each screen mode. extractor may be nil.
func NewWallpaperSurface(p model.PlatformID, size fyne.Size, extractor poster.Extractor, lock, home fyne.CanvasObject) *WallpaperSurface {
	g, _ := parseGradient(model.DefaultWallpaper)
	s := &WallpaperSurface{
		platform: p,
		size:     size,
		poster:   extractor,
		frame:    canvas.NewRectangle(theme.Color(theme.ColorNameShadow)),
		gradient: canvas.NewLinearGradient(g.Start, g.End, g.Angle),
		image:    canvas.NewImageFromImage(nil),
		badge:    canvas.NewText(IconVideo, theme.Color(theme.ColorNameForeground)),
		lock:     lock,
		home:     home,
		filters:  model.DefaultFilters(),
		mode:     model.ScreenLock,
	}
	s.frame.SetMinSize(size)
	s.frame.CornerRadius = theme.Padding() * 4
	s.image.FillMode = canvas.ImageFillStretch
	s.image.Hide()
	s.badge.Hide()
	s.applyMode()
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer returns the renderer of the surface.
func (s *WallpaperSurface) CreateRenderer() fyne.WidgetRenderer {
	layers := []fyne.CanvasObject{s.frame, s.gradient, s.image}
	if s.lock != nil {
		layers = append(layers, s.lock)
	}
	if s.home != nil {
		layers = append(layers, s.home)
	}
	layers = append(layers, container.NewPadded(container.NewVBox(container.NewHBox(s.badge))))
	return widget.NewSimpleRenderer(container.NewStack(layers...))
}

// SetBackgroundImage shows the image stored in a data URI.
func (s *WallpaperSurface) SetBackgroundImage(url string) {
	img, err := s.decode(url)
	if err != nil {
		slog.Warn("Failed to decode wallpaper", "platform", s.platform, "error", err)
		s.ResetBackground(model.DefaultWallpaper)
		return
	}
	s.videoRef = ""
	s.badge.Hide()
	s.source = img
	s.render()
}

// SetBackgroundVideo shows the first frame of a video stored in a data URI.
func (s *WallpaperSurface) SetBackgroundVideo(url string) {
	s.videoRef = url
	s.badge.Show()
	s.source = nil
	if s.poster != nil {
		if frame, ok := s.poster.Frame(url); ok {
			s.source = s.fit(frame)
		} else if _, err := s.poster.StartExtraction(url); err != nil {
			slog.Warn("Failed to start poster extraction", "platform", s.platform, "error", err)
		}
	}
	s.render()
}

// ResetBackground shows a two stop gradient.
func (s *WallpaperSurface) ResetBackground(desc string) {
	g, err := parseGradient(desc)
	if err != nil {
		slog.Debug("Using fallback gradient", "error", err)
	}
	s.gradient.StartColor = g.Start
	s.gradient.EndColor = g.End
	s.gradient.Angle = g.Angle
	s.videoRef = ""
	s.badge.Hide()
	s.source = nil
	s.render()
}

// SetFilterDescriptor applies a filter chain to the background.
func (s *WallpaperSurface) SetFilterDescriptor(desc string) {
	f, err := projector.ParseFilterDescriptor(desc)
	if err != nil {
		slog.Warn("Ignoring filter descriptor", "platform", s.platform, "error", err)
		return
	}
	if f == s.filters {
		return
	}
	s.filters = f
	s.render()
}

// DisplayMode returns the shown screen.
func (s *WallpaperSurface) DisplayMode() model.ScreenMode {
	return s.mode
}

// SetDisplayMode switches between the lock and the home screen.
func (s *WallpaperSurface) SetDisplayMode(mode model.ScreenMode) {
	s.mode = mode
	s.applyMode()
}

// Filters returns the filters currently applied.
func (s *WallpaperSurface) Filters() model.FilterSettings {
	return s.filters
}

// HasImage reports whether an image or video frame is shown instead of a gradient.
func (s *WallpaperSurface) HasImage() bool {
	return s.source != nil
}

// IsVideo reports whether the wallpaper is a video.
func (s *WallpaperSurface) IsVideo() bool {
	return s.videoRef != ""
}

// PosterReady shows the video frame if it has been extracted since the video was set.
func (s *WallpaperSurface) PosterReady() {
	if s.videoRef == "" || s.source != nil || s.poster == nil {
		return
	}
	frame, ok := s.poster.Frame(s.videoRef)
	if !ok {
		return
	}
	s.source = s.fit(frame)
	s.render()
}

func (s *WallpaperSurface) applyMode() {
	if s.lock == nil || s.home == nil {
		return
	}
	if s.mode == model.ScreenHome {
		s.lock.Hide()
		s.home.Show()
	} else {
		s.home.Hide()
		s.lock.Show()
	}
}

func (s *WallpaperSurface) render() {
	if s.source == nil {
		s.image.Hide()
		s.gradient.Show()
		s.gradient.Refresh()
		return
	}
	s.image.Image = projector.Render(s.source, s.filters)
	s.gradient.Hide()
	s.image.Show()
	s.image.Refresh()
}

func (s *WallpaperSurface) decode(url string) (image.Image, error) {
	_, data, err := ingest.DecodeDataURI(url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return s.fit(img), nil
}

// fit scales img down to the preview size so filters stay cheap.
func (s *WallpaperSurface) fit(img image.Image) image.Image {
	return fitImage(img, int(s.size.Width), int(s.size.Height))
}

func fitImage(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return img
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return transform.Resize(img, max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale)), transform.Linear)
}
