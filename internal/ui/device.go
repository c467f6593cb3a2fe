package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/poster"
	"github.com/ytget/skin-preview/internal/state"
)

// Phone app grid width
const phoneColumns = 4

// DevicePreview is the simulated screen of one platform.
type DevicePreview struct {
	platform model.PlatformID
	state    *state.State

	Surface *WallpaperSurface
	Chrome  *DesktopChrome
	Apps    *AppGrid

	clock   *canvas.Text
	date    *canvas.Text
	content fyne.CanvasObject
}

// NewDevicePreview builds the preview of platform p
func NewDevicePreview(p model.PlatformID, st *state.State, localization *Localization, notifier model.Notifier, extractor poster.Extractor) *DevicePreview {
	d := &DevicePreview{platform: p, state: st}

	size := fyne.NewSize(PhoneWidth, PhoneHeight)
	if p == model.PlatformC || p == model.PlatformD {
		size = fyne.NewSize(DesktopWidth, DesktopHeight)
	}

	var home fyne.CanvasObject
	switch p {
	case model.PlatformD:
		d.Apps = NewAppGrid(p, st, localization, notifier, len(st.Apps(p))+4)
		d.Chrome = NewDesktopChrome(d.Apps.Container())
		home = d.Chrome.Layout()
	case model.PlatformC:
		start := widget.NewButtonWithIcon("", theme.GridIcon(), nil)
		start.Importance = widget.LowImportance
		bar := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
		bar.SetMinSize(fyne.NewSize(0, DockHeight))
		home = container.NewBorder(nil, container.NewStack(bar, container.NewHBox(start)), nil, nil)
	default:
		d.Apps = NewAppGrid(p, st, localization, notifier, phoneColumns)
		home = container.NewBorder(layout.NewSpacer(), nil, nil, nil, container.NewPadded(container.NewVBox(d.Apps.Container())))
	}

	now := time.Now()
	d.clock = canvas.NewText(now.Format(ClockFormat), theme.Color(theme.ColorNameForeground))
	d.clock.TextSize = theme.TextHeadingSize() * 2
	d.clock.TextStyle.Bold = true
	d.clock.Alignment = fyne.TextAlignCenter
	d.date = canvas.NewText(now.Format(DateFormat), theme.Color(theme.ColorNameForeground))
	d.date.Alignment = fyne.TextAlignCenter
	lockIcon := canvas.NewText(IconLock, theme.Color(theme.ColorNameForeground))
	lockIcon.Alignment = fyne.TextAlignCenter
	lock := container.NewVBox(layout.NewSpacer(), lockIcon, d.clock, d.date, layout.NewSpacer(), layout.NewSpacer())

	d.Surface = NewWallpaperSurface(p, size, extractor, lock, home)
	swipe := NewSwipeArea(d.onGesture)
	d.content = container.NewStack(d.Surface, swipe)
	return d
}

// Platform returns the platform shown
func (d *DevicePreview) Platform() model.PlatformID {
	return d.platform
}

// Content returns the canvas object of the preview
func (d *DevicePreview) Content() fyne.CanvasObject {
	return d.content
}

// Tick updates clocks
func (d *DevicePreview) Tick(now time.Time) {
	d.clock.Text = now.Format(ClockFormat)
	d.clock.Refresh()
	d.date.Text = now.Format(DateFormat)
	d.date.Refresh()
	if d.Chrome != nil {
		d.Chrome.Tick(now)
	}
}

// onGesture unlocks on swipe up and locks on swipe down
func (d *DevicePreview) onGesture(g GestureType) {
	switch g {
	case GestureSwipeUp:
		d.state.SetScreenMode(d.platform, model.ScreenHome)
	case GestureSwipeDown:
		d.state.SetScreenMode(d.platform, model.ScreenLock)
	}
}
