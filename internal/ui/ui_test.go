package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/projector"
	"github.com/ytget/skin-preview/internal/recent"
	"github.com/ytget/skin-preview/internal/state"
	"github.com/ytget/skin-preview/internal/store"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string, _ model.Severity) {
	n.messages = append(n.messages, message)
}

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return ingest.EncodeDataURI("image/png", buf.Bytes())
}

func TestParseGradient(t *testing.T) {
	g, err := parseGradient(model.DefaultWallpaper)
	require.NoError(t, err)
	assert.Equal(t, 135.0, g.Angle)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}, g.Start)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}, g.End)

	g, err = parseGradient("radial-gradient(red, blue)")
	assert.Error(t, err)
	assert.Equal(t, fallbackStart, g.Start)
}

func TestGestureClassify(t *testing.T) {
	h := NewGestureHandler(nil)
	tests := []struct {
		name   string
		dx, dy float32
		d      time.Duration
		want   GestureType
	}{
		{"tap", 2, 2, 50 * time.Millisecond, GestureTap},
		{"long press", 0, 0, time.Second, GestureLongPress},
		{"swipe up", 5, -120, 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", -5, 80, 100 * time.Millisecond, GestureSwipeDown},
		{"swipe left", -90, 10, 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", 90, -10, 100 * time.Millisecond, GestureSwipeRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, h.Classify(tc.dx, tc.dy, tc.d))
		})
	}
}

func TestSwipeArea(t *testing.T) {
	test.NewApp()
	var got []GestureType
	s := NewSwipeArea(func(g GestureType) { got = append(got, g) })

	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -40}})
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -40}})
	s.DragEnd()

	// too short to count
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10}})
	s.DragEnd()

	assert.Equal(t, []GestureType{GestureSwipeUp}, got)
}

func TestWallpaperSurface(t *testing.T) {
	test.NewApp()

	t.Run("image is scaled and filtered", func(t *testing.T) {
		s := NewWallpaperSurface(model.PlatformA, fyne.NewSize(50, 100), nil, nil, nil)
		s.SetBackgroundImage(pngDataURI(t, 400, 400))
		require.True(t, s.HasImage())
		assert.Equal(t, image.Rect(0, 0, 50, 50), s.source.Bounds())

		s.SetFilterDescriptor(projector.FilterDescriptor(model.FilterSettings{Brightness: 0, Contrast: 100}))
		assert.Equal(t, 0, s.Filters().Brightness)
		r, g, b, _ := s.image.Image.At(10, 10).RGBA()
		assert.Zero(t, r+g+b)
	})

	t.Run("undecodable image falls back to gradient", func(t *testing.T) {
		s := NewWallpaperSurface(model.PlatformA, fyne.NewSize(50, 100), nil, nil, nil)
		s.SetBackgroundImage(ingest.EncodeDataURI("image/png", []byte("not png")))
		assert.False(t, s.HasImage())
		assert.True(t, s.gradient.Visible())
	})

	t.Run("video without poster shows placeholder", func(t *testing.T) {
		s := NewWallpaperSurface(model.PlatformB, fyne.NewSize(50, 100), nil, nil, nil)
		s.SetBackgroundVideo(ingest.EncodeDataURI("video/mp4", []byte("mp4")))
		assert.True(t, s.IsVideo())
		assert.False(t, s.HasImage())
		assert.True(t, s.badge.Visible())

		s.ResetBackground(model.DefaultWallpaper)
		assert.False(t, s.IsVideo())
		assert.False(t, s.badge.Visible())
	})

	t.Run("display mode toggles layers", func(t *testing.T) {
		lockLayer := fyne.CanvasObject(newAppTile(model.AppEntry{Name: "lock"}, false, nil))
		homeLayer := fyne.CanvasObject(newAppTile(model.AppEntry{Name: "home"}, false, nil))
		s := NewWallpaperSurface(model.PlatformA, fyne.NewSize(50, 100), nil, lockLayer, homeLayer)
		assert.Equal(t, model.ScreenLock, s.DisplayMode())
		assert.True(t, lockLayer.Visible())
		assert.False(t, homeLayer.Visible())

		s.SetDisplayMode(model.ScreenHome)
		assert.False(t, lockLayer.Visible())
		assert.True(t, homeLayer.Visible())
	})
}

func TestDesktopChrome(t *testing.T) {
	test.NewApp()
	c := NewDesktopChrome(nil)
	for _, e := range model.ChromeElements() {
		assert.True(t, c.IsVisible(e), e)
	}
	c.SetChromeVisibility(model.ChromeDock, projector.ChromeVisibility(false))
	assert.False(t, c.IsVisible(model.ChromeDock))
	assert.True(t, c.IsVisible(model.ChromeMenuBar))

	c.SetChromeVisibility(model.ChromeMenuBar, projector.ChromeVisibility(false))
	for _, b := range c.buttons[model.ChromeMenuBar] {
		assert.True(t, b.Disabled())
	}
}

func TestDevicePreviewWithProjector(t *testing.T) {
	test.NewApp()
	st := state.New(model.DefaultCatalog())
	n := &recordingNotifier{}
	d := NewDevicePreview(model.PlatformD, st, NewLocalization(), n, nil)

	hub := projector.NewHub(st)
	hub.Register(model.PlatformD, d.Surface, d.Chrome)
	hub.Attach()
	defer hub.Detach()
	hub.ProjectAll()

	st.SetChrome(model.PlatformD, model.ChromeWidgets, false)
	assert.False(t, d.Chrome.IsVisible(model.ChromeWidgets))
	assert.True(t, d.Chrome.IsVisible(model.ChromeDock))

	d.onGesture(GestureSwipeUp)
	assert.Equal(t, model.ScreenHome, st.ScreenMode(model.PlatformD))
	assert.Equal(t, model.ScreenHome, d.Surface.DisplayMode())

	st.ResetPlatform(model.PlatformD)
	assert.True(t, d.Chrome.IsVisible(model.ChromeWidgets))
	assert.Equal(t, model.ScreenLock, d.Surface.DisplayMode())
}

func TestAppGrid(t *testing.T) {
	test.NewApp()
	st := state.New(model.DefaultCatalog())
	n := &recordingNotifier{}
	g := NewAppGrid(model.PlatformA, st, NewLocalization(), n, 4)
	st.OnChanged("test", func(state.Change) { g.Rebuild() })
	defer st.RemoveListener("test")

	start := len(st.Apps(model.PlatformA))
	assert.Len(t, g.Container().Objects, start)

	// taps do nothing outside remove mode
	test.Tap(g.Container().Objects[0].(*appTile))
	assert.Len(t, st.Apps(model.PlatformA), start)

	g.SetRemoveMode(true)
	assert.Equal(t, "Click any app to remove it", n.messages[len(n.messages)-1])
	test.Tap(g.Container().Objects[0].(*appTile))
	assert.Len(t, st.Apps(model.PlatformA), start-1)
	assert.Len(t, g.Container().Objects, start-1)
	assert.False(t, g.RemoveMode())

	g.AddApp()
	assert.Len(t, st.Apps(model.PlatformA), start)

	g.AddApp()
	assert.Equal(t, "No more apps available to add", n.messages[len(n.messages)-1])
}

func TestControlPanel(t *testing.T) {
	test.NewApp()
	st := state.New(model.DefaultCatalog())
	loc := NewLocalization()
	n := &recordingNotifier{}
	c := NewControlPanel(model.PlatformD, st, loc, n, nil, nil)

	c.sliders[model.FilterBlur].SetValue(6)
	assert.Equal(t, 6, st.Filters(model.PlatformD).Blur)

	c.checks[model.ChromeDock].SetChecked(false)
	chrome, ok := st.Chrome(model.PlatformD)
	require.True(t, ok)
	assert.False(t, chrome.Dock)

	c.mode.SetSelected(loc.GetText(KeyHomeScreen))
	assert.Equal(t, model.ScreenHome, st.ScreenMode(model.PlatformD))

	c.onReset()
	c.Sync()
	assert.Equal(t, float64(model.DefaultBlur), c.sliders[model.FilterBlur].Value)
	assert.True(t, c.checks[model.ChromeDock].Checked)
	assert.Equal(t, loc.GetText(KeyLockScreen), c.mode.Selected)
	assert.Equal(t, "macOS reset to default", n.messages[len(n.messages)-1])

	// no chrome checks outside platform D
	assert.Empty(t, NewControlPanel(model.PlatformA, st, loc, n, nil, nil).checks)
}

func TestRecentsPanel(t *testing.T) {
	test.NewApp()
	l := recent.New(store.New(store.NewMemoryBackend(), 1<<20), nil)
	var applied []model.RecentItem
	r := NewRecentsPanel(model.PlatformA, NewLocalization(), l.ListFor, func(it model.RecentItem) bool {
		applied = append(applied, it)
		return true
	}, nil, nil)
	l.SetUpdateCallback(r.Rebuild)

	assert.Zero(t, r.Len())
	assert.True(t, r.empty.Visible())

	item, ok := l.NewItem(model.PlatformA, pngDataURI(t, 200, 100), "image/png", "beach.png")
	require.True(t, ok)
	l.Record(item)
	video, ok := l.NewItem(model.PlatformA, ingest.EncodeDataURI("video/mp4", []byte("mp4")), "video/mp4", "clip.mp4")
	require.True(t, ok)
	l.Record(video)
	other, ok := l.NewItem(model.PlatformB, pngDataURI(t, 10, 10), "image/png", "other.png")
	require.True(t, ok)
	l.Record(other)

	require.Equal(t, 2, r.Len())
	assert.False(t, r.empty.Visible())

	first := r.grid.Objects[0].(*recentTile)
	assert.Equal(t, "clip.mp4", first.item.FileName)
	assert.Equal(t, "clip.mp4"+MiddleDotSeparator+"3 B", first.caption)
	assert.Nil(t, first.thumb)
	second := r.grid.Objects[1].(*recentTile)
	require.NotNil(t, second.thumb)
	assert.Equal(t, image.Rect(0, 0, 72, 36), second.thumb.Bounds())
	assert.Contains(t, second.caption, "beach.png")

	test.Tap(second)
	require.Len(t, applied, 1)
	assert.Equal(t, "beach.png", applied[0].FileName)

	l.ClearAll()
	assert.Zero(t, r.Len())
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Skin Preview", l.GetText(KeyAppTitle))
	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Сбросить", l.GetText(KeyReset))
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "missing_key", l.GetText("missing_key"))

	// every language has every key
	for lang, texts := range l.texts {
		assert.Len(t, texts, len(l.texts["en"]), lang)
	}
}

func TestCompactTheme(t *testing.T) {
	dark := NewCompactTheme(true).(*CompactTheme)
	light := NewCompactTheme(false).(*CompactTheme)
	assert.True(t, dark.IsDark())
	assert.NotEqual(t, dark.Color(theme.ColorNameBackground, theme.VariantLight), light.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, color.RGBA{R: 255, G: 59, B: 48, A: 255}, dark.Color(theme.ColorNameError, theme.VariantLight))
	assert.Equal(t, float32(3), dark.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), dark.Size(theme.SizeNameScrollBar))
}

func TestToaster(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()
	toaster := NewToaster(w)

	toaster.show("first", model.SeverityInfo)
	first := toaster.current
	require.NotNil(t, first)
	assert.True(t, first.Visible())

	toaster.show("file too large, max 10 MB", model.SeverityError)
	assert.Equal(t, "file too large, max 10 MB", toaster.Last())
	assert.False(t, first.Visible())
	assert.Equal(t, theme.ColorNameError, severityColor(model.SeverityError))
	assert.Equal(t, theme.ColorNamePrimary, severityColor(model.SeverityInfo))
}
