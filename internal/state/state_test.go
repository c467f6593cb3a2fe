package state_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/state"
)

func newState() *state.State {
	return state.New(model.DefaultCatalog(), state.WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestNew(t *testing.T) {
	s := newState()
	for _, p := range model.Platforms() {
		assert.Equal(t, model.DefaultWallpaper, s.Wallpaper(p).Ref)
		assert.True(t, s.Wallpaper(p).IsDefault())
		assert.Equal(t, model.DefaultFilters(), s.Filters(p))
		assert.Equal(t, model.DefaultCatalog().For(p), s.Apps(p))
		assert.Equal(t, model.ScreenLock, s.ScreenMode(p))
		assert.Nil(t, s.Upload(p, model.MediaImage))
		assert.Nil(t, s.Upload(p, model.MediaVideo))
		assert.False(t, s.IsDirty(p))
	}
	c, ok := s.Chrome(model.PlatformD)
	require.True(t, ok)
	assert.Equal(t, model.DefaultChrome(), c)
	_, ok = s.Chrome(model.PlatformA)
	assert.False(t, ok)
}

func TestSetWallpaper(t *testing.T) {
	s := newState()
	var changes []state.Change
	s.OnChanged("test", func(c state.Change) {
		changes = append(changes, c)
	})
	media := model.UploadSlot{Data: "data:image/png;base64,AAAA", Name: "a.png", MIMEType: "image/png"}

	s.SetWallpaper(model.PlatformA, media, model.MediaImage)

	assert.Equal(t, model.Wallpaper{Ref: media.Data, Kind: model.MediaImage}, s.Wallpaper(model.PlatformA))
	assert.Equal(t, &media, s.Upload(model.PlatformA, model.MediaImage))
	assert.Nil(t, s.Upload(model.PlatformA, model.MediaVideo))
	assert.True(t, s.IsDirty(model.PlatformA))
	assert.Equal(t, []model.PlatformID{model.PlatformA}, s.DirtyPlatforms())
	assert.Equal(t, []state.Change{{Platform: model.PlatformA, Kind: state.ChangeWallpaper}}, changes)
	assert.Equal(t, model.DefaultWallpaper, s.Wallpaper(model.PlatformB).Ref)

	s.ClearDirty(model.PlatformA)
	assert.Empty(t, s.DirtyPlatforms())

	s.RemoveListener("test")
	s.SetWallpaper(model.PlatformA, media, model.MediaImage)
	assert.Len(t, changes, 1)
}

func TestResetPlatform(t *testing.T) {
	t.Run("restores filters and wallpaper but keeps apps", func(t *testing.T) {
		s := newState()
		s.SetWallpaper(model.PlatformB, model.UploadSlot{Data: "x"}, model.MediaVideo)
		s.SetFilters(model.PlatformB, model.FilterSettings{Brightness: 150, Contrast: 20, Blur: 5})
		s.RemoveApp(model.PlatformB, 0)
		apps := s.Apps(model.PlatformB)

		s.ResetPlatform(model.PlatformB)

		assert.Equal(t, model.FilterSettings{Brightness: 100, Contrast: 100, Blur: 0}, s.Filters(model.PlatformB))
		assert.True(t, s.Wallpaper(model.PlatformB).IsDefault())
		assert.Nil(t, s.Upload(model.PlatformB, model.MediaVideo))
		assert.Equal(t, apps, s.Apps(model.PlatformB))
	})
	t.Run("restores chrome settings", func(t *testing.T) {
		s := newState()
		for _, e := range model.ChromeElements() {
			s.SetChrome(model.PlatformD, e, false)
		}
		s.SetScreenMode(model.PlatformD, model.ScreenHome)

		s.ResetPlatform(model.PlatformD)

		c, _ := s.Chrome(model.PlatformD)
		assert.Equal(t, model.ChromeSettings{Dock: true, MenuBar: true, DesktopIcons: true, Widgets: true}, c)
		assert.Equal(t, model.ScreenLock, s.ScreenMode(model.PlatformD))
	})
	t.Run("other platforms are untouched", func(t *testing.T) {
		s := newState()
		s.SetFilter(model.PlatformA, model.FilterBlur, 9)
		s.ResetPlatform(model.PlatformC)
		assert.Equal(t, 9, s.Filters(model.PlatformA).Blur)
	})
}

func TestAddApp(t *testing.T) {
	t.Run("never adds duplicates and reports exhaustion", func(t *testing.T) {
		s := newState()
		for len(s.Apps(model.PlatformA)) > 0 {
			s.RemoveApp(model.PlatformA, 0)
		}
		catalog := model.DefaultCatalog().For(model.PlatformA)
		for range catalog {
			_, err := s.AddApp(model.PlatformA)
			require.NoError(t, err)
		}
		names := make(map[string]bool)
		for _, a := range s.Apps(model.PlatformA) {
			assert.False(t, names[a.Name], "duplicate %s", a.Name)
			names[a.Name] = true
		}
		assert.Len(t, names, len(catalog))

		before := s.Apps(model.PlatformA)
		_, err := s.AddApp(model.PlatformA)
		assert.True(t, errors.Is(err, state.ErrNoAppsAvailable))
		assert.Equal(t, before, s.Apps(model.PlatformA))
	})
	t.Run("picks a missing app", func(t *testing.T) {
		s := newState()
		removed, ok := s.RemoveApp(model.PlatformD, 2)
		require.True(t, ok)
		got, err := s.AddApp(model.PlatformD)
		require.NoError(t, err)
		assert.Equal(t, removed, got)
		apps := s.Apps(model.PlatformD)
		assert.Equal(t, removed, apps[len(apps)-1])
	})
	t.Run("platform without catalog", func(t *testing.T) {
		s := newState()
		_, err := s.AddApp(model.PlatformC)
		assert.ErrorIs(t, err, state.ErrNoAppsAvailable)
		assert.Empty(t, s.Apps(model.PlatformC))
	})
}

func TestRemoveApp(t *testing.T) {
	s := newState()
	before := s.Apps(model.PlatformA)

	for _, i := range []int{-1, len(before), len(before) + 10} {
		_, ok := s.RemoveApp(model.PlatformA, i)
		assert.False(t, ok)
		assert.Equal(t, before, s.Apps(model.PlatformA))
	}
	assert.False(t, s.IsDirty(model.PlatformA))

	removed, ok := s.RemoveApp(model.PlatformA, 1)
	require.True(t, ok)
	assert.Equal(t, before[1], removed)
	assert.Equal(t, append(before[:1:1], before[2:]...), s.Apps(model.PlatformA))
}

func TestSetFilter(t *testing.T) {
	s := newState()
	s.SetFilter(model.PlatformC, model.FilterBrightness, 250)
	s.SetFilter(model.PlatformC, model.FilterContrast, 40)
	s.SetFilter(model.PlatformC, model.FilterBlur, -3)
	assert.Equal(t, model.FilterSettings{Brightness: 200, Contrast: 40, Blur: 0}, s.Filters(model.PlatformC))
}

func TestSetChromeIgnoresPlatformsWithoutChrome(t *testing.T) {
	s := newState()
	s.SetChrome(model.PlatformA, model.ChromeDock, false)
	c, _ := s.Chrome(model.PlatformD)
	assert.True(t, c.Dock)
	assert.False(t, s.IsDirty(model.PlatformA))
}

func TestUnknownPlatformIsIgnored(t *testing.T) {
	s := newState()
	s.SetWallpaper("X", model.UploadSlot{Data: "x"}, model.MediaImage)
	s.ResetPlatform("X")
	_, ok := s.RemoveApp("X", 0)
	assert.False(t, ok)
	assert.Empty(t, s.DirtyPlatforms())
}

func TestSnapshot(t *testing.T) {
	s := newState()
	s.SetWallpaper(model.PlatformA, model.UploadSlot{Data: "ref"}, model.MediaImage)
	snap := s.Snapshot()
	assert.Equal(t, "ref", snap.Wallpapers[model.PlatformA])
	assert.Len(t, snap.Platforms(), 4)

	snap.Apps[model.PlatformA][0].Name = "changed"
	assert.NotEqual(t, "changed", s.Apps(model.PlatformA)[0].Name)
}
