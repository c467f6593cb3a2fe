// Package state holds the in-memory customization of every platform.
//
// A single State value is owned by the application and passed to the
// components which need it. All mutations go through methods; each one marks
// the platform dirty and emits a Change on the changed signal, so views can
// re-render without polling.
package state

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/ErikKalkoken/go-set"
	"github.com/maniartech/signals"

	"github.com/ytget/skin-preview/internal/model"
)

// ErrNoAppsAvailable is returned by AddApp when every catalog app is already installed.
var ErrNoAppsAvailable = errors.New("no more apps available to add")

// ChangeKind tells listeners which part of a platform changed.
type ChangeKind string

const (
	ChangeWallpaper ChangeKind = "wallpaper"
	ChangeFilters   ChangeKind = "filters"
	ChangeApps      ChangeKind = "apps"
	ChangeChrome    ChangeKind = "chrome"
	ChangeScreen    ChangeKind = "screen"
	ChangeReset     ChangeKind = "reset"
)

// Change is emitted after a platform was mutated.
type Change struct {
	Platform model.PlatformID
	Kind     ChangeKind
}

type platformState struct {
	wallpaper model.Wallpaper
	uploads   map[model.MediaKind]*model.UploadSlot
	filters   model.FilterSettings
	apps      []model.AppEntry
	screen    model.ScreenMode
}

// State is the customization of all platforms.
// It is not safe for concurrent use; callers mutate it from the UI goroutine.
type State struct {
	catalog   model.Catalog
	platforms map[model.PlatformID]*platformState
	chrome    model.ChromeSettings
	dirty     set.Set[model.PlatformID]
	changed   signals.Signal[Change]
	intN      func(n int) int
}

// Option configures a State.
type Option func(*State)

// WithRand makes AddApp pick from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(s *State) {
		s.intN = r.IntN
	}
}

// New returns a State with every platform seeded from catalog.
func New(catalog model.Catalog, opts ...Option) *State {
	s := &State{
		catalog:   catalog,
		platforms: make(map[model.PlatformID]*platformState),
		chrome:    model.DefaultChrome(),
		dirty:     set.Of[model.PlatformID](),
		changed:   signals.NewSync[Change](),
		intN:      rand.IntN,
	}
	for _, o := range opts {
		o(s)
	}
	for _, p := range model.Platforms() {
		s.platforms[p] = &platformState{
			wallpaper: model.Wallpaper{Ref: model.DefaultWallpaper},
			uploads:   emptyUploads(),
			filters:   model.DefaultFilters(),
			apps:      catalog.For(p),
			screen:    model.ScreenLock,
		}
	}
	return s
}

func emptyUploads() map[model.MediaKind]*model.UploadSlot {
	return map[model.MediaKind]*model.UploadSlot{
		model.MediaImage: nil,
		model.MediaVideo: nil,
	}
}

// OnChanged registers a listener for changes. The key can be used to remove it again.
func (s *State) OnChanged(key string, listener func(Change)) {
	s.changed.AddListener(func(_ context.Context, c Change) {
		listener(c)
	}, key)
}

// RemoveListener removes the listener registered under key.
func (s *State) RemoveListener(key string) {
	s.changed.RemoveListener(key)
}

func (s *State) lookup(p model.PlatformID) (*platformState, bool) {
	ps, ok := s.platforms[p]
	if !ok {
		slog.Debug("Ignoring unknown platform", "platform", p)
	}
	return ps, ok
}

func (s *State) touch(p model.PlatformID, kind ChangeKind) {
	s.dirty.Add(p)
	s.changed.Emit(context.Background(), Change{Platform: p, Kind: kind})
}

// SetWallpaper makes media the active wallpaper of p and stores it in the upload slot of kind.
// The media is not validated.
func (s *State) SetWallpaper(p model.PlatformID, media model.UploadSlot, kind model.MediaKind) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	slot := media
	ps.uploads[kind] = &slot
	ps.wallpaper = model.Wallpaper{Ref: media.Data, Kind: kind}
	s.touch(p, ChangeWallpaper)
}

// ApplyWallpaper switches the active wallpaper of p without touching the upload slots.
func (s *State) ApplyWallpaper(p model.PlatformID, ref string, kind model.MediaKind) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	ps.wallpaper = model.Wallpaper{Ref: ref, Kind: kind}
	s.touch(p, ChangeWallpaper)
}

// ResetPlatform restores wallpaper, filters and chrome settings of p to their defaults.
// The app list and the recent wallpapers are kept.
func (s *State) ResetPlatform(p model.PlatformID) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	ps.uploads = emptyUploads()
	ps.wallpaper = model.Wallpaper{Ref: model.DefaultWallpaper}
	ps.filters = model.DefaultFilters()
	if p.HasChrome() {
		s.chrome = model.DefaultChrome()
		ps.screen = model.ScreenLock
	}
	s.touch(p, ChangeReset)
}

// AddApp appends a randomly chosen catalog app which is not yet installed on p.
// It returns ErrNoAppsAvailable and leaves the list unchanged when none is left.
func (s *State) AddApp(p model.PlatformID) (model.AppEntry, error) {
	ps, ok := s.lookup(p)
	if !ok {
		return model.AppEntry{}, ErrNoAppsAvailable
	}
	installed := set.Of[string]()
	for _, a := range ps.apps {
		installed.Add(a.Name)
	}
	var available []model.AppEntry
	for _, a := range s.catalog[p] {
		if !installed.Contains(a.Name) {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return model.AppEntry{}, ErrNoAppsAvailable
	}
	app := available[s.intN(len(available))]
	ps.apps = append(ps.apps, app)
	s.touch(p, ChangeApps)
	return app, nil
}

// RemoveApp removes the app at index i from p.
// An index outside the list is ignored and reported by the second return value.
func (s *State) RemoveApp(p model.PlatformID, i int) (model.AppEntry, bool) {
	ps, ok := s.lookup(p)
	if !ok || i < 0 || i >= len(ps.apps) {
		return model.AppEntry{}, false
	}
	removed := ps.apps[i]
	ps.apps = slices.Delete(ps.apps, i, i+1)
	s.touch(p, ChangeApps)
	return removed, true
}

// SetFilter sets one filter value of p. Values are clamped to their range.
func (s *State) SetFilter(p model.PlatformID, kind model.FilterKind, value int) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	ps.filters = ps.filters.With(kind, value)
	s.touch(p, ChangeFilters)
}

// SetFilters replaces all filter values of p.
func (s *State) SetFilters(p model.PlatformID, f model.FilterSettings) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	ps.filters = f.Clamp()
	s.touch(p, ChangeFilters)
}

// SetChrome toggles one chrome element. Platforms without chrome are ignored.
func (s *State) SetChrome(p model.PlatformID, e model.ChromeElement, on bool) {
	if !p.HasChrome() {
		return
	}
	s.chrome = s.chrome.With(e, on)
	s.touch(p, ChangeChrome)
}

// SetScreenMode switches p between lock and home screen.
func (s *State) SetScreenMode(p model.PlatformID, mode model.ScreenMode) {
	ps, ok := s.lookup(p)
	if !ok {
		return
	}
	ps.screen = mode
	s.touch(p, ChangeScreen)
}

// Wallpaper returns the active wallpaper of p.
func (s *State) Wallpaper(p model.PlatformID) model.Wallpaper {
	ps, ok := s.lookup(p)
	if !ok {
		return model.Wallpaper{Ref: model.DefaultWallpaper}
	}
	return ps.wallpaper
}

// Upload returns the upload slot of kind on p, or nil when empty.
func (s *State) Upload(p model.PlatformID, kind model.MediaKind) *model.UploadSlot {
	ps, ok := s.lookup(p)
	if !ok {
		return nil
	}
	slot := ps.uploads[kind]
	if slot == nil {
		return nil
	}
	c := *slot
	return &c
}

// Filters returns the filter values of p.
func (s *State) Filters(p model.PlatformID) model.FilterSettings {
	ps, ok := s.lookup(p)
	if !ok {
		return model.DefaultFilters()
	}
	return ps.filters
}

// Apps returns a copy of the app list of p in display order.
func (s *State) Apps(p model.PlatformID) []model.AppEntry {
	ps, ok := s.lookup(p)
	if !ok {
		return nil
	}
	return slices.Clone(ps.apps)
}

// Chrome returns the chrome settings. ok is false for platforms without chrome.
func (s *State) Chrome(p model.PlatformID) (model.ChromeSettings, bool) {
	if !p.HasChrome() {
		return model.ChromeSettings{}, false
	}
	return s.chrome, true
}

// ScreenMode returns the screen p is showing.
func (s *State) ScreenMode(p model.PlatformID) model.ScreenMode {
	ps, ok := s.lookup(p)
	if !ok {
		return model.ScreenLock
	}
	return ps.screen
}

// IsDirty reports whether p changed since it was last cleared.
func (s *State) IsDirty(p model.PlatformID) bool {
	return s.dirty.Contains(p)
}

// DirtyPlatforms returns the platforms changed since they were last cleared, in display order.
func (s *State) DirtyPlatforms() []model.PlatformID {
	var out []model.PlatformID
	for _, p := range model.Platforms() {
		if s.dirty.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// ClearDirty marks p as rendered.
func (s *State) ClearDirty(p model.PlatformID) {
	s.dirty.Delete(p)
}
