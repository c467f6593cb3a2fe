package state

import (
	"github.com/ytget/skin-preview/internal/model"
)

// Snapshot is a copy of the customization of all platforms.
type Snapshot struct {
	Wallpapers map[model.PlatformID]string
	Filters    map[model.PlatformID]model.FilterSettings
	Apps       map[model.PlatformID][]model.AppEntry
	Chrome     model.ChromeSettings
}

// Snapshot returns a deep copy of the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Wallpapers: make(map[model.PlatformID]string),
		Filters:    make(map[model.PlatformID]model.FilterSettings),
		Apps:       make(map[model.PlatformID][]model.AppEntry),
		Chrome:     s.chrome,
	}
	for _, p := range model.Platforms() {
		snap.Wallpapers[p] = s.Wallpaper(p).Ref
		snap.Filters[p] = s.Filters(p)
		snap.Apps[p] = s.Apps(p)
	}
	return snap
}

// Platforms returns the platforms contained in the snapshot.
func (s Snapshot) Platforms() []model.PlatformID {
	var out []model.PlatformID
	for _, p := range model.Platforms() {
		if _, ok := s.Wallpapers[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
