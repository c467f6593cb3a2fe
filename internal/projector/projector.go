// Package projector renders platform state onto visual surfaces.
package projector

import (
	"fmt"
	"log/slog"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/state"
)

// Surface is the wallpaper area of one platform.
type Surface interface {
	SetBackgroundImage(url string)
	SetBackgroundVideo(url string)
	ResetBackground(gradient string)
	SetFilterDescriptor(descriptor string)
	DisplayMode() model.ScreenMode
	SetDisplayMode(mode model.ScreenMode)
}

// ChromeSurface shows the desktop chrome elements of a platform.
type ChromeSurface interface {
	SetChromeVisibility(element model.ChromeElement, v Visibility)
}

// Visibility is how a chrome element is shown.
type Visibility struct {
	Visible     bool
	Interactive bool
}

// ChromeVisibility maps a chrome toggle to its visibility.
func ChromeVisibility(on bool) Visibility {
	return Visibility{Visible: on, Interactive: on}
}

// FilterDescriptor returns the filter chain for f.
// The order brightness, contrast, blur is significant.
func FilterDescriptor(f model.FilterSettings) string {
	return fmt.Sprintf("brightness(%d%%) contrast(%d%%) blur(%dpx)", f.Brightness, f.Contrast, f.Blur)
}

// ParseFilterDescriptor reads a descriptor produced by FilterDescriptor.
func ParseFilterDescriptor(desc string) (model.FilterSettings, error) {
	var f model.FilterSettings
	if _, err := fmt.Sscanf(desc, "brightness(%d%%) contrast(%d%%) blur(%dpx)", &f.Brightness, &f.Contrast, &f.Blur); err != nil {
		return model.DefaultFilters(), fmt.Errorf("parse filter descriptor %q: %w", desc, err)
	}
	return f, nil
}

// Projector renders one platform.
type Projector struct {
	platform model.PlatformID
	state    *state.State
	surface  Surface
	chrome   ChromeSurface
}

// New returns a projector for platform p. chrome may be nil.
func New(p model.PlatformID, st *state.State, surface Surface, chrome ChromeSurface) *Projector {
	return &Projector{platform: p, state: st, surface: surface, chrome: chrome}
}

// Platform returns the platform rendered by this projector.
func (pr *Projector) Platform() model.PlatformID {
	return pr.platform
}

// Project renders everything and clears the dirty mark of the platform.
func (pr *Projector) Project() {
	pr.projectWallpaper()
	pr.projectFilters()
	pr.projectScreen()
	pr.projectChrome()
	pr.state.ClearDirty(pr.platform)
}

func (pr *Projector) apply(kind state.ChangeKind) {
	switch kind {
	case state.ChangeWallpaper:
		pr.projectWallpaper()
		pr.projectFilters()
	case state.ChangeFilters:
		pr.projectFilters()
	case state.ChangeChrome:
		pr.projectChrome()
	case state.ChangeScreen:
		pr.projectScreen()
	case state.ChangeApps:
		// app grids are rendered by the skin, nothing to project
	default:
		pr.Project()
		return
	}
	pr.state.ClearDirty(pr.platform)
}

func (pr *Projector) projectWallpaper() {
	w := pr.state.Wallpaper(pr.platform)
	switch w.Kind {
	case model.MediaImage:
		pr.surface.SetBackgroundImage(w.Ref)
	case model.MediaVideo:
		pr.surface.SetBackgroundVideo(w.Ref)
	default:
		pr.surface.ResetBackground(model.DefaultWallpaper)
	}
}

// projectFilters applies the same descriptor to the still and the video background.
func (pr *Projector) projectFilters() {
	pr.surface.SetFilterDescriptor(FilterDescriptor(pr.state.Filters(pr.platform)))
}

func (pr *Projector) projectScreen() {
	mode := pr.state.ScreenMode(pr.platform)
	if pr.surface.DisplayMode() != mode {
		pr.surface.SetDisplayMode(mode)
	}
}

func (pr *Projector) projectChrome() {
	c, ok := pr.state.Chrome(pr.platform)
	if !ok || pr.chrome == nil {
		return
	}
	for _, e := range model.ChromeElements() {
		pr.chrome.SetChromeVisibility(e, ChromeVisibility(c.Get(e)))
	}
}

// Hub routes state changes to the projector of each platform.
type Hub struct {
	state      *state.State
	projectors map[model.PlatformID]*Projector
}

// listenerKey identifies the hub's listener on the state.
const listenerKey = "projector"

// NewHub returns a hub for st. Call Attach to start following changes.
func NewHub(st *state.State) *Hub {
	return &Hub{state: st, projectors: make(map[model.PlatformID]*Projector)}
}

// Register adds the surfaces of platform p.
func (h *Hub) Register(p model.PlatformID, surface Surface, chrome ChromeSurface) *Projector {
	pr := New(p, h.state, surface, chrome)
	h.projectors[p] = pr
	return pr
}

// Attach makes the hub re-render a platform every time it changes.
func (h *Hub) Attach() {
	h.state.OnChanged(listenerKey, func(c state.Change) {
		pr, ok := h.lookup(c.Platform)
		if !ok {
			return
		}
		pr.apply(c.Kind)
	})
}

// Detach stops following changes.
func (h *Hub) Detach() {
	h.state.RemoveListener(listenerKey)
}

// Project renders platform p. Platforms without a surface are skipped.
func (h *Hub) Project(p model.PlatformID) {
	pr, ok := h.lookup(p)
	if !ok {
		return
	}
	pr.Project()
}

// ProjectAll renders every registered platform.
func (h *Hub) ProjectAll() {
	for _, p := range model.Platforms() {
		if _, ok := h.projectors[p]; ok {
			h.Project(p)
		}
	}
}

func (h *Hub) lookup(p model.PlatformID) (*Projector, bool) {
	pr, ok := h.projectors[p]
	if !ok {
		slog.Warn("No surface for platform, skipping render", "platform", p)
	}
	return pr, ok
}
