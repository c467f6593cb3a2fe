package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/state"
)

// appIcons maps catalog icon names to theme icons.
var appIcons = map[string]fyne.ThemeIconName{
	"fa-envelope":  theme.IconNameMailCompose,
	"fa-camera":    theme.IconNameMediaPhoto,
	"fa-music":     theme.IconNameMediaMusic,
	"fa-youtube":   theme.IconNameMediaVideo,
	"fa-instagram": theme.IconNameMediaPhoto,
	"fa-safari":    theme.IconNameSearch,
	"fa-chrome":    theme.IconNameSearch,
	"fa-map":       theme.IconNameNavigateNext,
	"fa-message":   theme.IconNameMailSend,
	"fa-folder":    theme.IconNameFolder,
	"fa-cog":       theme.IconNameSettings,
	"fa-store":     theme.IconNameStorage,
	"fa-terminal":  theme.IconNameComputer,
	"fa-phone":     theme.IconNameAccount,
}

// appIconResource returns the theme icon for a catalog icon name such as "fas fa-music".
func appIconResource(icon string) fyne.Resource {
	for _, part := range strings.Fields(icon) {
		if name, ok := appIcons[part]; ok {
			return theme.DefaultTheme().Icon(name)
		}
	}
	return theme.DefaultTheme().Icon(theme.IconNameInfo)
}

// appTile is a tappable app icon with its name.
type appTile struct {
	widget.BaseWidget
	entry    model.AppEntry
	removing bool
	onTapped func()
}

func newAppTile(entry model.AppEntry, removing bool, onTapped func()) *appTile {
	t := &appTile{entry: entry, removing: removing, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *appTile) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(hexColor(strings.TrimPrefix(t.entry.Color, "#")))
	bg.CornerRadius = AppIconSize / 4
	bg.SetMinSize(fyne.NewSize(AppIconSize, AppIconSize))
	icon := widget.NewIcon(appIconResource(t.entry.Icon))
	label := canvas.NewText(t.entry.Name, theme.Color(theme.ColorNameForeground))
	label.TextSize = theme.CaptionTextSize()
	label.Alignment = fyne.TextAlignCenter
	objects := []fyne.CanvasObject{bg, container.NewPadded(icon)}
	if t.removing {
		badge := canvas.NewText(IconClose, theme.Color(theme.ColorNameError))
		badge.TextStyle.Bold = true
		objects = append(objects, container.NewHBox(badge))
	}
	return widget.NewSimpleRenderer(container.NewVBox(container.NewStack(objects...), label))
}

// Tapped calls the tap handler
func (t *appTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// AppGrid shows the apps of one platform. In remove mode a tap removes the app.
type AppGrid struct {
	platform     model.PlatformID
	state        *state.State
	localization *Localization
	notifier     model.Notifier

	removeMode bool
	grid       *fyne.Container
}

// NewAppGrid creates the app grid of platform p
func NewAppGrid(p model.PlatformID, st *state.State, localization *Localization, notifier model.Notifier, columns int) *AppGrid {
	g := &AppGrid{
		platform:     p,
		state:        st,
		localization: localization,
		notifier:     notifier,
		grid:         container.NewGridWithColumns(columns),
	}
	g.Rebuild()
	return g
}

// Container returns the grid container
func (g *AppGrid) Container() *fyne.Container {
	return g.grid
}

// RemoveMode reports whether taps remove apps
func (g *AppGrid) RemoveMode() bool {
	return g.removeMode
}

// SetRemoveMode toggles removal on tap
func (g *AppGrid) SetRemoveMode(on bool) {
	if g.removeMode == on {
		return
	}
	g.removeMode = on
	if on {
		g.notifier.Notify(g.localization.GetText(KeyRemoveHint), model.SeverityInfo)
	}
	g.Rebuild()
}

// Rebuild recreates the tiles from state
func (g *AppGrid) Rebuild() {
	apps := g.state.Apps(g.platform)
	objects := make([]fyne.CanvasObject, 0, len(apps))
	for i, app := range apps {
		index := i
		objects = append(objects, newAppTile(app, g.removeMode, func() {
			g.onAppTapped(index)
		}))
	}
	g.grid.Objects = objects
	g.grid.Refresh()
}

// AddApp adds a random catalog app
func (g *AppGrid) AddApp() {
	app, err := g.state.AddApp(g.platform)
	if err != nil {
		g.notifier.Notify(g.localization.GetText(KeyNoMoreApps), model.SeverityWarning)
		return
	}
	g.notifier.Notify(fmt.Sprintf(g.localization.GetText(KeyAppAdded), app.Name), model.SeveritySuccess)
}

func (g *AppGrid) onAppTapped(index int) {
	if !g.removeMode {
		return
	}
	g.removeMode = false
	app, ok := g.state.RemoveApp(g.platform, index)
	if !ok {
		g.Rebuild()
		return
	}
	g.notifier.Notify(fmt.Sprintf(g.localization.GetText(KeyAppRemoved), app.Name), model.SeveritySuccess)
}
