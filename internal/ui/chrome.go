package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/projector"
)

// DesktopChrome holds the menu bar, dock, desktop icons and widgets of a desktop skin.
type DesktopChrome struct {
	elements map[model.ChromeElement]fyne.CanvasObject
	buttons  map[model.ChromeElement][]*widget.Button
	clock    *canvas.Text
}

var _ projector.ChromeSurface = (*DesktopChrome)(nil)

// NewDesktopChrome builds the chrome around the dock content
func NewDesktopChrome(dock fyne.CanvasObject) *DesktopChrome {
	c := &DesktopChrome{
		elements: make(map[model.ChromeElement]fyne.CanvasObject),
		buttons:  make(map[model.ChromeElement][]*widget.Button),
		clock:    canvas.NewText(time.Now().Format(ClockFormat), theme.Color(theme.ColorNameForeground)),
	}
	c.clock.TextSize = theme.CaptionTextSize()

	menuBg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	menuBg.SetMinSize(fyne.NewSize(0, MenuBarHeight))
	menuItems := []*widget.Button{
		widget.NewButton("File", nil),
		widget.NewButton("Edit", nil),
		widget.NewButton("View", nil),
	}
	menuRow := container.NewHBox()
	for _, b := range menuItems {
		b.Importance = widget.LowImportance
		menuRow.Add(b)
	}
	c.elements[model.ChromeMenuBar] = container.NewStack(menuBg, container.NewBorder(nil, nil, menuRow, c.clock))
	c.buttons[model.ChromeMenuBar] = menuItems

	dockBg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	dockBg.CornerRadius = DockHeight / 3
	dockBg.SetMinSize(fyne.NewSize(0, DockHeight))
	c.elements[model.ChromeDock] = container.NewCenter(container.NewStack(dockBg, container.NewPadded(dock)))

	icons := []*widget.Button{
		widget.NewButtonWithIcon("Documents", theme.FolderIcon(), nil),
		widget.NewButtonWithIcon("Pictures", theme.FolderIcon(), nil),
	}
	iconColumn := container.NewVBox()
	for _, b := range icons {
		b.Importance = widget.LowImportance
		iconColumn.Add(b)
	}
	c.elements[model.ChromeDesktopIcons] = iconColumn
	c.buttons[model.ChromeDesktopIcons] = icons

	widgetBg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	widgetBg.CornerRadius = theme.Padding() * 3
	widgetBg.SetMinSize(fyne.NewSize(WidgetSize, WidgetSize/2))
	date := canvas.NewText(time.Now().Format(DateFormat), theme.Color(theme.ColorNameForeground))
	date.TextSize = theme.CaptionTextSize()
	c.elements[model.ChromeWidgets] = container.NewStack(widgetBg, container.NewCenter(date))
	return c
}

// Layout returns the desktop layer: menu bar on top, dock at the bottom,
// icons on the right and widgets on the left.
func (c *DesktopChrome) Layout() fyne.CanvasObject {
	return container.NewBorder(
		c.elements[model.ChromeMenuBar],
		c.elements[model.ChromeDock],
		container.NewVBox(container.NewPadded(c.elements[model.ChromeWidgets])),
		container.NewVBox(c.elements[model.ChromeDesktopIcons]),
	)
}

// SetChromeVisibility shows or hides one element and toggles its controls
func (c *DesktopChrome) SetChromeVisibility(e model.ChromeElement, v projector.Visibility) {
	obj, ok := c.elements[e]
	if !ok {
		return
	}
	if v.Visible {
		obj.Show()
	} else {
		obj.Hide()
	}
	for _, b := range c.buttons[e] {
		if v.Interactive {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// IsVisible reports whether element e is shown
func (c *DesktopChrome) IsVisible(e model.ChromeElement) bool {
	obj, ok := c.elements[e]
	return ok && obj.Visible()
}

// Tick updates the menu bar clock
func (c *DesktopChrome) Tick(now time.Time) {
	c.clock.Text = now.Format(ClockFormat)
	c.clock.Refresh()
}
