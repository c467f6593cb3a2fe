package model

// ChromeElement names one desktop chrome element.
type ChromeElement string

const (
	ChromeDock         ChromeElement = "dock"
	ChromeMenuBar      ChromeElement = "menubar"
	ChromeDesktopIcons ChromeElement = "desktop_icons"
	ChromeWidgets      ChromeElement = "widgets"
)

// ChromeElements returns all chrome elements in display order.
func ChromeElements() []ChromeElement {
	return []ChromeElement{ChromeDock, ChromeMenuBar, ChromeDesktopIcons, ChromeWidgets}
}

// ChromeSettings holds the visibility toggles of the desktop chrome.
type ChromeSettings struct {
	Dock         bool `json:"showDock" yaml:"showDock"`
	MenuBar      bool `json:"showMenuBar" yaml:"showMenuBar"`
	DesktopIcons bool `json:"showDesktopIcons" yaml:"showDesktopIcons"`
	Widgets      bool `json:"showWidgets" yaml:"showWidgets"`
}

// DefaultChrome returns chrome settings with every element visible.
func DefaultChrome() ChromeSettings {
	return ChromeSettings{Dock: true, MenuBar: true, DesktopIcons: true, Widgets: true}
}

// Get returns the toggle of element e.
func (c ChromeSettings) Get(e ChromeElement) bool {
	switch e {
	case ChromeDock:
		return c.Dock
	case ChromeMenuBar:
		return c.MenuBar
	case ChromeDesktopIcons:
		return c.DesktopIcons
	case ChromeWidgets:
		return c.Widgets
	}
	return false
}

// With returns a copy of c with element e set to on.
func (c ChromeSettings) With(e ChromeElement, on bool) ChromeSettings {
	switch e {
	case ChromeDock:
		c.Dock = on
	case ChromeMenuBar:
		c.MenuBar = on
	case ChromeDesktopIcons:
		c.DesktopIcons = on
	case ChromeWidgets:
		c.Widgets = on
	}
	return c
}
