package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/state"
)

// ControlPanel holds the customization controls of one platform.
type ControlPanel struct {
	platform     model.PlatformID
	state        *state.State
	localization *Localization
	notifier     model.Notifier
	apps         *AppGrid

	sliders   map[model.FilterKind]*widget.Slider
	values    map[model.FilterKind]*widget.Label
	checks    map[model.ChromeElement]*widget.Check
	mode      *widget.RadioGroup
	removeBtn *widget.Button
	content   fyne.CanvasObject

	// syncing suppresses widget callbacks while widgets are updated from state
	syncing bool
}

// NewControlPanel creates the controls of platform p. apps may be nil.
func NewControlPanel(p model.PlatformID, st *state.State, localization *Localization, notifier model.Notifier, apps *AppGrid, onUpload func()) *ControlPanel {
	c := &ControlPanel{
		platform:     p,
		state:        st,
		localization: localization,
		notifier:     notifier,
		apps:         apps,
		sliders:      make(map[model.FilterKind]*widget.Slider),
		values:       make(map[model.FilterKind]*widget.Label),
		checks:       make(map[model.ChromeElement]*widget.Check),
	}

	uploadBtn := widget.NewButtonWithIcon(localization.GetText(KeyUpload), theme.UploadIcon(), onUpload)
	uploadBtn.Importance = widget.HighImportance
	resetBtn := widget.NewButtonWithIcon(localization.GetText(KeyReset), theme.ViewRefreshIcon(), c.onReset)

	items := []fyne.CanvasObject{
		uploadBtn,
		widget.NewSeparator(),
		c.filterRow(model.FilterBrightness, KeyBrightness, model.MaxBrightness),
		c.filterRow(model.FilterContrast, KeyContrast, model.MaxContrast),
		c.filterRow(model.FilterBlur, KeyBlur, SliderBlurMax),
		widget.NewSeparator(),
	}

	c.mode = widget.NewRadioGroup([]string{localization.GetText(KeyLockScreen), localization.GetText(KeyHomeScreen)}, c.onModeSelected)
	c.mode.Horizontal = true
	c.mode.Required = true
	items = append(items, c.mode)

	if apps != nil {
		addBtn := widget.NewButtonWithIcon(localization.GetText(KeyAddApp), theme.ContentAddIcon(), apps.AddApp)
		c.removeBtn = widget.NewButtonWithIcon(localization.GetText(KeyRemoveMode), theme.DeleteIcon(), c.onToggleRemove)
		items = append(items, widget.NewSeparator(), container.NewGridWithColumns(2, addBtn, c.removeBtn))
	}

	if p.HasChrome() {
		items = append(items, widget.NewSeparator())
		labels := map[model.ChromeElement]string{
			model.ChromeDock:         KeyDock,
			model.ChromeMenuBar:      KeyMenuBar,
			model.ChromeDesktopIcons: KeyDesktopIcons,
			model.ChromeWidgets:      KeyWidgets,
		}
		for _, e := range model.ChromeElements() {
			element := e
			check := widget.NewCheck(localization.GetText(labels[e]), func(on bool) {
				if c.syncing {
					return
				}
				c.state.SetChrome(c.platform, element, on)
			})
			c.checks[e] = check
			items = append(items, check)
		}
	}

	items = append(items, widget.NewSeparator(), resetBtn)
	c.content = container.NewVBox(items...)
	c.Sync()
	return c
}

// Content returns the canvas object of the panel
func (c *ControlPanel) Content() fyne.CanvasObject {
	return c.content
}

func (c *ControlPanel) filterRow(kind model.FilterKind, labelKey string, maxValue int) fyne.CanvasObject {
	slider := widget.NewSlider(0, float64(maxValue))
	slider.Step = 1
	value := widget.NewLabel("")
	slider.OnChanged = func(v float64) {
		value.SetText(fmt.Sprintf("%d", int(v)))
		if c.syncing {
			return
		}
		c.state.SetFilter(c.platform, kind, int(v))
	}
	c.sliders[kind] = slider
	c.values[kind] = value
	return container.NewBorder(nil, nil, widget.NewLabel(c.localization.GetText(labelKey)), value, slider)
}

// Sync updates all widgets from state
func (c *ControlPanel) Sync() {
	c.syncing = true
	defer func() { c.syncing = false }()

	f := c.state.Filters(c.platform)
	for kind, v := range map[model.FilterKind]int{
		model.FilterBrightness: f.Brightness,
		model.FilterContrast:   f.Contrast,
		model.FilterBlur:       f.Blur,
	} {
		c.sliders[kind].SetValue(float64(v))
		c.values[kind].SetText(fmt.Sprintf("%d", v))
	}

	if c.state.ScreenMode(c.platform) == model.ScreenHome {
		c.mode.SetSelected(c.localization.GetText(KeyHomeScreen))
	} else {
		c.mode.SetSelected(c.localization.GetText(KeyLockScreen))
	}

	if chrome, ok := c.state.Chrome(c.platform); ok {
		for e, check := range c.checks {
			check.SetChecked(chrome.Get(e))
		}
	}

	if c.removeBtn != nil {
		c.updateRemoveButton()
	}
}

func (c *ControlPanel) onModeSelected(selected string) {
	if c.syncing || selected == "" {
		return
	}
	mode := model.ScreenLock
	if selected == c.localization.GetText(KeyHomeScreen) {
		mode = model.ScreenHome
	}
	c.state.SetScreenMode(c.platform, mode)
}

func (c *ControlPanel) onToggleRemove() {
	c.apps.SetRemoveMode(!c.apps.RemoveMode())
	c.updateRemoveButton()
}

func (c *ControlPanel) updateRemoveButton() {
	if c.apps.RemoveMode() {
		c.removeBtn.SetText(c.localization.GetText(KeyCancel))
		c.removeBtn.Importance = widget.DangerImportance
	} else {
		c.removeBtn.SetText(c.localization.GetText(KeyRemoveMode))
		c.removeBtn.Importance = widget.MediumImportance
	}
	c.removeBtn.Refresh()
}

func (c *ControlPanel) onReset() {
	c.state.ResetPlatform(c.platform)
	c.notifier.Notify(fmt.Sprintf(c.localization.GetText(KeyPlatformReset), c.platform.DisplayName()), model.SeverityInfo)
}
