package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/config"
	"github.com/ytget/skin-preview/internal/export"
	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/poster"
	"github.com/ytget/skin-preview/internal/projector"
	"github.com/ytget/skin-preview/internal/recent"
	"github.com/ytget/skin-preview/internal/state"
)

// UI constants
const (
	RootClockInterval = 30 * time.Second
	RootListenerKey   = "ui"
)

// Services are the components the UI drives
type Services struct {
	State    *state.State
	Ledger   *recent.Ledger
	Pipeline *ingest.Pipeline
	Hub      *projector.Hub
	Poster   *poster.Service
	Exporter *export.Exporter
}

// platformView groups the widgets of one platform tab
type platformView struct {
	device   *DevicePreview
	controls *ControlPanel
	recents  *RecentsPanel
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	toaster      *Toaster
	svc          Services

	tabs  *container.AppTabs
	views map[model.PlatformID]*platformView

	// Busy indicator while files are read
	busy *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, toaster *Toaster, svc Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		toaster:      toaster,
		svc:          svc,
		views:        make(map[model.PlatformID]*platformView),
	}

	svc.Ledger.SetUpdateCallback(ui.onRecentUpdate)
	svc.Pipeline.SetUpdateCallback(ui.onJobUpdate)
	if svc.Poster != nil {
		svc.Poster.SetUpdateCallback(ui.onPosterUpdate)
		if !svc.Poster.Available() {
			slog.Info("ffmpeg not found, video wallpapers show a placeholder")
		}
	}
	window.SetOnDropped(ui.onDropped)

	ui.applyTheme()
	ui.setupUI()
	go ui.runClock()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.svc.State.RemoveListener(RootListenerKey)
	ui.svc.Hub.Detach()

	selected := 0
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
	}

	ui.tabs = container.NewAppTabs()
	for _, p := range model.Platforms() {
		view := ui.buildPlatformView(p)
		ui.views[p] = view
		ui.svc.Hub.Register(p, view.device.Surface, chromeSurface(view.device))
		ui.tabs.Append(container.NewTabItem(p.DisplayName(), ui.platformLayout(view)))
	}
	ui.tabs.SelectIndex(selected)

	ui.svc.Hub.Attach()
	ui.svc.State.OnChanged(RootListenerKey, ui.onStateChanged)
	ui.svc.Hub.ProjectAll()

	uploadAllBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyUploadAll), theme.UploadIcon(), ui.onUploadAll)
	exportBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyExport), theme.DocumentSaveIcon(), ui.onExport)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.busy = widget.NewProgressBarInfinite()
	ui.busy.Hide()

	toolbar := container.NewBorder(nil, nil, container.NewHBox(settingsBtn), container.NewHBox(uploadAllBtn, exportBtn), ui.busy)
	ui.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, ui.tabs))
}

func chromeSurface(d *DevicePreview) projector.ChromeSurface {
	if d.Chrome == nil {
		return nil
	}
	return d.Chrome
}

func (ui *RootUI) buildPlatformView(p model.PlatformID) *platformView {
	device := NewDevicePreview(p, ui.svc.State, ui.localization, ui.toaster, ui.extractor())
	controls := NewControlPanel(p, ui.svc.State, ui.localization, ui.toaster, device.Apps, func() {
		ui.onUpload(p)
	})
	recents := NewRecentsPanel(p, ui.localization, ui.svc.Ledger.ListFor, ui.svc.Pipeline.ApplyRecent, ui.extractor(), ui.onClearRecents)
	return &platformView{device: device, controls: controls, recents: recents}
}

func (ui *RootUI) platformLayout(v *platformView) fyne.CanvasObject {
	side := container.NewVScroll(container.NewVBox(v.controls.Content(), widget.NewSeparator(), v.recents.Content()))
	side.SetMinSize(fyne.NewSize(ControlsWidth, 0))
	return container.NewBorder(nil, nil, nil, side, container.NewCenter(v.device.Content()))
}

// extractor returns the poster service as an interface, nil when absent
func (ui *RootUI) extractor() poster.Extractor {
	if ui.svc.Poster == nil {
		return nil
	}
	return ui.svc.Poster
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText
	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeyUpload), func() { ui.onUpload(ui.currentPlatform()) }),
		fyne.NewMenuItem(t(KeyUploadAll), ui.onUploadAll),
		fyne.NewMenuItem(t(KeyExport), ui.onExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	darkItem := fyne.NewMenuItem(t(KeyDarkMode), ui.onToggleDarkMode)
	darkItem.Checked = ui.settings.GetDarkMode()
	viewMenu := fyne.NewMenu(t(KeySettings), darkItem)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

// currentPlatform returns the platform of the selected tab
func (ui *RootUI) currentPlatform() model.PlatformID {
	platforms := model.Platforms()
	i := ui.tabs.SelectedIndex()
	if i < 0 || i >= len(platforms) {
		return platforms[0]
	}
	return platforms[i]
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.setupUI()
}

func (ui *RootUI) onToggleDarkMode() {
	ui.settings.SetDarkMode(!ui.settings.GetDarkMode())
	ui.applyTheme()
	ui.createMenu()
}

func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewCompactTheme(ui.settings.GetDarkMode()))
}

// onStateChanged keeps widgets which are not surfaces in line with state
func (ui *RootUI) onStateChanged(c state.Change) {
	view, ok := ui.views[c.Platform]
	if !ok {
		return
	}
	switch c.Kind {
	case state.ChangeApps:
		if view.device.Apps != nil {
			view.device.Apps.Rebuild()
		}
		view.controls.Sync()
	case state.ChangeWallpaper:
	default:
		view.controls.Sync()
	}
}

func (ui *RootUI) onRecentUpdate() {
	for _, v := range ui.views {
		v.recents.Rebuild()
	}
}

func (ui *RootUI) onPosterUpdate(task *poster.Task) {
	if !task.Status.IsFinished() {
		return
	}
	fyne.Do(func() {
		for _, v := range ui.views {
			v.device.Surface.PosterReady()
			v.recents.Rebuild()
		}
	})
}

func (ui *RootUI) onJobUpdate(job *ingest.Job) {
	active := job.State.IsActive()
	fyne.Do(func() {
		if ui.busy == nil {
			return
		}
		if active {
			ui.busy.Show()
		} else {
			ui.busy.Hide()
		}
	})
}

// onUpload asks for a file and applies it to p
func (ui *RootUI) onUpload(p model.PlatformID) {
	ui.pickFile(func(f ingest.File) {
		ui.svc.Pipeline.Submit(p, f, nil)
	})
}

// onUploadAll asks for a file and applies it to every platform
func (ui *RootUI) onUploadAll() {
	ui.pickFile(func(f ingest.File) {
		ui.svc.Pipeline.SubmitAll(f, nil)
	})
}

func (ui *RootUI) pickFile(onPicked func(ingest.File)) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if rc == nil {
			return
		}
		uri := rc.URI()
		rc.Close()
		f, err := fileFromURI(uri)
		if err != nil {
			ui.toaster.Notify(ui.localization.GetText(KeyUnsupportedDrop), model.SeverityError)
			return
		}
		onPicked(f)
	}, ui.window)
	d.SetFilter(uploadFilter())
	d.Show()
}

// onDropped applies dropped files to the selected platform
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	p := ui.currentPlatform()
	for _, uri := range uris {
		f, err := fileFromURI(uri)
		if err != nil {
			slog.Warn("Ignoring dropped item", "uri", uri, "error", err)
			ui.toaster.Notify(ui.localization.GetText(KeyUnsupportedDrop), model.SeverityError)
			continue
		}
		ui.svc.Pipeline.Submit(p, f, nil)
	}
}

func (ui *RootUI) onExport() {
	path, err := ui.svc.Exporter.Export()
	if err != nil {
		slog.Error("Theme export failed", "error", err)
		ui.toaster.Notify(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyExportFailed), err), model.SeverityError)
		return
	}
	slog.Info("Theme exported", "path", path)
	ui.toaster.Notify(ui.localization.GetText(KeyExported), model.SeveritySuccess)
}

func (ui *RootUI) onClearRecents() {
	dialog.ShowConfirm(ui.localization.GetText(KeyClearAll), ui.localization.GetText(KeyClearAllConfirm), func(ok bool) {
		if !ok {
			return
		}
		ui.svc.Ledger.ClearAll()
		ui.toaster.Notify(ui.localization.GetText(KeyRecentCleared), model.SeverityInfo)
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.applyTheme()
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.setupUI()
		ui.toaster.Notify(ui.localization.GetText(KeySettingsSaved), model.SeveritySuccess)
	})
}

// runClock refreshes the clocks of all previews
func (ui *RootUI) runClock() {
	ticker := time.NewTicker(RootClockInterval)
	defer ticker.Stop()
	for now := range ticker.C {
		fyne.Do(func() {
			for _, v := range ui.views {
				v.device.Tick(now)
			}
		})
	}
}
