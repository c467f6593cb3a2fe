package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	exportDirEntry *widget.Entry
	formatSelect   *widget.Select
	revealCheck    *widget.Check
	maxImageEntry  *widget.Entry
	maxVideoEntry  *widget.Entry
	darkModeCheck  *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	formatOptions := []string{}
	for _, f := range sd.settings.GetExportFormatOptions() {
		formatOptions = append(formatOptions, string(f))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)
	sd.revealCheck = widget.NewCheck(t(KeyRevealExports), nil)

	sd.maxImageEntry = widget.NewEntry()
	sd.maxImageEntry.SetPlaceHolder(strconv.Itoa(config.DefaultMaxImageMB))
	sd.maxVideoEntry = widget.NewEntry()
	sd.maxVideoEntry.SetPlaceHolder(strconv.Itoa(config.DefaultMaxVideoMB))

	sd.darkModeCheck = widget.NewCheck(t(KeyDarkMode), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyExportDirectory)+":"),
		exportDirRow,
		widget.NewLabel(t(KeyExportFormat)+":"),
		sd.formatSelect,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyMaxImageMB)+":"),
		sd.maxImageEntry,
		widget.NewLabel(t(KeyMaxVideoMB)+":"),
		sd.maxVideoEntry,

		widget.NewSeparator(),

		sd.darkModeCheck,
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.formatSelect.SetSelected(string(sd.settings.GetExportFormat()))
	sd.revealCheck.SetChecked(sd.settings.GetRevealExports())
	sd.maxImageEntry.SetText(strconv.Itoa(sd.settings.GetMaxImageMB()))
	sd.maxVideoEntry.SetText(strconv.Itoa(sd.settings.GetMaxVideoMB()))
	sd.darkModeCheck.SetChecked(sd.settings.GetDarkMode())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	if sd.formatSelect.Selected != "" {
		sd.settings.SetExportFormat(config.ExportFormat(sd.formatSelect.Selected))
	}
	sd.settings.SetRevealExports(sd.revealCheck.Checked)

	if mb, err := strconv.Atoi(sd.maxImageEntry.Text); err == nil {
		sd.settings.SetMaxImageMB(mb)
	}
	if mb, err := strconv.Atoi(sd.maxVideoEntry.Text); err == nil {
		sd.settings.SetMaxVideoMB(mb)
	}

	sd.settings.SetDarkMode(sd.darkModeCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
