package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyUpload          = "upload"
	KeyUploadAll       = "upload_all"
	KeyReset           = "reset"
	KeyAddApp          = "add_app"
	KeyRemoveMode      = "remove_mode"
	KeyCancel          = "cancel"
	KeySave            = "save"
	KeyBrowse          = "browse"
	KeyBrightness      = "brightness"
	KeyContrast        = "contrast"
	KeyBlur            = "blur"
	KeyLockScreen      = "lock_screen"
	KeyHomeScreen      = "home_screen"
	KeyDock            = "dock"
	KeyMenuBar         = "menu_bar"
	KeyDesktopIcons    = "desktop_icons"
	KeyWidgets         = "widgets"
	KeyRecent          = "recent"
	KeyNoRecent        = "no_recent"
	KeyClearAll        = "clear_all"
	KeyClearAllConfirm = "clear_all_confirm"
	KeyExport          = "export"
	KeyExported        = "exported"
	KeyExportFailed    = "export_failed"
	KeyExportDirectory = "export_directory"
	KeyExportFormat    = "export_format"
	KeyRevealExports   = "reveal_exports"
	KeyDarkMode        = "dark_mode"
	KeyMaxImageMB      = "max_image_mb"
	KeyMaxVideoMB      = "max_video_mb"
	KeySettingsSaved   = "settings_saved"
	KeyAppAdded        = "app_added"
	KeyAppRemoved      = "app_removed"
	KeyNoMoreApps      = "no_more_apps"
	KeyRemoveHint      = "remove_hint"
	KeyPlatformReset   = "platform_reset"
	KeyRecentCleared   = "recent_cleared"
	KeyUnsupportedDrop = "unsupported_drop"
	KeyVideoPoster     = "video_poster"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Skin Preview",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyUpload:          "Upload Wallpaper",
		KeyUploadAll:       "Apply to All Platforms",
		KeyReset:           "Reset",
		KeyAddApp:          "Add App",
		KeyRemoveMode:      "Remove Mode",
		KeyCancel:          "Cancel",
		KeySave:            "Save",
		KeyBrowse:          "Browse",
		KeyBrightness:      "Brightness",
		KeyContrast:        "Contrast",
		KeyBlur:            "Blur",
		KeyLockScreen:      "Lock Screen",
		KeyHomeScreen:      "Home Screen",
		KeyDock:            "Dock",
		KeyMenuBar:         "Menu Bar",
		KeyDesktopIcons:    "Desktop Icons",
		KeyWidgets:         "Widgets",
		KeyRecent:          "Recent Wallpapers",
		KeyNoRecent:        "No recent wallpapers",
		KeyClearAll:        "Clear All",
		KeyClearAllConfirm: "Remove all recent wallpapers?",
		KeyExport:          "Export Theme",
		KeyExported:        "Theme configuration exported!",
		KeyExportFailed:    "Export failed",
		KeyExportDirectory: "Export Directory",
		KeyExportFormat:    "Export Format",
		KeyRevealExports:   "Show exported file",
		KeyDarkMode:        "Dark Mode",
		KeyMaxImageMB:      "Max Image Size (MB)",
		KeyMaxVideoMB:      "Max Video Size (MB)",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyAppAdded:        "Added %s",
		KeyAppRemoved:      "Removed %s",
		KeyNoMoreApps:      "No more apps available to add",
		KeyRemoveHint:      "Click any app to remove it",
		KeyPlatformReset:   "%s reset to default",
		KeyRecentCleared:   "Recent wallpapers cleared",
		KeyUnsupportedDrop: "Only local files can be dropped",
		KeyVideoPoster:     "Video wallpaper",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Предпросмотр обоев",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyUpload:          "Загрузить обои",
		KeyUploadAll:       "Применить ко всем",
		KeyReset:           "Сбросить",
		KeyAddApp:          "Добавить приложение",
		KeyRemoveMode:      "Режим удаления",
		KeyCancel:          "Отмена",
		KeySave:            "Сохранить",
		KeyBrowse:          "Обзор",
		KeyBrightness:      "Яркость",
		KeyContrast:        "Контраст",
		KeyBlur:            "Размытие",
		KeyLockScreen:      "Экран блокировки",
		KeyHomeScreen:      "Главный экран",
		KeyDock:            "Док",
		KeyMenuBar:         "Строка меню",
		KeyDesktopIcons:    "Значки на столе",
		KeyWidgets:         "Виджеты",
		KeyRecent:          "Недавние обои",
		KeyNoRecent:        "Нет недавних обоев",
		KeyClearAll:        "Очистить",
		KeyClearAllConfirm: "Удалить все недавние обои?",
		KeyExport:          "Экспорт темы",
		KeyExported:        "Конфигурация темы экспортирована!",
		KeyExportFailed:    "Ошибка экспорта",
		KeyExportDirectory: "Папка экспорта",
		KeyExportFormat:    "Формат экспорта",
		KeyRevealExports:   "Показать файл после экспорта",
		KeyDarkMode:        "Тёмная тема",
		KeyMaxImageMB:      "Макс. размер изображения (МБ)",
		KeyMaxVideoMB:      "Макс. размер видео (МБ)",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyAppAdded:        "Добавлено: %s",
		KeyAppRemoved:      "Удалено: %s",
		KeyNoMoreApps:      "Больше нет приложений для добавления",
		KeyRemoveHint:      "Нажмите на приложение, чтобы удалить его",
		KeyPlatformReset:   "%s: настройки сброшены",
		KeyRecentCleared:   "Недавние обои очищены",
		KeyUnsupportedDrop: "Можно перетаскивать только локальные файлы",
		KeyVideoPoster:     "Видео обои",
	}
}
