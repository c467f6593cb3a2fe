package config

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/skin-preview/internal/platform"
)

// ExportFormat selects the encoding of exported theme configurations
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// Settings keys for Fyne preferences
const (
	KeyDarkMode      = "darkMode"
	KeyLanguage      = "app_language"
	KeyLogLevel      = "log_level"
	KeyMaxImageMB    = "max_image_mb"
	KeyMaxVideoMB    = "max_video_mb"
	KeyStoreQuotaKB  = "store_quota_kb"
	KeyExportDir     = "export_directory"
	KeyExportFormat  = "export_format"
	KeyRevealExports = "reveal_exports"
)

// Default values
const (
	DefaultDarkMode      = false
	DefaultLanguage      = "system"
	DefaultLogLevel      = "info"
	DefaultMaxImageMB    = 10
	DefaultMaxVideoMB    = 50
	DefaultStoreQuotaKB  = 5 * 1024
	DefaultExportFormat  = ExportJSON
	DefaultRevealExports = true
)

// Limits for user editable values
const (
	MinUploadMB     = 1
	MaxUploadMB     = 500
	MinStoreQuotaKB = 64
)

// MiB is the number of bytes in one mebibyte.
const MiB = 1024 * 1024

// Settings manages application configuration
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return New(app.Preferences())
}

// New creates a settings manager on top of the given preferences.
func New(prefs fyne.Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// Preferences returns the underlying preferences store.
func (s *Settings) Preferences() fyne.Preferences {
	return s.prefs
}

// GetDarkMode returns whether the dark theme variant is active
func (s *Settings) GetDarkMode() bool {
	return s.prefs.BoolWithFallback(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets the dark theme preference
func (s *Settings) SetDarkMode(dark bool) {
	s.prefs.SetBool(KeyDarkMode, dark)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs.String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.prefs.StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name. Unknown names fall back to the default.
func (s *Settings) SetLogLevel(level string) {
	level = strings.ToLower(level)
	if _, ok := logLevels[level]; !ok {
		level = DefaultLogLevel
	}
	s.prefs.SetString(KeyLogLevel, level)
}

// GetLogLevelSlog returns the configured log level for slog
func (s *Settings) GetLogLevelSlog() slog.Level {
	l, ok := logLevels[s.GetLogLevel()]
	if !ok {
		return slog.LevelInfo
	}
	return l
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// GetMaxImageMB returns the size ceiling for image uploads in MiB
func (s *Settings) GetMaxImageMB() int {
	return s.getUploadLimit(KeyMaxImageMB, DefaultMaxImageMB)
}

// SetMaxImageMB sets the size ceiling for image uploads in MiB
func (s *Settings) SetMaxImageMB(mb int) {
	s.prefs.SetInt(KeyMaxImageMB, clampUpload(mb))
}

// GetMaxVideoMB returns the size ceiling for video uploads in MiB
func (s *Settings) GetMaxVideoMB() int {
	return s.getUploadLimit(KeyMaxVideoMB, DefaultMaxVideoMB)
}

// SetMaxVideoMB sets the size ceiling for video uploads in MiB
func (s *Settings) SetMaxVideoMB(mb int) {
	s.prefs.SetInt(KeyMaxVideoMB, clampUpload(mb))
}

func (s *Settings) getUploadLimit(key string, fallback int) int {
	value := s.prefs.Int(key)
	if value <= 0 {
		s.prefs.SetInt(key, fallback)
		return fallback
	}
	return value
}

func clampUpload(mb int) int {
	if mb < MinUploadMB {
		mb = MinUploadMB
	}
	if mb > MaxUploadMB {
		mb = MaxUploadMB
	}
	return mb
}

// GetStoreQuotaBytes returns the byte budget of the persistent store
func (s *Settings) GetStoreQuotaBytes() int {
	value := s.prefs.Int(KeyStoreQuotaKB)
	if value <= 0 {
		s.prefs.SetInt(KeyStoreQuotaKB, DefaultStoreQuotaKB)
		value = DefaultStoreQuotaKB
	}
	return value * 1024
}

// SetStoreQuotaKB sets the byte budget of the persistent store in KiB
func (s *Settings) SetStoreQuotaKB(kb int) {
	if kb < MinStoreQuotaKB {
		kb = MinStoreQuotaKB
	}
	s.prefs.SetInt(KeyStoreQuotaKB, kb)
}

// GetExportDirectory returns the directory theme exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.prefs.String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.prefs.SetString(KeyExportDir, dir)
}

// GetExportFormat returns the configured export format
func (s *Settings) GetExportFormat() ExportFormat {
	switch f := ExportFormat(s.prefs.String(KeyExportFormat)); f {
	case ExportJSON, ExportYAML:
		return f
	}
	s.SetExportFormat(DefaultExportFormat)
	return DefaultExportFormat
}

// SetExportFormat sets the export format
func (s *Settings) SetExportFormat(f ExportFormat) {
	s.prefs.SetString(KeyExportFormat, string(f))
}

// GetExportFormatOptions returns available export formats
func (s *Settings) GetExportFormatOptions() []ExportFormat {
	return []ExportFormat{ExportJSON, ExportYAML}
}

// GetRevealExports returns whether exported files are shown in the file manager
func (s *Settings) GetRevealExports() bool {
	return s.prefs.BoolWithFallback(KeyRevealExports, DefaultRevealExports)
}

// SetRevealExports sets whether exported files are shown in the file manager
func (s *Settings) SetRevealExports(reveal bool) {
	s.prefs.SetBool(KeyRevealExports, reveal)
}
