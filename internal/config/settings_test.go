package config

import (
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.Preferences() != app.Preferences() {
		t.Error("Settings should use the app preferences")
	}
}

func TestDarkMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDarkMode() != DefaultDarkMode {
		t.Errorf("Expected default dark mode %v", DefaultDarkMode)
	}

	settings.SetDarkMode(true)
	if !settings.GetDarkMode() {
		t.Error("Expected dark mode to be enabled")
	}
}

func TestUploadLimits(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetMaxImageMB() != DefaultMaxImageMB {
		t.Errorf("Expected default image limit %d, got %d", DefaultMaxImageMB, settings.GetMaxImageMB())
	}
	if settings.GetMaxVideoMB() != DefaultMaxVideoMB {
		t.Errorf("Expected default video limit %d, got %d", DefaultMaxVideoMB, settings.GetMaxVideoMB())
	}

	// Test setting custom value
	settings.SetMaxImageMB(20)
	if settings.GetMaxImageMB() != 20 {
		t.Errorf("Expected image limit 20, got %d", settings.GetMaxImageMB())
	}

	// Test boundary values
	settings.SetMaxVideoMB(0)
	if settings.GetMaxVideoMB() != MinUploadMB {
		t.Errorf("Video limit should be clamped to %d", MinUploadMB)
	}

	settings.SetMaxVideoMB(10_000)
	if settings.GetMaxVideoMB() != MaxUploadMB {
		t.Errorf("Video limit should be clamped to %d", MaxUploadMB)
	}
}

func TestStoreQuota(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetStoreQuotaBytes() != DefaultStoreQuotaKB*1024 {
		t.Errorf("Expected default quota %d bytes, got %d", DefaultStoreQuotaKB*1024, settings.GetStoreQuotaBytes())
	}

	settings.SetStoreQuotaKB(1)
	if settings.GetStoreQuotaBytes() != MinStoreQuotaKB*1024 {
		t.Errorf("Quota should be clamped to %d KiB", MinStoreQuotaKB)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevelSlog() != slog.LevelInfo {
		t.Error("Expected default log level info")
	}

	settings.SetLogLevel("DEBUG")
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level debug, got %s", settings.GetLogLevel())
	}
	if settings.GetLogLevelSlog() != slog.LevelDebug {
		t.Error("Expected slog debug level")
	}

	settings.SetLogLevel("verbose")
	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Unknown level should fall back to %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}
}

func TestExportSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetExportFormat() != DefaultExportFormat {
		t.Errorf("Expected default export format %s", DefaultExportFormat)
	}
	settings.SetExportFormat(ExportYAML)
	if settings.GetExportFormat() != ExportYAML {
		t.Errorf("Expected export format %s, got %s", ExportYAML, settings.GetExportFormat())
	}

	settings.SetExportDirectory("/custom/exports")
	if settings.GetExportDirectory() != "/custom/exports" {
		t.Errorf("Expected export directory /custom/exports, got %s", settings.GetExportDirectory())
	}

	if !settings.GetRevealExports() {
		t.Error("Exports should be revealed by default")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
