// Package export writes theme configurations to disk.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"

	"github.com/ytget/skin-preview/internal/config"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/platform"
	"github.com/ytget/skin-preview/internal/state"
)

// Version of the exported document format.
const Version = "1.0.0"

// Theme names
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// FileNamePrefix is the prefix of exported file names.
const FileNamePrefix = "theme-config-"

// Document is an exported theme configuration.
type Document struct {
	Theme         string                                    `json:"theme" yaml:"theme"`
	Wallpapers    map[model.PlatformID]string               `json:"wallpapers" yaml:"wallpapers"`
	Filters       map[model.PlatformID]model.FilterSettings `json:"filters" yaml:"filters"`
	Apps          map[model.PlatformID][]model.AppEntry     `json:"apps" yaml:"apps"`
	MacOSSettings model.ChromeSettings                      `json:"macosSettings" yaml:"macosSettings"`
	Timestamp     string                                    `json:"timestamp" yaml:"timestamp"`
	Version       string                                    `json:"version" yaml:"version"`
}

// NewDocument builds a document from a state snapshot.
func NewDocument(snap state.Snapshot, darkMode bool, now time.Time) Document {
	theme := ThemeLight
	if darkMode {
		theme = ThemeDark
	}
	return Document{
		Theme:         theme,
		Wallpapers:    snap.Wallpapers,
		Filters:       snap.Filters,
		Apps:          snap.Apps,
		MacOSSettings: snap.Chrome,
		Timestamp:     now.UTC().Format(time.RFC3339Nano),
		Version:       Version,
	}
}

// Encode serializes doc in the given format.
func Encode(doc Document, format config.ExportFormat) ([]byte, error) {
	switch format {
	case config.ExportJSON:
		return json.MarshalIndent(doc, "", "  ")
	case config.ExportYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// FileName returns the name of an export created at now.
func FileName(now time.Time, format config.ExportFormat) string {
	return fmt.Sprintf("%s%d.%s", FileNamePrefix, now.UnixMilli(), format)
}

// Write encodes doc into dir and returns the path of the new file.
func Write(dir string, doc Document, format config.ExportFormat, now time.Time) (string, error) {
	data, err := Encode(doc, format)
	if err != nil {
		return "", err
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(now, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	slog.Info("Theme exported", "path", path, "size", humanize.IBytes(uint64(len(data))))
	return path, nil
}

// Exporter exports the current state using the user's settings.
type Exporter struct {
	settings *config.Settings
	state    *state.State
	reveal   func(string) error
	now      func() time.Time
}

// NewExporter returns an exporter which reveals files with the OS file manager.
func NewExporter(settings *config.Settings, st *state.State) *Exporter {
	return &Exporter{
		settings: settings,
		state:    st,
		reveal:   platform.OpenFileInManager,
		now:      time.Now,
	}
}

// Export writes the current theme and reveals the file when enabled.
func (e *Exporter) Export() (string, error) {
	now := e.now()
	doc := NewDocument(e.state.Snapshot(), e.settings.GetDarkMode(), now)
	path, err := Write(e.settings.GetExportDirectory(), doc, e.settings.GetExportFormat(), now)
	if err != nil {
		return "", err
	}
	if e.settings.GetRevealExports() {
		if err := e.reveal(path); err != nil {
			slog.Warn("Failed to reveal export", "path", path, "error", err)
		}
	}
	return path, nil
}
