package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ytget/skin-preview/internal/config"
	"github.com/ytget/skin-preview/internal/export"
	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/platform"
	"github.com/ytget/skin-preview/internal/poster"
	"github.com/ytget/skin-preview/internal/projector"
	"github.com/ytget/skin-preview/internal/recent"
	"github.com/ytget/skin-preview/internal/state"
	"github.com/ytget/skin-preview/internal/store"
	"github.com/ytget/skin-preview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.skin-preview"
	AppName = "Skin Preview"

	WindowWidth  = 1100
	WindowHeight = 760

	logFileName   = "skin-preview.log"
	logMaxSizeMB  = 20
	logMaxBackups = 3
)

// logLevelFlag is a slog level which remembers whether it was set on the command line.
type logLevelFlag struct {
	value slog.Level
	set   bool
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level: %s", value)
	}
	l.value = v
	l.set = true
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	debugFlag   = flag.Bool("debug", false, "Show additional debug information")
	logFileFlag = flag.Bool("logfile", false, "Write logs to a rotating file instead of the console")
	ffmpegFlag  = flag.String("ffmpeg", poster.FFmpegCommand, "ffmpeg executable used for video poster frames")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level (debug, info, warn, error)")
}

func main() {
	flag.Parse()

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	level := settings.GetLogLevelSlog()
	if levelFlag.set {
		level = levelFlag.value
	}
	if *debugFlag {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)

	if *logFileFlag {
		fn, err := initLogFile(myApp)
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		})
	}
	slog.Info("Starting", "app", AppName, "version", version, "level", level)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	toaster := ui.NewToaster(myWindow)
	st := state.New(model.DefaultCatalog())
	kv := store.New(settings.Preferences(), settings.GetStoreQuotaBytes())
	ledger := recent.New(kv, toaster)
	hub := projector.NewHub(st)
	posterSvc := poster.NewService(poster.WithCommand(*ffmpegFlag))
	pipeline := ingest.New(st, ledger, toaster, ingest.DefaultLimits(),
		ingest.WithDispatcher(fyne.Do),
		ingest.WithLimitsFunc(func() ingest.Limits {
			limits := ingest.DefaultLimits()
			limits.MaxImageBytes = int64(settings.GetMaxImageMB()) * ingest.MiB
			limits.MaxVideoBytes = int64(settings.GetMaxVideoMB()) * ingest.MiB
			return limits
		}),
	)
	exporter := export.NewExporter(settings, st)

	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		slog.Warn("Failed to ensure export directory", "dir", settings.GetExportDirectory(), "error", err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, toaster, ui.Services{
		State:    st,
		Ledger:   ledger,
		Pipeline: pipeline,
		Hub:      hub,
		Poster:   posterSvc,
		Exporter: exporter,
	})

	// Show and run
	myWindow.ShowAndRun()
}

// initLogFile returns the path of the log file in the app's storage, creating its directory.
func initLogFile(a fyne.App) (string, error) {
	dir := filepath.Join(a.Storage().RootURI().Path(), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return filepath.Join(dir, logFileName), nil
}
