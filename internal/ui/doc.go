package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It shows one device preview per platform, wires controls and file drops to the
// ingestion pipeline and renders notifications, recents and settings.
// All UI strings are localized via Localization.
