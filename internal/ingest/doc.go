package ingest

// Package ingest turns uploaded files into wallpapers. A job validates the
// file type and size, reads the bytes into a data URI and applies the result
// to platform state and the recent wallpapers list. Reading is the only step
// which may run off the UI goroutine; applying is always handed back through
// the configured dispatcher.
