package model

// Package model defines domain data structures used across the app: platforms,
// wallpaper uploads, filter values, app entries, chrome toggles, recent items
// and ingestion states. Structures are plain values so they can be encoded to
// the preferences store and exported without conversion.
