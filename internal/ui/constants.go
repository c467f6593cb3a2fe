package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconVideo    = "▶"
	IconLock     = "🔒"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ClockFormat        = "15:04"
	DateFormat         = "Monday, January 2"
)

// Preview sizing per device form factor
const (
	PhoneWidth    float32 = 220
	PhoneHeight   float32 = 440
	DesktopWidth  float32 = 520
	DesktopHeight float32 = 320

	AppIconSize    float32 = 48
	RecentThumb    float32 = 72
	MenuBarHeight  float32 = 18
	DockHeight     float32 = 36
	WidgetSize     float32 = 90
	ControlsWidth  float32 = 280
	DesktopIconGap float32 = 8
)

// Filter slider ranges
const (
	SliderBlurMax = 20
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Swipe detection on the device preview
const (
	SwipeThreshold float32 = 50
	LongPress              = 500 * time.Millisecond
)
