package model

import (
	"fmt"
	"strings"
)

// PlatformID identifies one of the simulated device skins.
type PlatformID string

const (
	PlatformA PlatformID = "A" // phone
	PlatformB PlatformID = "B" // phone, alternative skin
	PlatformC PlatformID = "C" // desktop
	PlatformD PlatformID = "D" // desktop, alternative skin with chrome toggles
)

// Platforms returns all platform identifiers in display order.
func Platforms() []PlatformID {
	return []PlatformID{PlatformA, PlatformB, PlatformC, PlatformD}
}

// String returns the string representation of PlatformID
func (p PlatformID) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known platforms.
func (p PlatformID) IsValid() bool {
	switch p {
	case PlatformA, PlatformB, PlatformC, PlatformD:
		return true
	}
	return false
}

// DisplayName returns the human readable skin name.
func (p PlatformID) DisplayName() string {
	switch p {
	case PlatformA:
		return "iOS"
	case PlatformB:
		return "Android"
	case PlatformC:
		return "Windows"
	case PlatformD:
		return "macOS"
	default:
		return "Unknown"
	}
}

// HasChrome reports whether the platform exposes desktop chrome toggles.
func (p PlatformID) HasChrome() bool {
	return p == PlatformD
}

// ParsePlatformID parses a platform identifier or a display name.
func ParsePlatformID(s string) (PlatformID, error) {
	s = strings.TrimSpace(s)
	for _, p := range Platforms() {
		if strings.EqualFold(s, string(p)) || strings.EqualFold(s, p.DisplayName()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// ScreenMode is the surface a platform is currently showing.
type ScreenMode string

const (
	ScreenLock ScreenMode = "lock"
	ScreenHome ScreenMode = "home"
)
