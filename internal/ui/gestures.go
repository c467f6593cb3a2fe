package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns a pointer path into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    SwipeThreshold,
		longPressDuration: LongPress,
	}
}

// Classify returns the gesture for a movement of dx, dy which took d
func (gh *GestureHandler) Classify(dx, dy float32, d time.Duration) GestureType {
	distance := dx*dx + dy*dy
	threshold := gh.swipeThreshold * gh.swipeThreshold
	switch {
	case distance >= threshold:
		return swipeDirection(dx, dy)
	case d >= gh.longPressDuration:
		return GestureLongPress
	default:
		return GestureTap
	}
}

// Handle classifies a movement and triggers the callback
func (gh *GestureHandler) Handle(dx, dy float32, d time.Duration) {
	gh.triggerGesture(gh.Classify(dx, dy, d))
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil && gesture != GestureNone {
		gh.onGesture(gesture)
	}
}

// SwipeArea is a transparent layer which reports drags as gestures.
// It does not handle taps so widgets below it stay clickable.
type SwipeArea struct {
	widget.BaseWidget
	handler *GestureHandler

	started time.Time
	dx, dy  float32
}

// NewSwipeArea creates a swipe area calling onGesture for each finished drag
func NewSwipeArea(onGesture func(GestureType)) *SwipeArea {
	s := &SwipeArea{handler: NewGestureHandler(onGesture)}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer returns an empty renderer
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewWithoutLayout())
}

// Dragged accumulates the drag movement
func (s *SwipeArea) Dragged(e *fyne.DragEvent) {
	if s.started.IsZero() {
		s.started = time.Now()
	}
	s.dx += e.Dragged.DX
	s.dy += e.Dragged.DY
}

// DragEnd reports the finished drag
func (s *SwipeArea) DragEnd() {
	d := time.Since(s.started)
	dx, dy := s.dx, s.dy
	s.started, s.dx, s.dy = time.Time{}, 0, 0
	if dx*dx+dy*dy < s.handler.swipeThreshold*s.handler.swipeThreshold {
		return
	}
	s.handler.Handle(dx, dy, d)
}
