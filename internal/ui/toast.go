package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skin-preview/internal/model"
)

// Toaster shows short in-app notifications in the top-right corner.
type Toaster struct {
	window   fyne.Window
	autoHide time.Duration

	current *widget.PopUp
	last    string
}

var _ model.Notifier = (*Toaster)(nil)

// NewToaster creates a toaster for window
func NewToaster(window fyne.Window) *Toaster {
	return &Toaster{window: window, autoHide: ToastAutoHide}
}

// Notify shows message. It is safe to call from any goroutine.
func (t *Toaster) Notify(message string, severity model.Severity) {
	slog.Debug("Notification", "severity", severity, "message", message)
	fyne.Do(func() {
		t.show(message, severity)
	})
}

// Last returns the most recent message
func (t *Toaster) Last() string {
	return t.last
}

func severityColor(severity model.Severity) fyne.ThemeColorName {
	switch severity {
	case model.SeveritySuccess:
		return theme.ColorNameSuccess
	case model.SeverityWarning:
		return theme.ColorNameWarning
	case model.SeverityError:
		return theme.ColorNameError
	default:
		return theme.ColorNamePrimary
	}
}

func (t *Toaster) show(message string, severity model.Severity) {
	t.last = message
	if t.current != nil {
		t.current.Hide()
	}

	strip := canvas.NewRectangle(theme.Color(severityColor(severity)))
	strip.SetMinSize(fyne.NewSize(theme.Padding(), 0))

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, strip, closeBtn, messageLabel)
	toast = widget.NewPopUp(content, t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	t.current = toast

	time.AfterFunc(t.autoHide, func() {
		fyne.Do(toast.Hide)
	})
}
