package poster

import (
	"image"
	"time"
)

// Status represents the state of an extraction task
type Status string

const (
	StatusPending    Status = "Pending"
	StatusExtracting Status = "Extracting"
	StatusCompleted  Status = "Completed"
	StatusError      Status = "Error"
)

// IsActive returns true if the task is still working
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusExtracting
}

// IsFinished returns true if the task reached a terminal state
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusError
}

// Task is one poster frame extraction.
type Task struct {
	ID        string
	Key       string
	MIMEType  string
	Status    Status
	Frame     image.Image
	LastError string

	StartedAt  time.Time
	FinishedAt time.Time
}
