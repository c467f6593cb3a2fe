package model

// IngestState represents the stage of a wallpaper ingestion job
type IngestState string

const (
	// IngestIdle means no file has been handed to the job yet
	IngestIdle IngestState = "Idle"

	// IngestValidating means type and size checks are running
	IngestValidating IngestState = "Validating"

	// IngestReading means the file bytes are being converted to a data reference
	IngestReading IngestState = "Reading"

	// IngestApplying means the wallpaper is being applied to state and history
	IngestApplying IngestState = "Applying"

	// IngestDone means the wallpaper was applied
	IngestDone IngestState = "Done"

	// IngestRejected means validation or reading failed
	IngestRejected IngestState = "Rejected"
)

// String returns the string representation of IngestState
func (s IngestState) String() string {
	return string(s)
}

// IsActive returns true if the job is still working
func (s IngestState) IsActive() bool {
	return s == IngestValidating || s == IngestReading || s == IngestApplying
}

// IsFinished returns true if the job reached a terminal state
func (s IngestState) IsFinished() bool {
	return s == IngestDone || s == IngestRejected
}
