package poster

import "image"

// Extractor defines the interface for the poster frame service.
type Extractor interface {
	SetUpdateCallback(func(*Task))
	StartExtraction(dataURI string) (*Task, error)
	GetTask(taskID string) (*Task, bool)
	Frame(dataURI string) (image.Image, bool)
}
