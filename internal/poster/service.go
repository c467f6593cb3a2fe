package poster

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/skin-preview/internal/ingest"
)

// FFmpeg constants for frame extraction
const (
	FFmpegCommand  = "ffmpeg"
	SeekPosition   = "0"
	FrameCount     = "1"
	OutputFormat   = "image2"
	OutputCodec    = "png"
	InputFileName  = "input"
	OutputFileName = "poster.png"
	TaskIDPrefix   = "poster-"
	WorkDirPattern = "skin-preview-poster-*"
)

// ErrNotVideo is returned for data URIs which do not hold a video.
var ErrNotVideo = errors.New("not a video")

// Service extracts the first frame of video wallpapers
type Service struct {
	command string

	tasks      map[string]*Task
	byKey      map[string]*Task
	tasksMutex sync.RWMutex
	onUpdate   func(*Task) // callback for UI updates
}

// Option configures a Service.
type Option func(*Service)

// WithCommand sets the ffmpeg executable.
func WithCommand(name string) Option {
	return func(s *Service) {
		s.command = name
	}
}

// NewService creates a new poster frame service
func NewService(opts ...Option) *Service {
	s := &Service{
		command: FFmpegCommand,
		tasks:   make(map[string]*Task),
		byKey:   make(map[string]*Task),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Available reports whether the ffmpeg executable can be found.
func (s *Service) Available() bool {
	_, err := exec.LookPath(s.command)
	return err == nil
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*Task)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// StartExtraction starts extracting the first frame of a video data URI.
// A video which already has a task returns that task.
// Returned tasks are copies; poll GetTask or use the update callback for progress.
func (s *Service) StartExtraction(dataURI string) (*Task, error) {
	mimeType, data, err := ingest.DecodeDataURI(dataURI)
	if err != nil {
		return nil, fmt.Errorf("poster: %w", err)
	}
	if !strings.HasPrefix(mimeType, "video/") {
		return nil, fmt.Errorf("poster %s: %w", mimeType, ErrNotVideo)
	}
	key := keyFor(dataURI)

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if task, ok := s.byKey[key]; ok && task.Status != StatusError {
		return snapshot(task), nil
	}
	task := &Task{
		ID:        generateTaskID(),
		Key:       key,
		MIMEType:  mimeType,
		Status:    StatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.byKey[key] = task

	go s.extract(task, data)

	return snapshot(task), nil
}

// extract performs the actual extraction
func (s *Service) extract(task *Task, data []byte) {
	s.setStatus(task, StatusExtracting)

	dir, err := os.MkdirTemp("", WorkDirPattern)
	if err != nil {
		s.setTaskError(task, fmt.Errorf("failed to create work dir: %w", err))
		return
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, InputFileName)
	outputPath := filepath.Join(dir, OutputFileName)
	if err := os.WriteFile(inputPath, data, 0o600); err != nil {
		s.setTaskError(task, fmt.Errorf("failed to write input: %w", err))
		return
	}

	cmd := exec.Command(s.command, s.BuildFFmpegArgs(inputPath, outputPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Debug("ffmpeg output", "task", task.ID, "stderr", stderr.String())
		s.setTaskError(task, fmt.Errorf("failed to run ffmpeg: %w", err))
		return
	}

	f, err := os.Open(outputPath)
	if err != nil {
		s.setTaskError(task, fmt.Errorf("failed to open frame: %w", err))
		return
	}
	defer f.Close()
	frame, _, err := image.Decode(f)
	if err != nil {
		s.setTaskError(task, fmt.Errorf("failed to decode frame: %w", err))
		return
	}

	s.tasksMutex.Lock()
	task.Frame = frame
	task.Status = StatusCompleted
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	slog.Info("Poster frame extracted", "task", task.ID, "size", frame.Bounds().Size())
	s.notifyUpdate(task)
}

// GetTask returns an extraction task by ID
func (s *Service) GetTask(taskID string) (*Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return nil, false
	}
	return snapshot(task), true
}

// Frame returns the extracted frame of a video data URI if it is ready.
func (s *Service) Frame(dataURI string) (image.Image, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, ok := s.byKey[keyFor(dataURI)]
	if !ok || task.Status != StatusCompleted {
		return nil, false
	}
	return task.Frame, true
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-ss", SeekPosition,
		"-i", inputPath,
		"-frames:v", FrameCount,
		"-f", OutputFormat,
		"-c:v", OutputCodec,
		outputPath,
	}
}

func (s *Service) setStatus(task *Task, status Status) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *Task, err error) {
	s.tasksMutex.Lock()
	task.Status = StatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	slog.Warn("Poster frame extraction failed", "task", task.ID, "error", err)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *Task) {
	s.tasksMutex.RLock()
	cb := s.onUpdate
	view := snapshot(task)
	s.tasksMutex.RUnlock()
	if cb != nil {
		cb(view)
	}
}

// snapshot copies task. The caller holds tasksMutex.
func snapshot(task *Task) *Task {
	c := *task
	return &c
}

func keyFor(dataURI string) string {
	sum := sha256.Sum256([]byte(dataURI))
	return hex.EncodeToString(sum[:])
}

// generateTaskID generates a unique task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
