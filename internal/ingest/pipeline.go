package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/recent"
	"github.com/ytget/skin-preview/internal/state"
)

// Job ID prefix
const JobIDPrefix = "ingest-"

// ErrInvalidPlatform is returned when a job targets an unknown platform.
var ErrInvalidPlatform = errors.New("invalid platform")

// Job is one pass of a file through the pipeline.
type Job struct {
	ID        string
	FileName  string
	MIMEType  string
	Size      int64
	Kind      model.MediaKind
	Platforms []model.PlatformID
	State     model.IngestState
	History   []model.IngestState
	Err       error

	StartedAt  time.Time
	FinishedAt time.Time

	data string
}

// IsBulk reports whether the job applies to every platform.
func (j *Job) IsBulk() bool {
	return len(j.Platforms) > 1
}

// Pipeline validates, reads and applies wallpaper uploads.
type Pipeline struct {
	state    *state.State
	ledger   *recent.Ledger
	notifier model.Notifier
	limits   func() Limits
	dispatch func(func())

	mu       sync.Mutex
	onUpdate func(*Job)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDispatcher sets how the applying step is handed back to the UI goroutine.
func WithDispatcher(d func(func())) Option {
	return func(p *Pipeline) {
		p.dispatch = d
	}
}

// WithLimitsFunc reads limits on every job, so settings changes apply without a restart.
func WithLimitsFunc(f func() Limits) Option {
	return func(p *Pipeline) {
		p.limits = f
	}
}

// New creates a pipeline with fixed limits.
func New(st *state.State, ledger *recent.Ledger, notifier model.Notifier, limits Limits, opts ...Option) *Pipeline {
	if notifier == nil {
		notifier = model.Discard
	}
	p := &Pipeline{
		state:    st,
		ledger:   ledger,
		notifier: notifier,
		limits:   func() Limits { return limits },
		dispatch: func(f func()) { f() },
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// SetUpdateCallback sets the callback function for job state changes.
// The job is only valid during the call; jobs started with Submit are
// still being worked on and must not be retained.
func (p *Pipeline) SetUpdateCallback(callback func(*Job)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

func (p *Pipeline) notifyUpdate(job *Job) {
	p.mu.Lock()
	cb := p.onUpdate
	p.mu.Unlock()
	if cb != nil {
		cb(job)
	}
}

func (p *Pipeline) setState(job *Job, s model.IngestState) {
	job.State = s
	job.History = append(job.History, s)
	if s.IsFinished() {
		job.FinishedAt = time.Now()
	}
	slog.Debug("Ingest job state", "id", job.ID, "file", job.FileName, "state", s)
	p.notifyUpdate(job)
}

func newJob(f File, platforms []model.PlatformID) *Job {
	return &Job{
		ID:        generateJobID(),
		FileName:  f.Name(),
		MIMEType:  f.MIMEType(),
		Size:      f.Size(),
		Platforms: platforms,
		State:     model.IngestIdle,
		History:   []model.IngestState{model.IngestIdle},
		StartedAt: time.Now(),
	}
}

// Ingest runs a job for one platform and returns when it is finished.
func (p *Pipeline) Ingest(ctx context.Context, platform model.PlatformID, f File) (*Job, error) {
	if !platform.IsValid() {
		return nil, fmt.Errorf("ingest %q: %w", platform, ErrInvalidPlatform)
	}
	job := newJob(f, []model.PlatformID{platform})
	if err := p.prepare(ctx, job, f); err != nil {
		return job, err
	}
	p.apply(job)
	return job, nil
}

// IngestAll validates and reads a file once and applies it to every platform.
func (p *Pipeline) IngestAll(ctx context.Context, f File) (*Job, error) {
	job := newJob(f, model.Platforms())
	if err := p.prepare(ctx, job, f); err != nil {
		return job, err
	}
	p.apply(job)
	return job, nil
}

// Submit starts a job for one platform in the background and returns its ID.
// Validation runs immediately, reading runs on its own goroutine
// and applying runs through the dispatcher. done receives the finished job
// and may be nil.
func (p *Pipeline) Submit(platform model.PlatformID, f File, done func(*Job)) string {
	return p.submit(f, []model.PlatformID{platform}, done)
}

// SubmitAll starts a bulk job in the background and returns its ID.
func (p *Pipeline) SubmitAll(f File, done func(*Job)) string {
	return p.submit(f, model.Platforms(), done)
}

func (p *Pipeline) submit(f File, platforms []model.PlatformID, done func(*Job)) string {
	job := newJob(f, platforms)
	finish := func() {
		if done != nil {
			done(job)
		}
	}
	for _, pl := range platforms {
		if !pl.IsValid() {
			p.reject(job, fmt.Errorf("ingest %q: %w", pl, ErrInvalidPlatform))
			finish()
			return job.ID
		}
	}
	if err := p.validate(job); err != nil {
		finish()
		return job.ID
	}
	go func() {
		err := p.read(job, f)
		p.dispatch(func() {
			if err == nil {
				p.apply(job)
			}
			finish()
		})
	}()
	return job.ID
}

func (p *Pipeline) prepare(ctx context.Context, job *Job, f File) error {
	if err := p.validate(job); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		p.reject(job, err)
		return err
	}
	return p.read(job, f)
}

func (p *Pipeline) validate(job *Job) error {
	p.setState(job, model.IngestValidating)
	kind, err := p.limits().Validate(job.MIMEType, job.Size)
	if err != nil {
		p.reject(job, err)
		return err
	}
	job.Kind = kind
	job.MIMEType = strings.ToLower(strings.TrimSpace(job.MIMEType))
	return nil
}

func (p *Pipeline) read(job *Job, f File) error {
	p.setState(job, model.IngestReading)
	r, err := f.Open()
	if err != nil {
		err = fmt.Errorf("open %s: %w", job.FileName, err)
		p.reject(job, err)
		return err
	}
	defer r.Close()
	limit := p.limits().MaxBytes(job.Kind)
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		err = fmt.Errorf("read %s: %w", job.FileName, err)
		p.reject(job, err)
		return err
	}
	if int64(len(data)) > limit {
		err := tooLarge(limit)
		p.reject(job, err)
		return err
	}
	job.Size = int64(len(data))
	job.data = EncodeDataURI(job.MIMEType, data)
	slog.Debug("Ingest read complete", "id", job.ID, "size", humanize.IBytes(uint64(job.Size)))
	return nil
}

func (p *Pipeline) apply(job *Job) {
	p.setState(job, model.IngestApplying)
	slot := model.UploadSlot{Data: job.data, Name: job.FileName, MIMEType: job.MIMEType}
	for _, pl := range job.Platforms {
		p.state.SetWallpaper(pl, slot, job.Kind)
		item, ok := p.ledger.NewItem(pl, job.data, job.MIMEType, job.FileName)
		if ok {
			p.ledger.Record(item)
		}
	}
	p.setState(job, model.IngestDone)
	slog.Info("Wallpaper applied", "id", job.ID, "file", job.FileName, "platforms", job.Platforms, "kind", job.Kind)
	if job.IsBulk() {
		p.notifier.Notify(fmt.Sprintf("%q applied to all platforms!", job.FileName), model.SeveritySuccess)
		return
	}
	p.notifier.Notify(fmt.Sprintf("%q uploaded to %s", job.FileName, job.Platforms[0].DisplayName()), model.SeveritySuccess)
}

func (p *Pipeline) reject(job *Job, err error) {
	job.Err = err
	p.setState(job, model.IngestRejected)
	slog.Warn("Ingest rejected", "id", job.ID, "file", job.FileName, "error", err)
	var verr *ValidationError
	if errors.As(err, &verr) {
		p.notifier.Notify(verr.Reason, model.SeverityError)
		return
	}
	p.notifier.Notify(fmt.Sprintf("Could not read %q", job.FileName), model.SeverityError)
}

// ApplyRecent puts a wallpaper from the recent list back on its platform.
func (p *Pipeline) ApplyRecent(item model.RecentItem) bool {
	if !item.Platform.IsValid() || item.Data == "" {
		return false
	}
	kind := item.MediaKind
	if kind == "" {
		k, ok := model.KindFromMIME(item.MIMEType)
		if !ok {
			return false
		}
		kind = k
	}
	p.state.ApplyWallpaper(item.Platform, item.Data, kind)
	p.notifier.Notify(fmt.Sprintf("Wallpaper applied to %s", item.Platform.DisplayName()), model.SeveritySuccess)
	return true
}

// generateJobID generates a unique job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
