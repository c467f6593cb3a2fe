package ingest_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/projector"
	"github.com/ytget/skin-preview/internal/recent"
	"github.com/ytget/skin-preview/internal/state"
	"github.com/ytget/skin-preview/internal/store"
)

type notification struct {
	message  string
	severity model.Severity
}

type fakeNotifier struct {
	mu  sync.Mutex
	got []notification
}

func (n *fakeNotifier) Notify(message string, severity model.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, notification{message, severity})
}

func (n *fakeNotifier) last() notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.got) == 0 {
		return notification{}
	}
	return n.got[len(n.got)-1]
}

// sizedFile reports a size without holding the bytes.
type sizedFile struct {
	name     string
	mimeType string
	size     int64
	opened   bool
}

func (f *sizedFile) Name() string     { return f.name }
func (f *sizedFile) MIMEType() string { return f.mimeType }
func (f *sizedFile) Size() int64      { return f.size }
func (f *sizedFile) Open() (io.ReadCloser, error) {
	f.opened = true
	return nil, errors.New("not readable")
}

// lyingFile reports a smaller size than it delivers.
type lyingFile struct {
	data []byte
}

func (f *lyingFile) Name() string     { return "liar.png" }
func (f *lyingFile) MIMEType() string { return "image/png" }
func (f *lyingFile) Size() int64      { return 1 }
func (f *lyingFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

type fixture struct {
	state    *state.State
	ledger   *recent.Ledger
	notifier *fakeNotifier
	pipeline *ingest.Pipeline
}

func newFixture(t *testing.T, opts ...ingest.Option) *fixture {
	t.Helper()
	st := state.New(model.DefaultCatalog())
	n := &fakeNotifier{}
	l := recent.New(store.New(store.NewMemoryBackend(), 64*ingest.MiB), n)
	return &fixture{
		state:    st,
		ledger:   l,
		notifier: n,
		pipeline: ingest.New(st, l, n, ingest.DefaultLimits(), opts...),
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("jpeg is applied to its platform", func(t *testing.T) {
		f := newFixture(t)
		data := bytes.Repeat([]byte{0xff}, 2*ingest.MiB)
		job, err := f.pipeline.Ingest(ctx, model.PlatformA, ingest.NewBytesFile("a.jpg", "image/jpeg", data))
		require.NoError(t, err)

		assert.Equal(t, model.IngestDone, job.State)
		assert.Equal(t, []model.IngestState{
			model.IngestIdle, model.IngestValidating, model.IngestReading, model.IngestApplying, model.IngestDone,
		}, job.History)
		assert.True(t, strings.HasPrefix(job.ID, ingest.JobIDPrefix))

		up := f.state.Upload(model.PlatformA, model.MediaImage)
		require.NotNil(t, up)
		assert.True(t, strings.HasPrefix(up.Data, "data:image/jpeg;base64,"))
		assert.Equal(t, "a.jpg", up.Name)

		wp := f.state.Wallpaper(model.PlatformA)
		assert.Equal(t, up.Data, wp.Ref)
		assert.Equal(t, model.MediaImage, wp.Kind)

		items := f.ledger.ListFor(model.PlatformA)
		require.Len(t, items, 1)
		assert.Equal(t, up.Data, items[0].Data)
		assert.Equal(t, model.MediaImage, items[0].MediaKind)

		assert.Equal(t, notification{`"a.jpg" uploaded to iOS`, model.SeveritySuccess}, f.notifier.last())
	})

	t.Run("large video is rejected without reading", func(t *testing.T) {
		f := newFixture(t)
		file := &sizedFile{name: "big.mp4", mimeType: "video/mp4", size: 60 * ingest.MiB}
		job, err := f.pipeline.Ingest(ctx, model.PlatformB, file)

		var verr *ingest.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "file too large, max 50 MB", verr.Reason)
		assert.Equal(t, model.IngestRejected, job.State)
		assert.False(t, file.opened)
		assert.Nil(t, f.state.Upload(model.PlatformB, model.MediaVideo))
		assert.True(t, f.state.Wallpaper(model.PlatformB).IsDefault())
		assert.Zero(t, f.ledger.Len())
		assert.Equal(t, notification{"file too large, max 50 MB", model.SeverityError}, f.notifier.last())
	})

	t.Run("unsupported type", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.pipeline.Ingest(ctx, model.PlatformC, ingest.NewBytesFile("doc.pdf", "application/pdf", []byte("x")))
		var verr *ingest.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, ingest.ReasonUnsupportedType, verr.Reason)
		assert.False(t, f.state.IsDirty(model.PlatformC))
	})

	t.Run("content larger than reported size is rejected", func(t *testing.T) {
		f := newFixture(t)
		file := &lyingFile{data: make([]byte, 10*ingest.MiB+1)}
		job, err := f.pipeline.Ingest(ctx, model.PlatformA, file)
		var verr *ingest.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.IngestRejected, job.State)
		assert.Zero(t, f.ledger.Len())
	})

	t.Run("canceled context stops before reading", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		job, err := f.pipeline.Ingest(ctx, model.PlatformA, ingest.NewBytesFile("a.png", "image/png", []byte("x")))
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotContains(t, job.History, model.IngestReading)
	})

	t.Run("invalid platform", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.pipeline.Ingest(ctx, "Z", ingest.NewBytesFile("a.png", "image/png", []byte("x")))
		assert.ErrorIs(t, err, ingest.ErrInvalidPlatform)
	})

	t.Run("surface renders before the recent list is updated", func(t *testing.T) {
		f := newFixture(t)
		hub := projector.NewHub(f.state)
		s := &orderSurface{ledger: f.ledger}
		hub.Register(model.PlatformA, s, nil)
		hub.Attach()
		defer hub.Detach()

		_, err := f.pipeline.Ingest(ctx, model.PlatformA, ingest.NewBytesFile("a.png", "image/png", []byte("x")))
		require.NoError(t, err)
		require.NotEmpty(t, s.image)
		assert.Equal(t, 0, s.recentAtRender)
		assert.Equal(t, 1, f.ledger.Len())
	})
}

type orderSurface struct {
	ledger         *recent.Ledger
	image          string
	recentAtRender int
	mode           model.ScreenMode
}

func (s *orderSurface) SetBackgroundImage(url string) {
	s.image = url
	s.recentAtRender = s.ledger.Len()
}
func (s *orderSurface) SetBackgroundVideo(string)         {}
func (s *orderSurface) ResetBackground(string)            {}
func (s *orderSurface) SetFilterDescriptor(string)        {}
func (s *orderSurface) DisplayMode() model.ScreenMode     { return s.mode }
func (s *orderSurface) SetDisplayMode(m model.ScreenMode) { s.mode = m }

var _ projector.Surface = (*orderSurface)(nil)

func TestIngestAll(t *testing.T) {
	f := newFixture(t)
	job, err := f.pipeline.IngestAll(context.Background(), ingest.NewBytesFile("clip.webm", "video/webm", []byte("video")))
	require.NoError(t, err)
	assert.True(t, job.IsBulk())

	for _, p := range model.Platforms() {
		wp := f.state.Wallpaper(p)
		assert.Equal(t, model.MediaVideo, wp.Kind, p)
		assert.Len(t, f.ledger.ListFor(p), 1, p)
	}
	assert.Equal(t, 4, f.ledger.Len())
	assert.Equal(t, notification{`"clip.webm" applied to all platforms!`, model.SeveritySuccess}, f.notifier.last())
}

func TestSubmit(t *testing.T) {
	t.Run("applies through the dispatcher", func(t *testing.T) {
		var dispatched int
		f := newFixture(t, ingest.WithDispatcher(func(fn func()) {
			dispatched++
			fn()
		}))
		done := make(chan *ingest.Job, 1)
		id := f.pipeline.Submit(model.PlatformD, ingest.NewBytesFile("d.png", "image/png", []byte("png")), func(j *ingest.Job) {
			done <- j
		})
		assert.True(t, strings.HasPrefix(id, ingest.JobIDPrefix))
		job := <-done
		assert.Equal(t, id, job.ID)
		assert.Equal(t, model.IngestDone, job.State)
		assert.Equal(t, 1, dispatched)
		assert.False(t, f.state.Wallpaper(model.PlatformD).IsDefault())
	})

	t.Run("rejection completes synchronously", func(t *testing.T) {
		f := newFixture(t)
		var got *ingest.Job
		id := f.pipeline.Submit(model.PlatformA, ingest.NewBytesFile("x.txt", "text/plain", nil), func(j *ingest.Job) {
			got = j
		})
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, model.IngestRejected, got.State)
	})

	t.Run("bulk", func(t *testing.T) {
		f := newFixture(t)
		done := make(chan *ingest.Job, 1)
		f.pipeline.SubmitAll(ingest.NewBytesFile("all.png", "image/png", []byte("png")), func(j *ingest.Job) {
			done <- j
		})
		job := <-done
		assert.Equal(t, model.IngestDone, job.State)
		assert.Equal(t, 4, f.ledger.Len())
	})
}

func TestUpdateCallback(t *testing.T) {
	f := newFixture(t)
	var states []model.IngestState
	f.pipeline.SetUpdateCallback(func(j *ingest.Job) {
		states = append(states, j.State)
	})
	_, err := f.pipeline.Ingest(context.Background(), model.PlatformA, ingest.NewBytesFile("a.png", "image/png", []byte("x")))
	require.NoError(t, err)
	assert.Equal(t, []model.IngestState{
		model.IngestValidating, model.IngestReading, model.IngestApplying, model.IngestDone,
	}, states)
}

func TestApplyRecent(t *testing.T) {
	f := newFixture(t)
	item := model.RecentItem{
		Data:     "data:video/mp4;base64,AAAA",
		MIMEType: "video/mp4",
		Platform: model.PlatformB,
		FileName: "clip.mp4",
	}
	assert.True(t, f.pipeline.ApplyRecent(item))
	wp := f.state.Wallpaper(model.PlatformB)
	assert.Equal(t, item.Data, wp.Ref)
	assert.Equal(t, model.MediaVideo, wp.Kind)
	assert.Zero(t, f.ledger.Len())
	assert.Equal(t, notification{"Wallpaper applied to Android", model.SeveritySuccess}, f.notifier.last())

	assert.False(t, f.pipeline.ApplyRecent(model.RecentItem{Platform: "Z", Data: "x"}))
	assert.False(t, f.pipeline.ApplyRecent(model.RecentItem{Platform: model.PlatformA}))
}

func TestLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	file, err := ingest.NewLocalFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, "photo.png", file.Name())
	assert.Equal(t, "image/png", file.MIMEType())
	assert.EqualValues(t, 3, file.Size())

	job, err := newFixture(t).pipeline.Ingest(context.Background(), model.PlatformC, file)
	require.NoError(t, err)
	assert.Equal(t, model.IngestDone, job.State)

	_, err = ingest.NewLocalFile(t.TempDir(), "")
	assert.Error(t, err)
}

func TestLocalFileTypeFromExtension(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, reported, want string
	}{
		{"clip.mov", "application/octet-stream", "video/quicktime"},
		{"clip.MP4", "", "video/mp4"},
		{"clip.webm", "application/octet-stream", "video/webm"},
		{"photo.JPG", "", "image/jpeg"},
		{"notes.txt", "text/plain", "text/plain"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01}, 0o644))
			file, err := ingest.NewLocalFile(path, tc.reported)
			require.NoError(t, err)
			assert.Equal(t, tc.want, file.MIMEType())
		})
	}

	t.Run("mov is accepted by the pipeline", func(t *testing.T) {
		path := filepath.Join(dir, "holiday.mov")
		require.NoError(t, os.WriteFile(path, []byte("moov"), 0o644))
		file, err := ingest.NewLocalFile(path, "application/octet-stream")
		require.NoError(t, err)
		job, err := newFixture(t).pipeline.Ingest(context.Background(), model.PlatformB, file)
		require.NoError(t, err)
		assert.Equal(t, model.IngestDone, job.State)
		assert.Equal(t, model.MediaVideo, job.Kind)
	})
}

func TestUploadExtensions(t *testing.T) {
	exts := ingest.UploadExtensions()
	assert.Contains(t, exts, ".mov")
	assert.Contains(t, exts, ".webp")
	assert.True(t, slices.IsSorted(exts))
}
