// Package recent keeps the list of recently used wallpapers.
//
// The list is ordered most recent first, holds at most model.RecentGlobalCap
// items overall and model.RecentPerPlatformCap items per platform, and never
// contains two items with the same data, platform and media kind.
package recent

import (
	"log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/store"
)

// StorageKey is the store key of the persisted list.
const StorageKey = "recentWallpapers"

// FallbackPerPlatformCap is the per platform limit applied when the store is full.
const FallbackPerPlatformCap = 4

// Policy shrinks a list which could not be saved. It must keep the order.
type Policy func(items []model.RecentItem) []model.RecentItem

// CapPerPlatform returns a Policy keeping the n most recent items of every platform.
func CapPerPlatform(n int) Policy {
	return func(items []model.RecentItem) []model.RecentItem {
		counts := make(map[model.PlatformID]int)
		out := make([]model.RecentItem, 0, len(items))
		for _, it := range items {
			counts[it.Platform]++
			if counts[it.Platform] <= n {
				out = append(out, it)
			}
		}
		return out
	}
}

// Ledger is the recent wallpapers list backed by a store.
// The in-memory list is authoritative for the session: when saving fails
// the ledger keeps working with what it has.
type Ledger struct {
	store    *store.Store
	notifier model.Notifier
	fallback Policy
	now      func() int64
	onUpdate func()

	items  []model.RecentItem
	loaded bool
	lastTS int64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithFallback replaces the policy applied after a quota error.
func WithFallback(p Policy) Option {
	return func(l *Ledger) {
		l.fallback = p
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() int64) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns a ledger persisting to st. Warnings are reported to notifier.
func New(st *store.Store, notifier model.Notifier, opts ...Option) *Ledger {
	if notifier == nil {
		notifier = model.Discard
	}
	l := &Ledger{
		store:    st,
		notifier: notifier,
		fallback: CapPerPlatform(FallbackPerPlatformCap),
		now:      func() int64 { return time.Now().UnixMilli() },
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// SetUpdateCallback sets the function called after the list changed.
func (l *Ledger) SetUpdateCallback(callback func()) {
	l.onUpdate = callback
}

func (l *Ledger) notifyUpdate() {
	if l.onUpdate != nil {
		l.onUpdate()
	}
}

func (l *Ledger) load() {
	if l.loaded {
		return
	}
	l.loaded = true
	items := store.Load(l.store, StorageKey, []model.RecentItem{})
	items = slices.DeleteFunc(items, func(it model.RecentItem) bool {
		return !it.Platform.IsValid() || it.Data == ""
	})
	slices.SortStableFunc(items, func(a, b model.RecentItem) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})
	for _, it := range items {
		l.lastTS = max(l.lastTS, it.Timestamp)
	}
	l.items = items
	slog.Debug("Recent wallpapers loaded", "count", len(items))
}

// NewItem builds a recent item with the next timestamp.
// ok is false when mimeType is neither an image nor a video type.
func (l *Ledger) NewItem(p model.PlatformID, data, mimeType, fileName string) (model.RecentItem, bool) {
	kind, ok := model.KindFromMIME(mimeType)
	if !ok {
		return model.RecentItem{}, false
	}
	if fileName == "" {
		fileName = "Unnamed"
	}
	return model.RecentItem{
		Data:      data,
		MIMEType:  mimeType,
		Platform:  p,
		FileName:  fileName,
		Timestamp: l.nextTimestamp(),
		MediaKind: kind,
	}, true
}

func (l *Ledger) nextTimestamp() int64 {
	l.load()
	ts := max(l.now(), l.lastTS+1)
	l.lastTS = ts
	return ts
}

// Record puts item at the front of the list and persists it.
// An existing item with the same content is superseded.
func (l *Ledger) Record(item model.RecentItem) {
	l.load()
	if item.MediaKind == "" {
		kind, ok := model.KindFromMIME(item.MIMEType)
		if !ok {
			slog.Error("Refusing recent item with invalid type", "type", item.MIMEType, "file", item.FileName)
			return
		}
		item.MediaKind = kind
	}
	// the front item must also be the newest one, or a reload reorders the list
	if item.Timestamp == 0 || !l.newerThanAll(item) {
		item.Timestamp = l.nextTimestamp()
	}
	l.lastTS = max(l.lastTS, item.Timestamp)

	next := make([]model.RecentItem, 0, len(l.items)+1)
	next = append(next, item)
	for _, it := range l.items {
		if !it.SameContent(item) {
			next = append(next, it)
		}
	}
	next = capPlatform(next, item.Platform, model.RecentPerPlatformCap)
	if len(next) > model.RecentGlobalCap {
		next = next[:model.RecentGlobalCap]
	}

	saved, ok := l.save(next)
	if !ok {
		return
	}
	l.items = saved
	slog.Info("Recent wallpaper recorded",
		"platform", item.Platform, "file", item.FileName, "size", humanize.IBytes(uint64(len(item.Data))), "count", len(saved))
	l.notifyUpdate()
}

// newerThanAll reports whether item is newer than every other stored item.
func (l *Ledger) newerThanAll(item model.RecentItem) bool {
	for _, it := range l.items {
		if !it.SameContent(item) && it.Timestamp >= item.Timestamp {
			return false
		}
	}
	return true
}

// save persists items, falling back to the stricter policy once on a quota error.
// It returns the list which was actually saved.
func (l *Ledger) save(items []model.RecentItem) ([]model.RecentItem, bool) {
	err := l.store.Save(StorageKey, items)
	if err == nil {
		return items, true
	}
	if !store.IsQuotaExceeded(err) {
		slog.Error("Failed to save recent wallpapers", "error", err)
		l.notifier.Notify("Recent wallpapers could not be saved", model.SeverityWarning)
		return nil, false
	}
	reduced := l.fallback(items)
	slog.Warn("Storage full, trimming recent wallpapers", "error", err, "from", len(items), "to", len(reduced))
	if err := l.store.Save(StorageKey, reduced); err != nil {
		slog.Warn("Recent wallpapers kept for this session only", "error", err)
		l.notifier.Notify("Storage is full, recent wallpapers are kept for this session only", model.SeverityWarning)
		return nil, false
	}
	return reduced, true
}

// capPlatform keeps the first n items of platform p and all items of other platforms.
func capPlatform(items []model.RecentItem, p model.PlatformID, n int) []model.RecentItem {
	var seen int
	return slices.DeleteFunc(items, func(it model.RecentItem) bool {
		if it.Platform != p {
			return false
		}
		seen++
		return seen > n
	})
}

// ListFor returns the items of p, most recent first.
func (l *Ledger) ListFor(p model.PlatformID) []model.RecentItem {
	l.load()
	var out []model.RecentItem
	for _, it := range l.items {
		if it.Platform == p {
			out = append(out, it)
			if len(out) == model.RecentPerPlatformCap {
				break
			}
		}
	}
	return out
}

// All returns every item, most recent first.
func (l *Ledger) All() []model.RecentItem {
	l.load()
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *Ledger) Len() int {
	l.load()
	return len(l.items)
}

// ClearAll removes every item from memory and from the store.
func (l *Ledger) ClearAll() {
	l.loaded = true
	l.items = nil
	l.store.Remove(StorageKey)
	slog.Info("Recent wallpapers cleared")
	l.notifyUpdate()
}
