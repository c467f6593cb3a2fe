package ui

import (
	"bytes"
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/skin-preview/internal/ingest"
	"github.com/ytget/skin-preview/internal/model"
	"github.com/ytget/skin-preview/internal/poster"
)

// recentTile is a thumbnail of a recent wallpaper.
type recentTile struct {
	widget.BaseWidget
	item     model.RecentItem
	thumb    image.Image
	caption  string
	onTapped func()
}

func newRecentTile(item model.RecentItem, thumb image.Image, caption string, onTapped func()) *recentTile {
	t := &recentTile{item: item, thumb: thumb, caption: caption, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *recentTile) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = theme.Padding() * 2
	bg.SetMinSize(fyne.NewSize(RecentThumb, RecentThumb))
	layers := []fyne.CanvasObject{bg}
	if t.thumb != nil {
		img := canvas.NewImageFromImage(t.thumb)
		img.FillMode = canvas.ImageFillContain
		layers = append(layers, img)
	}
	if t.item.MediaKind == model.MediaVideo {
		badge := canvas.NewText(IconVideo, theme.Color(theme.ColorNameForeground))
		layers = append(layers, container.NewCenter(badge))
	}
	caption := widget.NewLabel(t.caption)
	caption.Truncation = fyne.TextTruncateEllipsis
	caption.SizeName = theme.SizeNameCaptionText
	return widget.NewSimpleRenderer(container.NewBorder(nil, caption, nil, nil, container.NewStack(layers...)))
}

// Tapped applies the wallpaper
func (t *recentTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// RecentsPanel shows the recent wallpapers of one platform.
type RecentsPanel struct {
	platform model.PlatformID
	list     func(model.PlatformID) []model.RecentItem
	apply    func(model.RecentItem) bool
	poster   poster.Extractor

	empty   *widget.Label
	grid    *fyne.Container
	content fyne.CanvasObject
	thumbs  map[string]image.Image
}

// NewRecentsPanel creates the recents of platform p.
// list returns the items to show, apply puts one back on the platform.
func NewRecentsPanel(p model.PlatformID, localization *Localization, list func(model.PlatformID) []model.RecentItem, apply func(model.RecentItem) bool, extractor poster.Extractor, onClearAll func()) *RecentsPanel {
	r := &RecentsPanel{
		platform: p,
		list:     list,
		apply:    apply,
		poster:   extractor,
		empty:    widget.NewLabel(localization.GetText(KeyNoRecent)),
		grid:     container.NewGridWrap(fyne.NewSize(RecentThumb, RecentThumb+theme.TextSize()*2)),
		thumbs:   make(map[string]image.Image),
	}
	title := widget.NewLabelWithStyle(localization.GetText(KeyRecent), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	clearBtn := widget.NewButtonWithIcon(localization.GetText(KeyClearAll), theme.DeleteIcon(), onClearAll)
	clearBtn.Importance = widget.LowImportance
	r.content = container.NewBorder(container.NewBorder(nil, nil, nil, clearBtn, title), nil, nil, nil,
		container.NewStack(r.empty, r.grid))
	r.Rebuild()
	return r
}

// Content returns the canvas object of the panel
func (r *RecentsPanel) Content() fyne.CanvasObject {
	return r.content
}

// Len returns the number of tiles shown
func (r *RecentsPanel) Len() int {
	return len(r.grid.Objects)
}

// Rebuild recreates the tiles from the recent list
func (r *RecentsPanel) Rebuild() {
	items := r.list(r.platform)
	objects := make([]fyne.CanvasObject, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		item := it
		seen[item.Data] = true
		objects = append(objects, newRecentTile(item, r.thumbnail(item), r.caption(item), func() {
			r.apply(item)
		}))
	}
	for key := range r.thumbs {
		if !seen[key] {
			delete(r.thumbs, key)
		}
	}
	r.grid.Objects = objects
	r.grid.Refresh()
	if len(objects) == 0 {
		r.empty.Show()
	} else {
		r.empty.Hide()
	}
}

func (r *RecentsPanel) caption(item model.RecentItem) string {
	size, err := ingest.DataURISize(item.Data)
	if err != nil {
		return item.DisplayName()
	}
	return item.DisplayName() + MiddleDotSeparator + humanize.IBytes(uint64(size))
}

func (r *RecentsPanel) thumbnail(item model.RecentItem) image.Image {
	if img, ok := r.thumbs[item.Data]; ok {
		return img
	}
	var img image.Image
	switch item.MediaKind {
	case model.MediaVideo:
		if r.poster == nil {
			return nil
		}
		frame, ok := r.poster.Frame(item.Data)
		if !ok {
			return nil
		}
		img = frame
	default:
		_, data, err := ingest.DecodeDataURI(item.Data)
		if err != nil {
			return nil
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			slog.Debug("Failed to decode recent thumbnail", "file", item.FileName, "error", err)
			return nil
		}
		img = decoded
	}
	img = fitImage(img, int(RecentThumb), int(RecentThumb))
	r.thumbs[item.Data] = img
	return img
}
