// Package mediaview implements the two-state view shown for a media item that
// must be fetched before it can be displayed, and the controller that drives it.
//
// A view is a passive state holder: it shows either the download affordance or
// the activity affordance, never both. All calls must happen on the goroutine
// that renders the host UI.
package mediaview

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/Belphemur/ReaderSettings/internal/metrics"
)

// Region is a visual sub-region that can be shown or hidden.
// Every fyne.CanvasObject satisfies it.
type Region interface {
	Show()
	Hide()
	Visible() bool
}

// Panel is a Region that only records its visibility.
type Panel struct {
	visible bool
}

// NewPanel returns a visible Panel.
func NewPanel() *Panel {
	return &Panel{visible: true}
}

// Show marks the panel visible.
func (p *Panel) Show() { p.visible = true }

// Hide marks the panel hidden.
func (p *Panel) Hide() { p.visible = false }

// Visible reports whether the panel was last shown.
func (p *Panel) Visible() bool { return p.visible }

// DownloadView toggles between a download prompt and in-progress content.
type DownloadView struct {
	id        uuid.UUID
	mode      Mode
	onTap     func()
	container Region
	download  Region
	activity  Region
}

// NewDownloadView wires the three named regions. Nil regions, including typed
// nil pointers such as a nil *widget.Button, are replaced with Panels.
// The view starts in AwaitingDownload.
func NewDownloadView(container, download, activity Region) *DownloadView {
	v := &DownloadView{
		id:        uuid.New(),
		mode:      AwaitingDownload,
		container: orPanel(container),
		download:  orPanel(download),
		activity:  orPanel(activity),
	}
	v.apply()
	return v
}

func orPanel(r Region) Region {
	if r == nil {
		return NewPanel()
	}
	if rv := reflect.ValueOf(r); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return NewPanel()
	}
	return r
}

// ID identifies the view in logs.
func (v *DownloadView) ID() uuid.UUID { return v.id }

// Mode returns the current mode.
func (v *DownloadView) Mode() Mode { return v.mode }

// Container returns the region holding the media content.
func (v *DownloadView) Container() Region { return v.container }

// DownloadAffordance returns the region offering the download, visible only in AwaitingDownload.
func (v *DownloadView) DownloadAffordance() Region { return v.download }

// ActivityAffordance returns the in-progress indicator, visible only in ContentActive.
func (v *DownloadView) ActivityAffordance() Region { return v.activity }

// Fire applies t and returns the resulting mode.
func (v *DownloadView) Fire(t Trigger) Mode {
	next := Next(v.mode, t)
	if next != v.mode {
		metrics.MediaViewTransitionsTotal.WithLabelValues(v.mode.String(), next.String()).Inc()
		v.mode = next
	}
	v.apply()
	return v.mode
}

// StartDownload switches to ContentActive. Calling it again has no further effect.
func (v *DownloadView) StartDownload() Mode {
	return v.Fire(TriggerStart)
}

// OnDownloadTap sets the handler run when the download affordance is tapped.
func (v *DownloadView) OnDownloadTap(fn func()) {
	v.onTap = fn
}

// Tap runs the tap handler. Taps outside AwaitingDownload are ignored since the
// download affordance is hidden.
func (v *DownloadView) Tap() {
	if v.mode != AwaitingDownload || v.onTap == nil {
		return
	}
	v.onTap()
}

func (v *DownloadView) apply() {
	v.container.Show()
	switch v.mode {
	case ContentActive:
		v.download.Hide()
		v.activity.Show()
	default:
		v.activity.Hide()
		v.download.Show()
	}
}
