package mediaview

// Mode is the visible sub-state of a DownloadView.
type Mode int

const (
	// AwaitingDownload shows the download affordance.
	AwaitingDownload Mode = iota
	// ContentActive shows the activity affordance.
	ContentActive
)

// String returns the metric label for m.
func (m Mode) String() string {
	switch m {
	case AwaitingDownload:
		return "awaiting_download"
	case ContentActive:
		return "content_active"
	default:
		return "unknown"
	}
}

// Trigger is an external event that drives a DownloadView.
type Trigger int

const (
	// TriggerStart is sent when the download is initiated.
	TriggerStart Trigger = iota
	// TriggerFail is sent when the download gave up.
	TriggerFail
	// TriggerRetry is sent when a failed download is attempted again.
	TriggerRetry
)

// String returns the log name for t.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerFail:
		return "fail"
	case TriggerRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// transitions maps every (mode, trigger) pair to the next mode.
var transitions = map[Mode]map[Trigger]Mode{
	AwaitingDownload: {
		TriggerStart: ContentActive,
		TriggerFail:  AwaitingDownload,
		TriggerRetry: ContentActive,
	},
	ContentActive: {
		TriggerStart: ContentActive,
		TriggerFail:  AwaitingDownload,
		TriggerRetry: ContentActive,
	},
}

// Next returns the mode reached from m on t. Unknown modes or triggers leave m unchanged.
func Next(m Mode, t Trigger) Mode {
	if next, ok := transitions[m][t]; ok {
		return next
	}
	return m
}
