package mediaview

import (
	"context"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ReaderSettings/internal/metrics"
)

// Fetcher downloads the media item identified by itemID.
type Fetcher interface {
	Fetch(ctx context.Context, itemID string) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, itemID string) error

// Fetch calls f(ctx, itemID).
func (f FetcherFunc) Fetch(ctx context.Context, itemID string) error {
	return f(ctx, itemID)
}

const (
	defaultRetries    = 2
	defaultMinBackoff = 200 * time.Millisecond
	defaultMaxBackoff = 2 * time.Second
)

// Controller drives a DownloadView from the outcome of a Fetcher.
type Controller struct {
	view    *DownloadView
	fetcher Fetcher
	itemID  string
	logger  zerolog.Logger
	onError func(error)

	retries    int
	minBackoff time.Duration
	maxBackoff time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithRetries sets how many times a failed fetch is attempted again.
func WithRetries(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithBackoff sets the exponential backoff bounds between attempts.
func WithBackoff(minDelay, maxDelay time.Duration) Option {
	return func(c *Controller) {
		if minDelay > 0 && maxDelay > minDelay {
			c.minBackoff, c.maxBackoff = minDelay, maxDelay
		}
	}
}

// WithLogger sets the logger for download progress and failures. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithErrorHandler sets a callback for failures of downloads started by Bind,
// which has no caller to return them to.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// NewController returns a Controller for the media item itemID shown in view.
func NewController(view *DownloadView, fetcher Fetcher, itemID string, opts ...Option) *Controller {
	c := &Controller{
		view:       view,
		fetcher:    fetcher,
		itemID:     itemID,
		logger:     zerolog.Nop(),
		retries:    defaultRetries,
		minBackoff: defaultMinBackoff,
		maxBackoff: defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().
		Str("component", "mediaview").
		Str("item_id", itemID).
		Str("view_id", view.ID().String()).
		Logger()
	return c
}

// Bind attaches Begin as the view's tap handler. When autoDownload is true the
// download begins immediately. Failures reach the WithErrorHandler callback;
// Begin has already logged them, counted them and reverted the view.
func (c *Controller) Bind(ctx context.Context, autoDownload bool) {
	c.view.OnDownloadTap(func() {
		c.begin(ctx)
	})
	if autoDownload {
		c.begin(ctx)
	}
}

func (c *Controller) begin(ctx context.Context) {
	if err := c.Begin(ctx); err != nil && c.onError != nil {
		c.onError(err)
	}
}

// Begin starts the download and blocks until it succeeds or gives up.
// The view moves to ContentActive at once and back to AwaitingDownload on failure.
func (c *Controller) Begin(ctx context.Context) error {
	c.view.Fire(TriggerStart)
	c.logger.Debug().Msg("Media download started")

	policy := retrypolicy.NewBuilder[any]().
		WithMaxRetries(c.retries).
		WithBackoff(c.minBackoff, c.maxBackoff).
		Build()

	err := failsafe.With(policy).WithContext(ctx).RunWithExecution(func(exec failsafe.Execution[any]) error {
		if exec.Attempts() > 1 {
			c.view.Fire(TriggerRetry)
			c.logger.Debug().Int("attempt", exec.Attempts()).Msg("Retrying media download")
		}
		return c.fetcher.Fetch(exec.Context(), c.itemID)
	})
	if err != nil {
		c.view.Fire(TriggerFail)
		metrics.MediaDownloadsTotal.WithLabelValues("error").Inc()
		c.logger.Warn().Err(err).Msg("Media download failed")
		return err
	}

	metrics.MediaDownloadsTotal.WithLabelValues("success").Inc()
	c.logger.Debug().Msg("Media download finished")
	return nil
}
