package pageview

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
)

// Option configures a Factory.
type Option func(*Factory)

// WithHTTPClient sets the client used for page loads.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Factory) { f.client = c }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(f *Factory) {
		if d > 0 {
			f.client = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent sets the User-Agent sent with page loads.
func WithUserAgent(ua string) Option {
	return func(f *Factory) { f.userAgent = ua }
}

// Factory creates Views that share one client and dispatcher.
type Factory struct {
	client    *http.Client
	userAgent string
	dispatch  Dispatcher
}

var _ port.PageViewFactory = (*Factory)(nil)

// NewFactory creates a factory whose views report through dispatch.
func NewFactory(dispatch Dispatcher, opts ...Option) *Factory {
	f := &Factory{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultAgent,
		dispatch:  dispatch,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create implements port.PageViewFactory.
func (f *Factory) Create(ctx context.Context) (port.PageView, error) {
	return NewView(ctx, f.client, f.userAgent, f.dispatch), nil
}

// Queue is a Dispatcher backed by a channel. The UI loop drains it with Next.
type Queue struct {
	ch   chan func()
	done <-chan struct{}
}

// NewQueue creates a queue that stops accepting work once ctx is done.
func NewQueue(ctx context.Context, size int) *Queue {
	if size <= 0 {
		size = 16
	}
	return &Queue{ch: make(chan func(), size), done: ctx.Done()}
}

// Dispatch enqueues fn. It drops fn when the queue has shut down.
func (q *Queue) Dispatch(fn func()) {
	select {
	case q.ch <- fn:
	case <-q.done:
	}
}

// Next blocks until work is queued. It returns false after shutdown.
func (q *Queue) Next() (func(), bool) {
	select {
	case fn := <-q.ch:
		return fn, true
	case <-q.done:
		return nil, false
	}
}
