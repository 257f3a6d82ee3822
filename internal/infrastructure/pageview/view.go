// Package pageview renders remote pages as text for the terminal. It is the
// PageView backend behind web content screens.
package pageview

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	defaultTimeout  = 20 * time.Second
	maxPageSize     = 4 << 20
	defaultAgent    = "tabshell"
	acceptHeaderVal = "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5"
)

// Dispatcher posts fn onto the UI event loop. Calls must preserve order.
type Dispatcher func(fn func())

// View is a text page with back history. Loads run in the background and
// report through the dispatcher; a newer load supersedes older ones.
type View struct {
	client    *http.Client
	userAgent string
	dispatch  Dispatcher

	ctx    context.Context
	cancel context.CancelFunc

	generation *atomic.Uint64
	closed     *atomic.Bool

	mu        sync.Mutex
	policy    port.PagePolicy
	state     port.PageState
	history   []string
	callbacks *port.PageCallbacks
}

var _ port.PageView = (*View)(nil)

// NewView creates a page bound to ctx. Cancelling ctx stops pending loads.
func NewView(ctx context.Context, client *http.Client, userAgent string, dispatch Dispatcher) *View {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if userAgent == "" {
		userAgent = defaultAgent
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	vctx, cancel := context.WithCancel(ctx)
	return &View{
		client:     client,
		userAgent:  userAgent,
		dispatch:   dispatch,
		ctx:        vctx,
		cancel:     cancel,
		generation: atomic.NewUint64(0),
		closed:     atomic.NewBool(false),
	}
}

// Apply implements port.PageView.
func (v *View) Apply(policy port.PagePolicy) {
	v.mu.Lock()
	v.policy = policy
	v.mu.Unlock()
}

// Policy returns the applied presentation policy.
func (v *View) Policy() port.PagePolicy {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.policy
}

// Load implements port.PageView.
func (v *View) Load(ctx context.Context, url string) error {
	if v.closed.Load() {
		return fmt.Errorf("load %s: page closed", url)
	}
	v.mu.Lock()
	if v.state.URL != "" && v.state.URL != url {
		v.history = append(v.history, v.state.URL)
	}
	v.mu.Unlock()

	v.start(ctx, url)
	return nil
}

// GoBack implements port.PageView.
func (v *View) GoBack(ctx context.Context) error {
	v.mu.Lock()
	n := len(v.history)
	if n == 0 || v.closed.Load() {
		v.mu.Unlock()
		return port.ErrNoHistory
	}
	prev := v.history[n-1]
	v.history = v.history[:n-1]
	v.mu.Unlock()

	v.start(ctx, prev)
	return nil
}

// CanGoBack implements port.PageView.
func (v *View) CanGoBack() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.history) > 0
}

// State implements port.PageView.
func (v *View) State() port.PageState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Links = append([]port.PageLink(nil), v.state.Links...)
	s.CanGoBack = len(v.history) > 0
	return s
}

// SetCallbacks implements port.PageView.
func (v *View) SetCallbacks(callbacks *port.PageCallbacks) {
	v.mu.Lock()
	v.callbacks = callbacks
	v.mu.Unlock()
}

// Close implements port.PageView.
func (v *View) Close() {
	if v.closed.Swap(true) {
		return
	}
	v.generation.Inc()
	v.cancel()
	v.SetCallbacks(nil)
}

func (v *View) start(ctx context.Context, url string) {
	gen := v.generation.Inc()

	v.mu.Lock()
	v.state = port.PageState{URL: url, IsLoading: true}
	v.mu.Unlock()

	log := logging.FromContext(ctx)
	log.Debug().Str(logging.FieldURL, logging.TruncateURL(url, logging.URLFieldLen)).Uint64("generation", gen).Msg("page load started")

	v.emit(gen, func() port.LoadEvent { return port.LoadStarted })

	go func() {
		doc, err := v.fetch(url)
		v.emit(gen, func() port.LoadEvent {
			v.mu.Lock()
			v.state = port.PageState{URL: url, Title: doc.Title, Text: doc.Text, Links: doc.Links, Err: err}
			v.mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str(logging.FieldURL, logging.TruncateURL(url, logging.URLFieldLen)).Msg("page load failed")
			}
			return port.LoadFinished
		})
	}()
}

// emit runs apply on the UI loop and then reports its event, unless a newer
// load or Close has superseded gen.
func (v *View) emit(gen uint64, apply func() port.LoadEvent) {
	v.dispatch(func() {
		if v.closed.Load() || v.generation.Load() != gen {
			return
		}
		event := apply()
		v.mu.Lock()
		cb := v.callbacks
		v.mu.Unlock()
		if cb != nil && cb.OnLoadChanged != nil {
			cb.OnLoadChanged(event)
		}
	})
}

func (v *View) fetch(url string) (Document, error) {
	req, err := http.NewRequestWithContext(v.ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", v.userAgent)
	req.Header.Set("Accept", acceptHeaderVal)

	resp, err := v.client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxPageSize)
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "" && mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		data, err := io.ReadAll(body)
		if err != nil {
			return Document{}, fmt.Errorf("read %s: %w", url, err)
		}
		return Document{Text: strings.TrimSpace(string(data))}, nil
	}

	base := url
	if resp.Request != nil && resp.Request.URL != nil {
		base = resp.Request.URL.String()
	}
	doc, err := Render(body, base)
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}
