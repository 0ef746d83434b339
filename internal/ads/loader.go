package ads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Default race timeouts
const (
	DefaultAcquireTimeout = 5 * time.Second
	DefaultInitTimeout    = 10 * time.Second
)

// Failure reasons
var (
	ErrAcquireTimeout    = errors.New("ad module loading timeout")
	ErrInitTimeout       = errors.New("ad module initialization timeout")
	ErrModuleUnavailable = errors.New("ad module not available")
)

// StateKind enumerates the loader states
type StateKind int

const (
	StateUnloaded StateKind = iota
	StateLoading
	StateReady
	StateFailed
	StateDisplayed
	StateDisplayFailed
	StateWebFallback
)

func (k StateKind) String() string {
	switch k {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateDisplayed:
		return "displayed"
	case StateDisplayFailed:
		return "display_failed"
	case StateWebFallback:
		return "web_fallback"
	default:
		return "unknown"
	}
}

// State is a snapshot of the loader
type State struct {
	Kind   StateKind
	Size   Size       // set from Ready onwards
	Module Module     // set from Ready onwards
	Banner BannerView // set from Ready onwards
	Reason error      // set for Failed and DisplayFailed
}

// Placeholder texts
const (
	TextLoading     = "Memuat iklan..."
	TextUnavailable = "Iklan tidak tersedia"
	TextWebFallback = "Iklan (Web Preview)"
	TextAdLabel     = "Iklan"
)

// Placeholder returns the text shown for states without a creative.
// Failed and DisplayFailed share the same text.
func (s State) Placeholder() string {
	switch s.Kind {
	case StateWebFallback:
		return TextWebFallback
	case StateFailed, StateDisplayFailed:
		return TextUnavailable
	case StateDisplayed:
		return TextAdLabel
	default:
		return TextLoading
	}
}

// Config controls a loader mount
type Config struct {
	Platform       Platform
	Screen         Screen
	UnitID         string
	TestMode       bool
	RequestOptions RequestOptions
	AcquireTimeout time.Duration
	InitTimeout    time.Duration
}

// LoadResult is the outcome of the acquisition and initialization races
type LoadResult struct {
	Module Module
	Size   Size
	Err    error
}

// Loader is the per-mount ad loading state machine.
// Create one per mount and discard it on unmount.
type Loader struct {
	cfg      Config
	provider Provider
	logger   *slog.Logger

	mu        sync.Mutex
	state     State
	unmounted bool
}

// NewLoader creates a loader in the Unloaded state
func NewLoader(cfg Config, provider Provider, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = DefaultAcquireTimeout
	}
	if cfg.InitTimeout <= 0 {
		cfg.InitTimeout = DefaultInitTimeout
	}
	if provider == nil {
		provider = NoopProvider{}
	}
	return &Loader{
		cfg:      cfg,
		provider: provider,
		logger:   logger.With("component", "ads"),
	}
}

// State returns the current state
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Mount performs the Unloaded transition. It returns true when the caller
// must run Load; non-native platforms go straight to WebFallback.
func (l *Loader) Mount() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unmounted || l.state.Kind != StateUnloaded {
		return false
	}
	if !l.cfg.Platform.IsNative() {
		l.state = State{Kind: StateWebFallback}
		l.logger.Debug("ads disabled on platform", "platform", l.cfg.Platform)
		return false
	}
	l.state = State{Kind: StateLoading}
	return true
}

// Load runs both races. It does not touch loader state and may run off
// the UI loop; feed the result to Apply.
func (l *Loader) Load(ctx context.Context) LoadResult {
	module, err := race(ctx, l.cfg.AcquireTimeout, ErrAcquireTimeout, l.provider.Acquire)
	if err != nil {
		return LoadResult{Err: err}
	}
	if module == nil {
		return LoadResult{Err: ErrModuleUnavailable}
	}

	_, err = race(ctx, l.cfg.InitTimeout, ErrInitTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, module.Initialize(ctx)
	})
	if err != nil {
		return LoadResult{Err: err}
	}

	return LoadResult{
		Module: module,
		Size:   SelectSize(AdWidth(l.cfg.Screen, l.cfg.Platform)),
	}
}

// Apply moves Loading to Ready or Failed. It returns the banner view to
// start (nil when nothing should be displayed).
func (l *Loader) Apply(res LoadResult) BannerView {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unmounted || l.state.Kind != StateLoading {
		return nil
	}

	if res.Err != nil {
		l.logger.Warn("failed to load ad module", "error", res.Err)
		l.state = State{Kind: StateFailed, Reason: fmt.Errorf("load ad module: %w", res.Err)}
		return nil
	}

	banner := res.Module.Banner(l.unitID(res.Module), res.Size, l.cfg.RequestOptions)
	l.state = State{
		Kind:   StateReady,
		Size:   res.Size,
		Module: res.Module,
		Banner: banner,
	}
	l.logger.Info("ad module ready", "size", res.Size.Name)
	return banner
}

// HandleEvent applies a banner lifecycle callback
func (l *Loader) HandleEvent(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unmounted {
		return
	}

	switch ev.Kind {
	case EventLoaded:
		if l.hasBanner() {
			l.state.Kind = StateDisplayed
			l.state.Reason = nil
		}
	case EventFailedToLoad:
		// A banner can fail after a successful display (refresh failure)
		if l.hasBanner() {
			l.logger.Warn("ad banner failed to load", "error", ev.Err)
			l.state.Kind = StateDisplayFailed
			l.state.Reason = ev.Err
		}
	case EventOpened:
		l.logger.Info("ad banner opened")
	case EventClosed:
		l.logger.Info("ad banner closed")
	}
}

// Unmount suppresses all further transitions. In-flight operations keep
// running; their results are dropped.
func (l *Loader) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unmounted = true
}

// Run mounts, loads and waits for the first banner callback.
// Used outside the TUI.
func (l *Loader) Run(ctx context.Context) State {
	if !l.Mount() {
		return l.State()
	}
	banner := l.Apply(l.Load(ctx))
	if banner == nil {
		return l.State()
	}

	banner.Load(ctx)
	select {
	case ev, ok := <-banner.Events():
		if ok {
			l.HandleEvent(ev)
		}
	case <-ctx.Done():
	}
	return l.State()
}

func (l *Loader) hasBanner() bool {
	switch l.state.Kind {
	case StateReady, StateDisplayed, StateDisplayFailed:
		return l.state.Banner != nil
	}
	return false
}

func (l *Loader) unitID(module Module) string {
	if l.cfg.TestMode {
		if id := module.TestUnitID(); id != "" {
			return id
		}
	}
	return l.cfg.UnitID
}
