// Package house implements the native ad provider with house creatives
// stored in a Baserow table.
package house

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goresan/goresan/internal/adapter/source/baserow"
	"github.com/goresan/goresan/internal/ads"
)

// TestUnitID is the unit id used when test mode is on
const TestUnitID = "house-test-banner"

// ErrNoFill indicates no creative fits the requested size
var ErrNoFill = errors.New("no creative available for size")

// CreativeSource lists house-ad rows
type CreativeSource interface {
	FetchCreatives(ctx context.Context, tableID string) ([]baserow.CreativeRow, error)
}

// Provider acquires the house ad module
type Provider struct {
	source          CreativeSource
	tableID         string
	refreshInterval time.Duration
	logger          *slog.Logger
}

// NewProvider creates a provider reading creatives from tableID.
// A zero refreshInterval disables rotation.
func NewProvider(source CreativeSource, tableID string, refreshInterval time.Duration, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		source:          source,
		tableID:         tableID,
		refreshInterval: refreshInterval,
		logger:          logger.With("component", "house_ads"),
	}
}

// Acquire validates configuration and returns an uninitialized module
func (p *Provider) Acquire(context.Context) (ads.Module, error) {
	if p.source == nil || p.tableID == "" {
		return nil, fmt.Errorf("house ads: creatives table is not configured")
	}
	return &Module{provider: p}, nil
}

// Module holds the creatives fetched at initialization
type Module struct {
	provider *Provider

	mu        sync.RWMutex
	creatives []baserow.CreativeRow
}

// Initialize fetches the creative inventory
func (m *Module) Initialize(ctx context.Context) error {
	creatives, err := m.provider.source.FetchCreatives(ctx, m.provider.tableID)
	if err != nil {
		return fmt.Errorf("fetch creatives: %w", err)
	}
	m.setCreatives(creatives)
	m.provider.logger.Info("house ads initialized", "creatives", len(creatives))
	return nil
}

func (m *Module) TestUnitID() string { return TestUnitID }

// Banner creates a banner view
func (m *Module) Banner(unitID string, size ads.Size, opts ads.RequestOptions) ads.BannerView {
	return &Banner{
		module: m,
		unitID: unitID,
		size:   size,
		opts:   opts,
		events: make(chan ads.Event, 8),
	}
}

func (m *Module) setCreatives(creatives []baserow.CreativeRow) {
	m.mu.Lock()
	m.creatives = creatives
	m.mu.Unlock()
}

// pick returns the n-th creative (round-robin) that fits size
func (m *Module) pick(size ads.Size, n int) (baserow.CreativeRow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var fits []baserow.CreativeRow
	for _, c := range m.creatives {
		if c.Size == "" || c.Size == size.Name {
			fits = append(fits, c)
		}
	}
	if len(fits) == 0 {
		return baserow.CreativeRow{}, false
	}
	return fits[n%len(fits)], true
}

// Banner is a house-ad banner view
type Banner struct {
	module *Module
	unitID string
	size   ads.Size
	opts   ads.RequestOptions
	events chan ads.Event

	mu       sync.RWMutex
	content  string
	rotation int
	started  bool
}

// Load shows the first creative and, when configured, rotates creatives
// until ctx is done. Each rotation re-fetches the inventory and may fail.
func (b *Banner) Load(ctx context.Context) {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return
	}
	b.started = true
	b.mu.Unlock()

	b.show()

	interval := b.module.provider.refreshInterval
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.refresh(ctx)
			}
		}
	}()
}

func (b *Banner) refresh(ctx context.Context) {
	p := b.module.provider
	creatives, err := p.source.FetchCreatives(ctx, p.tableID)
	if err != nil {
		b.emit(ads.Event{Kind: ads.EventFailedToLoad, Err: err})
		return
	}
	b.module.setCreatives(creatives)
	b.show()
}

func (b *Banner) show() {
	b.mu.Lock()
	creative, ok := b.module.pick(b.size, b.rotation)
	b.rotation++
	if ok {
		b.content = creative.Text
	}
	b.mu.Unlock()

	if !ok {
		b.emit(ads.Event{Kind: ads.EventFailedToLoad, Err: fmt.Errorf("%w %s", ErrNoFill, b.size.Name)})
		return
	}
	b.emit(ads.Event{Kind: ads.EventLoaded})
}

// emit never blocks; events are dropped when the buffer is full
func (b *Banner) emit(ev ads.Event) {
	select {
	case b.events <- ev:
	default:
		b.module.provider.logger.Debug("dropping banner event", "event", ev.Kind.String())
	}
}

func (b *Banner) Events() <-chan ads.Event { return b.events }

func (b *Banner) Open()  { b.emit(ads.Event{Kind: ads.EventOpened}) }
func (b *Banner) Close() { b.emit(ads.Event{Kind: ads.EventClosed}) }

// Content returns the creative currently shown
func (b *Banner) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// UnitID returns the unit id the banner was created for
func (b *Banner) UnitID() string { return b.unitID }
