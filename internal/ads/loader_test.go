package ads

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBanner struct {
	unitID string
	size   Size
	events chan Event
	loads  atomic.Int32
	result *Event
}

func (b *fakeBanner) Load(context.Context) {
	b.loads.Add(1)
	if b.result != nil {
		b.events <- *b.result
	}
}
func (b *fakeBanner) Events() <-chan Event { return b.events }
func (b *fakeBanner) Open()                { b.events <- Event{Kind: EventOpened} }
func (b *fakeBanner) Close()               { b.events <- Event{Kind: EventClosed} }
func (b *fakeBanner) Content() string      { return "creative" }

type fakeModule struct {
	initDelay time.Duration
	initErr   error
	testID    string
	banner    *fakeBanner
}

func (m *fakeModule) Initialize(ctx context.Context) error {
	if m.initDelay > 0 {
		time.Sleep(m.initDelay)
	}
	return m.initErr
}

func (m *fakeModule) TestUnitID() string { return m.testID }

func (m *fakeModule) Banner(unitID string, size Size, _ RequestOptions) BannerView {
	m.banner.unitID = unitID
	m.banner.size = size
	return m.banner
}

type fakeProvider struct {
	delay  time.Duration
	module Module
	err    error
	calls  atomic.Int32
}

func (p *fakeProvider) Acquire(ctx context.Context) (Module, error) {
	p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.module, p.err
}

func newModule() *fakeModule {
	return &fakeModule{banner: &fakeBanner{events: make(chan Event, 4)}}
}

func nativeConfig(width float64) Config {
	return Config{
		Platform:       PlatformIOS,
		Screen:         Screen{WidthPx: width, Density: 1},
		UnitID:         "unit-prod",
		AcquireTimeout: 50 * time.Millisecond,
		InitTimeout:    50 * time.Millisecond,
	}
}

func TestLoader_WebFallbackSkipsAcquisition(t *testing.T) {
	provider := &fakeProvider{module: newModule()}
	cfg := nativeConfig(800)
	cfg.Platform = PlatformWeb

	l := NewLoader(cfg, provider, nil)
	state := l.Run(context.Background())

	assert.Equal(t, StateWebFallback, state.Kind)
	assert.Equal(t, TextWebFallback, state.Placeholder())
	assert.Zero(t, provider.calls.Load())
}

func TestLoader_AcquireTimeout(t *testing.T) {
	provider := &fakeProvider{delay: 300 * time.Millisecond, module: newModule()}
	l := NewLoader(nativeConfig(800), provider, nil)

	state := l.Run(context.Background())

	require.Equal(t, StateFailed, state.Kind)
	assert.ErrorIs(t, state.Reason, ErrAcquireTimeout)
	assert.Equal(t, TextUnavailable, state.Placeholder())

	// The late acquisition result must not revive the loader
	time.Sleep(350 * time.Millisecond)
	assert.Equal(t, StateFailed, l.State().Kind)
}

func TestLoader_InitTimeout(t *testing.T) {
	module := newModule()
	module.initDelay = 300 * time.Millisecond
	l := NewLoader(nativeConfig(800), &fakeProvider{module: module}, nil)

	state := l.Run(context.Background())

	require.Equal(t, StateFailed, state.Kind)
	assert.ErrorIs(t, state.Reason, ErrInitTimeout)
}

func TestLoader_AcquireErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		wantErr  error
	}{
		{
			name:     "acquire error",
			provider: &fakeProvider{err: errors.New("boom")},
		},
		{
			name:     "nil module",
			provider: &fakeProvider{},
			wantErr:  ErrModuleUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(nativeConfig(800), tt.provider, nil)
			state := l.Run(context.Background())

			require.Equal(t, StateFailed, state.Kind)
			require.Error(t, state.Reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, state.Reason, tt.wantErr)
			}
		})
	}
}

func TestLoader_ReadyThenDisplayed(t *testing.T) {
	module := newModule()
	module.banner.result = &Event{Kind: EventLoaded}
	l := NewLoader(nativeConfig(800), &fakeProvider{module: module}, nil)

	state := l.Run(context.Background())

	require.Equal(t, StateDisplayed, state.Kind)
	assert.Equal(t, SizeLeaderboard, state.Size)
	assert.Equal(t, "unit-prod", module.banner.unitID)
	assert.Equal(t, int32(1), module.banner.loads.Load())
}

func TestLoader_DisplayFailedAfterDisplay(t *testing.T) {
	module := newModule()
	l := NewLoader(nativeConfig(400), &fakeProvider{module: module}, nil)

	require.True(t, l.Mount())
	assert.Equal(t, StateLoading, l.State().Kind)
	require.NotNil(t, l.Apply(l.Load(context.Background())))
	assert.Equal(t, StateReady, l.State().Kind)
	assert.Equal(t, SizeLargeBanner, l.State().Size)

	l.HandleEvent(Event{Kind: EventLoaded})
	assert.Equal(t, StateDisplayed, l.State().Kind)

	refreshErr := errors.New("no fill")
	l.HandleEvent(Event{Kind: EventFailedToLoad, Err: refreshErr})
	state := l.State()
	assert.Equal(t, StateDisplayFailed, state.Kind)
	assert.ErrorIs(t, state.Reason, refreshErr)
	assert.Equal(t, TextUnavailable, state.Placeholder())

	// opened/closed never change state
	l.HandleEvent(Event{Kind: EventOpened})
	assert.Equal(t, StateDisplayFailed, l.State().Kind)

	l.HandleEvent(Event{Kind: EventLoaded})
	assert.Equal(t, StateDisplayed, l.State().Kind)
}

func TestLoader_EventsIgnoredBeforeReady(t *testing.T) {
	l := NewLoader(nativeConfig(800), &fakeProvider{module: newModule()}, nil)
	require.True(t, l.Mount())

	l.HandleEvent(Event{Kind: EventLoaded})
	assert.Equal(t, StateLoading, l.State().Kind)
}

func TestLoader_UnmountGuard(t *testing.T) {
	l := NewLoader(nativeConfig(800), &fakeProvider{module: newModule()}, nil)
	require.True(t, l.Mount())

	res := l.Load(context.Background())
	l.Unmount()

	assert.Nil(t, l.Apply(res))
	assert.Equal(t, StateLoading, l.State().Kind)

	l.HandleEvent(Event{Kind: EventFailedToLoad, Err: errors.New("late")})
	assert.Equal(t, StateLoading, l.State().Kind)
	assert.False(t, l.Mount())
}

func TestLoader_TestModeUnitID(t *testing.T) {
	tests := []struct {
		name   string
		testID string
		want   string
	}{
		{name: "test id substituted", testID: "unit-test", want: "unit-test"},
		{name: "no test id keeps configured", testID: "", want: "unit-prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module := newModule()
			module.testID = tt.testID
			cfg := nativeConfig(800)
			cfg.TestMode = true

			l := NewLoader(cfg, &fakeProvider{module: module}, nil)
			require.True(t, l.Mount())
			require.NotNil(t, l.Apply(l.Load(context.Background())))
			assert.Equal(t, tt.want, module.banner.unitID)
		})
	}
}

func TestNewLoader_DefaultTimeouts(t *testing.T) {
	l := NewLoader(Config{Platform: PlatformAndroid}, nil, nil)
	assert.Equal(t, 5*time.Second, l.cfg.AcquireTimeout)
	assert.Equal(t, 10*time.Second, l.cfg.InitTimeout)
	assert.IsType(t, NoopProvider{}, l.provider)
}
