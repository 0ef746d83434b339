package house

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goresan/goresan/internal/adapter/source/baserow"
	"github.com/goresan/goresan/internal/ads"
)

type fakeSource struct {
	mu        sync.Mutex
	creatives []baserow.CreativeRow
	err       error
	calls     int
}

func (s *fakeSource) FetchCreatives(_ context.Context, tableID string) ([]baserow.CreativeRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.creatives, s.err
}

func (s *fakeSource) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func nextEvent(t *testing.T, b ads.BannerView) ads.Event {
	t.Helper()
	select {
	case ev := <-b.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for banner event")
		return ads.Event{}
	}
}

func TestProvider_AcquireRequiresTable(t *testing.T) {
	_, err := NewProvider(&fakeSource{}, "", 0, nil).Acquire(context.Background())
	assert.Error(t, err)
}

func TestBanner_LoadPicksCreativeForSize(t *testing.T) {
	src := &fakeSource{creatives: []baserow.CreativeRow{
		{ID: 1, Text: "Leaderboard only", Size: "LEADERBOARD"},
		{ID: 2, Text: "Any size", Size: ""},
	}}
	module, err := NewProvider(src, "77", 0, nil).Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, module.Initialize(context.Background()))

	banner := module.Banner("unit", ads.SizeBanner, ads.RequestOptions{})
	banner.Load(context.Background())

	assert.Equal(t, ads.EventLoaded, nextEvent(t, banner).Kind)
	assert.Equal(t, "Any size", banner.Content())
	assert.Equal(t, TestUnitID, module.TestUnitID())
	assert.Equal(t, "unit", banner.(*Banner).UnitID())
}

func TestBanner_NoFill(t *testing.T) {
	src := &fakeSource{creatives: []baserow.CreativeRow{{ID: 1, Text: "Big", Size: "LEADERBOARD"}}}
	module, err := NewProvider(src, "77", 0, nil).Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, module.Initialize(context.Background()))

	banner := module.Banner("unit", ads.SizeLargeBanner, ads.RequestOptions{})
	banner.Load(context.Background())

	ev := nextEvent(t, banner)
	assert.Equal(t, ads.EventFailedToLoad, ev.Kind)
	assert.ErrorIs(t, ev.Err, ErrNoFill)
}

func TestModule_InitializeError(t *testing.T) {
	src := &fakeSource{err: errors.New("offline")}
	module, err := NewProvider(src, "77", 0, nil).Acquire(context.Background())
	require.NoError(t, err)
	assert.Error(t, module.Initialize(context.Background()))
}

func TestBanner_RefreshFailureAfterDisplay(t *testing.T) {
	src := &fakeSource{creatives: []baserow.CreativeRow{{ID: 1, Text: "A"}, {ID: 2, Text: "B"}}}
	module, err := NewProvider(src, "77", 50*time.Millisecond, nil).Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, module.Initialize(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	banner := module.Banner("unit", ads.SizeBanner, ads.RequestOptions{})
	banner.Load(ctx)
	require.Equal(t, ads.EventLoaded, nextEvent(t, banner).Kind)
	assert.Equal(t, "A", banner.Content())

	require.Equal(t, ads.EventLoaded, nextEvent(t, banner).Kind)
	assert.Equal(t, "B", banner.Content())

	src.setErr(errors.New("refresh failed"))
	for {
		// a rotation may already be in flight
		if ev := nextEvent(t, banner); ev.Kind == ads.EventFailedToLoad {
			assert.EqualError(t, ev.Err, "refresh failed")
			return
		}
	}
}

func TestBanner_OpenClose(t *testing.T) {
	module := &Module{provider: NewProvider(&fakeSource{}, "77", 0, nil)}
	banner := module.Banner("unit", ads.SizeBanner, ads.RequestOptions{})

	banner.Open()
	banner.Close()
	assert.Equal(t, ads.EventOpened, nextEvent(t, banner).Kind)
	assert.Equal(t, ads.EventClosed, nextEvent(t, banner).Kind)
}
