package ads

import (
	"context"
	"errors"
	"runtime"
)

// Platform identifies the runtime target. Only native targets load ads.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// IsNative reports whether the platform can host the native ad module
func (p Platform) IsNative() bool {
	return p == PlatformAndroid || p == PlatformIOS
}

// DetectPlatform returns the configured override, or the build target
func DetectPlatform(override string) Platform {
	if override != "" {
		return Platform(override)
	}
	return Platform(runtime.GOOS)
}

// Size is a standard banner size in density-independent pixels
type Size struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeBanner      = Size{Name: "BANNER", Width: 320, Height: 50}
	SizeLargeBanner = Size{Name: "LARGE_BANNER", Width: 320, Height: 100}
	SizeLeaderboard = Size{Name: "LEADERBOARD", Width: 728, Height: 90}
)

// RequestOptions are passed through to the banner view
type RequestOptions struct {
	NonPersonalizedOnly bool
	NetworkExtras       map[string]string
}

// EventKind enumerates banner lifecycle callbacks
type EventKind int

const (
	EventLoaded EventKind = iota
	EventFailedToLoad
	EventOpened
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventFailedToLoad:
		return "failed_to_load"
	case EventOpened:
		return "opened"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is a lifecycle callback delivered by a banner view
type Event struct {
	Kind EventKind
	Err  error // set for EventFailedToLoad
}

// Provider acquires the advertising module.
// A native adapter or the fallback adapter is chosen at startup by ProviderFor.
type Provider interface {
	Acquire(ctx context.Context) (Module, error)
}

// Module is an acquired advertising SDK
type Module interface {
	// Initialize performs the SDK's one-time asynchronous setup
	Initialize(ctx context.Context) error

	// TestUnitID returns the unit id used in test mode ("" if none)
	TestUnitID() string

	// Banner creates a banner view for the given unit and size
	Banner(unitID string, size Size, opts RequestOptions) BannerView
}

// BannerView is an embedded banner. Outcomes arrive on Events.
type BannerView interface {
	// Load starts fetching creatives; it returns immediately
	Load(ctx context.Context)

	// Events delivers loaded / failed-to-load / opened / closed callbacks
	Events() <-chan Event

	// Open and Close report user interaction with the banner
	Open()
	Close()

	// Content returns the current creative ("" before the first load)
	Content() string
}

// ErrUnsupportedPlatform is returned by the fallback adapter
var ErrUnsupportedPlatform = errors.New("ads are not supported on this platform")

// NoopProvider is the fallback adapter for non-native platforms
type NoopProvider struct{}

func (NoopProvider) Acquire(context.Context) (Module, error) {
	return nil, ErrUnsupportedPlatform
}

// ProviderFor selects the native adapter on native platforms and the fallback otherwise
func ProviderFor(platform Platform, native Provider) Provider {
	if platform.IsNative() && native != nil {
		return native
	}
	return NoopProvider{}
}
