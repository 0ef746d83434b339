package ads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSize(t *testing.T) {
	tests := []struct {
		width float64
		want  Size
	}{
		{width: 800, want: SizeLeaderboard},
		{width: 728, want: SizeLeaderboard},
		{width: 727, want: SizeBanner},
		{width: 468, want: SizeBanner},
		{width: 467, want: SizeLargeBanner},
		{width: 320, want: SizeLargeBanner},
		{width: 300, want: SizeBanner},
		{width: 0, want: SizeBanner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectSize(tt.width), "width %v", tt.width)
	}
}

func TestAdWidth(t *testing.T) {
	screen := Screen{WidthPx: 1080, Density: 2.5}

	assert.InDelta(t, 432.0, AdWidth(screen, PlatformAndroid), 0.001)
	// density only applies on android
	assert.InDelta(t, 1080.0, AdWidth(screen, PlatformIOS), 0.001)
	assert.InDelta(t, 800.0, AdWidth(Screen{WidthPx: 800}, PlatformAndroid), 0.001)
}

func TestPlatform(t *testing.T) {
	assert.True(t, PlatformAndroid.IsNative())
	assert.True(t, PlatformIOS.IsNative())
	assert.False(t, PlatformWeb.IsNative())
	assert.False(t, Platform("linux").IsNative())

	assert.Equal(t, PlatformAndroid, DetectPlatform("android"))
	assert.NotEmpty(t, DetectPlatform(""))
}

func TestProviderFor(t *testing.T) {
	native := &fakeProvider{}

	assert.Same(t, native, ProviderFor(PlatformAndroid, native))
	assert.IsType(t, NoopProvider{}, ProviderFor(PlatformWeb, native))
	assert.IsType(t, NoopProvider{}, ProviderFor(PlatformIOS, nil))
}
