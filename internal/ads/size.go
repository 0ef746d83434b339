package ads

// Screen describes the host display
type Screen struct {
	WidthPx float64 // physical width in pixels
	Density float64 // pixel ratio; <= 0 means 1
}

// AdWidth converts the screen width to density-independent pixels.
// Only android exposes a density; other platforms use 1.
func AdWidth(screen Screen, platform Platform) float64 {
	density := 1.0
	if platform == PlatformAndroid && screen.Density > 0 {
		density = screen.Density
	}
	return screen.WidthPx / density
}

// SelectSize picks the adaptive banner size for a width
func SelectSize(width float64) Size {
	switch {
	case width >= 728:
		return SizeLeaderboard
	case width >= 468:
		return SizeBanner
	case width >= 320:
		return SizeLargeBanner
	default:
		return SizeBanner
	}
}
