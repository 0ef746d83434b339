package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/tui/styles"
)

// AdBanner renders the ad slot of the current mount. Each screen mount
// gets a fresh loader; the previous one is unmounted so late results
// from its races are dropped.
type AdBanner struct {
	loader  *ads.Loader
	mountID uint64
	opened  bool
	width   int
}

// Mount replaces the current loader with a new one for mountID
func (a *AdBanner) Mount(loader *ads.Loader, mountID uint64) {
	a.Unmount()
	a.loader = loader
	a.mountID = mountID
	a.opened = false
}

// Unmount tears down the current loader, if any
func (a *AdBanner) Unmount() {
	if a.loader != nil {
		a.loader.Unmount()
		a.loader = nil
	}
}

// Loader returns the loader of mountID, or nil when it is no longer current
func (a AdBanner) Loader(mountID uint64) *ads.Loader {
	if a.loader == nil || mountID != a.mountID {
		return nil
	}
	return a.loader
}

// MountID returns the id of the current mount
func (a AdBanner) MountID() uint64 {
	return a.mountID
}

// ToggleOpen reports the user activating or dismissing a displayed banner
func (a *AdBanner) ToggleOpen() {
	if a.loader == nil {
		return
	}
	st := a.loader.State()
	if st.Kind != ads.StateDisplayed || st.Banner == nil {
		return
	}
	if a.opened {
		st.Banner.Close()
	} else {
		st.Banner.Open()
	}
	a.opened = !a.opened
}

// SetWidth updates the available width in cells
func (a *AdBanner) SetWidth(width int) {
	a.width = width
}

// View renders the slot for the loader's current state
func (a AdBanner) View() string {
	if a.loader == nil {
		return ""
	}
	st := a.loader.State()

	var content string
	switch st.Kind {
	case ads.StateDisplayed:
		label := styles.AdLabelStyle.Render(ads.TextAdLabel)
		creative := ""
		if st.Banner != nil {
			creative = st.Banner.Content()
		}
		content = lipgloss.JoinHorizontal(lipgloss.Center, label, " ", creative)
	case ads.StateReady:
		content = fmt.Sprintf("%s (%s)", ads.TextLoading, st.Size.Name)
	default:
		content = st.Placeholder()
	}

	width := max(a.width-2, 10)
	return styles.AdSlotStyle.Width(width).Render(content)
}
