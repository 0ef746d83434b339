package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goresan/goresan/internal/ads"
)

// defaultCellWidthPx approximates one terminal cell in device pixels
const defaultCellWidthPx = 8

// mountAd unmounts the previous ad slot and mounts a new loader for the
// current screen. Outcomes of the previous mount are dropped by id.
func (m *Model) mountAd() tea.Cmd {
	if m.adCancel != nil {
		m.adCancel()
	}
	m.adCtx, m.adCancel = context.WithCancel(context.Background())

	if !m.adOpts.Enabled || m.adOpts.Provider == nil {
		m.AdBanner.Unmount()
		return nil
	}

	cfg := m.adOpts.Config
	cfg.Screen = m.screenSize(cfg.Screen.Density)

	loader := ads.NewLoader(cfg, m.adOpts.Provider, m.logger)
	mountID := m.AdBanner.MountID() + 1
	m.AdBanner.Mount(loader, mountID)

	if !loader.Mount() {
		return nil
	}
	return LoadAdCmd(loader, mountID)
}

// screenSize converts the terminal width into device pixels
func (m Model) screenSize(density float64) ads.Screen {
	cell := m.adOpts.CellWidthPx
	if cell <= 0 {
		cell = defaultCellWidthPx
	}
	return ads.Screen{WidthPx: float64(m.Width) * cell, Density: density}
}

func (m *Model) handleAdLoaded(msg AdLoadedMsg) tea.Cmd {
	loader := m.AdBanner.Loader(msg.MountID)
	if loader == nil {
		m.logger.Debug("dropping ad result of old mount", "mount", msg.MountID)
		return nil
	}

	banner := loader.Apply(msg.Result)
	if banner == nil {
		return nil
	}

	// Rotation stops when the mount's context is cancelled
	banner.Load(m.adCtx)
	return WaitForAdEventCmd(m.adCtx, banner, msg.MountID)
}

func (m *Model) handleAdEvent(msg AdEventMsg) tea.Cmd {
	loader := m.AdBanner.Loader(msg.MountID)
	if loader == nil || msg.Closed {
		return nil
	}

	loader.HandleEvent(msg.Event)

	st := loader.State()
	if st.Banner == nil {
		return nil
	}
	return WaitForAdEventCmd(m.adCtx, st.Banner, msg.MountID)
}
