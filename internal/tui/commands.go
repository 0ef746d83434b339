package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/domain"
)

// Command factories for async operations

// fetchTimeout bounds a single record store read
const fetchTimeout = 30 * time.Second

// FetchDoaListCmd performs one read for the list screen
func FetchDoaListCmd(repo domain.DoaRepository, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := repo.FetchAll(ctx)
		return DoaListLoadedMsg{Token: token, Records: records, Err: err}
	}
}

// LoadDoaDetailCmd performs one read for the detail screen
func LoadDoaDetailCmd(repo domain.DoaRepository, token uint64, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := repo.FetchAll(ctx)
		return DoaDetailLoadedMsg{Token: token, ID: id, Records: records, Err: err}
	}
}

// LoadAdCmd runs the acquisition and initialization races of a mounted loader.
// The races are not cancelled on unmount; the loader drops their outcome.
func LoadAdCmd(loader *ads.Loader, mountID uint64) tea.Cmd {
	return func() tea.Msg {
		return AdLoadedMsg{MountID: mountID, Result: loader.Load(context.Background())}
	}
}

// WaitForAdEventCmd waits for the next banner lifecycle event, or until
// the mount's context is done
func WaitForAdEventCmd(ctx context.Context, banner ads.BannerView, mountID uint64) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-banner.Events():
			return AdEventMsg{MountID: mountID, Event: ev, Closed: !ok}
		case <-ctx.Done():
			return AdEventMsg{MountID: mountID, Closed: true}
		}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
