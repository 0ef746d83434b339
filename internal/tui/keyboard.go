package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateSearching:
		return m.handleSearchKey(msg)

	case StateJumping:
		return m.handleJumpKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.OpenAd):
		m.AdBanner.ToggleOpen()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Screen {
	case ScreenDetail:
		cmd = m.handleDetailKey(msg)
	default:
		cmd = m.handleListKey(msg)
	}
	return m, tea.Batch(cmd, m.syncRoute())
}

// handleListKey handles keys of the list screen
func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Up):
		m.DoaList.MoveCursor(-1, len(m.List.Visible()))

	case key.Matches(msg, Keys.Down):
		m.DoaList.MoveCursor(1, len(m.List.Visible()))

	case key.Matches(msg, Keys.Enter):
		if id, ok := m.DoaList.Selected(m.List); ok {
			m.List.Select(id)
		}

	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		return m.SearchBar.Focus()

	case key.Matches(msg, Keys.Jump):
		m.State = StateJumping
		return m.Jump.Show(m.List.All())

	case key.Matches(msg, Keys.NextPage):
		if m.List.NextPage() {
			m.DoaList.ResetCursor()
		}

	case key.Matches(msg, Keys.PrevPage):
		if m.List.PrevPage() {
			m.DoaList.ResetCursor()
		}

	case key.Matches(msg, Keys.Favorite):
		if id, ok := m.DoaList.Selected(m.List); ok {
			m.List.ToggleFavorite(id)
			m.DoaList.MoveCursor(0, len(m.List.Visible()))
		}

	case key.Matches(msg, Keys.ShowFavorites):
		m.List.ShowFavorites()
		m.DoaList.ResetCursor()

	case key.Matches(msg, Keys.ShowAll):
		m.List.ShowAll()
		m.SearchBar.Reset()
		m.DoaList.ResetCursor()

	case key.Matches(msg, Keys.Refresh):
		token := m.List.BeginFetch()
		return FetchDoaListCmd(m.Repo, token)

	default:
		// Digits jump to a page of the window
		if p, err := strconv.Atoi(msg.String()); err == nil && p >= 1 && p <= m.List.TotalPages() {
			m.List.SetPage(p)
			m.DoaList.ResetCursor()
		}
	}
	return nil
}

// handleDetailKey handles keys of the detail screen
func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.NextDoa):
		m.Detail.Next()
	case key.Matches(msg, Keys.PrevDoa):
		m.Detail.Previous()
	case key.Matches(msg, Keys.Back):
		m.Detail.Back()
	case key.Matches(msg, Keys.Home):
		m.Detail.Home()
	case key.Matches(msg, Keys.Favorite):
		m.Detail.ToggleFavorite()
	}
	return nil
}

// handleSearchKey routes keys to the focused search bar; the query is
// applied on every change
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "down":
		m.SearchBar.Blur()
		m.State = StateBrowsing
		return m, nil
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	if m.SearchBar.QueryChanged() {
		m.List.SetQuery(m.SearchBar.Query())
		m.DoaList.ResetCursor()
	}
	return m, cmd
}

// handleJumpKey routes keys to the jump modal
func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var chosen bool
	m.Jump, cmd, chosen = m.Jump.Update(msg)

	if !m.Jump.IsVisible() {
		m.State = StateBrowsing
		return m, cmd
	}
	if chosen {
		doa, _ := m.Jump.Selected()
		m.Jump.Hide()
		m.State = StateBrowsing
		m.List.Select(doa.ID)
		return m, tea.Batch(cmd, m.syncRoute())
	}
	return m, cmd
}
