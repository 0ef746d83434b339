package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/tui/styles"
)

// SearchBar is the list screen's query input
type SearchBar struct {
	input     textinput.Model
	prevQuery string // Track query changes for real-time filtering
}

// NewSearchBar creates an unfocused search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Cari doa..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Teal)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus starts capturing keystrokes
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur stops capturing keystrokes; the query is kept
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused returns true while the bar captures keystrokes
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Reset clears the query
func (s *SearchBar) Reset() {
	s.input.SetValue("")
	s.prevQuery = ""
}

// SetWidth updates the input width
func (s *SearchBar) SetWidth(width int) {
	s.input.Width = max(width-6, 10)
}

// Query returns the current text
func (s SearchBar) Query() string {
	return s.input.Value()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (s *SearchBar) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// Update forwards messages to the text input
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the component
func (s SearchBar) View() string {
	return s.input.View()
}
