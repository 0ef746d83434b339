package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/domain"
	"github.com/goresan/goresan/internal/search"
	"github.com/goresan/goresan/internal/tui/styles"
)

const maxJumpResults = 10

// JumpModal is the fuzzy jump-to-doa finder
type JumpModal struct {
	input   textinput.Model
	records []domain.Doa
	results []search.Match
	cursor  int
	visible bool
	width   int
	height  int
}

// NewJumpModal creates a hidden jump modal
func NewJumpModal() JumpModal {
	ti := textinput.New()
	ti.Placeholder = "Ketik nama doa..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return JumpModal{input: ti}
}

// Show makes the modal visible over records and focuses the input
func (j *JumpModal) Show(records []domain.Doa) tea.Cmd {
	j.visible = true
	j.records = records
	j.results = nil
	j.cursor = 0
	j.input.SetValue("")
	return j.input.Focus()
}

// Hide hides the modal
func (j *JumpModal) Hide() {
	j.visible = false
	j.input.Blur()
}

// IsVisible returns true if the modal is visible
func (j JumpModal) IsVisible() bool {
	return j.visible
}

// SetSize updates the component dimensions
func (j *JumpModal) SetSize(width, height int) {
	j.width = width
	j.height = height
	j.input.Width = max(width-10, 10)
}

// Selected returns the highlighted result
func (j JumpModal) Selected() (domain.Doa, bool) {
	if j.cursor < 0 || j.cursor >= len(j.results) {
		return domain.Doa{}, false
	}
	return j.results[j.cursor].Doa, true
}

// Update handles messages. The bool result is true when a result was chosen.
func (j JumpModal) Update(msg tea.Msg) (JumpModal, tea.Cmd, bool) {
	if !j.visible {
		return j, nil, false
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			j.Hide()
			return j, nil, false

		case "enter":
			return j, nil, len(j.results) > 0

		case "down", "ctrl+n":
			if j.cursor < len(j.results)-1 {
				j.cursor++
			}
			return j, nil, false

		case "up", "ctrl+p":
			if j.cursor > 0 {
				j.cursor--
			}
			return j, nil, false
		}
	}

	prev := j.input.Value()
	j.input, cmd = j.input.Update(msg)
	if j.input.Value() != prev {
		j.results = search.Jump(j.input.Value(), j.records, maxJumpResults)
		j.cursor = 0
	}
	return j, cmd, false
}

// View renders the component
func (j JumpModal) View() string {
	if !j.visible {
		return ""
	}

	modalWidth := min(max(j.width*2/3, 40), 80)

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Lompat ke Doa"))
	b.WriteString("\n")
	b.WriteString(j.input.View())
	b.WriteString("\n\n")

	switch {
	case len(j.results) == 0 && j.input.Value() != "":
		b.WriteString(styles.DimStyle.Render("Tidak ada yang cocok"))
	default:
		for i, r := range j.results {
			title := styles.Truncate(r.Doa.Title, modalWidth-8)
			// Highlights past the truncation point are simply not drawn
			b.WriteString(styles.HighlightMatches(title, r.MatchedIndexes, i == j.cursor))
			b.WriteString("\n")
		}
	}

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(j.width, j.height, lipgloss.Center, lipgloss.Center, modal)
}
