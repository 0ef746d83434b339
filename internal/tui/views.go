package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/tui/components"
	"github.com/goresan/goresan/internal/tui/styles"
)

const (
	appTitle      = "Goresan Doa"
	searchingHint = "enter/esc selesai mencari"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Memuat..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}
	if m.State == StateJumping {
		return m.Jump.View()
	}

	var body string
	switch m.Screen {
	case ScreenDetail:
		body = m.DoaDetail.View(m.Detail)
	default:
		body = m.renderList()
	}

	sections := []string{m.renderHeader(), body}
	if ad := m.AdBanner.View(); ad != "" {
		sections = append(sections, ad)
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := appTitle
	if m.Offline {
		title += " (offline)"
	}
	return styles.HeaderStyle.Width(m.Width).Render(title)
}

func (m Model) renderList() string {
	toolbar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.SearchBar.View(),
		"  ",
		components.FavoritesButton(m.List.Favorites().Len(), m.List.Source() == doalist.SourceFavorites),
	)
	return lipgloss.JoinVertical(lipgloss.Left, toolbar, "", m.DoaList.View(m.List))
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(m.StatusMsg)
		}
		return styles.AccentStyle.Render(m.StatusMsg)
	}
	if m.SearchBar.Focused() {
		return styles.DimStyle.Render(searchingHint)
	}
	return styles.DimStyle.Render("? bantuan • q keluar")
}

func (m Model) renderHelp() string {
	bindings := Keys.ListHelp()
	if m.Screen == ScreenDetail {
		bindings = Keys.DetailHelp()
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Bantuan"))
	b.WriteString("\n")
	for _, kb := range bindings {
		b.WriteString(renderBinding(kb))
		b.WriteString("\n")
	}

	modal := styles.ModalStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}

func renderBinding(kb key.Binding) string {
	h := kb.Help()
	return styles.HelpKeyStyle.Width(10).Render(h.Key) + styles.HelpDescStyle.Render(h.Desc)
}
