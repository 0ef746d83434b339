package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/tui/styles"
)

// DoaDetail renders the reading screen of one record
type DoaDetail struct {
	width int
}

func NewDoaDetail() DoaDetail {
	return DoaDetail{}
}

// SetWidth updates the component width
func (d *DoaDetail) SetWidth(width int) {
	d.width = width
}

// View renders the detail body for the controller's current record
func (d DoaDetail) View(c *doalist.Detail) string {
	if c.Loading() {
		return styles.AccentStyle.Render(loadingText)
	}

	if msg := c.Message(); msg != "" {
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.ErrorStyle.Render(msg),
			"",
			styles.ButtonStyle.Render("Kembali"),
		)
	}

	doa := c.Current()
	width := max(d.width-4, 20)

	title := styles.TitlePanelStyle.
		Width(width - 6).
		Align(lipgloss.Center).
		Render(doa.Title)
	heart := styles.FavoriteButtonStyle.Render(styles.Heart(c.IsFavorite()))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", heart)

	body := styles.BodyPanelStyle.Width(width).Render(doa.Body)
	translation := styles.TranslationPanelStyle.Width(width).Render(doa.Translation)

	nav := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ButtonStyle.Render("‹ Doa Sebelumnya"),
		strings.Repeat(" ", 2),
		styles.ButtonStyle.Render("Doa Selanjutnya ›"),
	)
	home := styles.SecondaryButtonStyle.Render("Kembali ke Daftar")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		translation,
		"",
		nav,
		home,
	)
}
