package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/tui/styles"
)

const (
	rowHint      = "Klik untuk membaca doa lengkap"
	loadingText  = "Memuat doa..."
	suggestLimit = 3
)

// DoaList renders the list screen body: rows, empty state and pagination
type DoaList struct {
	cursor int
	width  int
}

func NewDoaList() DoaList {
	return DoaList{}
}

// SetWidth updates the component width
func (l *DoaList) SetWidth(width int) {
	l.width = width
}

// Cursor returns the highlighted row on the current page
func (l DoaList) Cursor() int {
	return l.cursor
}

// ResetCursor moves the highlight to the first row
func (l *DoaList) ResetCursor() {
	l.cursor = 0
}

// MoveCursor moves the highlight by delta, clamped to the visible rows
func (l *DoaList) MoveCursor(delta, visible int) {
	l.cursor += delta
	if l.cursor >= visible {
		l.cursor = visible - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Selected returns the id under the cursor
func (l DoaList) Selected(c *doalist.Controller) (int, bool) {
	visible := c.Visible()
	if l.cursor < 0 || l.cursor >= len(visible) {
		return 0, false
	}
	return visible[l.cursor].ID, true
}

// View renders the rows of the current page
func (l DoaList) View(c *doalist.Controller) string {
	if c.Loading() && len(c.All()) == 0 {
		return styles.AccentStyle.Render(loadingText)
	}

	visible := c.Visible()
	if len(visible) == 0 {
		return l.emptyView(c)
	}

	titleWidth := max(l.width-8, 10)
	var b strings.Builder
	for i, doa := range visible {
		selected := i == l.cursor

		style := styles.NormalItemStyle
		if selected {
			style = styles.SelectedItemStyle
		}
		title := style.Render(styles.Truncate(doa.Title, titleWidth))
		row := lipgloss.JoinHorizontal(lipgloss.Top, styles.Heart(c.IsFavorite(doa.ID)), " ", title)

		b.WriteString(row)
		b.WriteString("\n")
		if selected {
			b.WriteString("    " + styles.DimStyle.Render(rowHint))
			b.WriteString("\n")
		}
	}

	if bar := PaginationBar(c.Page(), c.TotalPages()); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}
	return b.String()
}

func (l DoaList) emptyView(c *doalist.Controller) string {
	msg := c.EmptyMessage()
	style := styles.DimStyle
	if c.Error() != "" {
		style = styles.ErrorStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(msg))

	if suggestions := c.Suggestions(suggestLimit); len(suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.DimStyle.Render("Mungkin maksud Anda:"))
		for _, s := range suggestions {
			b.WriteString("\n  ")
			b.WriteString(styles.AccentStyle.Render(s))
		}
	}
	return b.String()
}

// PaginationBar renders "‹ 1 2 3 ... ›" for the window around page.
// It returns "" when there is at most one page.
func PaginationBar(page, total int) string {
	window := doalist.PageWindow(page, total)
	if window == nil {
		return ""
	}

	parts := make([]string, 0, len(window)+3)
	parts = append(parts, arrow("‹", page > 1))
	for _, p := range window {
		if p == page {
			parts = append(parts, styles.CurrentPageStyle.Render(strconv.Itoa(p)))
		} else {
			parts = append(parts, styles.PageStyle.Render(strconv.Itoa(p)))
		}
	}
	if doalist.HasMorePages(window, total) {
		parts = append(parts, styles.AccentStyle.Render("..."))
	}
	parts = append(parts, arrow("›", page < total))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func arrow(glyph string, enabled bool) string {
	if enabled {
		return styles.PageStyle.Render(glyph)
	}
	return styles.PageArrowDisabledStyle.Render(glyph)
}

// FavoritesButton renders the favorites counter shown beside the search bar
func FavoritesButton(count int, active bool) string {
	label := fmt.Sprintf("%s Favorit (%d)", styles.HeartFull, count)
	if active {
		return styles.FavoriteButtonStyle.Bold(true).Render(label)
	}
	return styles.FavoriteButtonStyle.Render(label)
}
