package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Teal      = lipgloss.Color("#0ABAB5")
	Aqua      = lipgloss.Color("#56DFCF")
	Mint      = lipgloss.Color("#ADEED9")
	Blush     = lipgloss.Color("#FFEDF3")
	Coral     = lipgloss.Color("#FF6B6B")
	SlateDark = lipgloss.Color("#1F2937")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

// Header and panels
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Teal).
			Bold(true).
			Align(lipgloss.Center)

	TitlePanelStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Aqua).
			Bold(true).
			Padding(0, 1)

	BodyPanelStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Aqua).
			Padding(1, 2).
			Align(lipgloss.Right)

	TranslationPanelStyle = lipgloss.NewStyle().
				Foreground(SlateDark).
				Background(Mint).
				Padding(1, 2)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Teal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Coral)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(Coral).
			Bold(true)
)

// Favorite markers
const (
	HeartFull  = "♥"
	HeartEmpty = "♡"
)

// Heart renders the favorite marker
func Heart(favorite bool) string {
	if favorite {
		return FavoriteStyle.Render(HeartFull)
	}
	return FavoriteStyle.Render(HeartEmpty)
}

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Teal).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Padding(0, 1)
)

// Pagination styles
var (
	PageStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Padding(0, 1)

	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Teal).
				Bold(true).
				Padding(0, 1)

	PageArrowDisabledStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 1)
)

// Buttons
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Teal).
			Padding(0, 2)

	SecondaryButtonStyle = lipgloss.NewStyle().
				Foreground(Teal).
				Background(Mint).
				Padding(0, 2)

	FavoriteButtonStyle = lipgloss.NewStyle().
				Foreground(Coral).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Coral).
				Padding(0, 1)
)

// Ad slot
var (
	AdSlotStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(LightGray).
			Foreground(DimGray).
			Align(lipgloss.Center, lipgloss.Center)

	AdLabelStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(DimGray).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Teal).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Teal)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Match highlight styles for jump results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Coral).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(Coral).
					Background(Teal).
					Bold(true)
)

// Truncate truncates a string to the given display width with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// HighlightMatches renders s with the runes at the matched byte offsets emphasized
func HighlightMatches(s string, matched []int, selected bool) string {
	base, hl := NormalItemStyle.UnsetPadding(), MatchHighlightStyle
	if selected {
		base, hl = SelectedItemStyle.UnsetPadding(), MatchHighlightSelectedStyle
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if set[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
