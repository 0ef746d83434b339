package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/domain"
)

// writeList prints the current page, then the page buttons
func writeList(w io.Writer, c *doalist.Controller) {
	visible := c.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, c.EmptyMessage())
		if s := c.Suggestions(3); len(s) > 0 {
			fmt.Fprintf(w, "Mungkin maksud Anda: %s\n", strings.Join(s, ", "))
		}
		return
	}

	for _, d := range visible {
		mark := " "
		if c.IsFavorite(d.ID) {
			mark = "♥"
		}
		fmt.Fprintf(w, "%s %5d  %s\n", mark, d.ID, d.Title)
	}

	if bar := pageBar(c.Page(), c.TotalPages()); bar != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bar)
	}
}

// pageBar renders the three-button window with the current page bracketed
func pageBar(page, total int) string {
	window := doalist.PageWindow(page, total)
	if window == nil {
		return ""
	}

	parts := make([]string, 0, len(window)+3)
	if page > 1 {
		parts = append(parts, "‹")
	}
	for _, p := range window {
		if p == page {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	if doalist.HasMorePages(window, total) {
		parts = append(parts, "...")
	}
	if page < total {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ")
}

// writeDoa prints a full record
func writeDoa(w io.Writer, d *domain.Doa) error {
	if d == nil {
		return errors.New(doalist.MsgDetailNotFound)
	}
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(d.Title))))
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Body)
	if d.Translation != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, d.Translation)
	}
	return nil
}

// writeAdState prints the outcome of a single ad load
func writeAdState(w io.Writer, platform ads.Platform, st ads.State) {
	fmt.Fprintf(w, "Platform: %s\n", platform)
	fmt.Fprintf(w, "State:    %s\n", st.Kind)
	if st.Size.Name != "" {
		fmt.Fprintf(w, "Size:     %s (%dx%d)\n", st.Size.Name, st.Size.Width, st.Size.Height)
	}
	if b, ok := st.Banner.(interface{ UnitID() string }); ok {
		fmt.Fprintf(w, "Unit:     %s\n", b.UnitID())
	}
	if st.Reason != nil {
		fmt.Fprintf(w, "Reason:   %v\n", st.Reason)
	}

	fmt.Fprintln(w)
	if st.Kind == ads.StateDisplayed && st.Banner != nil {
		fmt.Fprintf(w, "[%s] %s\n", ads.TextAdLabel, st.Banner.Content())
		return
	}
	fmt.Fprintln(w, st.Placeholder())
}
