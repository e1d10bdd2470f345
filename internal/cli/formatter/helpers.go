package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// RenderBox wraps content in a rounded border, with an optional title line.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return box.Render(content)
}

// labelled renders "Label:  value" rows with the labels padded to one width.
func labelled(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s", StyleDim.Render(fmt.Sprintf("%-*s", width+1, r[0]+":")), r[1]))
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to n terminal cells, ending with "…". Styled input is
// measured without its escape codes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(n), "…")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
