package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathanguimaraes/frontend-bank/internal/domain"
	"github.com/nathanguimaraes/frontend-bank/internal/spending"
)

const chartHeight = 6

// renderChart draws the spending buckets as a column chart, oldest on
// the left, with one fixed-width column per bucket and the bucket
// labels underneath.
func renderChart(buckets []spending.Bucket, s *Styles) string {
	colWidth := 1
	var max float64
	for _, b := range buckets {
		if w := lipgloss.Width(b.Label); w > colWidth {
			colWidth = w
		}
		if b.Value > max {
			max = b.Value
		}
	}

	heights := make([]int, len(buckets))
	for i, b := range buckets {
		if max > 0 && b.Value > 0 {
			heights[i] = int(b.Value/max*chartHeight + 0.5)
			if heights[i] == 0 {
				heights[i] = 1
			}
		}
	}

	rows := make([]string, 0, chartHeight+2)
	for level := chartHeight; level >= 1; level-- {
		cells := make([]string, len(buckets))
		for i := range buckets {
			cell := strings.Repeat(" ", colWidth)
			if heights[i] >= level {
				cell = pad("█", colWidth)
			}
			cells[i] = cell
		}
		rows = append(rows, s.Accent.Render(strings.Join(cells, " ")))
	}

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = pad(b.Label, colWidth)
	}
	rows = append(rows, s.Muted.Render(strings.Join(labels, " ")))

	if max > 0 {
		rows = append(rows, s.Muted.Render("peak "+domain.FormatBRL(max)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// pad centers v in a column, measuring display cells rather than bytes
// so the multibyte bar glyph lines up with its label.
func pad(v string, width int) string {
	w := lipgloss.Width(v)
	if w >= width {
		return v
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + v + strings.Repeat(" ", width-w-left)
}
