// Package render formats matrices for the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmat/matrix"
)

// Styles holds the lipgloss styles used for styled grids.
type Styles struct {
	Title lipgloss.Style
	Frame lipgloss.Style
	Cell  lipgloss.Style
	Zero  lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Cell: lipgloss.NewStyle(),
		Zero: lipgloss.NewStyle().Faint(true),
	}
}

// cells formats every cell of m with prec significant digits ('g' format,
// -1 for the shortest exact representation).
func cells(m matrix.Matrix, prec int) ([][]string, error) {
	out := make([][]string, m.Rows())
	for i := range out {
		row := make([]string, m.Cols())
		for j := range row {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = strconv.FormatFloat(v, 'g', prec, 64)
		}
		out[i] = row
	}
	return out, nil
}

// Grid renders m with right-aligned columns inside a rounded border.
// title is printed above the frame when non-empty. prec follows
// matrix.WithPrecision.
func Grid(m matrix.Matrix, title string, styles Styles, prec int) (string, error) {
	rows, err := cells(m, prec)
	if err != nil {
		return "", err
	}

	// Calculate column widths
	widths := make([]int, m.Cols())
	for _, row := range rows {
		for j, cell := range row {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, len(row))
		for j, cell := range row {
			style := styles.Cell
			if cell == "0" {
				style = styles.Zero
			}
			parts[j] = style.Width(widths[j]).Align(lipgloss.Right).Render(cell)
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	body := styles.Frame.Render(strings.Join(lines, "\n"))
	if title == "" {
		return body, nil
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(title), body), nil
}
