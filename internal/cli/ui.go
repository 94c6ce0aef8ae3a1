package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/calderaviz/caldera/pkg/datatable"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNull   = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorGray)
)

// tableHeaders returns the preview column headings: the column label when
// set, otherwise the type tag.
func tableHeaders(dt *datatable.DataTable) []string {
	cols := dt.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		if c.Label != "" {
			headers[i] = c.Label
		} else {
			headers[i] = string(c.Type)
		}
	}
	return headers
}

// tableRows flattens the table's rows into display strings.
func tableRows(dt *datatable.DataTable) [][]string {
	rows := make([][]string, 0, dt.RowCount())
	for _, r := range dt.Rows() {
		row := make([]string, 0, r.Width())
		for c := range r.Cells() {
			row = append(row, cellString(c))
		}
		rows = append(rows, row)
	}
	return rows
}

// cellString renders a cell for terminal display, preferring the formatted
// value when one is attached.
func cellString(c datatable.Cell) string {
	if c.IsNull() {
		return styleNull.Render("null")
	}
	if f := c.Formatted(); f != "" {
		return f
	}
	if t, ok := c.When(); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprint(c.Value())
}

// renderTable renders a static table preview with up to maxRows rows.
func renderTable(dt *datatable.DataTable, maxRows int) string {
	rows := tableRows(dt)
	truncated := false
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
		truncated = true
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(tableHeaders(dt)...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	var b strings.Builder
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	if truncated {
		b.WriteString(StyleDim.Render(fmt.Sprintf("… %d more rows", dt.RowCount()-maxRows)))
		b.WriteString("\n")
	}
	return b.String()
}
