package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/calderaviz/caldera/pkg/datatable"
)

// =============================================================================
// rowPagerModel - Interactive table browsing
// =============================================================================

// rowPagerModel is the bubbletea model for paging through table rows.
type rowPagerModel struct {
	title   string
	headers []string
	rows    [][]string
	cursor  int
	height  int
	offset  int
}

// newRowPagerModel creates a pager over every row of dt.
func newRowPagerModel(title string, dt *datatable.DataTable) rowPagerModel {
	return rowPagerModel{
		title:   title,
		headers: tableHeaders(dt),
		rows:    tableRows(dt),
		height:  15,
	}
}

func (m rowPagerModel) Init() tea.Cmd {
	return nil
}

func (m rowPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor, m.offset = 0, 0
		case "G", "end":
			m.cursor = len(m.rows) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m rowPagerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	window := make([][]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		row := make([]string, 0, len(m.rows[i])+1)
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		row = append(row, cursor+fmt.Sprint(i))
		row = append(row, m.rows[i]...)
		window = append(window, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(append([]string{"#"}, m.headers...)...).
		Rows(window...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if m.offset+row == m.cursor {
				return StyleValue.Bold(true).Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("row %d of %d", m.cursor+1, len(m.rows))))
	b.WriteString("\n")

	return b.String()
}

// runRowPager starts the interactive pager and blocks until it exits.
func runRowPager(title string, dt *datatable.DataTable) error {
	_, err := tea.NewProgram(newRowPagerModel(title, dt)).Run()
	return err
}
