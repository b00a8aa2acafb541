// Package tables renders tabular data as an interactive, filterable
// terminal table.
package tables

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/carlislejd/analystkit/chart"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 40
	pageSize       = 10
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// FromTable builds a browsable model from a data table, one column per
// table column in insertion order.
func FromTable(t *chart.Table) (Model, error) {
	names := t.Columns()

	cells := make(map[string][]string, len(names))
	widths := make(map[string]int, len(names))
	for _, name := range names {
		values, err := t.Strings(name)
		if err != nil {
			return Model{}, err
		}
		cells[name] = values
		widths[name] = columnWidth(name, values)
	}

	columns := make([]teatable.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, teatable.NewColumn(name, name, widths[name]).WithFiltered(true))
	}

	rows := make([]teatable.Row, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rowData := make(teatable.RowData, len(names))
		for _, name := range names {
			rowData[name] = cells[name][i]
		}
		rows = append(rows, teatable.NewRow(rowData))
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}, nil
}

func columnWidth(name string, values []string) int {
	width := len(name) + 1
	for _, v := range values {
		if len(v)+1 > width {
			width = len(v) + 1
		}
	}
	if width < minColumnWidth {
		width = minColumnWidth
	}
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While the filter input has focus, keys edit the filter; enter hands
	// control back to the table.
	if m.filterTextInput.Focused() {
		if keyMsg.String() == "enter" {
			m.filterTextInput.Blur()
		} else {
			m.filterTextInput, _ = m.filterTextInput.Update(msg)
		}
		m.table = m.table.WithFilterInput(m.filterTextInput)
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.filterTextInput.Focus()
		return m, nil
	case "q":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	var body strings.Builder
	body.WriteString(m.table.View())
	body.WriteString("\nPress / to filter, q or ctrl+c to quit")
	return body.String()
}
