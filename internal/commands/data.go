package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carlislejd/analystkit/internal/csvdata"
	"github.com/carlislejd/analystkit/internal/tables"
)

type DataCmd struct {
	Path string `arg:"" help:"CSV file with a header row." type:"existingfile"`
}

func (c *DataCmd) Run(ctx *Context) error {
	tbl, err := csvdata.ReadTable(c.Path)
	if err != nil {
		return err
	}

	m, err := tables.FromTable(tbl)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m).Run()
	return err
}
