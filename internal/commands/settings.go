package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/carlislejd/analystkit/chart"
	"github.com/carlislejd/analystkit/internal/tables"
	"github.com/carlislejd/analystkit/settings"
)

type SettingsCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	s, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	switch c.Output {
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		m, err := tables.FromTable(settingsTable(s))
		if err != nil {
			return err
		}
		fmt.Println(m.View())
	}
	return nil
}

func settingsTable(s *settings.Settings) *chart.Table {
	return chart.NewTable().
		AddStrings("setting", []string{
			"theme", "renderer", "export_format", "export_scale",
			"chart_width", "chart_height", "color_scheme", "font_path",
		}).
		AddStrings("value", []string{
			s.Theme, s.Renderer, s.ExportFormat, strconv.Itoa(s.ExportScale),
			strconv.Itoa(s.ChartWidth), strconv.Itoa(s.ChartHeight), s.ColorScheme, s.FontPath,
		})
}
