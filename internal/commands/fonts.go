package commands

import (
	"fmt"
	"sort"

	"github.com/carlislejd/analystkit/fonts"
)

type FontsCmd struct {
	Install bool   `help:"Install missing fonts from the source directory."`
	Source  string `help:"Directory holding the font files. Defaults to the configured font path." type:"path"`
	Force   bool   `help:"Reinstall fonts that are already present."`
}

func (c *FontsCmd) Run(ctx *Context) error {
	source := c.Source
	if source == "" {
		s, err := loadSettings(ctx)
		if err != nil {
			return err
		}
		source = s.FontPath
	}
	if c.Install && source == "" {
		return fmt.Errorf("no font source: pass --source or set ANALYSTKIT_FONT_PATH")
	}

	status, err := fonts.Setup(source, c.Install)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(status.Fonts))
	for name := range status.Fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := status.Fonts[name]
		mark := OkStyle.Render("installed")
		if !f.Installed {
			mark = WarningStyle.Render("missing")
		}
		fmt.Printf("%-30s %s  (%s)\n", name, mark, f.Description)
	}

	if res := status.Installation; res != nil {
		fmt.Printf("\nInstalled %d, skipped %d, failed %d\n",
			len(res.Installed), len(res.Skipped), len(res.Failed))
		for _, f := range res.Failed {
			fmt.Println(ErrorStyle.Render("  " + f))
		}
	}
	if !status.AllInstalled && !c.Install {
		fmt.Println("\nRun with --install to install the missing fonts.")
	}
	return nil
}
