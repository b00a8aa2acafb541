package commands

import (
	"fmt"

	"github.com/carlislejd/analystkit/settings"
)

type EnvTemplateCmd struct {
	Path  string `arg:"" optional:"" help:"Where to write the template." default:".env.template"`
	Force bool   `help:"Overwrite an existing file."`
}

func (c *EnvTemplateCmd) Run(ctx *Context) error {
	if err := settings.WriteTemplate(c.Path, c.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", c.Path)
	return nil
}
