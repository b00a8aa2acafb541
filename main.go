package main

import (
	"github.com/alecthomas/kong"

	"github.com/carlislejd/analystkit/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("analystkit"),
		kong.Description("Styled charts for analysts: consistent palettes, typography, and export in one command."),
	)
	err := ctx.Run(&commands.Context{EnvFile: cli.EnvFile})
	ctx.FatalIfErrorf(err)
}
