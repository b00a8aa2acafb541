// Package commands holds the CLI commands.
package commands

import (
	"github.com/carlislejd/analystkit/settings"
)

// Context carries flags shared by every command.
type Context struct {
	EnvFile string
}

// CLI is the top-level command tree.
type CLI struct {
	EnvFile string `help:"Path of the .env file to load instead of ./.env." type:"path"`

	Settings    SettingsCmd    `cmd:"" help:"Show the effective settings."`
	EnvTemplate EnvTemplateCmd `cmd:"" name:"env-template" help:"Write a documented .env template."`
	Fonts       FontsCmd       `cmd:"" help:"Check and install the fonts the theme uses."`
	Preview     PreviewCmd     `cmd:"" help:"Render a terminal preview of a CSV file."`
	Export      ExportCmd      `cmd:"" help:"Build a styled chart from a CSV file and export it."`
	Data        DataCmd        `cmd:"" help:"Browse a CSV file as an interactive table."`
}

// loadSettings honors the --env-file override.
func loadSettings(ctx *Context) (*settings.Settings, error) {
	if ctx.EnvFile != "" {
		return settings.LoadFrom(ctx.EnvFile)
	}
	return settings.Load()
}
