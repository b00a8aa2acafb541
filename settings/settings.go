// Package settings loads library configuration from the process environment,
// optionally pre-populated from a .env file. A Settings value is one
// validated snapshot; callers pass it explicitly to whatever needs it.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by Load.
const (
	EnvTheme        = "ANALYSTKIT_THEME"
	EnvRenderer     = "ANALYSTKIT_RENDERER"
	EnvExportFormat = "ANALYSTKIT_EXPORT_FORMAT"
	EnvExportScale  = "ANALYSTKIT_EXPORT_SCALE"
	EnvChartWidth   = "ANALYSTKIT_CHART_WIDTH"
	EnvChartHeight  = "ANALYSTKIT_CHART_HEIGHT"
	EnvColorScheme  = "ANALYSTKIT_COLOR_SCHEME"
	EnvFontPath     = "ANALYSTKIT_FONT_PATH"
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvMapboxToken  = "MAPBOX_TOKEN"
)

// variable describes one recognized environment variable. The table drives
// both loading and the .env template.
type variable struct {
	Name        string
	Default     string
	Description string
}

var variables = []variable{
	{EnvTheme, "default", "Chart theme name"},
	{EnvRenderer, "canvas", "ECharts renderer (canvas or svg)"},
	{EnvExportFormat, "png", "Default export format (html, png, jpg)"},
	{EnvExportScale, "2", "Default export scale factor"},
	{EnvChartWidth, "1200", "Default chart width in pixels"},
	{EnvChartHeight, "800", "Default chart height in pixels"},
	{EnvColorScheme, "default", "Color scheme to use"},
	{EnvFontPath, "", "Directory containing custom font files"},
	{EnvOpenAIKey, "", "OpenAI API key"},
	{EnvMapboxToken, "", "Mapbox access token for map charts"},
}

// Settings is a validated snapshot of environment-derived configuration.
type Settings struct {
	Theme        string `json:"theme" yaml:"theme"`
	Renderer     string `json:"renderer" yaml:"renderer"`
	ExportFormat string `json:"export_format" yaml:"export_format"`
	ExportScale  int    `json:"export_scale" yaml:"export_scale"`
	ChartWidth   int    `json:"chart_width" yaml:"chart_width"`
	ChartHeight  int    `json:"chart_height" yaml:"chart_height"`
	ColorScheme  string `json:"color_scheme" yaml:"color_scheme"`
	FontPath     string `json:"font_path,omitempty" yaml:"font_path,omitempty"`

	apiKeys map[string]string
}

// Load reads settings from the process environment, pre-populated from a
// .env file in the working directory when one exists. Missing variables take
// their documented defaults; a missing .env file is not an error.
func Load() (*Settings, error) {
	return load(".env", false)
}

// LoadFrom is Load with an explicit .env file path. The file must exist.
func LoadFrom(envFile string) (*Settings, error) {
	return load(envFile, true)
}

func load(envFile string, required bool) (*Settings, error) {
	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if required || !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
		fileVars = nil
	}

	// Real environment wins over the file, the file wins over the documented
	// default from the variables table. A variable set to the empty string
	// counts as unset, so a blank line in a copied template cannot shadow a
	// default.
	get := func(name string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		if v := fileVars[name]; v != "" {
			return v
		}
		return defaultFor(name)
	}

	s := &Settings{
		Theme:        get(EnvTheme),
		Renderer:     get(EnvRenderer),
		ExportFormat: get(EnvExportFormat),
		ColorScheme:  get(EnvColorScheme),
		FontPath:     get(EnvFontPath),
		apiKeys: map[string]string{
			"openai": get(EnvOpenAIKey),
			"mapbox": get(EnvMapboxToken),
		},
	}

	if s.ExportScale, err = positiveInt(EnvExportScale, get(EnvExportScale)); err != nil {
		return nil, err
	}
	if s.ChartWidth, err = positiveInt(EnvChartWidth, get(EnvChartWidth)); err != nil {
		return nil, err
	}
	if s.ChartHeight, err = positiveInt(EnvChartHeight, get(EnvChartHeight)); err != nil {
		return nil, err
	}

	switch s.Renderer {
	case "canvas", "svg":
	default:
		return nil, fmt.Errorf("%s: invalid renderer %q (must be canvas or svg)", EnvRenderer, s.Renderer)
	}

	return s, nil
}

func defaultFor(name string) string {
	for _, v := range variables {
		if v.Name == name {
			return v.Default
		}
	}
	return ""
}

func positiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, value)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s: must be at least 1, got %d", name, n)
	}
	return n, nil
}

// providerEnv maps known provider names to their environment variable.
var providerEnv = map[string]string{
	"openai": EnvOpenAIKey,
	"mapbox": EnvMapboxToken,
}

// ValidateAPIKeys reports, for every known provider, whether an API key is
// configured.
func (s *Settings) ValidateAPIKeys() map[string]bool {
	out := make(map[string]bool, len(providerEnv))
	for provider := range providerEnv {
		_, err := s.APIKey(provider)
		out[provider] = err == nil
	}
	return out
}

// APIKey returns the configured key for a provider ("openai", "mapbox", or
// any name with a matching <PROVIDER>_API_KEY variable). An absent key is an
// error naming the variable to set, never an empty success.
func (s *Settings) APIKey(provider string) (string, error) {
	name := strings.ToLower(provider)
	if key := s.apiKeys[name]; key != "" {
		return key, nil
	}

	envName, ok := providerEnv[name]
	if !ok {
		envName = strings.ToUpper(provider) + "_API_KEY"
	}
	if key := os.Getenv(envName); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("api key for %q is not configured: set %s", provider, envName)
}
