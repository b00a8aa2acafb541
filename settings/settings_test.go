package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every recognized variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range variables {
		t.Setenv(v.Name, "")
		os.Unsetenv(v.Name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir()) // no .env present

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() with no env returned error: %v", err)
	}

	if s.Theme != "default" {
		t.Errorf("Theme = %q, want %q", s.Theme, "default")
	}
	if s.ExportFormat != "png" {
		t.Errorf("ExportFormat = %q, want %q", s.ExportFormat, "png")
	}
	if s.ExportScale != 2 {
		t.Errorf("ExportScale = %d, want 2", s.ExportScale)
	}
	if s.ChartWidth != 1200 || s.ChartHeight != 800 {
		t.Errorf("chart size = %dx%d, want 1200x800", s.ChartWidth, s.ChartHeight)
	}
	if s.Renderer != "canvas" {
		t.Errorf("Renderer = %q, want %q", s.Renderer, "canvas")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "ANALYSTKIT_THEME=dark\nANALYSTKIT_CHART_WIDTH=900\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(envFile)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if s.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", s.Theme, "dark")
	}
	if s.ChartWidth != 900 {
		t.Errorf("ChartWidth = %d, want 900", s.ChartWidth)
	}
	// Untouched variables keep their defaults.
	if s.ChartHeight != 800 {
		t.Errorf("ChartHeight = %d, want 800", s.ChartHeight)
	}
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("ANALYSTKIT_THEME=dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvTheme, "light")

	s, err := LoadFrom(envFile)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want environment value %q", s.Theme, "light")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Fatal("LoadFrom with a missing file should return an error")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		want  string
	}{
		{"non-numeric scale", EnvExportScale, "two", EnvExportScale},
		{"zero width", EnvChartWidth, "0", EnvChartWidth},
		{"negative height", EnvChartHeight, "-5", EnvChartHeight},
		{"bad renderer", EnvRenderer, "webgl", EnvRenderer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() with %s=%s should return an error", tt.env, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should name %s, got: %v", tt.want, err)
			}
		})
	}
}

func TestEmptyValuesFallBackToDefaults(t *testing.T) {
	t.Run("empty environment variable", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		t.Setenv(EnvExportScale, "")

		s, err := Load()
		if err != nil {
			t.Fatalf("Load() with an empty variable returned error: %v", err)
		}
		if s.ExportScale != 2 {
			t.Errorf("ExportScale = %d, want the default 2", s.ExportScale)
		}
	})

	t.Run("empty env file value", func(t *testing.T) {
		clearEnv(t)

		envFile := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envFile, []byte("ANALYSTKIT_CHART_WIDTH=\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		s, err := LoadFrom(envFile)
		if err != nil {
			t.Fatalf("LoadFrom returned error: %v", err)
		}
		if s.ChartWidth != 1200 {
			t.Errorf("ChartWidth = %d, want the default 1200", s.ChartWidth)
		}
	})
}

func TestValidateAPIKeys(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvOpenAIKey, "sk-test")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	got := s.ValidateAPIKeys()
	if !got["openai"] {
		t.Error("openai should report configured")
	}
	if got["mapbox"] {
		t.Error("mapbox should report not configured")
	}
	if len(got) != 2 {
		t.Errorf("ValidateAPIKeys reported %d providers, want 2", len(got))
	}
}

func TestAPIKey(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvOpenAIKey, "sk-test")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	key, err := s.APIKey("openai")
	if err != nil {
		t.Fatalf("APIKey(openai) returned error: %v", err)
	}
	if key != "sk-test" {
		t.Errorf("APIKey(openai) = %q, want %q", key, "sk-test")
	}
}

func TestAPIKeyNotConfigured(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.APIKey("mapbox")
	if err == nil {
		t.Fatal("APIKey for an unset provider should return an error")
	}
	if !strings.Contains(err.Error(), "mapbox") || !strings.Contains(err.Error(), EnvMapboxToken) {
		t.Errorf("error should name the provider and the variable to set, got: %v", err)
	}
}

func TestAPIKeyGenericProviderFallback(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("ACME_API_KEY", "acme-123")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	key, err := s.APIKey("acme")
	if err != nil {
		t.Fatalf("APIKey(acme) returned error: %v", err)
	}
	if key != "acme-123" {
		t.Errorf("APIKey(acme) = %q, want %q", key, "acme-123")
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.template")

	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("WriteTemplate returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, v := range variables {
		if !strings.Contains(content, v.Name+"=") {
			t.Errorf("template is missing variable %s", v.Name)
		}
	}
}

func TestWriteTemplateRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.template")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteTemplate(path, false); err == nil {
		t.Fatal("WriteTemplate should refuse to overwrite without force")
	}

	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("WriteTemplate with force returned error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) == "existing" {
		t.Error("WriteTemplate with force should replace the file")
	}
}
