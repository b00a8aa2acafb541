package fonts

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListFiltersFontFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "B-Font.ttf"), "b")
	writeFile(t, filepath.Join(dir, "A-Font.OTF"), "a")
	writeFile(t, filepath.Join(dir, "readme.txt"), "not a font")
	writeFile(t, filepath.Join(dir, "style.woff2"), "w")
	if err := os.Mkdir(filepath.Join(dir, "nested.ttf"), 0o755); err != nil {
		t.Fatal(err)
	}

	fonts, err := List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "A-Font.OTF"),
		filepath.Join(dir, "B-Font.ttf"),
		filepath.Join(dir, "style.woff2"),
	}
	if !reflect.DeepEqual(fonts, want) {
		t.Errorf("List = %v, want %v", fonts, want)
	}
}

func TestListMissingDir(t *testing.T) {
	fonts, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("List on a missing directory should not error, got: %v", err)
	}
	if fonts != nil {
		t.Errorf("List = %v, want nil", fonts)
	}
}

func TestInstallToSkipsAndForces(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "fonts")
	writeFile(t, filepath.Join(src, "PPNeueMontreal-Regular.otf"), "v1")
	writeFile(t, filepath.Join(src, "Items-Regular.otf"), "v1")

	res, err := installTo(src, dest, false)
	if err != nil {
		t.Fatalf("installTo returned error: %v", err)
	}
	if len(res.Installed) != 2 || len(res.Skipped) != 0 || len(res.Failed) != 0 {
		t.Fatalf("first install = %+v, want 2 installed", res)
	}

	// Change the source; without force the copy is skipped.
	writeFile(t, filepath.Join(src, "Items-Regular.otf"), "v2")
	res, err = installTo(src, dest, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skipped) != 2 || len(res.Installed) != 0 {
		t.Fatalf("second install = %+v, want 2 skipped", res)
	}
	got, err := os.ReadFile(filepath.Join(dest, "Items-Regular.otf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v1" {
		t.Errorf("skipped file was overwritten: %q", got)
	}

	// force overwrites.
	res, err = installTo(src, dest, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Installed) != 2 {
		t.Fatalf("forced install = %+v, want 2 installed", res)
	}
	got, err = os.ReadFile(filepath.Join(dest, "Items-Regular.otf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v2" {
		t.Errorf("forced install kept the old file: %q", got)
	}
}

func TestInstallToCreatesDestDir(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "font.ttf"), "f")
	dest := filepath.Join(t.TempDir(), "a", "b", "fonts")

	if _, err := installTo(src, dest, false); err != nil {
		t.Fatalf("installTo returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "font.ttf")); err != nil {
		t.Errorf("expected installed font: %v", err)
	}
}

func TestIsInstalledIn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "PPNeueMontreal-Regular.otf"), "f")

	if !isInstalledIn(dir, "PPNeueMontreal-Regular") {
		t.Error("font file present but reported missing")
	}
	if isInstalledIn(dir, "Items-Regular") {
		t.Error("font file absent but reported installed")
	}
	if isInstalledIn(filepath.Join(dir, "nope"), "anything") {
		t.Error("missing directory should report not installed")
	}
}

func TestSystemDirPerPlatform(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("darwin", func(t *testing.T) {
		dir, err := systemDir("darwin")
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(home, "Library", "Fonts"); dir != want {
			t.Errorf("dir = %s, want %s", dir, want)
		}
	})
	t.Run("linux", func(t *testing.T) {
		dir, err := systemDir("linux")
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(home, ".local", "share", "fonts"); dir != want {
			t.Errorf("dir = %s, want %s", dir, want)
		}
	})
	t.Run("windows", func(t *testing.T) {
		t.Setenv("LOCALAPPDATA", filepath.Join("C:", "Users", "u", "AppData", "Local"))
		dir, err := systemDir("windows")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(dir, filepath.Join("Microsoft", "Windows", "Fonts")) {
			t.Errorf("dir = %s, want the per-user Windows fonts directory", dir)
		}
	})
	t.Run("windows without LOCALAPPDATA", func(t *testing.T) {
		t.Setenv("LOCALAPPDATA", "")
		if _, err := systemDir("windows"); err == nil {
			t.Error("expected an error without LOCALAPPDATA")
		}
	})
	t.Run("unsupported", func(t *testing.T) {
		if _, err := systemDir("plan9"); err == nil {
			t.Error("expected an error for an unsupported platform")
		}
	})
}

func TestRequiredCoversThemeFonts(t *testing.T) {
	for _, name := range []string{"PPNeueMontreal-Regular", "Items-Regular"} {
		if _, ok := Required[name]; !ok {
			t.Errorf("Required is missing %s", name)
		}
	}
}
