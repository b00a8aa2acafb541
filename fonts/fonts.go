// Package fonts checks for and installs the custom font files the theme
// references. Everything here is an explicit call; importing the package has
// no side effects.
package fonts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/carlislejd/analystkit/colors"
)

var fontExtensions = map[string]bool{
	".otf":   true,
	".ttf":   true,
	".ttc":   true,
	".woff":  true,
	".woff2": true,
}

// Required maps each font the theme uses to its role.
var Required = map[string]string{
	colors.FontFamilies.Primary: "Primary font for all text",
	colors.FontFamilies.Title:   "Title font",
}

// SystemDir returns the user font directory for the current platform.
func SystemDir() (string, error) {
	return systemDir(runtime.GOOS)
}

func systemDir(goos string) (string, error) {
	switch goos {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Fonts"), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", fmt.Errorf("LOCALAPPDATA is not set")
		}
		return filepath.Join(local, "Microsoft", "Windows", "Fonts"), nil
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "fonts"), nil
	default:
		return "", fmt.Errorf("no known font directory for platform %s", goos)
	}
}

// List returns the font files in dir, sorted by name. A missing directory is
// an empty list, not an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading fonts directory %s: %w", dir, err)
	}

	var fonts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if fontExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			fonts = append(fonts, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(fonts)
	return fonts, nil
}

// IsInstalled reports whether any file in the system font directory matches
// the font name.
func IsInstalled(name string) bool {
	dir, err := SystemDir()
	if err != nil {
		return false
	}
	return isInstalledIn(dir, name)
}

func isInstalledIn(dir, name string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), name) {
			return true
		}
	}
	return false
}

// Result reports what Install did per font file name.
type Result struct {
	Installed []string
	Skipped   []string
	Failed    []string
}

// Install copies every font file from srcDir into the system font directory.
// Already-present files are skipped unless force is set.
func Install(srcDir string, force bool) (Result, error) {
	destDir, err := SystemDir()
	if err != nil {
		return Result{}, err
	}
	return installTo(srcDir, destDir, force)
}

func installTo(srcDir, destDir string, force bool) (Result, error) {
	fonts, err := List(srcDir)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating font directory %s: %w", destDir, err)
	}

	var res Result
	for _, src := range fonts {
		name := filepath.Base(src)
		dest := filepath.Join(destDir, name)

		if _, err := os.Stat(dest); err == nil && !force {
			res.Skipped = append(res.Skipped, name)
			continue
		}

		if err := copyFile(src, dest); err != nil {
			res.Failed = append(res.Failed, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		res.Installed = append(res.Installed, name)
	}
	return res, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// FontStatus is the install state of one required font.
type FontStatus struct {
	Installed   bool
	Description string
}

// Status summarizes required font availability.
type Status struct {
	Fonts        map[string]FontStatus
	AllInstalled bool
	Missing      []string
	Installation *Result
}

// Setup checks which required fonts are installed and, when autoInstall is
// set and srcDir holds font files, installs the missing ones.
func Setup(srcDir string, autoInstall bool) (Status, error) {
	status := check()

	if autoInstall && len(status.Missing) > 0 {
		res, err := Install(srcDir, false)
		if err != nil {
			return status, err
		}
		status.Installation = &res
		status = refresh(status)
	}

	return status, nil
}

func check() Status {
	status := Status{Fonts: make(map[string]FontStatus, len(Required))}
	for name, desc := range Required {
		installed := IsInstalled(name)
		status.Fonts[name] = FontStatus{Installed: installed, Description: desc}
		if !installed {
			status.Missing = append(status.Missing, name)
		}
	}
	sort.Strings(status.Missing)
	status.AllInstalled = len(status.Missing) == 0
	return status
}

func refresh(prev Status) Status {
	next := check()
	next.Installation = prev.Installation
	return next
}
