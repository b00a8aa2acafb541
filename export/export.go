// Package export serializes styled figures to files. HTML rendering is
// native; raster formats are delegated to headless Chrome via
// snapshot-chromedp, an optional runtime dependency.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/snapshot-chromedp/render"

	"github.com/carlislejd/analystkit/colors"
)

// ErrRendererUnavailable reports that no headless Chrome binary could be
// found for raster export.
var ErrRendererUnavailable = errors.New("headless renderer unavailable")

// Formats supported by Chart.
var supportedFormats = []string{"html", "jpg", "jpeg", "png"}

// Renderable is any go-echarts figure: it renders to HTML and its layout can
// be adjusted for export dimensions. The rectangular charts satisfy it
// through their embedded RectChart.
type Renderable interface {
	Render(w io.Writer) error
	RenderContent() []byte
	SetGlobalOptions(options ...charts.GlobalOpts) *charts.RectChart
}

// Chart writes fig to filename in the given format. Zero width, height, and
// scale keep the figure's own dimensions and the export defaults. The
// filename gains the format extension when it is missing. Export dimensions
// apply to the written file only; the figure keeps its own afterwards.
func Chart(fig Renderable, filename, format string, width, height, scale int) error {
	if format == "" {
		format = colors.ExportDefaults.Format
	}
	format = strings.ToLower(format)
	if !formatSupported(format) {
		return fmt.Errorf("unsupported export format %q: supported formats are %s", format, strings.Join(supportedFormats, ", "))
	}
	if scale <= 0 {
		scale = colors.ExportDefaults.Scale
	}
	if !strings.HasSuffix(strings.ToLower(filename), "."+format) {
		filename += "." + format
	}

	if width > 0 || height > 0 {
		restore := captureSize(fig)
		fig.SetGlobalOptions(withExportSize(width, height))
		defer restore()
	}

	if format == "html" {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("creating %s: %w", filename, err)
		}
		defer f.Close()
		if err := fig.Render(f); err != nil {
			return fmt.Errorf("rendering %s: %w", filename, err)
		}
		return nil
	}

	if _, err := findChrome(); err != nil {
		return err
	}

	cfg := render.NewSnapshotConfig(fig.RenderContent(), filename)
	cfg.Quality = scale
	if err := render.MakeSnapshot(cfg); err != nil {
		return fmt.Errorf("rendering %s: %w", filename, err)
	}
	return nil
}

func formatSupported(format string) bool {
	for _, f := range supportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// withExportSize overrides only the figure dimensions, keeping the rest of
// the initialization intact.
func withExportSize(width, height int) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		if width > 0 {
			bc.Initialization.Width = fmt.Sprintf("%dpx", width)
		}
		if height > 0 {
			bc.Initialization.Height = fmt.Sprintf("%dpx", height)
		}
	}
}

// captureSize snapshots the figure's dimensions and returns a func that puts
// them back, so an export does not permanently resize the caller's figure.
func captureSize(fig Renderable) func() {
	var width, height string
	fig.SetGlobalOptions(func(bc *charts.BaseConfiguration) {
		width, height = bc.Initialization.Width, bc.Initialization.Height
	})
	return func() {
		fig.SetGlobalOptions(func(bc *charts.BaseConfiguration) {
			bc.Initialization.Width, bc.Initialization.Height = width, height
		})
	}
}

// chromeCandidates are binary names probed on PATH, after the CHROME_PATH
// override.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

func findChrome() (string, error) {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	for _, name := range chromeCandidates {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	if runtime.GOOS == "darwin" {
		p := "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: raster export needs a Chrome or Chromium binary; install one (for example: apt install chromium, or brew install --cask google-chrome) or point CHROME_PATH at it", ErrRendererUnavailable)
}

// Save exports fig once per requested format into outputDir, sized by the
// aspect preset and named after a slug of title. It returns the path written
// for every format that succeeded; when some formats fail the successful
// paths are still returned alongside an error naming the failures.
func Save(fig Renderable, title, outputDir, aspect string, formats ...string) (map[string]string, error) {
	if aspect == "" {
		aspect = "full"
	}
	size, err := colors.SizeFor(aspect)
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		formats = []string{colors.ExportDefaults.Format}
	}
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	written := make(map[string]string, len(formats))
	var errs []error
	for _, format := range formats {
		path := filepath.Join(outputDir, Slug(title)+"."+strings.ToLower(format))
		if err := Chart(fig, path, format, size.Width, size.Height, 0); err != nil {
			errs = append(errs, fmt.Errorf("format %s: %w", format, err))
			continue
		}
		written[strings.ToLower(format)] = path
	}

	return written, errors.Join(errs...)
}

// Slug derives a filesystem-safe filename from a chart title.
func Slug(title string) string {
	var b strings.Builder
	lastDash := true // trims leading dashes
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "chart"
	}
	return slug
}
