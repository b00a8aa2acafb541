package settings

import (
	"fmt"
	"os"
	"strings"
)

// WriteTemplate writes a .env template listing every recognized variable with
// its description and default. It refuses to overwrite an existing file
// unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists: pass force to overwrite", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	var b strings.Builder
	b.WriteString("# AnalystKit environment variables\n")
	b.WriteString("# Copy this file to .env and fill in your values\n\n")
	for _, v := range variables {
		fmt.Fprintf(&b, "# %s\n", v.Description)
		fmt.Fprintf(&b, "%s=%s\n\n", v.Name, v.Default)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing env template: %w", err)
	}
	return nil
}
