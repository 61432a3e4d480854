// Package update checks whether a newer tsgen release is available.
package update

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/prismagen/tsgen/cli/internal/ui"
)

// latestKnown is the most recent published release. Fetched from the
// release API once one exists; until then the check compares against this
// constant.
const latestKnown = "0.1.0"

// CheckForUpdates compares the running version against the latest release
// and prints a notice when an upgrade is available.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnown)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnown)
		fmt.Printf("\nUpdate with: go install github.com/prismagen/tsgen/cli@latest\n")
	}

	return nil
}
