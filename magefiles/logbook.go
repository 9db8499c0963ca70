//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Logbook groups targets that operate on the default logbook.
type Logbook mg.Namespace

// Export builds the CLI and writes logbook/export.yaml.
func (Logbook) Export() error {
	mg.Deps(Build, Init)
	if err := sh.RunV("./bin/chronic-distance", "logbook", "export", "--logbook-dir", logbookDir); err != nil {
		return fmt.Errorf("exporting logbook: %w", err)
	}
	return nil
}

// Import builds the CLI and adds the entries listed in logbook/import.yaml.
func (Logbook) Import() error {
	mg.Deps(Build, Init)
	if err := sh.RunV("./bin/chronic-distance", "logbook", "import", "--logbook-dir", logbookDir, logbookDir+"/import.yaml"); err != nil {
		return fmt.Errorf("importing logbook: %w", err)
	}
	return nil
}
