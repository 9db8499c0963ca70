//go:build mage

// Package main contains Mage build targets for chronic-distance developer tooling.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// logbookDir is the default logbook location the CLI reads and writes.
const logbookDir = "logbook"

// Init creates the default logbook directory.
func Init() error {
	if err := os.MkdirAll(logbookDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", logbookDir, err)
	}
	fmt.Println("  ", logbookDir)
	fmt.Println("Logbook directory initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "chronic-distance"
	cmdPkg  = "./cmd/chronic-distance"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	if err := sh.RunV("go", "test", "./..."); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Check vets the module and then runs the tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("go vet: %w", err)
	}
	mg.Deps(Test)
	return nil
}

// Stats prints project metrics: Go production/test LOC and Markdown/YAML word count.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkFiles(".", func(path string) error {
		switch ext := filepath.Ext(path); {
		case strings.HasSuffix(path, "_test.go"):
			return countInto(&testLines, path, bufio.ScanLines)
		case ext == ".go":
			return countInto(&prodLines, path, bufio.ScanLines)
		case ext == ".md", ext == ".yaml", ext == ".yml":
			return countInto(&docWords, path, bufio.ScanWords)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (Markdown/YAML):          %d\n", docWords)
	return nil
}

// walkFiles calls fn for every regular file under root, skipping hidden and
// underscore-prefixed directories.
func walkFiles(root string, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		return fn(path)
	})
}

// countInto adds the number of non-blank tokens split from path to *n.
func countInto(n *int, path string, split bufio.SplitFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(split)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			*n++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
