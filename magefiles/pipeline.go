//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI binary with the given arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Generate builds the CLI and renders every record in records/ into output/.
// See prd003-assembly for full requirements.
func Generate() error {
	mg.Deps(Build)

	entries, err := os.ReadDir("records")
	if err != nil {
		return fmt.Errorf("reading records directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		record := filepath.Join("records", entry.Name())
		fmt.Printf("[generate] %s\n", record)
		if err := run("generate", "--record", record, "--out", "output"); err != nil {
			return fmt.Errorf("generating %s: %w", record, err)
		}
	}
	return nil
}

// Validate builds the CLI and validates every record in records/.
// See prd004-validation for full requirements.
func Validate() error {
	mg.Deps(Build)

	entries, err := os.ReadDir("records")
	if err != nil {
		return fmt.Errorf("reading records directory: %w", err)
	}

	failed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		record := filepath.Join("records", entry.Name())
		fmt.Printf("[validate] %s\n", record)
		if err := run("validate", "--record", record); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d record(s) failed validation", failed)
	}
	return nil
}
