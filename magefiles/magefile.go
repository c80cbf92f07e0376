//go:build mage

// Package main contains Mage build targets for websearch developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "websearch"
	cmdPkg  = "./cmd/websearch"
)

// Build compiles the CLI binary into bin/, stamping the version from
// git describe when available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)

	args := []string{"build", "-o", out}
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil {
		args = append(args, "-ldflags", "-X main.version="+v)
	}
	args = append(args, cmdPkg)

	if err := sh.RunV("go", args...); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All vets, tests, and builds.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binDir)
}
