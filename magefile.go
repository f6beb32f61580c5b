//go:build mage

// Magefile for gitlab-repo development tasks
package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Test runs the full test suite with race detection
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "-timeout=10m", "./...")
}

// Cover runs the test suite and writes a coverage profile
func Cover() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "-timeout=10m", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint across the module
func Lint() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Bench runs the benchmarks
func Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-benchtime=100ms", "./...")
}

// Build compiles the CLI binary
func Build() error {
	fmt.Println("Building gitlab-repo...")
	return sh.RunV("go", "build", "-o", "bin/gitlab-repo", "./cmd/gitlab-repo")
}
