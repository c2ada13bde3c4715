//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the bounded project using Mage.
//
// Usage:
//
//	mage build      Compile boundctl binary to bin/
//	mage test       Run all tests
//	mage testUnit   Run tests for pkg/ only
//	mage cover      Run tests with a coverage profile
//	mage lint       Run golangci-lint
//	mage vet        Run go vet
//	mage clean      Remove build artifacts
//	mage install    Install boundctl to GOPATH/bin
package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestUnit runs the container and math package tests without the CLI.
func TestUnit() error {
	return sh.RunV(binGo, "test", "./pkg/...")
}

// Cover runs all tests with a coverage profile and prints the summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	out, err := sh.Output(binGo, "tool", "cover", "-func="+coverProfile)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// Check runs vet, lint and the full test suite.
func Check() {
	mg.SerialDeps(Vet, Lint, Test)
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
