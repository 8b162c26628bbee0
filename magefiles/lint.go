//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import "github.com/magefile/mage/sh"

// Lint target for the assistant module. golangci-lint reads .golangci.yml
// when present and its defaults otherwise.

const binLint = "golangci-lint"

// Lint runs golangci-lint over the assistant packages and the integration
// tests.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}
