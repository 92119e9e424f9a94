// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of Teletype binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is stamped by the release build via
// -ldflags "-X github.com/typetome/teletype/lib/version.Version=...".
// Development builds fall back to module build info.
var Version = ""

// String returns the version, falling back to the module version
// recorded by the Go toolchain ("devel" builds included).
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "unknown"
}

// Print writes "<binary> <version>" to stdout, the shared --version
// output format for all Teletype binaries.
func Print(binary string) {
	fmt.Printf("%s %s\n", binary, String())
}
