// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Teletype
// client.
//
// Configuration is a single optional YAML file located via:
//   - the TELETYPE_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There is no automatic discovery and environment variables do not
// override individual values; when no file is given, built-in
// defaults apply. Command-line flags take precedence over the file,
// so the CLI surface stays authoritative for the connection target.
package config
