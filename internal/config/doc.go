// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for structdiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/structdiff.yaml or $HOME/.config/structdiff.yaml
//   - Windows: %APPDATA%/structdiff/structdiff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions.
package config
