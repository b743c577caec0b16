// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for structdiff. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
