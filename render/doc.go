// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render converts a diff tree into displayable text: nested blocks
// with per-line change markers and run-length collapsing of unchanged
// spans. Output is deterministic for a given tree; colorization is a pure
// post-process keyed by marker kind and is disabled by default.
package render
