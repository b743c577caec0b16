// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff computes a structural difference between two value views.
// Compare recurses through composite shapes, aligns sequences to favor
// field-level modifications over raw insert/delete pairs, and returns an
// immutable tree that callers inspect with IsEqual or hand to the render
// package.
package diff
