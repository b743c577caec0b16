// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package view provides a read-only, shape-aware handle over structured
// values. A View reports its category (scalar, struct, enum, sequence,
// option, indirection) and exposes ordered fields, elements and inner
// values without requiring the underlying data to support equality or
// textual comparison. Front-ends construct Views from native Go values,
// JSON, YAML and cty values.
package view
