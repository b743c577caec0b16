// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/structdiff/structdiff/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
