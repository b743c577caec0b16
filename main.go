// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/structdiff/structdiff/internal/command"
	"github.com/structdiff/structdiff/internal/config"
	"github.com/structdiff/structdiff/internal/log"
	"github.com/structdiff/structdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
// Unequal inputs map to 1, any failure to 2.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferent) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && (len(args) < 2 || args[1] != "completion") {
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		// Set expansion can re-introduce flags the user also passed
		// explicitly. Keep only the last occurrence of each.
		args = deduplicateFlags(args)
	}

	return initAndRunApp(args)
}

// deduplicateFlags removes earlier occurrences of repeated flags so the last
// one wins. A flag given as "--name value", "--name=value" or bare is treated
// as one unit; positional arguments are preserved in place.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type argGroup struct {
		name   string // empty for positionals
		tokens []string
	}

	var groups []argGroup
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			groups = append(groups, argGroup{tokens: []string{a}})
			continue
		}

		name := a
		tokens := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, args[i+1])
			i++
		}
		groups = append(groups, argGroup{name: name, tokens: tokens})
	}

	last := make(map[string]int)
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.name != "" && last[g.name] != i {
			continue
		}
		result = append(result, g.tokens...)
	}
	return result
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	removeIdx := -1
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
