// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/structdiff/structdiff/diff"
	"github.com/structdiff/structdiff/internal/config"
	"github.com/structdiff/structdiff/internal/meta"
	"github.com/structdiff/structdiff/render"
)

// ErrDifferent reports that the inputs compared unequal. The caller maps it
// to the "different" exit status instead of treating it as a failure.
var ErrDifferent = errors.New("inputs differ")

// fdCommandAction is the action handler for the "fd" subcommand. It loads
// two structured documents, diffs their shapes, and renders the result.
func fdCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	config.Config.Namespace = "fd"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("fd requires exactly two inputs, got %d", len(args))
	}

	format := cmd.String("format")
	from, err := loadInput(args[0], format)
	if err != nil {
		return err
	}
	to, err := loadInput(args[1], format)
	if err != nil {
		return err
	}

	if path := cmd.String("path"); path != "" {
		if from, err = subView(from, path); err != nil {
			return err
		}
		if to, err = subView(to, path); err != nil {
			return err
		}
	}

	opts := diff.Options{Band: cmd.Int("band")}
	d := opts.Compare(from, to)

	if !cmd.Bool("quiet") {
		text := render.Config{Colorize: cmd.Bool("color")}.Render(d)

		if cmd.Bool("interactive") {
			if err := runDiffPager(text); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(os.Stdout, text)
		}

		if cmd.Bool("stats") {
			fmt.Fprintln(os.Stdout, formatStats(collectStats(d)))
		}
	}

	if !d.IsEqual() {
		return ErrDifferent
	}
	return nil
}

// diffStats aggregates leaf-level change counts across a diff tree.
type diffStats struct {
	Changed   int
	Added     int
	Removed   int
	Unchanged int
}

func collectStats(d *diff.Node) (s diffStats) {
	s.walk(d)
	return
}

func (s *diffStats) walk(d *diff.Node) {
	switch d.Kind() {
	case diff.KindEqual:
		s.Unchanged++
	case diff.KindReplace:
		s.Changed++
	case diff.KindOption:
		if inner := d.Inner(); inner != nil {
			s.walk(inner)
		} else {
			s.Changed++
		}
	case diff.KindStructLike:
		for _, f := range d.Fields() {
			switch f.State {
			case diff.FieldShared:
				s.walk(f.Diff)
			case diff.FieldAdded:
				s.Added++
			case diff.FieldRemoved:
				s.Removed++
			}
		}
		s.walkOps(d.Ops())
	case diff.KindSequence:
		s.walkOps(d.Ops())
	}
}

func (s *diffStats) walkOps(ops []diff.SeqOp) {
	for _, op := range ops {
		switch op.Kind {
		case diff.OpUnchanged:
			s.Unchanged++
		case diff.OpModified:
			s.walk(op.Diff)
		case diff.OpDeleted:
			s.Removed++
		case diff.OpInserted:
			s.Added++
		}
	}
}

func formatStats(s diffStats) string {
	return fmt.Sprintf("%s changed, %s added, %s removed, %s unchanged",
		humanize.Comma(int64(s.Changed)),
		humanize.Comma(int64(s.Added)),
		humanize.Comma(int64(s.Removed)),
		humanize.Comma(int64(s.Unchanged)))
}

// fdCommandBuilder constructs the "fd" subcommand.
func fdCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fd",
		Usage:     "file diff",
		UsageText: "structdiff fd [options] <from-file> <to-file>",
		Metadata:  map[string]any{"meta": meta},
		Flags: append([]cli.Flag{
			NewFormatFlag("fd", meta.Config.Source),
			NewBandFlag("fd"),
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "dotted path selecting the subtree to compare",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "page the diff in an interactive viewer",
				Value:   false,
			},
		}, NewGlobalFlags("fd")...),
		Action: fdCommandAction,
	}
}
