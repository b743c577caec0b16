// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/structdiff/structdiff/diff"
	"github.com/structdiff/structdiff/view"
)

// Config controls presentation. The zero value renders plain text;
// Colorize output is byte-identical to plain output modulo the color
// escape sequences.
type Config struct {
	Colorize bool
}

// Render formats a diff tree as plain text.
func Render(d *diff.Node) string {
	return Config{}.Render(d)
}

// Render formats a diff tree according to the configuration.
func (c Config) Render(d *diff.Node) string {
	r := renderer{st: c.styles()}
	return r.node(d)
}

type renderer struct {
	st styles
}

// node renders one diff node. The result has no trailing newline; nested
// blocks carry their own internal indentation relative to the first line.
func (r *renderer) node(d *diff.Node) string {
	switch d.Kind() {
	case diff.KindEqual:
		if v, ok := d.Value(); ok {
			return r.st.muted(v.String())
		}
		return r.st.muted("(structurally equal)")

	case diff.KindReplace:
		return r.replace(d.From(), d.To())

	case diff.KindOption:
		return r.option(d)

	case diff.KindStructLike:
		if d.IsTuple() {
			return r.tuple(d)
		}
		return r.structLike(d)

	case diff.KindSequence:
		return r.block(r.st.punct("["), r.opEntries(d.Ops()), r.st.punct("]"))

	default:
		panic(fmt.Sprintf("render: unhandled diff kind %d", d.Kind()))
	}
}

func (r *renderer) replace(from, to view.View) string {
	base := r.st.deleted(from.String()) + " → " + r.st.inserted(to.String())

	// When two strings look identical but differ in invisible characters,
	// the arrow line alone is useless; spell out the codepoints.
	if from.Kind() == view.KindScalar && to.Kind() == view.KindScalar &&
		from.Tag() == view.ScalarString && to.Tag() == view.ScalarString {
		if expl := r.confusableDiff(from.StringValue(), to.StringValue()); expl != "" {
			return base + "\n" + expl
		}
	}

	return base
}

func (r *renderer) option(d *diff.Node) string {
	fromPresent, toPresent := d.Presence()
	if fromPresent && toPresent {
		return r.st.bold("Some") + " " + r.node(d.Inner())
	}
	return r.st.deleted(d.From().String()) + " → " + r.st.inserted(d.To().String())
}

// structLike renders a named-field block. The total unchanged-field count
// collapses into a single summary line at the position of the first
// unchanged run; changed, added and removed fields render individually.
func (r *renderer) structLike(d *diff.Node) string {
	total := 0
	for _, f := range d.Fields() {
		if f.State == diff.FieldShared && f.Diff.IsEqual() {
			total++
		}
	}

	var entries []string
	summarized := false
	for _, f := range d.Fields() {
		switch f.State {
		case diff.FieldShared:
			if f.Diff.IsEqual() {
				if !summarized {
					entries = append(entries, r.st.muted(fmt.Sprintf(".. %d unchanged %s", total, plural(total, "field", "fields"))))
					summarized = true
				}
				continue
			}
			entries = append(entries, r.st.field(f.Name)+r.st.punct(":")+" "+r.node(f.Diff))
		case diff.FieldAdded:
			entries = append(entries, r.st.inserted("+")+" "+r.st.field(f.Name)+r.st.punct(":")+" "+r.st.inserted(f.Value.String()))
		case diff.FieldRemoved:
			entries = append(entries, r.st.deleted("-")+" "+r.st.field(f.Name)+r.st.punct(":")+" "+r.st.deleted(f.Value.String()))
		}
	}

	head := r.st.punct("{")
	if name := r.displayName(d); name != "" {
		head = name + " " + head
	}
	return r.block(head, entries, r.st.punct("}"))
}

func (r *renderer) tuple(d *diff.Node) string {
	ops := d.Ops()

	// A positional payload holding a single scalar change reads better
	// inline than as a one-line block.
	if len(ops) == 1 && ops[0].Kind == diff.OpModified && ops[0].Diff.Kind() == diff.KindReplace {
		inline := r.node(ops[0].Diff)
		if name := r.displayName(d); name != "" {
			return name + " " + inline
		}
		return inline
	}

	head := r.st.punct("(")
	if name := r.displayName(d); name != "" {
		head = name + " " + head
	}
	return r.block(head, r.opEntries(ops), r.st.punct(")"))
}

func (r *renderer) displayName(d *diff.Node) string {
	if v := d.Variant(); v != "" {
		return r.st.bold(v)
	}
	fromType, toType := d.TypeNames()
	switch {
	case fromType == toType:
		return fromType
	case fromType == "":
		return toType
	case toType == "":
		return fromType
	default:
		return fromType + " → " + toType
	}
}

// opEntries renders sequence operations, collapsing each run of
// consecutive unchanged elements into a single count line.
func (r *renderer) opEntries(ops []diff.SeqOp) []string {
	var entries []string
	i := 0
	for i < len(ops) {
		if ops[i].Kind == diff.OpUnchanged {
			n := 0
			for i < len(ops) && ops[i].Kind == diff.OpUnchanged {
				n++
				i++
			}
			entries = append(entries, r.st.muted(fmt.Sprintf(".. %d unchanged %s", n, plural(n, "item", "items"))))
			continue
		}

		switch ops[i].Kind {
		case diff.OpModified:
			entries = append(entries, r.node(ops[i].Diff))
		case diff.OpDeleted:
			entries = append(entries, r.st.deleted("- "+ops[i].From.String()))
		case diff.OpInserted:
			entries = append(entries, r.st.inserted("+ "+ops[i].To.String()))
		}
		i++
	}
	return entries
}

// block assembles a braced multi-line section. Every line of every entry,
// including lines of nested blocks, indents four spaces relative to the
// head.
func (r *renderer) block(head string, entries []string, tail string) string {
	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString("\n")
	for _, e := range entries {
		for _, line := range strings.Split(e, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(tail)
	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
