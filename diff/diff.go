// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/structdiff/structdiff/view"
)

// Kind is the variant tag of a diff Node.
type Kind int

const (
	// KindEqual means both views are structurally identical.
	KindEqual Kind = iota
	// KindReplace means the values differ and cannot be compared
	// member-by-member.
	KindReplace
	// KindStructLike is a field-by-field diff of structs or same-variant
	// enums.
	KindStructLike
	// KindSequence is an aligned element-wise diff of two sequences.
	KindSequence
	// KindOption describes an option whose presence or inner value changed.
	KindOption
)

// FieldState classifies a member of a struct-like diff.
type FieldState int

const (
	// FieldShared is present on both sides; its Diff carries the change.
	FieldShared FieldState = iota
	// FieldAdded is present only on the to side.
	FieldAdded
	// FieldRemoved is present only on the from side.
	FieldRemoved
)

// FieldDiff is one member of a struct-like diff. Shared fields carry a
// child Diff; added and removed fields carry the one-sided value.
type FieldDiff struct {
	Name  string
	State FieldState
	Diff  *Node
	Value view.View
}

// SeqOpKind tags one sequence alignment operation.
type SeqOpKind int

const (
	OpUnchanged SeqOpKind = iota
	OpModified
	OpInserted
	OpDeleted
)

// SeqOp is one step of a sequence alignment. From is set for Unchanged,
// Modified and Deleted; To for Unchanged, Modified and Inserted. Diff is
// set for Modified only. Removing the Inserted ops and taking From in
// order reconstructs the from sequence exactly; symmetrically for To.
type SeqOp struct {
	Kind SeqOpKind
	From view.View
	To   view.View
	Diff *Node
}

// Node is one node of a diff tree. A tree is built once per comparison,
// is immutable, and owns everything it needs for later rendering.
type Node struct {
	kind Kind

	// Equal
	value    view.View
	hasValue bool

	// Replace, and option presence flips
	from view.View
	to   view.View

	// StructLike and Sequence
	fromType string
	toType   string
	variant  string
	tuple    bool
	fields   []FieldDiff
	ops      []SeqOp

	// Option
	fromPresent bool
	toPresent   bool
	inner       *Node
}

// Kind returns the variant of this node.
func (n *Node) Kind() Kind { return n.kind }

// IsEqual reports whether the two compared values were structurally
// identical. Builders collapse all-equal composites into KindEqual, so this
// is a single tag check.
func (n *Node) IsEqual() bool { return n.kind == KindEqual }

// Value returns the representative view retained by an Equal node.
func (n *Node) Value() (view.View, bool) { return n.value, n.hasValue }

// From returns the from-side view of a Replace or Option node.
func (n *Node) From() view.View { return n.from }

// To returns the to-side view of a Replace or Option node.
func (n *Node) To() view.View { return n.to }

// TypeNames returns the declared type names of both sides of a StructLike
// or Sequence node. They are display metadata only.
func (n *Node) TypeNames() (from, to string) { return n.fromType, n.toType }

// Variant returns the shared active variant name when a StructLike node
// compares two enum values, and "" for plain structs.
func (n *Node) Variant() string { return n.variant }

// IsTuple reports whether a StructLike node has a positional payload,
// in which case Ops rather than Fields describes the changes.
func (n *Node) IsTuple() bool { return n.tuple }

// Fields returns the members of a named-field StructLike node: shared
// fields first in from-side declaration order, then added, then removed.
func (n *Node) Fields() []FieldDiff { return n.fields }

// Ops returns the alignment of a Sequence or tuple StructLike node.
func (n *Node) Ops() []SeqOp { return n.ops }

// Presence returns the from/to presence of an Option node.
func (n *Node) Presence() (from, to bool) { return n.fromPresent, n.toPresent }

// Inner returns the inner diff of an Option node whose both sides were
// present, or nil.
func (n *Node) Inner() *Node { return n.inner }

func equalNode(v view.View) *Node {
	return &Node{kind: KindEqual, value: v, hasValue: true}
}

func replaceNode(from, to view.View) *Node {
	return &Node{kind: KindReplace, from: from, to: to}
}

// Options tunes a comparison.
type Options struct {
	// Band limits how far the sequence aligner searches off the diagonal.
	// Elements further apart than Band positions are never paired, keeping
	// alignment cost near-linear on large sequences. Zero means the
	// default of 64.
	Band int
}

const defaultBand = 64

// Compare computes the difference between two views with default options.
// It is a pure function: no side effects, no error paths. Every pair of
// well-formed views resolves to some diff, worst case a replace.
func Compare(from, to view.View) *Node {
	return Options{}.Compare(from, to)
}

// Compare computes the difference between two views.
func (o Options) Compare(from, to view.View) *Node {
	b := builder{band: o.Band}
	if b.band <= 0 {
		b.band = defaultBand
	}
	return b.compare(from, to)
}

type builder struct {
	band int
}

// deref unwraps indirection views. The wrapper itself never appears in
// diff output; shared subgraphs diff by value, not identity.
func deref(v view.View) view.View {
	for v.Kind() == view.KindIndirection {
		v, _ = v.Inner()
	}
	return v
}

func (b *builder) compare(from, to view.View) *Node {
	from = deref(from)
	to = deref(to)

	fk, tk := from.Kind(), to.Kind()

	switch {
	case fk == view.KindScalar && tk == view.KindScalar:
		if view.EqualScalar(from, to) {
			return equalNode(from)
		}
		return replaceNode(from, to)

	case fk == view.KindOption && tk == view.KindOption:
		return b.compareOptions(from, to)

	case fk == view.KindStruct && tk == view.KindStruct:
		return b.compareStructLike(from, to, "")

	case fk == view.KindEnum && tk == view.KindEnum:
		// Differing active variants always replace wholesale; payload
		// fields are never merged across variants.
		if from.VariantName() != to.VariantName() || from.IsTuple() != to.IsTuple() {
			return replaceNode(from, to)
		}
		return b.compareStructLike(from, to, from.VariantName())

	case fk == view.KindSequence && tk == view.KindSequence:
		ops := b.align(from.Elems(), to.Elems())
		if allUnchanged(ops) {
			return equalNode(from)
		}
		return &Node{
			kind:     KindSequence,
			fromType: from.TypeName(),
			toType:   to.TypeName(),
			ops:      ops,
		}

	default:
		// Irreconcilable categories.
		return replaceNode(from, to)
	}
}

func (b *builder) compareOptions(from, to view.View) *Node {
	fi, fok := from.Inner()
	ti, tok := to.Inner()

	switch {
	case fok && tok:
		inner := b.compare(fi, ti)
		if inner.IsEqual() {
			return equalNode(from)
		}
		return &Node{
			kind:        KindOption,
			from:        from,
			to:          to,
			fromPresent: true,
			toPresent:   true,
			inner:       inner,
		}
	case !fok && !tok:
		return equalNode(from)
	default:
		// Presence flipped; the absent side carries no inner diff.
		return &Node{
			kind:        KindOption,
			from:        from,
			to:          to,
			fromPresent: fok,
			toPresent:   tok,
		}
	}
}

// compareStructLike diffs two struct-like views. Type and variant names
// never participate in equality: only the runtime category and the nested
// contents matter.
func (b *builder) compareStructLike(from, to view.View, variant string) *Node {
	if from.IsTuple() != to.IsTuple() {
		return replaceNode(from, to)
	}

	if from.IsTuple() {
		ops := b.align(from.Elems(), to.Elems())
		if allUnchanged(ops) {
			return equalNode(from)
		}
		return &Node{
			kind:     KindStructLike,
			fromType: from.TypeName(),
			toType:   to.TypeName(),
			variant:  variant,
			tuple:    true,
			ops:      ops,
		}
	}

	fields := make([]FieldDiff, 0, len(from.Fields())+len(to.Fields()))
	allEqual := true

	// Shared fields first, in from-side declaration order.
	for _, f := range from.Fields() {
		tv, ok := to.FieldByName(f.Name)
		if !ok {
			continue
		}
		d := b.compare(f.Value, tv)
		if !d.IsEqual() {
			allEqual = false
		}
		fields = append(fields, FieldDiff{Name: f.Name, State: FieldShared, Diff: d})
	}

	// Then fields only the to side has.
	for _, f := range to.Fields() {
		if _, ok := from.FieldByName(f.Name); !ok {
			allEqual = false
			fields = append(fields, FieldDiff{Name: f.Name, State: FieldAdded, Value: f.Value})
		}
	}

	// Then fields only the from side has.
	for _, f := range from.Fields() {
		if _, ok := to.FieldByName(f.Name); !ok {
			allEqual = false
			fields = append(fields, FieldDiff{Name: f.Name, State: FieldRemoved, Value: f.Value})
		}
	}

	if allEqual {
		return equalNode(from)
	}

	return &Node{
		kind:     KindStructLike,
		fromType: from.TypeName(),
		toType:   to.TypeName(),
		variant:  variant,
		fields:   fields,
	}
}

func allUnchanged(ops []SeqOp) bool {
	for _, op := range ops {
		if op.Kind != OpUnchanged {
			return false
		}
	}
	return true
}
