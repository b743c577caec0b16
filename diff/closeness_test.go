// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structdiff/structdiff/view"
)

func TestCloseness_Scalars(t *testing.T) {
	assert.Equal(t, 1.0, closeness(view.Int(5), view.Int(5)))
	assert.Equal(t, 1.0, closeness(view.Int(5), view.Uint(5)))
	assert.Equal(t, 0.0, closeness(view.Int(5), view.Int(6)))
	assert.Equal(t, 0.0, closeness(view.String("a"), view.String("b")))
}

func TestCloseness_StructsShareFields(t *testing.T) {
	a := view.Struct("", view.F("x", view.Int(1)), view.F("y", view.Int(2)))
	b := view.Struct("", view.F("x", view.Int(1)), view.F("y", view.Int(3)))

	// One of two fields matches.
	assert.Equal(t, 0.5, closeness(a, b))

	// A disjoint field set divides the credit by the union.
	c := view.Struct("", view.F("x", view.Int(1)), view.F("z", view.Int(9)))
	assert.InDelta(t, 1.0/3.0, closeness(a, c), 1e-9)

	// Identical structs score 1.
	assert.Equal(t, 1.0, closeness(a, a))
}

func TestCloseness_EmptyStructs(t *testing.T) {
	assert.Equal(t, 1.0, closeness(view.Struct(""), view.Struct("")))
}

func TestCloseness_Tuples(t *testing.T) {
	a := view.Tuple("", view.Int(1), view.Int(2))
	b := view.Tuple("", view.Int(1), view.Int(9))
	assert.Equal(t, 0.5, closeness(a, b))

	// Length difference dilutes positional credit.
	c := view.Tuple("", view.Int(1), view.Int(2), view.Int(3), view.Int(4))
	assert.Equal(t, 0.5, closeness(a, c))

	// Tuple against named fields is not comparable.
	d := view.Struct("", view.F("a", view.Int(1)))
	assert.Equal(t, 0.0, closeness(a, d))
}

func TestCloseness_Enums(t *testing.T) {
	pending := view.UnitVariant("S", "Pending")
	active := view.Variant("S", "Active", view.F("since", view.String("x")))

	// Different variants never pair.
	assert.Equal(t, 0.0, closeness(pending, active))
	assert.Equal(t, 1.0, closeness(pending, pending))

	activeB := view.Variant("S", "Active", view.F("since", view.String("y")))
	assert.Equal(t, 0.0, closeness(active, activeB))
}

func TestCloseness_Options(t *testing.T) {
	assert.Equal(t, 1.0, closeness(view.None(), view.None()))
	assert.Equal(t, 0.0, closeness(view.Some(view.Int(1)), view.None()))
	assert.Equal(t, 1.0, closeness(view.Some(view.Int(1)), view.Some(view.Int(1))))
	assert.Equal(t, 0.0, closeness(view.Some(view.Int(1)), view.Some(view.Int(2))))
}

func TestCloseness_SequencesByLengthRatio(t *testing.T) {
	two := view.Seq(view.Int(1), view.Int(2))
	four := view.Seq(view.Int(9), view.Int(9), view.Int(9), view.Int(9))

	assert.Equal(t, 0.5, closeness(two, four))
	assert.Equal(t, 1.0, closeness(view.Seq(), view.Seq()))
	assert.Equal(t, 0.0, closeness(view.Seq(), four))
}

func TestCloseness_DepthCap(t *testing.T) {
	// Equal scalars score regardless of depth.
	deepScalar := view.Struct("", view.F("a",
		view.Struct("", view.F("b",
			view.Struct("", view.F("c", view.Int(1)))))))
	assert.Equal(t, 1.0, closeness(deepScalar, deepScalar))

	// A composite at the cap contributes nothing even when identical.
	deepStruct := view.Struct("", view.F("a",
		view.Struct("", view.F("b",
			view.Struct("", view.F("c",
				view.Struct("", view.F("d", view.Int(1)))))))))
	assert.Equal(t, 0.0, closeness(deepStruct, deepStruct))
}

func TestCloseness_IndirectionUnwrapped(t *testing.T) {
	assert.Equal(t, 1.0, closeness(view.Indirect(view.Int(5)), view.Int(5)))
}
