// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structdiff/structdiff/view"
)

func opKinds(ops []SeqOp) []SeqOpKind {
	kinds := make([]SeqOpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	return kinds
}

func TestAlign_Empty(t *testing.T) {
	b := builder{band: defaultBand}
	assert.Nil(t, b.align(nil, nil))
}

func TestAlign_Identical(t *testing.T) {
	b := builder{band: defaultBand}
	elems := []view.View{view.Int(1), view.Int(2), view.Int(3)}

	ops := b.align(elems, elems)
	assert.Equal(t, []SeqOpKind{OpUnchanged, OpUnchanged, OpUnchanged}, opKinds(ops))
}

func TestAlign_ShiftedMatch(t *testing.T) {
	b := builder{band: defaultBand}
	from := []view.View{view.String("a"), view.String("b")}
	to := []view.View{view.String("x"), view.String("y"), view.String("a")}

	ops := b.align(from, to)
	assert.Equal(t, []SeqOpKind{OpInserted, OpInserted, OpUnchanged, OpDeleted}, opKinds(ops))
}

func TestAlign_BandLimitsPairingDistance(t *testing.T) {
	from := []view.View{view.String("a"), view.String("b")}
	to := []view.View{view.String("x"), view.String("y"), view.String("a")}

	// With the band at 1 the distance-2 match of "a" is out of reach, so the
	// whole run degenerates and coalescing pairs what it can positionally.
	b := builder{band: 1}
	ops := b.align(from, to)

	var unchanged int
	for _, op := range ops {
		if op.Kind == OpUnchanged {
			unchanged++
		}
	}
	assert.Zero(t, unchanged)
}

func TestAlign_CloseStructsPairAsModified(t *testing.T) {
	b := builder{band: defaultBand}

	from := []view.View{view.Struct("", view.F("id", view.Int(1)), view.F("val", view.String("old")))}
	to := []view.View{view.Struct("", view.F("id", view.Int(1)), view.F("val", view.String("new")))}

	ops := b.align(from, to)
	require.Len(t, ops, 1)
	require.Equal(t, OpModified, ops[0].Kind)
	require.NotNil(t, ops[0].Diff)
	assert.Equal(t, KindStructLike, ops[0].Diff.Kind())
}

func TestAlign_DistantStructsDontPair(t *testing.T) {
	b := builder{band: defaultBand}

	from := []view.View{
		view.Struct("", view.F("id", view.Int(1)), view.F("val", view.String("x"))),
		view.Struct("", view.F("id", view.Int(2)), view.F("val", view.String("keep"))),
	}
	to := []view.View{
		view.Struct("", view.F("id", view.Int(2)), view.F("val", view.String("keep"))),
	}

	// The first element shares no field values with the survivor, so it
	// deletes; the exact element pairs as unchanged.
	ops := b.align(from, to)

	kinds := opKinds(ops)
	assert.Contains(t, kinds, OpUnchanged)
	assert.Contains(t, kinds, OpDeleted)
}

func TestCoalesce_BalancedRunBecomesModified(t *testing.T) {
	b := builder{band: defaultBand}

	ops := b.align(
		[]view.View{view.Int(3)},
		[]view.View{view.Int(99)},
	)
	require.Len(t, ops, 1)
	assert.Equal(t, OpModified, ops[0].Kind)
}

func TestCoalesce_UnbalancedRunStaysRaw(t *testing.T) {
	b := builder{band: defaultBand}

	ops := b.align(
		[]view.View{view.Int(1)},
		[]view.View{view.Int(7), view.Int(8), view.Int(9)},
	)

	// One deletion against three insertions cannot pair; deletions come
	// first in the rewritten run.
	require.Len(t, ops, 4)
	assert.Equal(t, []SeqOpKind{OpDeleted, OpInserted, OpInserted, OpInserted}, opKinds(ops))
}

func TestPairOp_ExactComparisonDecides(t *testing.T) {
	b := builder{band: defaultBand}

	op := b.pairOp(view.Int(1), view.Int(1))
	assert.Equal(t, OpUnchanged, op.Kind)
	assert.Nil(t, op.Diff)

	op = b.pairOp(view.Int(1), view.Int(2))
	assert.Equal(t, OpModified, op.Kind)
	require.NotNil(t, op.Diff)
	assert.Equal(t, KindReplace, op.Diff.Kind())
}
