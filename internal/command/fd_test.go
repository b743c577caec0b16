// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structdiff/structdiff/diff"
	"github.com/structdiff/structdiff/view"
)

func TestCollectStats_EqualInputs(t *testing.T) {
	v := view.Struct("", view.F("a", view.Int(1)))

	s := collectStats(diff.Compare(v, v))
	assert.Equal(t, diffStats{Unchanged: 1}, s)
}

func TestCollectStats_ScalarReplace(t *testing.T) {
	s := collectStats(diff.Compare(view.Int(1), view.Int(2)))
	assert.Equal(t, diffStats{Changed: 1}, s)
}

func TestCollectStats_StructFields(t *testing.T) {
	from := view.Struct("",
		view.F("a", view.Int(1)),
		view.F("b", view.Int(2)),
		view.F("c", view.Int(3)))
	to := view.Struct("",
		view.F("a", view.Int(1)),
		view.F("b", view.Int(9)),
		view.F("d", view.Int(4)))

	s := collectStats(diff.Compare(from, to))
	assert.Equal(t, diffStats{Changed: 1, Added: 1, Removed: 1, Unchanged: 1}, s)
}

func TestCollectStats_Sequence(t *testing.T) {
	from := view.Seq(view.Int(1), view.Int(2), view.Int(3))
	to := view.Seq(view.Int(1), view.Int(2))

	s := collectStats(diff.Compare(from, to))
	assert.Equal(t, diffStats{Removed: 1, Unchanged: 2}, s)
}

func TestCollectStats_OptionPresence(t *testing.T) {
	s := collectStats(diff.Compare(view.Some(view.Int(1)), view.None()))
	assert.Equal(t, diffStats{Changed: 1}, s)
}

func TestCollectStats_NestedWalk(t *testing.T) {
	from := view.Struct("",
		view.F("spec", view.Struct("",
			view.F("replicas", view.Int(3)),
			view.F("image", view.String("v1")))))
	to := view.Struct("",
		view.F("spec", view.Struct("",
			view.F("replicas", view.Int(5)),
			view.F("image", view.String("v1")))))

	s := collectStats(diff.Compare(from, to))
	assert.Equal(t, diffStats{Changed: 1, Unchanged: 1}, s)
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "1 changed, 2 added, 0 removed, 3 unchanged",
		formatStats(diffStats{Changed: 1, Added: 2, Unchanged: 3}))

	// Large counts get thousands separators.
	assert.Equal(t, "1,204 changed, 0 added, 0 removed, 0 unchanged",
		formatStats(diffStats{Changed: 1204}))
}
