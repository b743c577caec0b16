// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/structdiff/structdiff/view"
)

// Closeness scoring is a tie-break heuristic for the sequence aligner: it
// decides whether two elements look like "the same item, modified" or like
// an unrelated insert/delete pair. It must stay cheap because the aligner
// calls it for every candidate pair, so recursion is capped and sequences
// are scored by a length heuristic rather than a full alignment.

const (
	// maxScoreDepth caps scoring recursion. Beyond it, non-equal subtrees
	// contribute zero credit.
	maxScoreDepth = 3

	// acceptThreshold is the minimum closeness at which the aligner pairs
	// two non-equal elements as a modification.
	acceptThreshold = 0.5
)

// closeness returns a similarity score in [0, 1]. Higher means more
// similar; 1 means equal as far as the capped recursion can see.
func closeness(a, b view.View) float64 {
	return closenessAt(a, b, 0)
}

func closenessAt(a, b view.View, depth int) float64 {
	a = deref(a)
	b = deref(b)

	ak, bk := a.Kind(), b.Kind()

	if ak == view.KindScalar && bk == view.KindScalar {
		if view.EqualScalar(a, b) {
			return 1
		}
		return 0
	}

	if depth >= maxScoreDepth {
		return 0
	}

	switch {
	case ak == view.KindStruct && bk == view.KindStruct:
		if a.IsTuple() != b.IsTuple() {
			return 0
		}
		if a.IsTuple() {
			return tupleCloseness(a.Elems(), b.Elems(), depth)
		}
		return fieldCloseness(a, b, depth)

	case ak == view.KindEnum && bk == view.KindEnum:
		if a.VariantName() != b.VariantName() || a.IsTuple() != b.IsTuple() {
			return 0
		}
		if a.IsTuple() {
			return tupleCloseness(a.Elems(), b.Elems(), depth)
		}
		if len(a.Fields()) == 0 && len(b.Fields()) == 0 {
			return 1
		}
		return fieldCloseness(a, b, depth)

	case ak == view.KindOption && bk == view.KindOption:
		ai, aok := a.Inner()
		bi, bok := b.Inner()
		switch {
		case aok && bok:
			return closenessAt(ai, bi, depth+1)
		case !aok && !bok:
			return 1
		default:
			return 0
		}

	case ak == view.KindSequence && bk == view.KindSequence:
		// Length similarity only; a real alignment here would make scoring
		// as expensive as the alignment it is meant to guide.
		an, bn := len(a.Elems()), len(b.Elems())
		if an == 0 && bn == 0 {
			return 1
		}
		return float64(min(an, bn)) / float64(max(an, bn))

	default:
		return 0
	}
}

// fieldCloseness scores named-field composites as accumulated per-field
// credit over the number of distinct field names on either side.
func fieldCloseness(a, b view.View, depth int) float64 {
	union := len(a.Fields())
	for _, f := range b.Fields() {
		if _, ok := a.FieldByName(f.Name); !ok {
			union++
		}
	}
	if union == 0 {
		return 1
	}

	credit := 0.0
	for _, f := range a.Fields() {
		if bv, ok := b.FieldByName(f.Name); ok {
			credit += closenessAt(f.Value, bv, depth+1)
		}
	}
	return credit / float64(union)
}

func tupleCloseness(a, b []view.View, depth int) float64 {
	n := max(len(a), len(b))
	if n == 0 {
		return 1
	}
	credit := 0.0
	for i := 0; i < min(len(a), len(b)); i++ {
		credit += closenessAt(a[i], b[i], depth+1)
	}
	return credit / float64(n)
}
