// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a cty value into a View. Objects and maps become
// struct-like views (map keys sorted for determinism), lists, sets and
// tuples become sequences, and primitives map onto scalars. Null values of
// any type become options without a value, so a null attribute diffs
// against a concrete one as a presence change rather than a replace.
func FromCty(v cty.Value) View {
	if v.IsNull() {
		return None()
	}
	if !v.IsKnown() {
		// Unknowns carry no comparable payload; surface them as a marker
		// string so two unknowns at least compare equal.
		return String("(unknown)")
	}

	t := v.Type()
	switch {
	case t == cty.Bool:
		return Bool(v.True())
	case t == cty.Number:
		return ctyNumber(v)
	case t == cty.String:
		return String(v.AsString())
	case t.IsListType(), t.IsSetType(), t.IsTupleType():
		var elems []View
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elems = append(elems, FromCty(ev))
		}
		return SeqOf(t.FriendlyName(), elems...)
	case t.IsMapType():
		var fields []Field
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			fields = append(fields, Field{Name: kv.AsString(), Value: FromCty(ev)})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
		return Struct("", fields...)
	case t.IsObjectType():
		attrs := t.AttributeTypes()
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		fields := make([]Field, len(names))
		for i, name := range names {
			fields[i] = Field{Name: name, Value: FromCty(v.GetAttr(name))}
		}
		return Struct("", fields...)
	default:
		panic(fmt.Sprintf("view: unsupported cty type %s", t.FriendlyName()))
	}
}

// ctyNumber picks the tightest scalar representation for a cty number.
func ctyNumber(v cty.Value) View {
	bf := v.AsBigFloat()
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return Int(i)
		}
		if u, acc := bf.Uint64(); acc == big.Exact {
			return Uint(u)
		}
	}
	f, _ := bf.Float64()
	return Float(f)
}
