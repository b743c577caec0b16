// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the structural category of a View.
type Kind int

const (
	// KindScalar is a leaf value with a normalized literal representation.
	KindScalar Kind = iota
	// KindStruct is a named-field (or positional) composite.
	KindStruct
	// KindEnum is a composite with an active variant name.
	KindEnum
	// KindSequence is an ordered list of elements.
	KindSequence
	// KindOption holds zero or one inner value.
	KindOption
	// KindIndirection is a pointer-like wrapper, transparent to diffing.
	KindIndirection
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindSequence:
		return "sequence"
	case KindOption:
		return "option"
	case KindIndirection:
		return "indirection"
	default:
		return "unknown"
	}
}

// ScalarTag identifies the normalized representation a scalar View holds.
type ScalarTag int

const (
	ScalarNil ScalarTag = iota
	ScalarBool
	ScalarInt
	ScalarUint
	ScalarFloat
	ScalarString
	ScalarBytes
)

// Field is a named member of a struct-like View.
type Field struct {
	Name  string
	Value View
}

// F constructs a Field. It exists to keep literal view construction terse.
func F(name string, value View) Field {
	return Field{Name: name, Value: value}
}

// View is a read-only handle over a structured value. Views own lightweight
// copies of the leaf scalars they describe, so a View (and any diff computed
// from it) remains valid after the original value goes away.
type View struct {
	kind     Kind
	typeName string
	variant  string
	tuple    bool

	tag      ScalarTag
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string
	byteVal  []byte

	fields []Field
	elems  []View
	inner  *View
}

// Nil returns the nil/null scalar view.
func Nil() View { return View{kind: KindScalar, tag: ScalarNil} }

// Bool returns a boolean scalar view.
func Bool(v bool) View { return View{kind: KindScalar, tag: ScalarBool, boolVal: v} }

// Int returns a signed integer scalar view.
func Int(v int64) View { return View{kind: KindScalar, tag: ScalarInt, intVal: v} }

// Uint returns an unsigned integer scalar view.
func Uint(v uint64) View { return View{kind: KindScalar, tag: ScalarUint, uintVal: v} }

// Float returns a floating point scalar view.
func Float(v float64) View { return View{kind: KindScalar, tag: ScalarFloat, floatVal: v} }

// String returns a string scalar view.
func String(v string) View { return View{kind: KindScalar, tag: ScalarString, strVal: v} }

// Bytes returns a byte-string scalar view. The slice is copied.
func Bytes(v []byte) View {
	return View{kind: KindScalar, tag: ScalarBytes, byteVal: append([]byte(nil), v...)}
}

// Struct returns a named-field composite view. typeName may be empty for
// anonymous shapes such as JSON objects or Go maps.
func Struct(typeName string, fields ...Field) View {
	return View{kind: KindStruct, typeName: typeName, fields: fields}
}

// Tuple returns a positional composite view. Its elements diff through
// sequence alignment rather than by-name field matching.
func Tuple(typeName string, elems ...View) View {
	return View{kind: KindStruct, typeName: typeName, tuple: true, elems: elems}
}

// Variant returns an enum view with named payload fields.
func Variant(typeName, variantName string, fields ...Field) View {
	return View{kind: KindEnum, typeName: typeName, variant: variantName, fields: fields}
}

// TupleVariant returns an enum view with a positional payload.
func TupleVariant(typeName, variantName string, elems ...View) View {
	return View{kind: KindEnum, typeName: typeName, variant: variantName, tuple: true, elems: elems}
}

// UnitVariant returns an enum view with no payload.
func UnitVariant(typeName, variantName string) View {
	return View{kind: KindEnum, typeName: typeName, variant: variantName}
}

// Seq returns an ordered sequence view.
func Seq(elems ...View) View { return View{kind: KindSequence, elems: elems} }

// SeqOf returns a named sequence view.
func SeqOf(typeName string, elems ...View) View {
	return View{kind: KindSequence, typeName: typeName, elems: elems}
}

// Some returns a present option view.
func Some(inner View) View { return View{kind: KindOption, inner: &inner} }

// None returns an absent option view.
func None() View { return View{kind: KindOption} }

// Indirect returns a pointer-like wrapper view. Indirections are always
// unwrapped during diffing and never appear in diff output.
func Indirect(inner View) View { return View{kind: KindIndirection, inner: &inner} }

// Kind returns the structural category of the view.
func (v View) Kind() Kind { return v.kind }

// TypeName returns the declared type name, if any. Type names never
// participate in equality; they are display metadata only.
func (v View) TypeName() string { return v.typeName }

// VariantName returns the active variant name of an enum view.
func (v View) VariantName() string { return v.variant }

// IsTuple reports whether a struct-like view has a positional payload.
func (v View) IsTuple() bool { return v.tuple }

// Fields returns the named fields of a struct-like view in declaration
// order. It is nil for tuples and non-composites.
func (v View) Fields() []Field { return v.fields }

// FieldByName looks up a named field.
func (v View) FieldByName(name string) (View, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return View{}, false
}

// Elems returns the elements of a sequence or tuple view.
func (v View) Elems() []View { return v.elems }

// Inner returns the inner view of an option or indirection. For options the
// second return is false when the option is absent. An indirection without
// an inner value is a contract violation by the view producer and panics.
func (v View) Inner() (View, bool) {
	if v.inner == nil {
		if v.kind == KindIndirection {
			panic("view: indirection with no inner value")
		}
		return View{}, false
	}
	return *v.inner, true
}

// Tag returns the scalar tag. Only meaningful for KindScalar.
func (v View) Tag() ScalarTag { return v.tag }

// BoolValue returns the boolean payload of a ScalarBool view.
func (v View) BoolValue() bool { return v.boolVal }

// IntValue returns the integer payload of a ScalarInt view.
func (v View) IntValue() int64 { return v.intVal }

// UintValue returns the unsigned payload of a ScalarUint view.
func (v View) UintValue() uint64 { return v.uintVal }

// FloatValue returns the float payload of a ScalarFloat view.
func (v View) FloatValue() float64 { return v.floatVal }

// StringValue returns the string payload of a ScalarString view.
func (v View) StringValue() string { return v.strVal }

// BytesValue returns the byte payload of a ScalarBytes view.
func (v View) BytesValue() []byte { return v.byteVal }

// Literal returns the normalized literal representation of a scalar,
// suitable for equality display.
func (v View) Literal() string {
	switch v.tag {
	case ScalarNil:
		return "nil"
	case ScalarBool:
		return strconv.FormatBool(v.boolVal)
	case ScalarInt:
		return strconv.FormatInt(v.intVal, 10)
	case ScalarUint:
		return strconv.FormatUint(v.uintVal, 10)
	case ScalarFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case ScalarString:
		return strconv.Quote(v.strVal)
	case ScalarBytes:
		return "0x" + hex.EncodeToString(v.byteVal)
	default:
		return "?"
	}
}

// EqualScalar reports whether two scalar views hold the same value. Numeric
// scalars of different tags compare by value, so Int(2), Uint(2) and
// Float(2) are all equal to each other. Non-scalar views are never equal
// under this predicate.
func EqualScalar(a, b View) bool {
	if a.kind != KindScalar || b.kind != KindScalar {
		return false
	}

	if a.tag == b.tag {
		switch a.tag {
		case ScalarNil:
			return true
		case ScalarBool:
			return a.boolVal == b.boolVal
		case ScalarInt:
			return a.intVal == b.intVal
		case ScalarUint:
			return a.uintVal == b.uintVal
		case ScalarFloat:
			return a.floatVal == b.floatVal
		case ScalarString:
			return a.strVal == b.strVal
		case ScalarBytes:
			return bytes.Equal(a.byteVal, b.byteVal)
		}
	}

	if a.isNumeric() && b.isNumeric() {
		return numericEqual(a, b)
	}

	return false
}

func (v View) isNumeric() bool {
	return v.tag == ScalarInt || v.tag == ScalarUint || v.tag == ScalarFloat
}

// numericEqual compares two numeric scalars of different tags. Integer pairs
// compare exactly; anything involving a float compares as float64.
func numericEqual(a, b View) bool {
	if a.tag == ScalarInt && b.tag == ScalarUint {
		return a.intVal >= 0 && uint64(a.intVal) == b.uintVal
	}
	if a.tag == ScalarUint && b.tag == ScalarInt {
		return b.intVal >= 0 && uint64(b.intVal) == a.uintVal
	}
	return a.asFloat() == b.asFloat()
}

func (v View) asFloat() float64 {
	switch v.tag {
	case ScalarInt:
		return float64(v.intVal)
	case ScalarUint:
		return float64(v.uintVal)
	default:
		return v.floatVal
	}
}

// String renders the view as a compact single-line representation, used for
// whole-value display in diff output (replacements, insertions, deletions).
func (v View) String() string {
	switch v.kind {
	case KindScalar:
		return v.Literal()
	case KindStruct:
		if v.tuple {
			return v.typeName + tupleBody(v.elems)
		}
		return joinName(v.typeName, fieldBody(v.fields))
	case KindEnum:
		if v.tuple {
			return v.variant + tupleBody(v.elems)
		}
		if len(v.fields) == 0 {
			return v.variant
		}
		return joinName(v.variant, fieldBody(v.fields))
	case KindSequence:
		var sb strings.Builder
		sb.WriteString("[")
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteString("]")
		return sb.String()
	case KindOption:
		if v.inner == nil {
			return "None"
		}
		return fmt.Sprintf("Some(%s)", v.inner.String())
	case KindIndirection:
		inner, _ := v.Inner()
		return inner.String()
	default:
		return "?"
	}
}

func joinName(name, body string) string {
	if name == "" {
		return body
	}
	return name + " " + body
}

func fieldBody(fields []Field) string {
	if len(fields) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Value.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

func tupleBody(elems []View) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}
