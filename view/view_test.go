// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualScalar_SameTag(t *testing.T) {
	assert.True(t, EqualScalar(Nil(), Nil()))
	assert.True(t, EqualScalar(Bool(true), Bool(true)))
	assert.False(t, EqualScalar(Bool(true), Bool(false)))
	assert.True(t, EqualScalar(Int(42), Int(42)))
	assert.True(t, EqualScalar(String("x"), String("x")))
	assert.False(t, EqualScalar(String("x"), String("y")))
	assert.True(t, EqualScalar(Bytes([]byte{1, 2}), Bytes([]byte{1, 2})))
	assert.False(t, EqualScalar(Bytes([]byte{1, 2}), Bytes([]byte{1})))
}

func TestEqualScalar_CrossNumeric(t *testing.T) {
	// Numeric scalars compare by value across representations.
	assert.True(t, EqualScalar(Int(2), Uint(2)))
	assert.True(t, EqualScalar(Uint(2), Int(2)))
	assert.True(t, EqualScalar(Int(2), Float(2)))
	assert.True(t, EqualScalar(Float(2), Uint(2)))
	assert.False(t, EqualScalar(Int(2), Float(2.5)))
	assert.False(t, EqualScalar(Int(-1), Uint(0)))
}

func TestEqualScalar_IntUintLargeValues(t *testing.T) {
	// A uint64 above the int64 range never equals a negative int.
	big := Uint(1 << 63)
	assert.False(t, EqualScalar(Int(-9223372036854775808), big))
}

func TestEqualScalar_MixedKindsNeverEqual(t *testing.T) {
	assert.False(t, EqualScalar(Int(1), Seq(Int(1))))
	assert.False(t, EqualScalar(Struct(""), Struct("")))
	assert.False(t, EqualScalar(String("true"), Bool(true)))
	assert.False(t, EqualScalar(Nil(), Bool(false)))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		view     View
		expected string
	}{
		{"nil", Nil(), "nil"},
		{"bool", Bool(true), "true"},
		{"int", Int(-5), "-5"},
		{"uint", Uint(7), "7"},
		{"float", Float(2.5), "2.5"},
		{"float whole", Float(2), "2"},
		{"string", String("hi"), `"hi"`},
		{"bytes", Bytes([]byte{0xde, 0xad}), "0xdead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.Literal())
		})
	}
}

func TestString_Compact(t *testing.T) {
	tests := []struct {
		name     string
		view     View
		expected string
	}{
		{"scalar", Int(5), "5"},
		{"none", None(), "None"},
		{"some", Some(Int(5)), "Some(5)"},
		{"empty struct", Struct("Empty"), "Empty {}"},
		{"anon struct", Struct("", F("a", Int(1))), "{ a: 1 }"},
		{"named struct", Struct("Server", F("host", String("a")), F("port", Int(1))), `Server { host: "a", port: 1 }`},
		{"tuple", Tuple("Point", Int(1), Int(2)), "Point(1, 2)"},
		{"unit variant", UnitVariant("Status", "Pending"), "Pending"},
		{"variant", Variant("Status", "Active", F("since", String("2024-01-01"))), `Active { since: "2024-01-01" }`},
		{"tuple variant", TupleVariant("Shape", "Circle", Int(5)), "Circle(5)"},
		{"sequence", Seq(Int(1), Int(2), Int(3)), "[1, 2, 3]"},
		{"empty sequence", Seq(), "[]"},
		{"indirection", Indirect(Int(9)), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestFieldByName(t *testing.T) {
	v := Struct("S", F("a", Int(1)), F("b", Int(2)))

	got, ok := v.FieldByName("b")
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.IntValue())

	_, ok = v.FieldByName("missing")
	assert.False(t, ok)
}

func TestInner(t *testing.T) {
	inner, ok := Some(Int(5)).Inner()
	assert.True(t, ok)
	assert.Equal(t, int64(5), inner.IntValue())

	_, ok = None().Inner()
	assert.False(t, ok)

	inner, ok = Indirect(String("x")).Inner()
	assert.True(t, ok)
	assert.Equal(t, "x", inner.StringValue())
}

func TestInner_BrokenIndirectionPanics(t *testing.T) {
	broken := View{kind: KindIndirection}
	assert.Panics(t, func() { broken.Inner() })
}

func TestBytesCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Bytes(src)
	src[0] = 99
	assert.Equal(t, []byte{1, 2, 3}, v.BytesValue())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "struct", KindStruct.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "option", KindOption.String())
	assert.Equal(t, "indirection", KindIndirection.String())
}
