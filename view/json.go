// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON validates and converts a JSON document into a View.
func ParseJSON(data []byte) (View, error) {
	if !gjson.ValidBytes(data) {
		return View{}, fmt.Errorf("invalid JSON document")
	}
	return FromJSON(gjson.ParseBytes(data)), nil
}

// FromJSON converts a gjson result into a View. Objects become anonymous
// struct-like views with fields in document order, arrays become sequences,
// and scalars map onto the matching scalar tags. Numbers without a fraction
// or exponent become integer scalars so that 8080 in one document equals
// 8080 in another regardless of source formatting.
func FromJSON(r gjson.Result) View {
	switch r.Type {
	case gjson.Null:
		return Nil()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return Float(r.Float())
		}
		return Int(r.Int())
	case gjson.String:
		return String(r.Str)
	default:
		if r.IsArray() {
			arr := r.Array()
			elems := make([]View, len(arr))
			for i, e := range arr {
				elems[i] = FromJSON(e)
			}
			return Seq(elems...)
		}
		if r.IsObject() {
			var fields []Field
			r.ForEach(func(key, value gjson.Result) bool {
				fields = append(fields, Field{Name: key.String(), Value: FromJSON(value)})
				return true
			})
			return Struct("", fields...)
		}
		// gjson only produces the types handled above for valid documents.
		panic(fmt.Sprintf("view: unhandled JSON value %q", r.Raw))
	}
}
