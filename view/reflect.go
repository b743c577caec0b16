// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"fmt"
	"reflect"
	"sort"
)

// Viewer lets a type supply its own View. This is how Go sum-type idioms
// (an interface with concrete variant types) surface as the enum category:
// each variant returns view.Variant/TupleVariant/UnitVariant.
type Viewer interface {
	DiffView() View
}

// Of builds a View over an arbitrary Go value using reflection.
//
// Mapping: basic kinds become scalars, structs become named-field
// composites, slices and arrays become sequences ([]byte becomes a bytes
// scalar), maps become anonymous composites with lexically sorted keys,
// pointers become options (nil is absent), and non-nil interfaces become
// indirections. Cyclic values are not detected; diffing a cycle does not
// terminate.
func Of(v any) View {
	if v == nil {
		return Nil()
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) View {
	if !rv.IsValid() {
		return Nil()
	}

	if rv.CanInterface() {
		if viewer, ok := rv.Interface().(Viewer); ok {
			return viewer.DiffView()
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes())
		}
		return seqFrom(rv)
	case reflect.Array:
		return seqFrom(rv)
	case reflect.Map:
		return mapFrom(rv)
	case reflect.Struct:
		return structFrom(rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return None()
		}
		return Some(fromReflect(rv.Elem()))
	case reflect.Interface:
		if rv.IsNil() {
			return Nil()
		}
		return Indirect(fromReflect(rv.Elem()))
	default:
		// Channels, funcs and unsafe pointers have no diffable shape.
		panic(fmt.Sprintf("view: unsupported kind %s", rv.Kind()))
	}
}

func seqFrom(rv reflect.Value) View {
	elems := make([]View, rv.Len())
	for i := range elems {
		elems[i] = fromReflect(rv.Index(i))
	}
	return View{kind: KindSequence, typeName: rv.Type().String(), elems: elems}
}

// mapFrom renders a map as an anonymous struct-like view. Keys are
// stringified and sorted so that the field order, and therefore the diff
// output, is deterministic.
func mapFrom(rv reflect.Value) View {
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for i, k := range keys {
		name := fmt.Sprint(k.Interface())
		names[i] = name
		byName[name] = rv.MapIndex(k)
	}
	sort.Strings(names)

	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Value: fromReflect(byName[name])}
	}
	return Struct("", fields...)
}

func structFrom(rv reflect.Value) View {
	t := rv.Type()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			// Unexported fields are invisible to the view.
			continue
		}
		fields = append(fields, Field{Name: sf.Name, Value: fromReflect(rv.Field(i))})
	}
	return Struct(t.Name(), fields...)
}
