// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a View.
func ParseYAML(data []byte) (View, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return View{}, fmt.Errorf("invalid YAML document: %w", err)
	}
	return FromYAML(&root), nil
}

// FromYAML converts a yaml.v3 node tree into a View. Mappings become
// anonymous struct-like views in document order, sequences become
// sequences, and scalars map by resolved tag. YAML aliases surface as
// indirections, which the diff engine unwraps transparently, so anchored
// and inline copies of the same value compare equal.
func FromYAML(n *yaml.Node) View {
	if n == nil || n.Kind == 0 {
		// Empty documents decode to a zero node.
		return Nil()
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nil()
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		return Indirect(FromYAML(n.Alias))
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		elems := make([]View, len(n.Content))
		for i, c := range n.Content {
			elems[i] = FromYAML(c)
		}
		return Seq(elems...)
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields = append(fields, Field{
				Name:  n.Content[i].Value,
				Value: FromYAML(n.Content[i+1]),
			})
		}
		return Struct("", fields...)
	default:
		panic(fmt.Sprintf("view: unhandled YAML node kind %d", n.Kind))
	}
}

func yamlScalar(n *yaml.Node) View {
	switch n.Tag {
	case "!!null":
		return Nil()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return String(n.Value)
		}
		return Bool(b)
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return Int(i)
		}
		if u, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			return Uint(u)
		}
		return String(n.Value)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return String(n.Value)
		}
		return Float(f)
	case "!!binary":
		raw, err := base64.StdEncoding.DecodeString(n.Value)
		if err != nil {
			return String(n.Value)
		}
		return Bytes(raw)
	default:
		return String(n.Value)
	}
}
