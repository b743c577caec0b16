// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/structdiff/structdiff/view"
)

// loadInput reads one diff operand and parses it into a shape view. The
// special path "-" reads stdin. Format "auto" sniffs the file extension,
// falling back to content sniffing for stdin.
func loadInput(path string, format string) (view.View, error) {
	log.Debugf(">> loadInput() path=%s format=%s", path, format)

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		if info, statErr := os.Stat(path); statErr != nil {
			return view.View{}, fmt.Errorf("input does not exist: %s", path)
		} else if info.IsDir() {
			return view.View{}, fmt.Errorf("input cannot be a directory: %s", path)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return view.View{}, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	if format == "" || format == "auto" {
		format = sniffFormat(path, data)
	}

	switch format {
	case "json":
		return view.ParseJSON(data)
	case "yaml":
		return view.ParseYAML(data)
	case "hcl":
		return parseHCL(path, data)
	default:
		return view.View{}, fmt.Errorf("unsupported input format: %s", format)
	}
}

// sniffFormat guesses the input format from the file extension, then from
// the leading content byte. YAML is the fallback since JSON is a subset.
func sniffFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".hcl", ".tf", ".tfvars":
		return "hcl"
	}

	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return "json"
	}
	return "yaml"
}

// parseHCL evaluates a flat attribute document (the tfvars shape) into a
// view. Attribute expressions are evaluated without a context, so only
// literal values and operations on them are accepted.
func parseHCL(path string, data []byte) (view.View, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return view.View{}, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return view.View{}, fmt.Errorf("failed to read attributes of %s: %s", path, diags.Error())
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]view.Field, 0, len(names))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return view.View{}, fmt.Errorf("failed to evaluate %s in %s: %s", name, path, diags.Error())
		}
		fields = append(fields, view.F(name, view.FromCty(val)))
	}

	return view.Struct("", fields...), nil
}

// subView resolves a dotted path ("spec.containers.0.image") inside a view.
// Options and indirections are traversed transparently so a pointer-valued
// field doesn't need explicit unwrapping in the path.
func subView(v view.View, path string) (view.View, error) {
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return view.View{}, fmt.Errorf("empty segment in path %q", path)
		}

		for v.Kind() == view.KindOption || v.Kind() == view.KindIndirection {
			inner, ok := v.Inner()
			if !ok {
				return view.View{}, fmt.Errorf("path %q descends into an absent value at %q", path, seg)
			}
			v = inner
		}

		switch v.Kind() {
		case view.KindStruct, view.KindEnum:
			next, ok := v.FieldByName(seg)
			if !ok {
				return view.View{}, fmt.Errorf("no field %q in path %q", seg, path)
			}
			v = next
		case view.KindSequence:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return view.View{}, fmt.Errorf("sequence index expected at %q in path %q", seg, path)
			}
			elems := v.Elems()
			if idx < 0 || idx >= len(elems) {
				return view.View{}, fmt.Errorf("index %d out of range at %q in path %q", idx, seg, path)
			}
			v = elems[idx]
		default:
			return view.View{}, fmt.Errorf("cannot descend into %s at %q in path %q", v.Kind(), seg, path)
		}
	}

	return v, nil
}
