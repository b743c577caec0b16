// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"structdiff", "fd"},
			expected: []string{"structdiff", "fd"},
		},
		{
			name:     "no duplicates",
			args:     []string{"structdiff", "fd", "--format", "json", "--stats"},
			expected: []string{"structdiff", "fd", "--format", "json", "--stats"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"structdiff", "fd", "--format", "json", "--stats", "--format", "yaml"},
			expected: []string{"structdiff", "fd", "--stats", "--format", "yaml"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"structdiff", "fd", "--stats", "--color", "--stats"},
			expected: []string{"structdiff", "fd", "--color", "--stats"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"structdiff", "fd", "--format=json", "--stats", "--format=yaml"},
			expected: []string{"structdiff", "fd", "--stats", "--format=yaml"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"structdiff", "fd", "--format=json", "--format", "yaml"},
			expected: []string{"structdiff", "fd", "--format", "yaml"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"structdiff", "fd", "--path", "server.host", "--band", "8", "--path", "server.port", "--band", "16"},
			expected: []string{"structdiff", "fd", "--path", "server.port", "--band", "16"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"structdiff", "fd", "from.json", "--format", "json", "--format", "yaml"},
			expected: []string{"structdiff", "fd", "from.json", "--format", "yaml"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"structdiff", "fd", "-f", "json", "-f", "yaml"},
			expected: []string{"structdiff", "fd", "-f", "yaml"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"structdiff", "fd", "--color", "--quiet"},
			expected: []string{"structdiff", "fd", "--color", "--quiet"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"structdiff", "fd", "--path", "a", "--path", "b", "--path", "c"},
			expected: []string{"structdiff", "fd", "--path", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"structdiff", "fd", "--color", "--quiet", "--stats"}
	result := deduplicateFlags(args)
	expected := []string{"structdiff", "fd", "--color", "--quiet", "--stats"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command appends help",
			args:     []string{"structdiff"},
			expected: []string{"structdiff", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"structdiff", "fd"},
			expected: []string{"structdiff", "fd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"structdiff", "fd", "--stats"},
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"structdiff", "fd", "--stats"},
		},
		{
			name:      "single entry injected",
			args:      []string{"structdiff", "fd", "--stats"},
			insertIdx: 2,
			configVal: []string{"--color"},
			expected:  []string{"structdiff", "fd", "--color", "--stats"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"structdiff", "fd", "--stats"},
			insertIdx: 2,
			configVal: []string{"--format yaml"},
			expected:  []string{"structdiff", "fd", "--format", "yaml", "--stats"},
		},
		{
			name:      "multiple entries",
			args:      []string{"structdiff", "fd"},
			insertIdx: 2,
			configVal: []string{"--color", "--format json"},
			expected:  []string{"structdiff", "fd", "--color", "--format", "json"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"structdiff", "fd", "from.json", "--stats"},
			insertIdx: 3,
			configVal: []string{"--color"},
			expected:  []string{"structdiff", "fd", "from.json", "--color", "--stats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSetTestable(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// injectConfigSetTestable is a test-friendly version that accepts config values
// directly instead of reading from global config.
func injectConfigSetTestable(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, splitFields(entry)...)
	}

	return append(args[:insertIdx], append(expanded, args[insertIdx:]...)...)
}

// splitFields splits a string by whitespace, matching strings.Fields behavior.
func splitFields(s string) []string {
	var result []string
	start := -1

	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
		} else {
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		result = append(result, s[start:])
	}

	return result
}
