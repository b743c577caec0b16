// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"
	"unicode"
)

// Detection and display of visually confusable strings. When two strings
// look identical but differ in invisible or confusable characters (NBSP
// vs regular space, zero-width joiners), the arrow line in a replace shows
// two seemingly equal values; these helpers identify and spell out the
// actual differences.

// visualNormalize converts a string to its visual canonical form: all
// space-like characters become a regular space, zero-width characters are
// removed, and line endings are normalized to \n.
func visualNormalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case isSpaceLike(c):
			sb.WriteRune(' ')
		case isZeroWidth(c):
			// dropped
		case c == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			sb.WriteRune('\n')
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// areVisuallyConfusable reports whether two strings look the same but
// differ.
func areVisuallyConfusable(a, b string) bool {
	return a != b && visualNormalize(a) == visualNormalize(b)
}

type charDiff struct {
	position int
	from     rune
	to       rune
}

// findConfusableDifferences returns the visual positions at which two
// confusable strings differ, or nil when the strings are not confusable.
func findConfusableDifferences(from, to string) []charDiff {
	if !areVisuallyConfusable(from, to) {
		return nil
	}

	fromRunes := []rune(from)
	toRunes := []rune(to)

	var diffs []charDiff
	fi, ti, visual := 0, 0, 0

	for fi < len(fromRunes) || ti < len(toRunes) {
		switch {
		case fi < len(fromRunes) && ti < len(toRunes):
			fc, tc := fromRunes[fi], toRunes[ti]
			fz, tz := isZeroWidth(fc), isZeroWidth(tc)
			switch {
			case !fz && !tz:
				if fc != tc {
					diffs = append(diffs, charDiff{position: visual, from: fc, to: tc})
				}
				fi++
				ti++
				visual++
			case fz && !tz:
				// from holds an invisible extra
				diffs = append(diffs, charDiff{position: visual, from: fc, to: 0})
				fi++
			case !fz && tz:
				diffs = append(diffs, charDiff{position: visual, from: 0, to: tc})
				ti++
			default:
				if fc != tc {
					diffs = append(diffs, charDiff{position: visual, from: fc, to: tc})
				}
				fi++
				ti++
			}
		case fi < len(fromRunes):
			diffs = append(diffs, charDiff{position: visual, from: fromRunes[fi], to: 0})
			fi++
		default:
			diffs = append(diffs, charDiff{position: visual, from: 0, to: toRunes[ti]})
			ti++
		}
	}

	return diffs
}

// confusableDiff renders the explanation block appended to a string
// replace, or "" when the strings are not visually confusable.
func (r *renderer) confusableDiff(from, to string) string {
	diffs := findConfusableDifferences(from, to)
	if len(diffs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.st.muted(fmt.Sprintf("(strings appear identical but differ in %d %s)",
		len(diffs), plural(len(diffs), "position", "positions"))))

	for _, d := range diffs {
		sb.WriteString("\n")
		switch {
		case d.from == 0:
			sb.WriteString(fmt.Sprintf("  [%d]: (missing) → %s", d.position, r.st.inserted(formatChar(d.to))))
		case d.to == 0:
			sb.WriteString(fmt.Sprintf("  [%d]: %s → (missing)", d.position, r.st.deleted(formatChar(d.from))))
		default:
			sb.WriteString(fmt.Sprintf("  [%d]: %s → %s", d.position,
				r.st.deleted(formatChar(d.from)), r.st.inserted(formatChar(d.to))))
		}
	}
	return sb.String()
}

func isSpaceLike(c rune) bool {
	switch c {
	case ' ', // NO-BREAK SPACE
		' ', // EN QUAD
		' ', // EM QUAD
		' ', // EN SPACE
		' ', // EM SPACE
		' ', // THREE-PER-EM SPACE
		' ', // FOUR-PER-EM SPACE
		' ', // SIX-PER-EM SPACE
		' ', // FIGURE SPACE
		' ', // PUNCTUATION SPACE
		' ', // THIN SPACE
		' ', // HAIR SPACE
		' ', // NARROW NO-BREAK SPACE
		' ', // MEDIUM MATHEMATICAL SPACE
		'　': // IDEOGRAPHIC SPACE
		return true
	}
	return false
}

func isZeroWidth(c rune) bool {
	switch c {
	case '​', // ZERO WIDTH SPACE
		'‌', // ZERO WIDTH NON-JOINER
		'‍', // ZERO WIDTH JOINER
		'⁠', // WORD JOINER
		'\uFEFF': // BOM / ZERO WIDTH NO-BREAK SPACE
		return true
	}
	return false
}

var specialCharNames = map[rune]string{
	' ':      "SPACE",
	'\t':     "TAB",
	'\n':     "LINE FEED",
	'\r':     "CARRIAGE RETURN",
	' ': "NO-BREAK SPACE",
	' ': "EN QUAD",
	' ': "EM QUAD",
	' ': "EN SPACE",
	' ': "EM SPACE",
	' ': "THREE-PER-EM SPACE",
	' ': "FOUR-PER-EM SPACE",
	' ': "SIX-PER-EM SPACE",
	' ': "FIGURE SPACE",
	' ': "PUNCTUATION SPACE",
	' ': "THIN SPACE",
	' ': "HAIR SPACE",
	'​': "ZERO WIDTH SPACE",
	'‌': "ZERO WIDTH NON-JOINER",
	'‍': "ZERO WIDTH JOINER",
	' ': "NARROW NO-BREAK SPACE",
	' ': "MEDIUM MATHEMATICAL SPACE",
	'⁠': "WORD JOINER",
	'　': "IDEOGRAPHIC SPACE",
	'\uFEFF': "BYTE ORDER MARK",
}

// formatChar shows a character with its escape sequence and name if
// special.
func formatChar(c rune) string {
	if name, ok := specialCharNames[c]; ok {
		return fmt.Sprintf("'\\u{%04X}' (%s)", c, name)
	}
	if unicode.IsControl(c) || !unicode.IsGraphic(c) {
		return fmt.Sprintf("'\\u{%04X}'", c)
	}
	return fmt.Sprintf("'%c'", c)
}
