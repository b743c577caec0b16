// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/structdiff/structdiff/view"
)

// align computes an element-wise alignment of two sequences. "Common" here
// means closeness above the acceptance threshold rather than strict
// equality, so an element that changed in place pairs as a modification
// instead of degrading into an insert/delete pair.
//
// The dynamic program maximizes total pairing score; backtracking prefers
// the diagonal on ties so reorder-free edits stay at their original index.
// Pairs further apart than the band are never considered, which keeps the
// scoring cost near-linear on large sequences.
func (b *builder) align(from, to []view.View) []SeqOp {
	n, m := len(from), len(to)
	if n == 0 && m == 0 {
		return nil
	}

	// Pair scores within the band. Negative means not pairable.
	score := func(i, j int) float64 {
		if i-j > b.band || j-i > b.band {
			return -1
		}
		s := closeness(from[i], to[j])
		if s < acceptThreshold {
			return -1
		}
		return s
	}

	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, m)
		for j := range scores[i] {
			scores[i][j] = score(i, j)
		}
	}

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := dp[i-1][j]
			if dp[i][j-1] > best {
				best = dp[i][j-1]
			}
			if s := scores[i-1][j-1]; s >= 0 && dp[i-1][j-1]+s >= best {
				best = dp[i-1][j-1] + s
			}
			dp[i][j] = best
		}
	}

	// Backtrack, diagonal first.
	rev := make([]SeqOp, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			if s := scores[i-1][j-1]; s >= 0 && dp[i][j] == dp[i-1][j-1]+s {
				rev = append(rev, b.pairOp(from[i-1], to[j-1]))
				i--
				j--
				continue
			}
		}
		if i > 0 && (j == 0 || dp[i][j] == dp[i-1][j]) {
			rev = append(rev, SeqOp{Kind: OpDeleted, From: from[i-1]})
			i--
			continue
		}
		rev = append(rev, SeqOp{Kind: OpInserted, To: to[j-1]})
		j--
	}

	ops := make([]SeqOp, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		ops = append(ops, rev[k])
	}

	return b.coalesce(ops)
}

// pairOp turns an accepted pairing into Unchanged or Modified based on the
// exact diff, not the heuristic score. The child diff is kept for Modified.
func (b *builder) pairOp(from, to view.View) SeqOp {
	d := b.compare(from, to)
	if d.IsEqual() {
		return SeqOp{Kind: OpUnchanged, From: from, To: to}
	}
	return SeqOp{Kind: OpModified, From: from, To: to, Diff: d}
}

// coalesce rewrites each balanced run of deletions and insertions into
// position-paired modifications, so a scalar that changed in place reports
// as Modified(old→new) even though its closeness was below the pairing
// threshold. Unbalanced runs are left as raw deletes and inserts, deletes
// first.
func (b *builder) coalesce(ops []SeqOp) []SeqOp {
	out := make([]SeqOp, 0, len(ops))
	i := 0
	for i < len(ops) {
		if ops[i].Kind != OpDeleted && ops[i].Kind != OpInserted {
			out = append(out, ops[i])
			i++
			continue
		}

		var dels, ins []SeqOp
		for i < len(ops) && (ops[i].Kind == OpDeleted || ops[i].Kind == OpInserted) {
			if ops[i].Kind == OpDeleted {
				dels = append(dels, ops[i])
			} else {
				ins = append(ins, ops[i])
			}
			i++
		}

		if len(dels) == len(ins) {
			for k := range dels {
				out = append(out, b.pairOp(dels[k].From, ins[k].To))
			}
			continue
		}

		out = append(out, dels...)
		out = append(out, ins...)
	}
	return out
}
