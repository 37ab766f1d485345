// Package lang implements the Language Registry (spec §4.1): it holds
// construct and sort grammars plus named notation sets, and answers
// acceptance queries ("may construct C appear in sort S?") in O(1) via a
// precomputed slot-sort × construct table, the same shape keystorm
// precomputes its keymap prefix tree and config/registry maps in.
package lang
