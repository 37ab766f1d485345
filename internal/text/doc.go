// Package text provides grapheme-cluster-aware cursor arithmetic for
// Texty node payloads, used by the text-mode navigation and editing
// commands (spec §4.4). It is grounded on keystorm's own dependency on
// github.com/rivo/uniseg for cursor math over multi-byte/combining text.
package text

import "github.com/rivo/uniseg"

// Len returns the number of grapheme clusters in s.
func Len(s string) int {
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n++
	}
	return n
}

// LeftOf returns the cluster-boundary offset immediately before offset,
// clamped to 0.
func LeftOf(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	boundaries := clusterBoundaries(s)
	for i := len(boundaries) - 1; i >= 0; i-- {
		if boundaries[i] < offset {
			return boundaries[i]
		}
	}
	return 0
}

// RightOf returns the cluster-boundary offset immediately after offset,
// clamped to Len(s).
func RightOf(s string, offset int) int {
	n := Len(s)
	if offset >= n {
		return n
	}
	boundaries := clusterBoundaries(s)
	for _, b := range boundaries {
		if b > offset {
			return b
		}
	}
	return n
}

// clusterBoundaries returns the grapheme-cluster offsets of s, including
// 0 and Len(s).
func clusterBoundaries(s string) []int {
	bounds := []int{0}
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n++
		bounds = append(bounds, n)
	}
	return bounds
}

// DeleteBackward removes the grapheme cluster immediately before offset,
// returning the new text and new offset.
func DeleteBackward(s string, offset int) (string, int) {
	if offset <= 0 {
		return s, 0
	}
	runes := []rune(s)
	left := runeIndexAt(s, LeftOf(s, offset))
	right := runeIndexAt(s, offset)
	newRunes := append(append([]rune(nil), runes[:left]...), runes[right:]...)
	return string(newRunes), left
}

// DeleteForward removes the grapheme cluster immediately after offset,
// returning the new text (the offset is unchanged).
func DeleteForward(s string, offset int) string {
	n := Len(s)
	if offset >= n {
		return s
	}
	runes := []rune(s)
	left := runeIndexAt(s, offset)
	right := runeIndexAt(s, RightOf(s, offset))
	return string(append(append([]rune(nil), runes[:left]...), runes[right:]...))
}

// InsertAt inserts s into text at the given grapheme-cluster offset,
// returning the new text and the offset immediately after the
// inserted content.
func InsertAt(text, s string, offset int) (string, int) {
	runes := []rune(text)
	at := runeIndexAt(text, offset)
	newRunes := append(append([]rune(nil), runes[:at]...), append([]rune(s), runes[at:]...)...)
	return string(newRunes), offset + Len(s)
}

// runeIndexAt converts a grapheme-cluster offset into a rune index.
func runeIndexAt(s string, clusterOffset int) int {
	if clusterOffset <= 0 {
		return 0
	}
	runes := 0
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if n == clusterOffset {
			return runes
		}
		n++
		runes += len([]rune(g.Str()))
	}
	return len([]rune(s))
}
