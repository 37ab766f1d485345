// Package search implements document search (spec §4.6): substring,
// regex, structural equality, and construct-type targets, walked
// depth-first from the cursor. Its query-option shape follows
// keystorm's internal/project/search
// package, adapted from file/content search to node/text search.
// Case-insensitive substring matching is Unicode-aware via
// golang.org/x/text/cases and golang.org/x/text/unicode/norm rather
// than a byte-wise strings.ToLower, since grapheme-aware text already
// flows through internal/text's uniseg dependency elsewhere in this
// module.
package search
