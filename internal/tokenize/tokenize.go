// Package tokenize turns raw text into stemmed word tokens, and query
// lines into canonical, deduplicated stem sets. It wraps a real Snowball
// English stemmer; every other rule (lowercasing, stripping combining
// marks, splitting on non-letters) lives here so callers never touch a
// raw string directly.
package tokenize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Parse splits line into lowercase word tokens: combining marks are
// stripped (so "café" parses as "cafe"), then the line is split on runs
// of anything that is not a letter. Every returned token is non-empty.
func Parse(line string) []string {
	cleaned, _, err := transform.String(stripMarks, line)
	if err != nil {
		cleaned = line
	}
	cleaned = strings.ToLower(cleaned)

	var tokens []string
	var current strings.Builder
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// Stem reduces word to its English Snowball stem. An input that stems to
// the empty string (rare, but possible for very short or non-alphabetic
// residue) returns "".
func Stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// UniqueStems parses and stems every token of line, then returns the
// distinct stems sorted ascending — the canonical stem set used both as a
// search query and as the key under which its results are stored.
func UniqueStems(line string) []string {
	seen := make(map[string]struct{})
	for _, tok := range Parse(line) {
		stem := Stem(tok)
		if stem == "" {
			continue
		}
		seen[stem] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for stem := range seen {
		out = append(out, stem)
	}
	sort.Strings(out)
	return out
}

// CanonicalKey joins a (typically already-sorted) stem set with single
// spaces to form the map key search results are stored and looked up
// under.
func CanonicalKey(stems []string) string {
	return strings.Join(stems, " ")
}
