// File: classify.go
// Title: Lexeme Classification
// Description: Maps a candidate string to a token kind using three anchored
//              recognizers tested in a fixed priority order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial recognizer table

package lexer

import "regexp"

// recognizer pairs a token kind with the pattern a whole lexeme must match
type recognizer struct {
	kind    Kind
	pattern *regexp.Regexp
	repeats bool // lexemes of this kind may be longer than one character
}

// recognizers in priority order. The classes are disjoint, so the order
// only matters if a pattern is ever widened.
var recognizers = []recognizer{
	{kind: KindAdd, pattern: regexp.MustCompile(`^\+$`)},
	{kind: KindNumber, pattern: regexp.MustCompile(`^[0-9]+$`), repeats: true},
	{kind: KindWhitespace, pattern: regexp.MustCompile(`^[\t\n ]+$`), repeats: true},
}

// Classify returns the kind of the first recognizer that matches the whole
// candidate. ok is false when no recognizer matches, including for "".
func Classify(candidate string) (kind Kind, ok bool) {
	for _, r := range recognizers {
		if r.pattern.MatchString(candidate) {
			return r.kind, true
		}
	}
	return 0, false
}

// extends reports whether a lexeme classified as kind still classifies
// after ch is appended. Every pattern is a single character class, so this
// equals Classify(lexeme+string(ch)) while matching only ch.
func extends(kind Kind, ch rune) bool {
	for _, r := range recognizers {
		if r.kind == kind {
			return r.repeats && r.pattern.MatchString(string(ch))
		}
	}
	return false
}
