// File: token.go
// Title: summa Token Definitions
// Description: Defines the token kinds produced by the lexer and the Token
//              value carrying the exact matched text and its source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package lexer

import (
	"fmt"
	"strconv"
)

// Kind represents the class of a lexical token
type Kind int

const (
	// KindAdd is the single character '+'
	KindAdd Kind = iota

	// KindNumber is a run of ASCII digits
	KindNumber

	// KindWhitespace is a run of spaces, tabs and newlines
	KindWhitespace
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "Add"
	case KindNumber:
		return "Number"
	case KindWhitespace:
		return "Whitespace"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token with position information. Tokens are
// values and are never modified after the lexer emits them.
type Token struct {
	Kind   Kind   // Token class
	Text   string // Exact matched substring
	Offset int    // Byte offset of the first character
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based, in runes)
}

// String renders the token as Kind("text"), e.g. Number("12")
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, strconv.Quote(t.Text))
}

// End returns the byte offset just past the token
func (t Token) End() int {
	return t.Offset + len(t.Text)
}
