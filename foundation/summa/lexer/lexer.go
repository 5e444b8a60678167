// File: lexer.go
// Title: summa Lexical Analyzer (Tokenizer)
// Description: Converts an input line into an ordered slice of tokens using
//              maximal munch by incremental extension: a candidate lexeme is
//              grown one character at a time for as long as it still
//              classifies, and emitted as soon as the next character breaks it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package lexer

import (
	"fmt"
	"strings"
)

// LexError reports a fragment that no recognizer classifies
type LexError struct {
	Fragment string // The unclassifiable text
	Offset   int    // Byte offset of the fragment
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("unable to lex: %q at line %d, column %d (position %d)",
		e.Fragment, e.Line, e.Column, e.Offset)
}

// Lexer holds the state of one tokenization run
type Lexer struct {
	input  string
	tokens []Token

	partial strings.Builder
	last    Kind
	hasLast bool

	// position of the first character of partial
	start, startLine, startCol int
	// position of the next character
	line, col int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:     input,
		tokens:    make([]Token, 0, len(input)/2+1),
		startLine: 1,
		startCol:  1,
		line:      1,
		col:       1,
	}
}

// Tokenize runs the lexer over the whole input. Empty input yields an
// empty slice. A fragment whose first character is not classifiable
// aborts with a *LexError.
func (l *Lexer) Tokenize() ([]Token, error) {
	for offset, ch := range l.input {
		if kind, ok := l.extend(ch); ok {
			if l.partial.Len() == 0 {
				l.markStart(offset)
			}
			l.partial.WriteRune(ch)
			l.last, l.hasLast = kind, true
			l.advance(ch)
			continue
		}

		if err := l.emit(offset, ch); err != nil {
			return nil, err
		}

		l.markStart(offset)
		l.partial.WriteRune(ch)
		l.last, l.hasLast = Classify(string(ch))
		l.advance(ch)
	}

	if l.partial.Len() > 0 {
		if err := l.emit(len(l.input), 0); err != nil {
			return nil, err
		}
	}

	return l.tokens, nil
}

// extend classifies partial+ch without rebuilding the candidate, so a run
// of n characters costs O(n)
func (l *Lexer) extend(ch rune) (Kind, bool) {
	if l.partial.Len() == 0 {
		return Classify(string(ch))
	}
	if l.hasLast && extends(l.last, ch) {
		return l.last, true
	}
	return 0, false
}

// emit finishes the current partial as a token. next is the character that
// broke the candidate; it is reported when partial is empty, which only
// happens when the very first character does not classify.
func (l *Lexer) emit(offset int, next rune) error {
	if !l.hasLast {
		lexErr := &LexError{
			Fragment: l.partial.String(),
			Offset:   l.start,
			Line:     l.startLine,
			Column:   l.startCol,
		}
		if l.partial.Len() == 0 {
			lexErr.Fragment = string(next)
			lexErr.Offset = offset
			lexErr.Line = l.line
			lexErr.Column = l.col
		}
		return lexErr
	}

	l.tokens = append(l.tokens, Token{
		Kind:   l.last,
		Text:   l.partial.String(),
		Offset: l.start,
		Line:   l.startLine,
		Column: l.startCol,
	})
	l.partial.Reset()
	l.hasLast = false
	return nil
}

func (l *Lexer) markStart(offset int) {
	l.start = offset
	l.startLine = l.line
	l.startCol = l.col
}

func (l *Lexer) advance(ch rune) {
	if ch == '\n' {
		l.line++
		l.col = 1
		return
	}
	l.col++
}

// Lex tokenizes input. It is the package-level entry point used by the
// engine and the CLI.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Filter returns a new slice without tokens of the given kinds
func Filter(tokens []Token, drop ...Kind) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if !hasKind(drop, tok.Kind) {
			out = append(out, tok)
		}
	}
	return out
}

// WithoutWhitespace is Filter(tokens, KindWhitespace)
func WithoutWhitespace(tokens []Token) []Token {
	return Filter(tokens, KindWhitespace)
}

// Join concatenates the text of all tokens. For any successful Lex(s),
// Join(tokens) == s.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Count returns how many tokens have the given kind
func Count(tokens []Token, kind Kind) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == kind {
			n++
		}
	}
	return n
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
