// File: doc.go
// Title: summa Lexer Package Documentation
// Description: Tokenizer for sums of non-negative integers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

/*
Package lexer converts a line of text into Add, Number and Whitespace tokens.

Lexemes are found by maximal munch through incremental extension: the current
candidate grows by one character while it still classifies, and is emitted
with its last known classification as soon as the next character breaks it.
Whitespace tokens are kept so that Join(Lex(s)) == s; the parser works on
WithoutWhitespace(tokens).
*/
package lexer
