// Package summa parses lines of text as sums of non-negative integers.
//
// The Engine runs the two stages in order: the lexer splits the input by
// maximal munch into Add, Number and Whitespace tokens, whitespace is
// filtered, and the parser applies E := T '+' E | T from the first token.
// A parse counts only when every token was consumed.
//
// Basic usage:
//
//	engine := summa.New(summa.Options{})
//	result, err := engine.Parse("1 + 2 + 3")
//	if err != nil {
//		// mdwerror.GetCode(err) is LEX_ERROR, NO_PARSE,
//		// INCOMPLETE_PARSE, NUMERIC_OVERFLOW or INPUT_TOO_LONG
//	}
//	fmt.Println(result.Expr) // Binary(T(1), Add, Binary(T(2), Add, Unary(T(3))))
package summa
