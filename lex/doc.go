// Package lex provides the low-level lexical helpers shared by the header
// parsers: delimiter splitting that respects quoted-strings and comments
// (RFC 9110 Section 5.6.4 and 5.6.5), whitespace and emptiness normalization
// of parsed values, and quoted-string unquoting.
//
// Splitting never unescapes: tokens are returned exactly as they appear in
// the input, so callers can decide when to call [Unquote].
//
//	toks, err := lex.SplitComments(' ', "Mozilla/5.0 (compatible; Foo)")
//	// toks == []string{"Mozilla/5.0", "(compatible; Foo)"}
package lex
