// Package chars classifies single bytes with C-locale ctype semantics.
// TINY source is a byte stream, and the unicode package disagrees with
// ctype on bytes ('+' is unicode symbol, C punctuation), so the lexer's
// character classes are defined here.
package chars

// IsSpace reports whether c is C isspace whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsPrint reports whether c is printable ASCII: space, a letter, a digit,
// or C ispunct punctuation. Equivalent to 0x20 <= c <= 0x7E.
func IsPrint(c byte) bool {
	return c >= ' ' && c <= '~'
}
