package translate

import (
	"io"
	"iter"

	"github.com/tuanngocfun/tinylang/pkg/chars"
	"github.com/tuanngocfun/tinylang/pkg/pushback"
)

// keywords maps exact keyword spellings to their token types. Matching is
// case sensitive: BEGIn is an identifier, and the modulo operator is the
// lowercase word mod.
var keywords = map[string]TokenType{
	"BEGIN":    BEGIN_TOKEN,
	"END":      END_TOKEN,
	"PRINT":    PRINT_TOKEN,
	"INPUT":    INPUT_TOKEN,
	"LET":      LET_TOKEN,
	"IF":       IF_TOKEN,
	"ELSEIF":   ELSEIF_TOKEN,
	"ELSE":     ELSE_TOKEN,
	"ENDIF":    ENDIF_TOKEN,
	"WHILE":    WHILE_TOKEN,
	"REPEAT":   REPEAT_TOKEN,
	"ENDWHILE": ENDWHILE_TOKEN,
	"mod":      MOD_TOKEN,
}

// Lexer turns a TINY source stream into tokens, one Advance at a time.
//
// Each scan fills two buffers. The soft buffer holds only the significant
// characters of the token and becomes its Text. The hard buffer holds every
// byte consumed since the previous token ended, skipped whitespace included,
// so MoveBack can replay it onto the stream and rewind the source to where
// it stood before the last Advance.
type Lexer struct {
	in   *pushback.Reader
	cur  Token
	soft []byte
	hard []byte
}

// NewLexer returns a Lexer reading src. The Lexer borrows src; the caller
// keeps ownership and closes it if it needs closing.
func NewLexer(src io.Reader) *Lexer {
	return &Lexer{in: pushback.NewReader(src)}
}

// Advance scans the next token and makes it current. With newlineCheck set,
// a newline stops the whitespace skip and comes back as a NEWLINE token;
// otherwise newlines are skipped like any other whitespace. At stream end,
// or on any read failure, the token is EOF. A lexical error leaves the
// current token unchanged.
func (l *Lexer) Advance(newlineCheck bool) (Token, error) {
	tok, err := l.scan(newlineCheck)
	if err != nil {
		return Token{}, err
	}
	l.cur = tok
	return tok, nil
}

// Current returns the token produced by the last successful Advance.
func (l *Lexer) Current() Token {
	return l.cur
}

// MoveBack rewinds the stream to where it stood before the last Advance by
// pushing the hard buffer back in reverse. The current token is unaffected;
// the next Advance re-derives it from the restored characters. Lookahead is
// one token deep, so call MoveBack at most once per Advance.
func (l *Lexer) MoveBack() {
	for i := len(l.hard) - 1; i >= 0; i-- {
		l.in.UnreadByte(l.hard[i])
	}
}

// Tokens yields the newline-sensitive token stream until end of input. The
// first lexical error is yielded with a zero token and ends the sequence.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Advance(true)
			if err != nil {
				yield(Token{}, err)
				return
			}
			if tok.Type == EOF_TOKEN {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func (l *Lexer) scan(newlineCheck bool) (Token, error) {
	l.soft = l.soft[:0]
	l.hard = l.hard[:0]

	c, err := l.in.ReadByte()
	if err != nil {
		return Token{Type: EOF_TOKEN}, nil
	}
	for chars.IsSpace(c) && !(newlineCheck && c == '\n') {
		l.hard = append(l.hard, c)
		c, err = l.in.ReadByte()
		if err != nil {
			return Token{Type: EOF_TOKEN}, nil
		}
	}

	if newlineCheck && c == '\n' {
		l.hard = append(l.hard, c)
		return Token{Type: NEWLINE_TOKEN}, nil
	}

	switch {
	case chars.IsAlpha(c):
		return l.scanWord(c), nil
	case chars.IsDigit(c) || c == '.':
		return l.scanNumber(c)
	}

	l.take(c)
	switch c {
	case '>':
		return l.widenOnEqual(GREATER_TOKEN, GREATER_EQUAL_TOKEN), nil
	case '<':
		return l.widenOnEqual(LESS_TOKEN, LESS_EQUAL_TOKEN), nil
	case '=':
		return l.widenOnEqual(ASSIGN_TOKEN, EQUAL_TOKEN), nil
	case '+':
		return l.token(PLUS_TOKEN), nil
	case '-':
		return l.token(MINUS_TOKEN), nil
	case '*':
		return l.token(MUL_TOKEN), nil
	case '/':
		return l.token(DIV_TOKEN), nil
	case '"':
		return l.scanString()
	}
	return Token{}, NewLexicalError(string(l.soft))
}

// take records c as both significant text and consumed input.
func (l *Lexer) take(c byte) {
	l.soft = append(l.soft, c)
	l.hard = append(l.hard, c)
}

func (l *Lexer) token(tt TokenType) Token {
	return Token{Type: tt, Text: string(l.soft)}
}

// scanWord reads a maximal letter/digit run and classifies it against the
// keyword table. The byte that ends the run goes back to the stream.
func (l *Lexer) scanWord(c byte) Token {
	l.take(c)
	for {
		b, err := l.in.ReadByte()
		if err != nil {
			break
		}
		if !chars.IsAlnum(b) {
			l.in.UnreadByte(b)
			break
		}
		l.take(b)
	}

	text := string(l.soft)
	if tt, ok := keywords[text]; ok {
		return Token{Type: tt, Text: text}
	}
	return Token{Type: ID_TOKEN, Text: text}
}

// scanNumber reads digits '.' digits, where one side of the point may be
// empty but not both, then an optional [eE][+-]? digits exponent. The byte
// that ends the number goes back to the stream.
func (l *Lexer) scanNumber(c byte) (Token, error) {
	l.take(c)

	var b byte
	var err error
	if chars.IsDigit(c) {
		b, err = l.digits()
		if err == nil && b == '.' {
			l.take(b)
			b, err = l.digits()
		}
	} else {
		// A leading point needs at least one digit after it; a bare
		// "." is not a number.
		b, err = l.in.ReadByte()
		if err != nil || !chars.IsDigit(b) {
			return Token{}, NewLexicalError("no digits after decimal point")
		}
		l.take(b)
		b, err = l.digits()
	}

	if err == nil && (b == 'e' || b == 'E') {
		l.take(b)
		b, err = l.in.ReadByte()
		if err == nil && (b == '+' || b == '-') {
			l.take(b)
			b, err = l.in.ReadByte()
		}
		if err != nil || !chars.IsDigit(b) {
			return Token{}, NewLexicalError("no digits in exponent part")
		}
		l.take(b)
		b, err = l.digits()
	}

	if err == nil {
		l.in.UnreadByte(b)
	}
	return l.token(NUM_TOKEN), nil
}

// digits consumes a run of decimal digits and returns the byte that ended
// it, or an error at stream end.
func (l *Lexer) digits() (byte, error) {
	for {
		b, err := l.in.ReadByte()
		if err != nil {
			return 0, err
		}
		if !chars.IsDigit(b) {
			return b, nil
		}
		l.take(b)
	}
}

// widenOnEqual turns a one-character symbol into its two-character form when
// the next byte is '='; otherwise that byte goes back to the stream.
func (l *Lexer) widenOnEqual(single, double TokenType) Token {
	b, err := l.in.ReadByte()
	if err != nil {
		return l.token(single)
	}
	if b == '=' {
		l.take(b)
		return l.token(double)
	}
	l.in.UnreadByte(b)
	return l.token(single)
}

// scanString reads up to the closing quote. Only printable ASCII may appear
// inside a literal. Both quotes are consumed but stay out of the token text.
func (l *Lexer) scanString() (Token, error) {
	l.soft = l.soft[:len(l.soft)-1] // drop the opening quote from the text
	for {
		b, err := l.in.ReadByte()
		if err != nil {
			return Token{}, NewLexicalErrorf("unterminated string %s", l.soft)
		}
		if b == '"' {
			l.hard = append(l.hard, b)
			return l.token(STRING_TOKEN), nil
		}
		if !chars.IsPrint(b) {
			return Token{}, NewLexicalErrorf("unexpected character in string %s", l.soft)
		}
		l.take(b)
	}
}
