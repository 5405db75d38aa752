package translate

import "fmt"

// ErrorKind tags a translation failure as lexical or syntactic; the first
// error of either kind aborts the whole translation.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	SyntaxError
)

func (k ErrorKind) String() string {
	if k == LexicalError {
		return "Lexical Error"
	}
	return "Syntax Error"
}

type Error struct {
	Kind    ErrorKind
	Message string
}

func NewLexicalError(message string) *Error {
	return &Error{Kind: LexicalError, Message: message}
}

func NewLexicalErrorf(format string, a ...any) *Error {
	return NewLexicalError(fmt.Sprintf(format, a...))
}

func NewSyntaxError(message string) *Error {
	return &Error{Kind: SyntaxError, Message: message}
}

func NewSyntaxErrorf(format string, a ...any) *Error {
	return NewSyntaxError(fmt.Sprintf(format, a...))
}

// Error formats the labeled diagnostic line, e.g.
// "Syntax Error: Cannot find the end of the program".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
