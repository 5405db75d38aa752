package translate

import (
	"bytes"
	"fmt"
	"io"
)

// Translate runs one complete translation of the TINY program in src and
// writes the generated C++ to out. Generated text is buffered and reaches
// out only after the whole program has been accepted, so a failed run
// writes nothing. Each call is an independent translation with its own
// lexer and identifier registry.
func Translate(src io.Reader, out io.Writer) error {
	t := &translator{lex: NewLexer(src), ids: make(identSet)}
	if err := t.program(); err != nil {
		return err
	}
	_, err := out.Write(t.out.Bytes())
	return err
}

// translator holds the state of a single translation. Parsing and emission
// are fused: every grammar rule appends its output as soon as it accepts
// its input, and the first error abandons both.
type translator struct {
	lex *Lexer
	ids identSet
	out bytes.Buffer
}

func (t *translator) emit(format string, a ...any) {
	fmt.Fprintf(&t.out, format, a...)
}

// program is the start rule: BEGIN, a newline, statements, END, end of
// input. It wraps the statement output in a fixed C++ main scaffold.
func (t *translator) program() error {
	t.emit("#include <iostream>\n\nusing namespace std;\n\n")

	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}
	if tok.Type != BEGIN_TOKEN {
		return NewSyntaxError("Cannot find the beginning of the program")
	}

	t.emit("int main(int argc, char *argv[])\n{\n")

	if err := t.expectNewline("BEGIN"); err != nil {
		return err
	}
	tok, err = t.lex.Advance(false)
	if err != nil {
		return err
	}

	// An empty program jumps straight from BEGIN to END.
	var lastText string
	if tok.Type != END_TOKEN {
		if err := t.statements("\t"); err != nil {
			return err
		}
		lastText = t.lex.Current().Text
		tok, err = t.lex.Advance(false)
		if err != nil {
			return err
		}
	}

	// The source may stop exactly at END with no newline after it. The
	// re-scan then reports end of input while the last consumed text is
	// the END keyword itself; that still counts as finding END.
	if tok.Type != END_TOKEN && !(tok.Type == EOF_TOKEN && lastText == "END") {
		return NewSyntaxError("Cannot find the end of the program")
	}

	t.emit("\treturn 0;\n}\n")

	tok, err = t.lex.Advance(false)
	if err != nil {
		return err
	}
	if tok.Type != EOF_TOKEN {
		return NewSyntaxError("Unexpected tokens after END")
	}
	return nil
}

// statements translates a run of statements at the given indentation. It
// stops at the first token that cannot start a statement and moves the
// stream back so the caller re-reads that token. On entry the current
// token is the first candidate; every statement must end with a newline.
func (t *translator) statements(prefix string) error {
	for {
		var err error
		switch t.lex.Current().Type {
		case PRINT_TOKEN:
			if err = t.printStatement(prefix); err == nil {
				err = t.endStatementLine("print_statement")
			}
		case INPUT_TOKEN:
			if err = t.inputStatement(prefix); err == nil {
				err = t.endStatementLine("input_statement")
			}
		case LET_TOKEN:
			if err = t.letStatement(prefix); err == nil {
				err = t.endStatementLine("let_statement")
			}
		case IF_TOKEN:
			if err = t.ifStatement(prefix); err == nil {
				err = t.endStatementLine("if_statement")
			}
		case WHILE_TOKEN:
			if err = t.whileStatement(prefix); err == nil {
				err = t.endStatementLine("while_statement")
			}
		default:
			t.lex.MoveBack()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// endStatementLine consumes the mandatory newline after a statement and
// advances to the token that follows it.
func (t *translator) endStatementLine(name string) error {
	if err := t.expectNewline(name); err != nil {
		return err
	}
	_, err := t.lex.Advance(false)
	return err
}

// expectNewline advances newline-sensitively and requires a NEWLINE token.
func (t *translator) expectNewline(name string) error {
	tok, err := t.lex.Advance(true)
	if err != nil {
		return err
	}
	if tok.Type != NEWLINE_TOKEN {
		return NewSyntaxErrorf("%s must be followed by a newline", name)
	}
	return nil
}

// PRINT takes a string literal or an already declared identifier and
// becomes a cout line.
func (t *translator) printStatement(prefix string) error {
	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}

	t.emit("%scout << ", prefix)

	switch tok.Type {
	case STRING_TOKEN:
		t.emit("\"%s\";\n", tok.Text)
	case ID_TOKEN:
		if !t.ids.declared(tok.Text) {
			return NewSyntaxError("Attempt to print an undeclared identifier")
		}
		t.emit("%s;\n", tok.Text)
	default:
		return NewSyntaxError("Unexpected tokens after PRINT")
	}
	return nil
}

// INPUT declares its identifier on first sight, then reads into it with
// cin. A repeated INPUT of the same name emits only the read.
func (t *translator) inputStatement(prefix string) error {
	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}
	if tok.Type != ID_TOKEN {
		return NewSyntaxError("Unexpected tokens after INPUT")
	}

	if !t.ids.declared(tok.Text) {
		t.emit("%sint %s;\n", prefix, tok.Text)
		t.ids.declare(tok.Text)
	}
	t.emit("%scin >> %s;\n", prefix, tok.Text)
	return nil
}

// LET registers the token after the keyword before the assignment itself
// is validated, so a LET may declare its own target and read it back on
// the right-hand side: LET x = x + 1 works with x previously unseen.
func (t *translator) letStatement(prefix string) error {
	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}

	t.emit("%s", prefix)
	if !t.ids.declared(tok.Text) {
		t.emit("int ")
		t.ids.declare(tok.Text)
	}
	return t.assignment()
}

// assignment is identifier '=' expression, ending the emitted statement
// with a semicolon. The target must already be declared; letStatement
// guarantees that on its path.
func (t *translator) assignment() error {
	tok := t.lex.Current()
	if tok.Type != ID_TOKEN {
		return NewSyntaxError("Target of assignment must be an identifier")
	}
	if !t.ids.declared(tok.Text) {
		return NewSyntaxError("Attempt to assign to an undeclared identifier")
	}

	t.emit("%s", tok.Text)

	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}
	if tok.Type != ASSIGN_TOKEN {
		return NewSyntaxError("Unexpected token in assignment")
	}

	t.emit(" = ")

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	if err := t.expression(); err != nil {
		return err
	}
	t.emit(";\n")
	return nil
}

// ifStatement translates IF condition, a body, any number of ELSEIF
// branches, an optional ELSE branch, and the closing ENDIF into the
// matching if / else if / else chain.
func (t *translator) ifStatement(prefix string) error {
	t.emit("%sif(", prefix)

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	if err := t.condition(); err != nil {
		return err
	}
	if err := t.expectNewline("if_statement's condition"); err != nil {
		return err
	}

	t.emit(")\n%s{\n", prefix)

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	if err := t.statements(prefix + "\t"); err != nil {
		return err
	}

	t.emit("%s}\n", prefix)

	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}

	for tok.Type == ELSEIF_TOKEN {
		t.emit("%selse if(", prefix)

		if _, err := t.lex.Advance(false); err != nil {
			return err
		}
		if err := t.condition(); err != nil {
			return err
		}
		if err := t.expectNewline("elseif_statement's condition"); err != nil {
			return err
		}

		t.emit(")\n%s{\n", prefix)

		if _, err := t.lex.Advance(false); err != nil {
			return err
		}
		if err := t.statements(prefix + "\t"); err != nil {
			return err
		}

		t.emit("%s}\n", prefix)

		if tok, err = t.lex.Advance(false); err != nil {
			return err
		}
	}

	if tok.Type == ELSE_TOKEN {
		if err := t.expectNewline("ELSE"); err != nil {
			return err
		}

		t.emit("%selse\n%s{\n", prefix, prefix)

		if _, err := t.lex.Advance(false); err != nil {
			return err
		}
		if err := t.statements(prefix + "\t"); err != nil {
			return err
		}

		t.emit("%s}\n", prefix)

		if tok, err = t.lex.Advance(false); err != nil {
			return err
		}
	}

	if tok.Type != ENDIF_TOKEN {
		return NewSyntaxError("Cannot find the end of if_statement")
	}
	return nil
}

// whileStatement translates WHILE condition REPEAT, a body, and ENDWHILE
// into a while loop. The REPEAT check advances newline-sensitively, which
// forces the condition and the REPEAT keyword onto one line.
func (t *translator) whileStatement(prefix string) error {
	t.emit("%swhile(", prefix)

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	if err := t.condition(); err != nil {
		return err
	}

	t.emit(")\n%s{\n", prefix)

	tok, err := t.lex.Advance(true)
	if err != nil {
		return err
	}
	if tok.Type != REPEAT_TOKEN {
		return NewSyntaxError("a WHILE literal and a REPEAT literal must be on the same line")
	}
	if err := t.expectNewline("REPEAT"); err != nil {
		return err
	}

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	if err := t.statements(prefix + "\t"); err != nil {
		return err
	}

	t.emit("%s}\n", prefix)

	tok, err = t.lex.Advance(false)
	if err != nil {
		return err
	}
	if tok.Type != ENDWHILE_TOKEN {
		return NewSyntaxError("Cannot find the end of while_statement")
	}
	return nil
}

// condition is two expressions joined by exactly one comparison operator.
func (t *translator) condition() error {
	if err := t.expression(); err != nil {
		return err
	}

	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}

	var cmp string
	switch tok.Type {
	case GREATER_TOKEN:
		cmp = " > "
	case LESS_TOKEN:
		cmp = " < "
	case GREATER_EQUAL_TOKEN:
		cmp = " >= "
	case LESS_EQUAL_TOKEN:
		cmp = " <= "
	case EQUAL_TOKEN:
		cmp = " == "
	default:
		return NewSyntaxError("Unexpected tokens in condition")
	}
	t.emit(cmp)

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	return t.expression()
}

// expression emits one operand, optionally followed by a single arithmetic
// operator and a second operand. There are no precedence chains. When no
// operator follows, the over-read token goes back to the stream.
func (t *translator) expression() error {
	if err := t.exp(); err != nil {
		return err
	}

	tok, err := t.lex.Advance(false)
	if err != nil {
		return err
	}

	var op string
	switch tok.Type {
	case PLUS_TOKEN:
		op = " + "
	case MINUS_TOKEN:
		op = " - "
	case MUL_TOKEN:
		op = " * "
	case DIV_TOKEN:
		op = " / "
	case MOD_TOKEN:
		op = " % "
	default:
		t.lex.MoveBack()
		return nil
	}
	t.emit(op)

	if _, err := t.lex.Advance(false); err != nil {
		return err
	}
	return t.exp()
}

// exp is a single operand: a declared identifier or a number.
func (t *translator) exp() error {
	tok := t.lex.Current()
	if tok.Type == ID_TOKEN {
		if !t.ids.declared(tok.Text) {
			return NewSyntaxError("Attempt to handle an undeclared identifier in exp")
		}
		t.emit("%s", tok.Text)
		return nil
	}
	return t.number()
}

// number accepts NUM with an optional leading sign.
func (t *translator) number() error {
	tok := t.lex.Current()
	switch tok.Type {
	case PLUS_TOKEN, MINUS_TOKEN:
		t.emit("%s", tok.Text)
		next, err := t.lex.Advance(false)
		if err != nil {
			return err
		}
		if next.Type != NUM_TOKEN {
			return NewSyntaxError("Unexpected tokens in number")
		}
		t.emit("%s", next.Text)
		return nil
	case NUM_TOKEN:
		t.emit("%s", tok.Text)
		return nil
	default:
		return NewSyntaxError("Unexpected tokens in number")
	}
}
