package translate

import "fmt"

// TokenType classifies a lexical unit of TINY source.
type TokenType int

const (
	UNKNOWN_TOKEN TokenType = iota // zero value: nothing scanned yet

	// Values
	ID_TOKEN     // variable name
	STRING_TOKEN // "..." literal, Text holds the unquoted content
	NUM_TOKEN    // numeric literal, integer or floating point

	// Assignment and arithmetic symbols
	ASSIGN_TOKEN // =
	PLUS_TOKEN   // +
	MINUS_TOKEN  // -
	MUL_TOKEN    // *
	DIV_TOKEN    // /
	MOD_TOKEN    // lowercase keyword "mod"

	// Comparison symbols
	GREATER_TOKEN       // >
	LESS_TOKEN          // <
	EQUAL_TOKEN         // ==
	GREATER_EQUAL_TOKEN // >=
	LESS_EQUAL_TOKEN    // <=

	// Keywords
	BEGIN_TOKEN
	END_TOKEN
	PRINT_TOKEN
	INPUT_TOKEN
	LET_TOKEN
	IF_TOKEN
	ELSEIF_TOKEN
	ELSE_TOKEN
	ENDIF_TOKEN
	WHILE_TOKEN
	REPEAT_TOKEN
	ENDWHILE_TOKEN

	// Structural markers
	NEWLINE_TOKEN // only produced by newline-sensitive advances
	EOF_TOKEN     // stream exhausted or unreadable
)

var tokenNames = [...]string{
	UNKNOWN_TOKEN:       "UNKNOWN",
	ID_TOKEN:            "ID",
	STRING_TOKEN:        "STRING",
	NUM_TOKEN:           "NUM",
	ASSIGN_TOKEN:        "ASSIGN",
	PLUS_TOKEN:          "PLUS",
	MINUS_TOKEN:         "MINUS",
	MUL_TOKEN:           "MUL",
	DIV_TOKEN:           "DIV",
	MOD_TOKEN:           "MOD",
	GREATER_TOKEN:       "GREATER",
	LESS_TOKEN:          "LESS",
	EQUAL_TOKEN:         "EQUAL",
	GREATER_EQUAL_TOKEN: "GREATER_EQUAL",
	LESS_EQUAL_TOKEN:    "LESS_EQUAL",
	BEGIN_TOKEN:         "BEGIN",
	END_TOKEN:           "END",
	PRINT_TOKEN:         "PRINT",
	INPUT_TOKEN:         "INPUT",
	LET_TOKEN:           "LET",
	IF_TOKEN:            "IF",
	ELSEIF_TOKEN:        "ELSEIF",
	ELSE_TOKEN:          "ELSE",
	ENDIF_TOKEN:         "ENDIF",
	WHILE_TOKEN:         "WHILE",
	REPEAT_TOKEN:        "REPEAT",
	ENDWHILE_TOKEN:      "ENDWHILE",
	NEWLINE_TOKEN:       "NEWLINE",
	EOF_TOKEN:           "EOF",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit. Text is the semantic text: the lexeme
// for identifiers, keywords, numbers and operator symbols, the content
// between the quotes for strings, and empty for NEWLINE and EOF.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%-13s %q", t.Type, t.Text)
}
