// Package token defines the lexical token kinds produced by the kismet
// lexer and consumed by the parser.
package token

import "fmt"

// Kind is the tag of a token's syntactic class.
type Kind int

const (
	// Illegal marks an unrecognized byte or a malformed literal (bad
	// escape, unterminated string, out-of-range number). The parser turns
	// an Illegal token into a lex error attributed to its span.
	Illegal Kind = iota
	EOF

	// Structural punctuation.
	Comma     // ,
	Colon     // :
	Assign    // =
	Walrus    // :=
	FatArrow  // =>
	Ellipsis  // ...
	Dot       // .
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Delimiter // ';' or a newline

	// Keywords (case-insensitive at the lexer, case-preserved nowhere
	// since keywords are never identifier text).
	KwFor
	KwIn
	KwIf
	KwElse
	KwMatch
	KwWhile
	KwLoop
	KwAnd
	KwOr
	KwNot

	// Comparison.
	Eq // ==
	Ne // !=
	Lt // <
	Le // <=
	Gt // >
	Ge // >=

	// Range.
	DotDot   // ..
	DotDotEq // ..=

	// Arithmetic.
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	SlashPercent // /%
	Percent      // %
	Caret        // ^

	// Die operator: the letter 'd'/'D' standing alone.
	Die

	Ident
	String
	Number
)

var names = map[Kind]string{
	Illegal:      "ILLEGAL",
	EOF:          "EOF",
	Comma:        "','",
	Colon:        "':'",
	Assign:       "'='",
	Walrus:       "':='",
	FatArrow:     "'=>'",
	Ellipsis:     "'...'",
	Dot:          "'.'",
	LParen:       "'('",
	RParen:       "')'",
	LBracket:     "'['",
	RBracket:     "']'",
	LBrace:       "'{'",
	RBrace:       "'}'",
	Delimiter:    "delimiter",
	KwFor:        "'for'",
	KwIn:         "'in'",
	KwIf:         "'if'",
	KwElse:       "'else'",
	KwMatch:      "'match'",
	KwWhile:      "'while'",
	KwLoop:       "'loop'",
	KwAnd:        "'and'",
	KwOr:         "'or'",
	KwNot:        "'not'",
	Eq:           "'=='",
	Ne:           "'!='",
	Lt:           "'<'",
	Le:           "'<='",
	Gt:           "'>'",
	Ge:           "'>='",
	DotDot:       "'..'",
	DotDotEq:     "'..='",
	Plus:         "'+'",
	Minus:        "'-'",
	Star:         "'*'",
	Slash:        "'/'",
	SlashPercent: "'/%'",
	Percent:      "'%'",
	Caret:        "'^'",
	Die:          "'d'",
	Ident:        "identifier",
	String:       "string",
	Number:       "number",
}

// Human returns a human-readable name for k, suitable for error messages.
func (k Kind) Human() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.Human()
}

// keywords maps the upper-cased spelling of each keyword to its Kind.
// Lookup must upper-case the candidate lexeme first, since keywords are
// case-insensitive while identifiers are case-preserving.
var keywords = map[string]Kind{
	"FOR":   KwFor,
	"IN":    KwIn,
	"IF":    KwIf,
	"ELSE":  KwElse,
	"MATCH": KwMatch,
	"WHILE": KwWhile,
	"LOOP":  KwLoop,
	"AND":   KwAnd,
	"OR":    KwOr,
	"NOT":   KwNot,
}

// LookupKeyword returns the Kind for upper if it is the upper-cased spelling
// of a keyword, and ok=false otherwise. The match is exact: callers fold the
// lexeme to upper case first.
func LookupKeyword(upper string) (Kind, bool) {
	k, ok := keywords[upper]
	return k, ok
}

// NumberTag distinguishes the three shapes a Number token can take.
type NumberTag int

const (
	NumInteger NumberTag = iota
	NumFloat
	NumIndex
)

// Number is the decoded payload of a Number token. Exactly one of Int,
// Float, Index is meaningful, selected by Tag.
type Number struct {
	Tag   NumberTag
	Int   int32
	Float float32
	Index uint
}

// Token is a single lexeme together with its decoded payload. Span
// attribution is carried separately by span.Node[Token] so that Token
// itself stays a plain value type.
type Token struct {
	Kind Kind
	// Lexeme is always the raw source slice the token was cut from, so
	// that source[span] == Lexeme holds for every token.
	Lexeme string
	// Decoded holds the escape-decoded value when Kind == String; the
	// raw quoted text (including quotes) is still available via Lexeme.
	Decoded string
	// Num is populated when Kind == Number.
	Num Number
	// Err carries the lex-error detail when Kind == Illegal.
	Err error
}

func (t Token) String() string {
	if t.Kind == Number {
		switch t.Num.Tag {
		case NumInteger:
			return fmt.Sprintf("Integer(%d)", t.Num.Int)
		case NumFloat:
			return fmt.Sprintf("Float(%g)", t.Num.Float)
		default:
			return fmt.Sprintf("Index(%d)", t.Num.Index)
		}
	}
	if t.Lexeme != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}
	return t.Kind.String()
}
