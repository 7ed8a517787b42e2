package query

import "fmt"

type TokenKind int

const (
	TokenSelect TokenKind = iota
	TokenJobs
	TokenWhere
	TokenOrder
	TokenBy
	TokenAnd
	TokenOr
	TokenLike
	TokenAsc
	TokenDesc
	TokenIdent
	TokenString
	TokenNumber
	TokenEq
	TokenNeq
	TokenLt
	TokenLte
	TokenGt
	TokenGte
	TokenSemi
	TokenEOF
)

// Token is one lexeme of a query line. Text holds keywords and
// identifiers lowercased, string literals with quotes and escapes
// removed, and operators verbatim. Pos is the byte offset of the
// token's first character.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

var keywords = map[string]TokenKind{
	"select": TokenSelect,
	"jobs":   TokenJobs,
	"where":  TokenWhere,
	"order":  TokenOrder,
	"by":     TokenBy,
	"and":    TokenAnd,
	"or":     TokenOr,
	"like":   TokenLike,
	"asc":    TokenAsc,
	"desc":   TokenDesc,
}

// describe renders a token for error messages.
func (t Token) describe() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case TokenString:
		return fmt.Sprintf("string %q", t.Text)
	case TokenNumber:
		return fmt.Sprintf("number %s", t.Text)
	case TokenEOF:
		return "end of input"
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}
