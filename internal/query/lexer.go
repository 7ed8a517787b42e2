package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lex splits one query line into tokens, ending with a TokenEOF.
// Keywords and identifiers are case-insensitive; text inside double
// quotes is kept exactly as written (with \" and \\ unescaped).
func Lex(input string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == ';':
			toks = append(toks, Token{TokenSemi, ";", i})
			i++
		case c == '=':
			toks = append(toks, Token{TokenEq, "=", i})
			i++
		case c == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				toks = append(toks, Token{TokenNeq, "!=", i})
				i += 2
			} else {
				return nil, &LexError{Pos: i, Char: '!'}
			}
		case c == '<':
			if i+1 < len(input) && input[i+1] == '=' {
				toks = append(toks, Token{TokenLte, "<=", i})
				i += 2
			} else {
				toks = append(toks, Token{TokenLt, "<", i})
				i++
			}
		case c == '>':
			if i+1 < len(input) && input[i+1] == '=' {
				toks = append(toks, Token{TokenGte, ">=", i})
				i += 2
			} else {
				toks = append(toks, Token{TokenGt, ">", i})
				i++
			}
		case c == '"':
			tok, next, err := lexString(input, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case c >= '0' && c <= '9':
			start := i
			for i < len(input) && input[i] >= '0' && input[i] <= '9' {
				i++
			}
			toks = append(toks, Token{TokenNumber, input[start:i], start})
		case isIdentByte(c):
			start := i
			for i < len(input) && (isIdentByte(input[i]) || input[i] >= '0' && input[i] <= '9') {
				i++
			}
			word := strings.ToLower(input[start:i])
			if kind, ok := keywords[word]; ok {
				toks = append(toks, Token{kind, word, start})
			} else {
				toks = append(toks, Token{TokenIdent, word, start})
			}
		default:
			r, _ := utf8.DecodeRuneInString(input[i:])
			if unicode.IsSpace(r) {
				i += utf8.RuneLen(r)
				continue
			}
			return nil, &LexError{Pos: i, Char: r}
		}
	}
	toks = append(toks, Token{TokenEOF, "", len(input)})
	return toks, nil
}

// lexString consumes a double-quoted literal starting at input[start].
// An unterminated literal is reported at the opening quote.
func lexString(input string, start int) (Token, int, error) {
	var sb strings.Builder
	i := start + 1
	for i < len(input) {
		switch {
		case input[i] == '\\' && i+1 < len(input) && (input[i+1] == '"' || input[i+1] == '\\'):
			sb.WriteByte(input[i+1])
			i += 2
		case input[i] == '"':
			return Token{TokenString, sb.String(), start}, i + 1, nil
		default:
			sb.WriteByte(input[i])
			i++
		}
	}
	return Token{}, 0, &LexError{Pos: start, Char: '"'}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
