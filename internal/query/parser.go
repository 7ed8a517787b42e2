package query

import (
	"strconv"
	"time"

	"job-hunt/internal/models"
)

// dateLayout is the literal format accepted for date-kind fields.
const dateLayout = "2006-01-02"

// Parse lexes and parses one query line. Field names are checked
// against the catalog and literal kinds against the field's kind, so
// every error a query can produce surfaces here, before evaluation.
func Parse(input string) (*Query, error) {
	toks, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseQuery()
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	t := p.cur()
	if t.Kind != kind {
		return Token{}, &ParseError{Pos: t.Pos, Got: t.describe(), Expected: what}
	}
	return p.advance(), nil
}

// query := "select" "jobs" [where_clause] [order_clause] ";"?
func (p *parser) parseQuery() (*Query, error) {
	if _, err := p.expect(TokenSelect, `keyword "select"`); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenJobs, `keyword "jobs"`); err != nil {
		return nil, err
	}

	q := &Query{}

	if p.cur().Kind == TokenWhere {
		p.advance()
		pred, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Where = pred
	}

	if p.cur().Kind == TokenOrder {
		p.advance()
		ord, err := p.parseOrdering()
		if err != nil {
			return nil, err
		}
		q.OrderBy = ord
	}

	sawSemi := false
	if p.cur().Kind == TokenSemi {
		p.advance()
		sawSemi = true
	}

	if t := p.cur(); t.Kind != TokenEOF {
		// after a terminating ";" the query was complete; anything else
		// here is a grammar violation inside the query itself
		if sawSemi {
			return nil, &TrailingInputError{Pos: t.Pos, Got: t.describe()}
		}
		return nil, &ParseError{Pos: t.Pos, Got: t.describe(), Expected: `a "where" or "order by" clause, ";" or end of input`}
	}
	return q, nil
}

// or_expr := and_expr ("or" and_expr)*
func (p *parser) parseOr() (Predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

// and_expr := comparison ("and" comparison)*
// "and" binds tighter than "or".
func (p *parser) parseAnd() (Predicate, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokenAnd {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

// comparison := field operator literal
func (p *parser) parseComparison() (Predicate, error) {
	fieldTok, err := p.expect(TokenIdent, "field name")
	if err != nil {
		return nil, err
	}
	kind, ok := models.Fields[fieldTok.Text]
	if !ok {
		return nil, &UnknownFieldError{Name: fieldTok.Text}
	}

	op, err := p.parseOperator()
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Field: fieldTok.Text, Kind: kind, Op: op}

	switch kind {
	case models.FieldText:
		if op == OpLt || op == OpLte || op == OpGt || op == OpGte {
			return nil, &TypeMismatchError{Field: cmp.Field, Expected: `"=", "!=" or "like" (text field)`}
		}
		lit, err := p.expect(TokenString, "quoted text literal")
		if err != nil {
			t := p.cur()
			if t.Kind == TokenNumber {
				return nil, &TypeMismatchError{Field: cmp.Field, Expected: "a quoted text literal"}
			}
			return nil, err
		}
		cmp.Text = lit.Text

	case models.FieldNumber:
		if op == OpLike {
			return nil, &TypeMismatchError{Field: cmp.Field, Expected: `an ordering operator ("like" needs a text field)`}
		}
		lit, err := p.expect(TokenNumber, "numeric literal")
		if err != nil {
			t := p.cur()
			if t.Kind == TokenString {
				return nil, &TypeMismatchError{Field: cmp.Field, Expected: "a numeric literal"}
			}
			return nil, err
		}
		n, convErr := strconv.Atoi(lit.Text)
		if convErr != nil {
			return nil, &ParseError{Pos: lit.Pos, Got: lit.describe(), Expected: "numeric literal"}
		}
		cmp.Num = n

	case models.FieldDate:
		if op == OpLike {
			return nil, &TypeMismatchError{Field: cmp.Field, Expected: `an ordering operator ("like" needs a text field)`}
		}
		lit, err := p.expect(TokenString, `quoted date literal ("YYYY-MM-DD")`)
		if err != nil {
			t := p.cur()
			if t.Kind == TokenNumber {
				return nil, &TypeMismatchError{Field: cmp.Field, Expected: `a quoted date literal ("YYYY-MM-DD")`}
			}
			return nil, err
		}
		d, convErr := time.Parse(dateLayout, lit.Text)
		if convErr != nil {
			return nil, &TypeMismatchError{Field: cmp.Field, Expected: `a quoted date literal ("YYYY-MM-DD")`}
		}
		cmp.Date = d
	}

	return cmp, nil
}

func (p *parser) parseOperator() (Op, error) {
	t := p.cur()
	switch t.Kind {
	case TokenEq:
		p.advance()
		return OpEq, nil
	case TokenNeq:
		p.advance()
		return OpNeq, nil
	case TokenLt:
		p.advance()
		return OpLt, nil
	case TokenLte:
		p.advance()
		return OpLte, nil
	case TokenGt:
		p.advance()
		return OpGt, nil
	case TokenGte:
		p.advance()
		return OpGte, nil
	case TokenLike:
		p.advance()
		return OpLike, nil
	default:
		return 0, &ParseError{Pos: t.Pos, Got: t.describe(), Expected: "comparison operator"}
	}
}

// order_clause := "order" "by" field [("asc"|"desc")]
func (p *parser) parseOrdering() (*Ordering, error) {
	if _, err := p.expect(TokenBy, `keyword "by"`); err != nil {
		return nil, err
	}
	fieldTok, err := p.expect(TokenIdent, "field name")
	if err != nil {
		return nil, err
	}
	if _, ok := models.Fields[fieldTok.Text]; !ok {
		return nil, &UnknownFieldError{Name: fieldTok.Text}
	}
	ord := &Ordering{Field: fieldTok.Text}
	switch p.cur().Kind {
	case TokenAsc:
		p.advance()
	case TokenDesc:
		p.advance()
		ord.Desc = true
	}
	return ord, nil
}
