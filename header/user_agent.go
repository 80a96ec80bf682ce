package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/lex"
)

// Product is one product of the User-Agent and Server fields.
// Comment holds the text of the comments following the product, without
// the parentheses, joined with a space.
type Product struct {
	Name    string
	Version string
	Comment string
}

func (p Product) String() string {
	s := p.Name
	if p.Version != "" {
		s += "/" + p.Version
	}
	if p.Comment != "" {
		s += " (" + p.Comment + ")"
	}
	return s
}

// parseProducts parses product *( RWS ( product / comment ) ).
func parseProducts(v string) ([]Product, bool) {
	toks, err := lex.SplitComments(' ', v)
	if err != nil {
		return nil, false
	}
	toks = lex.Compact(trimOWS(toks))

	var out []Product
	for _, tok := range toks {
		if tok[0] == '(' {
			if len(out) == 0 || tok[len(tok)-1] != ')' {
				return nil, false
			}
			p := &out[len(out)-1]
			if p.Comment != "" {
				p.Comment += " "
			}
			p.Comment += tok[1 : len(tok)-1]
			continue
		}

		name, ver, hasVer := strings.Cut(tok, "/")
		if !grammar.IsToken(name) || hasVer && !grammar.IsToken(ver) {
			return nil, false
		}
		out = append(out, Product{Name: name, Version: ver})
	}
	return out, len(out) > 0
}

var (
	User_Agent = define("User-Agent", parseProducts)
	Server     = define("Server", parseProducts)
)
