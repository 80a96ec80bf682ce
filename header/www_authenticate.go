package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Challenge is one authentication challenge of the WWW-Authenticate and
// Proxy-Authenticate fields. At most one of Token68 and Params is set.
type Challenge struct {
	Scheme  string
	Token68 string
	Params  Values
}

func isToken68(s string) bool {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' || c == '+' || c == '/') {
			break
		}
	}
	if i == 0 {
		return false
	}
	return strings.Trim(s[i:], "=") == ""
}

// parseChallenges walks the comma list: an element that starts with a scheme
// opens a new challenge, an auth-param element extends the current one.
func parseChallenges(v string) ([]Challenge, bool) {
	toks, ok := splitList(v)
	if !ok {
		return nil, false
	}

	var out []Challenge
	for _, tok := range toks {
		first, rest, _ := strings.Cut(tok, " ")
		if strings.Contains(first, "=") {
			if len(out) == 0 || out[len(out)-1].Token68 != "" {
				return nil, false
			}
			if !appendAuthParam(&out[len(out)-1], tok) {
				return nil, false
			}
			continue
		}

		if !grammar.IsToken(first) {
			return nil, false
		}
		c := Challenge{Scheme: first}
		switch rest = util.TrimOWS(rest); {
		case rest == "":
		case isToken68(rest):
			c.Token68 = rest
		case !appendAuthParam(&c, rest):
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

func appendAuthParam(c *Challenge, s string) bool {
	if !strings.Contains(s, "=") {
		return false
	}
	k, v, ok := parseParam(s)
	if !ok {
		return false
	}
	if c.Params == nil {
		c.Params = make(Values)
	}
	c.Params.Append(k, v)
	return true
}

var (
	WWW_Authenticate   = define("WWW-Authenticate", parseChallenges)
	Proxy_Authenticate = define("Proxy-Authenticate", parseChallenges)
)
