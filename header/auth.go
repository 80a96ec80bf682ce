package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Credentials is the value of the Authorization and Proxy-Authorization fields.
type Credentials struct {
	Scheme string
	// Token is everything after the scheme: a token68 or a list of auth-params.
	Token string
}

func (c Credentials) String() string { return c.Scheme + " " + c.Token }

func parseCredentials(v string) (Credentials, bool) {
	scheme, tok, ok := strings.Cut(v, " ")
	tok = util.TrimOWS(tok)
	if !ok || !grammar.IsToken(scheme) || tok == "" {
		return Credentials{}, false
	}
	return Credentials{Scheme: scheme, Token: tok}, true
}

var (
	Authorization       = define("Authorization", parseCredentials)
	Proxy_Authorization = define("Proxy-Authorization", parseCredentials)
)
