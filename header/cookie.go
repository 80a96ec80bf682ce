package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// parseCookiePair parses cookie-name "=" cookie-value (RFC 6265 Section 4.1.1).
// A quoted value is unquoted.
func parseCookiePair(s string) (name, val string, ok bool) {
	name, val, ok = strings.Cut(s, "=")
	name, val = util.TrimOWS(name), util.TrimOWS(val)
	if !ok || !grammar.IsToken(name) {
		return "", "", false
	}
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	for i := 0; i < len(val); i++ {
		if c := val[i]; c <= ' ' || c == '"' || c == ',' || c == ';' || c == '\\' || c >= 0x7f {
			return "", "", false
		}
	}
	return name, val, true
}

// Cookie maps cookie names to values; a repeated name keeps its last value.
var Cookie = define("Cookie", func(v string) (map[string]string, bool) {
	toks, ok := split(';', v)
	if !ok || len(toks) == 0 {
		return nil, false
	}
	cookies := make(map[string]string, len(toks))
	for _, tok := range toks {
		name, val, ok := parseCookiePair(tok)
		if !ok {
			return nil, false
		}
		cookies[name] = val
	}
	return cookies, true
})
