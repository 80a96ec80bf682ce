package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/util"
	"github.com/xenocrat/HTTPHeader/uri"
)

func parseHostAuthority(v string) (Addr, bool) { return uri.ParseHostAuthority(v) }

var (
	Host     = define("Host", parseHostAuthority)
	Alt_Used = define("Alt-Used", parseHostAuthority)
)

// From holds a mailbox: exactly one "@" with no spaces and non-empty sides.
var From = define("From", func(v string) (string, bool) {
	local, domain, ok := strings.Cut(v, "@")
	return v, ok && local != "" && domain != "" &&
		!strings.ContainsAny(v, " \t") && !strings.Contains(domain, "@")
})

// Keep_Alive maps the lower-cased timeout and max parameters to their values.
var Keep_Alive = define("Keep-Alive", func(v string) (map[string]int64, bool) {
	toks, ok := splitList(v)
	if !ok {
		return nil, false
	}
	m := make(map[string]int64, len(toks))
	for _, tok := range toks {
		k, val, ok := parseParam(tok)
		if !ok {
			return nil, false
		}
		k = util.LCase(k)
		if k != "timeout" && k != "max" {
			return nil, false
		}
		n, ok := parseDelta(val)
		if !ok {
			return nil, false
		}
		m[k] = n
	}
	return m, true
})
