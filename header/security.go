package header

import (
	"strings"

	"github.com/samber/lo"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
	"github.com/xenocrat/HTTPHeader/lex"
)

// Permissions_Policy maps feature names to their allowlists: ["*"] for "*",
// the members of a parenthesized list, or the single given item.
// Quoted origins are unquoted.
var Permissions_Policy = define("Permissions-Policy", func(v string) (map[string][]string, bool) {
	toks, err := lex.SplitComments(',', v)
	if err != nil {
		return nil, false
	}
	toks = lex.Compact(trimOWS(toks))
	if len(toks) == 0 {
		return nil, false
	}

	pol := make(map[string][]string, len(toks))
	for _, tok := range toks {
		feat, list, ok := strings.Cut(tok, "=")
		feat, list = util.TrimOWS(feat), util.TrimOWS(list)
		if !ok || !grammar.IsToken(feat) {
			return nil, false
		}
		allow, ok := parseAllowlist(list)
		if !ok {
			return nil, false
		}
		pol[feat] = allow
	}
	return pol, true
})

func parseAllowlist(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	if s[0] != '(' {
		item, ok := parseAllowItem(s)
		return []string{item}, ok
	}
	if s[len(s)-1] != ')' {
		return nil, false
	}
	items, err := lex.SplitQuoted(' ', s[1:len(s)-1])
	if err != nil {
		return nil, false
	}
	allow := make([]string, 0, len(items))
	for _, it := range lex.Compact(items) {
		item, ok := parseAllowItem(it)
		if !ok {
			return nil, false
		}
		allow = append(allow, item)
	}
	return allow, true
}

func parseAllowItem(s string) (string, bool) {
	switch {
	case s == "*":
		return s, true
	case lex.IsQuoted(s):
		return lex.Unquote(s), true
	default:
		return s, grammar.IsToken(s)
	}
}

// Content_Security_Policy maps lower-cased directive names to their source
// lists. A repeated directive keeps its first occurrence.
var Content_Security_Policy = define("Content-Security-Policy", func(v string) (map[string][]string, bool) {
	dirs, ok := split(';', v)
	if !ok || len(dirs) == 0 {
		return nil, false
	}
	pol := make(map[string][]string, len(dirs))
	for _, dir := range dirs {
		fields := strings.Fields(dir)
		if len(fields) == 0 {
			continue
		}
		name := util.LCase(fields[0])
		if !grammar.IsToken(name) {
			return nil, false
		}
		if _, ok := pol[name]; ok {
			continue
		}
		pol[name] = append([]string{}, fields[1:]...)
	}
	return pol, true
})

// STS is the value of the Strict-Transport-Security field (RFC 6797).
type STS struct {
	MaxAge            int64
	IncludeSubDomains bool
	Preload           bool
}

var Strict_Transport_Security = define("Strict-Transport-Security", func(v string) (STS, bool) {
	dirs, ok := split(';', v)
	if !ok {
		return STS{}, false
	}
	params, ok := parseParams(dirs)
	if !ok {
		return STS{}, false
	}
	for _, vs := range params {
		if len(vs) > 1 {
			return STS{}, false
		}
	}
	ma, ok := params.Last("max-age")
	if !ok {
		return STS{}, false
	}
	n, ok := parseDelta(ma)
	if !ok {
		return STS{}, false
	}
	return STS{
		MaxAge:            n,
		IncludeSubDomains: params.Has("includesubdomains"),
		Preload:           params.Has("preload"),
	}, true
})

var referrerPolicies = []string{
	"no-referrer", "no-referrer-when-downgrade", "origin", "origin-when-cross-origin",
	"same-origin", "strict-origin", "strict-origin-when-cross-origin", "unsafe-url",
}

// Referrer_Policy is a list of policy tokens, each lower-cased and known.
var Referrer_Policy = define("Referrer-Policy", func(v string) ([]string, bool) {
	l, ok := splitList(v)
	if !ok {
		return nil, false
	}
	l = lo.Map(l, func(s string, _ int) string { return util.LCase(s) })
	return l, lo.Every(referrerPolicies, l)
})

// Clear_Site_Data is a list of quoted directives, returned unquoted.
var Clear_Site_Data = define("Clear-Site-Data", func(v string) ([]string, bool) {
	l, ok := splitList(v)
	if !ok || !lo.EveryBy(l, lex.IsQuoted) {
		return nil, false
	}
	return lo.Map(l, func(s string, _ int) string { return lex.Unquote(s) }), true
})
