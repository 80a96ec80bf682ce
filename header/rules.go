package header

import (
	"strings"

	"github.com/samber/lo"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
	"github.com/xenocrat/HTTPHeader/lex"
)

func trimOWS(ss []string) []string {
	return lo.Map(ss, func(s string, _ int) string { return util.TrimOWS(s) })
}

// split splits v on delim outside quoted-strings and drops empty elements.
func split(delim byte, v string) ([]string, bool) {
	toks, err := lex.SplitQuoted(delim, v)
	if err != nil {
		return nil, false
	}
	return lex.Compact(trimOWS(toks)), true
}

// splitList splits a comma separated list. An empty list is malformed.
func splitList(v string) ([]string, bool) {
	toks, ok := split(',', v)
	return toks, ok && len(toks) > 0
}

// parseParam parses token [ "=" ( token / quoted-string ) ], unquoting the value.
func parseParam(s string) (key, val string, ok bool) {
	k, v, hasEq := strings.Cut(s, "=")
	k, v = util.TrimOWS(k), util.TrimOWS(v)
	if !grammar.IsToken(k) {
		return "", "", false
	}
	switch {
	case !hasEq:
		return k, "", true
	case lex.IsQuoted(v):
		return k, lex.Unquote(v), true
	case grammar.IsToken(v):
		return k, v, true
	default:
		return "", "", false
	}
}

// parseParams parses every element of toks with parseParam.
// It returns nil when toks is empty.
func parseParams(toks []string) (Values, bool) {
	if len(toks) == 0 {
		return nil, true
	}
	params := make(Values, len(toks))
	for _, tok := range toks {
		k, v, ok := parseParam(tok)
		if !ok {
			return nil, false
		}
		params.Append(k, v)
	}
	return params, true
}

// joinAngles glues back elements that were split inside "<" ">", such as URI references.
func joinAngles(toks []string, sep byte) ([]string, bool) {
	out := make([]string, 0, len(toks))
	open := false
	for _, tok := range toks {
		if open {
			out[len(out)-1] += string(sep) + tok
		} else {
			out = append(out, tok)
		}
		open = strings.LastIndexByte(out[len(out)-1], '<') > strings.LastIndexByte(out[len(out)-1], '>')
	}
	return out, !open
}

// isEntityTag reports whether s is [ "W/" ] DQUOTE *etagc DQUOTE.
func isEntityTag(s string) bool {
	s = strings.TrimPrefix(s, "W/")
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if c := s[i]; c == '"' || c <= ' ' || c == 0x7f {
			return false
		}
	}
	return true
}

// oneOf returns a rule accepting only the given values, matched exactly.
func oneOf(vals ...string) func(string) (string, bool) {
	return func(v string) (string, bool) {
		return v, lo.Contains(vals, v)
	}
}

// oneOfFold returns a rule accepting the given values in any case and
// returning the listed spelling.
func oneOfFold(vals ...string) func(string) (string, bool) {
	return func(v string) (string, bool) {
		return lo.Find(vals, func(s string) bool { return util.EqFold(s, v) })
	}
}
