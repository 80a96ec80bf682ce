package header

import (
	"github.com/xenocrat/HTTPHeader/lex"
	"github.com/xenocrat/HTTPHeader/uri"
)

// splitAngled splits v on delim outside quoted-strings and "<" ">" pairs.
func splitAngled(delim byte, v string) ([]string, bool) {
	toks, err := lex.SplitQuoted(delim, v)
	if err != nil {
		return nil, false
	}
	toks, ok := joinAngles(toks, delim)
	if !ok {
		return nil, false
	}
	return lex.Compact(trimOWS(toks)), true
}

// LinkValue is one link-value of the Link field (RFC 8288).
type LinkValue struct {
	Target string
	Params Values
}

// Rel returns the rel parameter, if any.
func (l LinkValue) Rel() (string, bool) { return l.Params.Last("rel") }

var Link = define("Link", func(v string) ([]LinkValue, bool) {
	elems, ok := splitAngled(',', v)
	if !ok || len(elems) == 0 {
		return nil, false
	}
	out := make([]LinkValue, 0, len(elems))
	for _, elem := range elems {
		parts, ok := splitAngled(';', elem)
		if !ok || len(parts) == 0 {
			return nil, false
		}
		target := parts[0]
		if len(target) < 2 || target[0] != '<' || target[len(target)-1] != '>' {
			return nil, false
		}
		target = target[1 : len(target)-1]
		if target != "" {
			if _, err := uri.ParseReference(target); err != nil {
				return nil, false
			}
		}
		params, ok := parseParams(parts[1:])
		if !ok {
			return nil, false
		}
		out = append(out, LinkValue{Target: target, Params: params})
	}
	return out, true
})
