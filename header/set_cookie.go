package header

import (
	"strings"
	"time"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
	"github.com/xenocrat/HTTPHeader/lex"
)

// SetCookie is the value of one Set-Cookie field.
// Attribute names are lower-cased; attributes without a value map to "".
type SetCookie struct {
	Name  string
	Value string
	Attrs Values
}

// Expires returns the Expires attribute, if it is present and a valid date.
func (c SetCookie) Expires() (time.Time, bool) {
	v, ok := c.Attrs.Last("expires")
	if !ok {
		return time.Time{}, false
	}
	return ParseIMFDate(v)
}

// MaxAge returns the Max-Age attribute, if it is present and valid.
func (c SetCookie) MaxAge() (int64, bool) {
	v, ok := c.Attrs.Last("max-age")
	if !ok {
		return 0, false
	}
	if neg := strings.TrimPrefix(v, "-"); neg != v {
		n, ok := parseDelta(neg)
		return -n, ok
	}
	return parseDelta(v)
}

func (c SetCookie) Secure() bool { return c.Attrs.Has("secure") }

func (c SetCookie) HttpOnly() bool { return c.Attrs.Has("httponly") } //nolint:revive

var Set_Cookie = define("Set-Cookie", func(v string) (SetCookie, bool) {
	toks, err := lex.SplitQuoted(';', v)
	if err != nil {
		return SetCookie{}, false
	}
	toks = trimOWS(toks)
	name, val, ok := parseCookiePair(toks[0])
	if !ok {
		return SetCookie{}, false
	}

	c := SetCookie{Name: name, Value: val}
	for _, tok := range lex.Compact(toks[1:]) {
		k, av, _ := strings.Cut(tok, "=")
		k = util.TrimOWS(k)
		if !grammar.IsToken(k) {
			return SetCookie{}, false
		}
		if c.Attrs == nil {
			c.Attrs = make(Values, len(toks)-1)
		}
		c.Attrs.Append(k, util.TrimOWS(av))
	}
	return c, true
})
