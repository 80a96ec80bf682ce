package header

import (
	"github.com/samber/lo"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/uri"
)

func parseOrigin(v string) (uri.Origin, bool) { return uri.ParseOrigin(v) }

var (
	Origin  = define("Origin", parseOrigin)
	Referer = define("Referer", parseOrigin)
)

func isOrigin(v string) bool {
	_, ok := uri.ParseOrigin(v)
	return ok
}

// Access_Control_Allow_Origin is "*", "null" or a serialized origin.
var Access_Control_Allow_Origin = define("Access-Control-Allow-Origin", func(v string) (string, bool) {
	return v, v == "*" || v == "null" || isOrigin(v)
})

var Access_Control_Request_Method = define("Access-Control-Request-Method", func(v string) (string, bool) {
	return v, grammar.IsToken(v)
})

// Timing_Allow_Origin is "*" or a list of serialized origins.
var Timing_Allow_Origin = define("Timing-Allow-Origin", func(v string) ([]string, bool) {
	l, ok := splitList(v)
	if !ok {
		return nil, false
	}
	if len(l) == 1 && l[0] == "*" {
		return l, true
	}
	return l, lo.EveryBy(l, isOrigin)
})
