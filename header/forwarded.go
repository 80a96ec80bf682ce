package header

import (
	"strings"

	"github.com/samber/lo"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

var forwardedParams = []string{"by", "for", "host", "proto"}

// Forwarded holds one map per forwarded-element (RFC 7239), keyed by the
// lower-cased parameter name, with quoted values unquoted.
var Forwarded = define("Forwarded", func(v string) ([]map[string]string, bool) {
	elems, ok := splitList(v)
	if !ok {
		return nil, false
	}
	out := make([]map[string]string, 0, len(elems))
	for _, elem := range elems {
		pairs, ok := split(';', elem)
		if !ok || len(pairs) == 0 {
			return nil, false
		}
		m := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			k, val, ok := parseParam(pair)
			if !ok || !strings.Contains(pair, "=") {
				return nil, false
			}
			k = util.LCase(k)
			if _, dup := m[k]; dup || !lo.Contains(forwardedParams, k) {
				return nil, false
			}
			m[k] = val
		}
		out = append(out, m)
	}
	return out, true
})
