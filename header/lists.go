package header

import (
	"github.com/samber/lo"
	"golang.org/x/text/language"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
)

func parseList(v string) ([]string, bool) { return splitList(v) }

// parseQList parses a list and orders it by descending weight.
func parseQList(v string) ([]string, bool) {
	l, ok := splitList(v)
	if ok {
		QSort(l)
	}
	return l, ok
}

// parseTokenList parses a list of tokens, "*" included when wildcard is set.
func parseTokenList(wildcard bool) func(string) ([]string, bool) {
	return func(v string) ([]string, bool) {
		l, ok := splitList(v)
		if !ok {
			return nil, false
		}
		return l, lo.EveryBy(l, func(s string) bool {
			return grammar.IsToken(s) || wildcard && s == "*"
		})
	}
}

// parseETagList parses "*" or a list of entity-tags.
func parseETagList(v string) ([]string, bool) {
	l, ok := splitList(v)
	if !ok {
		return nil, false
	}
	if len(l) == 1 && l[0] == "*" {
		return l, true
	}
	return l, lo.EveryBy(l, isEntityTag)
}

// Content negotiation fields, ordered by weight.
var (
	Accept          = define("Accept", parseQList)
	Accept_Charset  = define("Accept-Charset", parseQList)
	Accept_Encoding = define("Accept-Encoding", parseQList)
	Accept_Language = define("Accept-Language", parseQList)
	TE              = define("TE", parseQList)
	Want_Digest     = define("Want-Digest", parseQList)
)

var (
	Cache_Control     = define("Cache-Control", parseList)
	Via               = define("Via", parseList)
	Upgrade           = define("Upgrade", parseList)
	Transfer_Encoding = define("Transfer-Encoding", parseList)
	Connection        = define("Connection", parseTokenList(false))
	Allow             = define("Allow", parseTokenList(false))
	Content_Encoding  = define("Content-Encoding", parseTokenList(false))
	Accept_Ranges     = define("Accept-Ranges", parseTokenList(false))
	Trailer           = define("Trailer", parseTokenList(false))
	Vary              = define("Vary", parseTokenList(true))
	If_Match          = define("If-Match", parseETagList)
	If_None_Match     = define("If-None-Match", parseETagList)
)

// CORS list fields.
var (
	Access_Control_Allow_Headers   = define("Access-Control-Allow-Headers", parseTokenList(true))
	Access_Control_Allow_Methods   = define("Access-Control-Allow-Methods", parseTokenList(true))
	Access_Control_Expose_Headers  = define("Access-Control-Expose-Headers", parseTokenList(true))
	Access_Control_Request_Headers = define("Access-Control-Request-Headers", parseTokenList(false))
)

// Content_Language holds BCP 47 language tags in canonical form.
var Content_Language = define("Content-Language", func(v string) ([]string, bool) {
	l, ok := splitList(v)
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(l))
	for _, s := range l {
		tag, err := language.Parse(s)
		if err != nil {
			return nil, false
		}
		tags = append(tags, tag.String())
	}
	return tags, true
})
