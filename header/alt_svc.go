package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
	"github.com/xenocrat/HTTPHeader/lex"
)

// AltService is one alternative of the Alt-Svc field (RFC 7838).
type AltService struct {
	Protocol  string
	Authority string
	Params    Values
}

// AltSvc is the value of the Alt-Svc field. Clear is set for the "clear" value.
type AltSvc struct {
	Clear    bool
	Services []AltService
}

var Alt_Svc = define("Alt-Svc", func(v string) (AltSvc, bool) {
	if v == "clear" {
		return AltSvc{Clear: true}, true
	}
	elems, ok := splitList(v)
	if !ok {
		return AltSvc{}, false
	}
	svcs := make([]AltService, 0, len(elems))
	for _, elem := range elems {
		parts, ok := split(';', elem)
		if !ok || len(parts) == 0 {
			return AltSvc{}, false
		}
		proto, auth, ok := strings.Cut(parts[0], "=")
		proto, auth = util.TrimOWS(proto), util.TrimOWS(auth)
		if !ok || !grammar.IsToken(proto) || !lex.IsQuoted(auth) {
			return AltSvc{}, false
		}
		params, ok := parseParams(parts[1:])
		if !ok {
			return AltSvc{}, false
		}
		svcs = append(svcs, AltService{Protocol: proto, Authority: lex.Unquote(auth), Params: params})
	}
	return AltSvc{Services: svcs}, true
})
