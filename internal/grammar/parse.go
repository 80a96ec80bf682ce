package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/xenocrat/HTTPHeader/internal/constraints"
	"github.com/xenocrat/HTTPHeader/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func parse[T constraints.Byteseq](rule abnf.Operator, s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// ParseIMFFixdate parses s as an IMF-fixdate (RFC 9110 Section 5.6.7).
// The returned node has children "day-name", "day", "month", "year",
// "hour", "minute", "second".
func ParseIMFFixdate[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(imfFixdate, s))
}

// ParseOrigin parses s as scheme "://" host [ ":" port ] [ "/" path ].
func ParseOrigin[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(origin, s))
}

// ParseHostport parses s as host [ ":" port ].
func ParseHostport[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(hostport, s))
}
