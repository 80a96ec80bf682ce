package uri

//go:generate go tool errtrace -w .

import (
	"net/url"

	"braces.dev/errtrace"

	"github.com/xenocrat/HTTPHeader/internal/constraints"
	"github.com/xenocrat/HTTPHeader/internal/errorutil"
	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/types"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a network address from the given input s (string or []byte).
func ParseAddr[T constraints.Byteseq](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// ParseHostAuthority parses s as host [ ":" port ] and reports whether it is valid.
func ParseHostAuthority[T constraints.Byteseq](s T) (Addr, bool) {
	addr, err := types.ParseAddr(s)
	if err != nil {
		return Addr{}, false
	}
	return addr, true
}

// ParseReference parses a URI-reference, absolute or relative.
func ParseReference[T constraints.Byteseq](s T) (*url.URL, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}
	for i := range len(s) {
		// url.Parse tolerates spaces and some controls that a field value cannot carry
		if s[i] <= ' ' || s[i] == 0x7f {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "unexpected byte %q at %d", s[i], i))
		}
	}

	u, err := url.Parse(string(s))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	if util.TrimSP(u.Opaque) == "" && u.Host == "" && u.Path == "" && u.RawQuery == "" && u.Fragment == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "empty reference %q", string(s)))
	}
	return u, nil
}
