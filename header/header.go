package header

//go:generate go tool errtrace -w .

import (
	"net/textproto"
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/types"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Values represents field parameters as a multi-value map.
type Values = types.Values

// CanonicName converts name to the canonical header name form.
// For example, the canonical name for "accept-encoding" and "Accept_Encoding" is "Accept-Encoding".
func CanonicName[T ~string](name T) string {
	return textproto.CanonicalMIMEHeaderKey(strings.ReplaceAll(string(util.TrimSP(name)), "_", "-"))
}

// Key returns the registry key of the header name: '-' replaced with '_', case kept.
func Key[T ~string](name T) string { return strings.ReplaceAll(string(util.TrimSP(name)), "-", "_") }

// EnvKey returns the environment variable that holds the header in a CGI style environment.
func EnvKey[T ~string](name T) string { return "HTTP_" + util.UCase(Key(name)) }

// sameName reports whether two header names are equal ignoring case, treating '_' as '-'.
func sameName(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == '_' {
			ca = '-'
		}
		if cb == '_' {
			cb = '-'
		}
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
