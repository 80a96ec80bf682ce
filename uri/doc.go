// Package uri parses the URI forms that appear in HTTP header values.
//
// # Origins
//
// [ParseOrigin] accepts the serialized origin form used by the Origin and
// Referer fields: a scheme, "://", a host with an optional port, and an
// optional path that may carry a query and a fragment.
//
//	o, ok := uri.ParseOrigin("https://example.com:8443/a?b#c")
//	// o.Scheme == "https", o.Host == "example.com", o.Port == "8443"
//	// o.Path == "/a", o.Query == "b", o.Fragment == "c"
//
// The shape is checked with an ABNF grammar first, then the value is
// decomposed with [net/url]. IPv6 literals must be valid addresses and ports
// must fit into 16 bits.
//
// # Host authorities
//
// [ParseHostAuthority] accepts the host [ ":" port ] form of the Host and
// Alt-Used fields. Registered names are checked to be domain names, IP
// literals are checked to be addresses.
//
//	addr, ok := uri.ParseHostAuthority("[::1]:8080")
//	// addr.Host() == "::1", addr.Port() == 8080, true
//
// # References
//
// [ParseReference] accepts any URI-reference, absolute or relative, as used by
// the Location and Content-Location fields.
package uri
