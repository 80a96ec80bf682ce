package uri

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/xenocrat/HTTPHeader/internal/constraints"
	"github.com/xenocrat/HTTPHeader/internal/errorutil"
	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/types"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Origin holds the components of an origin URI.
// Host never carries IPv6 brackets; Port is empty when the URI has none.
type Origin struct {
	Scheme   string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string
}

// ParseOrigin parses s as scheme "://" host [ ":" port ] [ "/" path ] and
// reports whether it is a valid origin.
func ParseOrigin[T constraints.Byteseq](s T) (Origin, bool) {
	o, err := parseOrigin(s)
	if err != nil {
		return Origin{}, false
	}
	return o, true
}

func parseOrigin[T constraints.Byteseq](s T) (Origin, error) {
	node, err := grammar.ParseOrigin(s)
	if err != nil {
		return Origin{}, errtrace.Wrap(err)
	}

	u, err := url.Parse(string(s))
	if err != nil {
		return Origin{}, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	// host and port were matched by the grammar, url.URL must agree on them
	hp := grammar.MustGetNode(node, "hostport").String()
	if u.Host != hp {
		return Origin{}, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "host %q, want %q", u.Host, hp))
	}
	if _, err := types.ParseAddr(hp); err != nil {
		return Origin{}, errtrace.Wrap(err)
	}

	return Origin{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     u.Port(),
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}, nil
}

// Addr returns the host and port of the origin.
func (o Origin) Addr() Addr {
	if o.Port == "" {
		return types.Host(o.Host)
	}
	port, err := strconv.ParseUint(o.Port, 10, 16)
	if err != nil {
		return types.Host(o.Host)
	}
	return types.HostPort(o.Host, uint16(port))
}

// RenderTo writes the scheme "://" host [ ":" port ] triple of the origin to w.
func (o Origin) RenderTo(w io.Writer) (num int, err error) {
	host := o.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if o.Port != "" {
		return errtrace.Wrap2(fmt.Fprint(w, util.LCase(o.Scheme), "://", host, ":", o.Port))
	}
	return errtrace.Wrap2(fmt.Fprint(w, util.LCase(o.Scheme), "://", host))
}

// String returns the serialized origin without path, query or fragment.
func (o Origin) String() string {
	if o.IsZero() {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	o.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Equal reports whether two origins share scheme, host and port.
// Scheme and host are compared case-insensitively.
func (o Origin) Equal(val any) bool {
	var other Origin
	switch v := val.(type) {
	case Origin:
		other = v
	case *Origin:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(o.Scheme, other.Scheme) &&
		util.EqFold(o.Host, other.Host) &&
		o.Port == other.Port
}

// IsZero reports whether the origin has no components.
func (o Origin) IsZero() bool { return o == Origin{} }

// MarshalText implements [encoding.TextMarshaler].
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Origin) UnmarshalText(text []byte) error {
	o1, err := parseOrigin(text)
	if err != nil {
		*o = Origin{}
		return errtrace.Wrap(err)
	}
	*o = o1
	return nil
}
