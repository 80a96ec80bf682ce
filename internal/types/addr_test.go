package types_test

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/types"
)

func TestHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		want string
	}{
		{"empty", "", ""},
		{"domain", "ExAmplE.COM", "ExAmplE.COM"},
		{"IPv4", "192.168.0.1", "192.168.0.1"},
		{"IPv6", "2001:db8::9:1", "2001:db8::9:1"},
		{"bracketed IPv6", "[2001:db8::9:1]", "2001:db8::9:1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			addr := types.Host(c.host)
			if got := addr.Host(); got != c.want {
				t.Errorf("addr.Host() = %q, want %q", got, c.want)
			}
			if want := net.ParseIP(c.want); want != nil {
				if got := addr.IP(); !got.Equal(want) {
					t.Errorf("addr.IP() = %v, want %v", got, want)
				}
			}
			if got, ok := addr.Port(); ok {
				t.Errorf("addr.Port() = (%v, %v), want (0, false)", got, ok)
			}
		})
	}
}

func TestParseAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    types.Addr
		wantErr error
	}{
		{"empty", "", types.Addr{}, grammar.ErrEmptyInput},
		{"domain", "example.com", types.Host("example.com"), nil},
		{"domain port", "example.com:8080", types.HostPort("example.com", 8080), nil},
		{"IPv4 port", "127.0.0.1:80", types.HostPort("127.0.0.1", 80), nil},
		{"IPv6", "[::1]", types.Host("::1"), nil},
		{"IPv6 port", "[2001:db8::1]:443", types.HostPort("2001:db8::1", 443), nil},
		{"IPv4-mapped IPv6 port", "[::ffff:1.2.3.4]:80", types.HostPort("::ffff:1.2.3.4", 80), nil},
		{"bad IPv6", "[zz::1]", types.Addr{}, grammar.ErrMalformedInput},
		{"IPv4 in brackets", "[127.0.0.1]", types.Addr{}, grammar.ErrMalformedInput},
		{"port overflow", "example.com:65536", types.Addr{}, grammar.ErrMalformedInput},
		{"scheme", "http://example.com", types.Addr{}, grammar.ErrMalformedInput},
		{"space", "exa mple.com", types.Addr{}, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseAddr(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("types.ParseAddr(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want, cmp.AllowUnexported(types.Addr{})); diff != "" {
				t.Errorf("types.ParseAddr(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestAddr_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want string
	}{
		{"zero", types.Addr{}, ""},
		{"domain", types.Host("example.com"), "example.com"},
		{"domain with port", types.HostPort("example.com", 8080), "example.com:8080"},
		{"IPv4 with port", types.HostPort("192.168.0.1", 80), "192.168.0.1:80"},
		{"IPv6", types.Host("2001:db8::9:1"), "[2001:db8::9:1]"},
		{"IPv6 with port", types.HostPort("2001:db8::9:1", 443), "[2001:db8::9:1]:443"},
		{"IPv4-mapped IPv6 with port", types.HostPort("::FFFF:1.2.3.4", 80), "[::ffff:1.2.3.4]:80"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.String(); got != c.want {
				t.Errorf("addr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAddr_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		val  any
		want bool
	}{
		{"nil", types.Addr{}, nil, false},
		{"zero", types.Addr{}, types.Addr{}, true},
		{"nil ptr", types.Addr{}, (*types.Addr)(nil), false},
		{"port presence", types.HostPort("example.com", 0), types.Host("example.com"), false},
		{"case", types.HostPort("example.com", 80), types.HostPort("EXAMPLE.COM", 80), true},
		{"mapped IPv4", types.HostPort("192.0.2.128", 80), types.HostPort("::ffff:192.0.2.128", 80), true},
		{"name vs IP", types.HostPort("localhost", 80), types.HostPort("127.0.0.1", 80), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.Equal(c.val); got != c.want {
				t.Errorf("addr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAddr_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want bool
	}{
		{"zero", types.Addr{}, false},
		{"empty host", types.HostPort("", 80), false},
		{"host only", types.Host("example.com"), true},
		{"IPv6", types.Host("::1"), true},
		{"bad host", types.Host("exa mple"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.IsValid(); got != c.want {
				t.Errorf("addr.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAddr_RoundTripText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
	}{
		{"host", types.Host("example.com")},
		{"host_port", types.HostPort("example.com", 8080)},
		{"ipv4", types.HostPort("192.168.0.1", 80)},
		{"ipv6", types.Host("2001:db8::9:1")},
		{"ipv6_port", types.HostPort("2001:db8::9:1", 443)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			text, err := c.addr.MarshalText()
			if err != nil {
				t.Fatalf("addr.MarshalText() error = %v, want nil", err)
			}

			var got types.Addr
			if err := got.UnmarshalText(text); err != nil {
				t.Fatalf("addr.UnmarshalText(%q) error = %v, want nil", text, err)
			}
			if !got.Equal(c.addr) {
				t.Errorf("round-trip mismatch: got = %v, want = %v", got, c.addr)
			}
		})
	}
}
