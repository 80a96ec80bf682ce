package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/uri"
)

func TestParseHostAuthority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   uri.Addr
		wantOk bool
	}{
		{"example.com", uri.Host("example.com"), true},
		{"example.com:8080", uri.HostPort("example.com", 8080), true},
		{"192.0.2.1:80", uri.HostPort("192.0.2.1", 80), true},
		{"[::1]:8080", uri.HostPort("::1", 8080), true},
		{"[::ffff:1.2.3.4]:80", uri.HostPort("::ffff:1.2.3.4", 80), true},
		{"", uri.Addr{}, false},
		{"example.com:", uri.Addr{}, false},
		{"example.com:65536", uri.Addr{}, false},
		{"[192.0.2.1]", uri.Addr{}, false},
		{"exa mple.com", uri.Addr{}, false},
		{"http://example.com", uri.Addr{}, false},
	}
	for _, c := range cases {
		got, ok := uri.ParseHostAuthority(c.in)
		if ok != c.wantOk {
			t.Errorf("uri.ParseHostAuthority(%q) ok = %v, want %v", c.in, ok, c.wantOk)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("uri.ParseHostAuthority(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseReference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"absolute", "https://example.com/a?b#c", "https://example.com/a?b#c", nil},
		{"path", "/a/b", "/a/b", nil},
		{"relative", "../a", "../a", nil},
		{"query", "?x=1", "?x=1", nil},
		{"fragment", "#top", "#top", nil},
		{"urn", "urn:isbn:0451450523", "urn:isbn:0451450523", nil},
		{"empty", "", "", grammar.ErrEmptyInput},
		{"space", "/a b", "", grammar.ErrMalformedInput},
		{"control", "/a\x01", "", grammar.ErrMalformedInput},
		{"bad escape", "/a%zz", "", grammar.ErrMalformedInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.ParseReference(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ParseReference(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.ParseReference(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
