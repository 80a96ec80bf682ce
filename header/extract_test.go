package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xenocrat/HTTPHeader/header"
)

func TestExtractField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		field  string
		src    string
		want   string
		wantSt header.State
	}{
		{"empty", "Accept", "", "", header.StateAbsent},
		{"blank", "Accept", " \t ", "", header.StateAbsent},
		{"bare", "Accept", " text/html ", "text/html", header.StatePresent},
		{"bare trailing CRLF", "Accept", "text/html\r\n", "text/html", header.StatePresent},
		{"bare CRLF only", "Accept", "\r\n", "", header.StateAbsent},
		{"message without blank line", "Host", "GET / HTTP/1.1\r\nHost: example.com", "example.com", header.StatePresent},
		{"bare with colon", "Referer", "https://example.com/", "https://example.com/", header.StatePresent},
		{"single line", "Accept", "Accept: text/html", "text/html", header.StatePresent},
		{"single line any case", "Accept", "ACCEPT:text/html", "text/html", header.StatePresent},
		{"single line empty", "Accept", "Accept:   ", "", header.StateAbsent},
		{"underscore name", "Accept-Charset", "Accept_Charset: utf-8", "utf-8", header.StatePresent},
		{"underscore query", "Accept_Charset", "Accept-Charset: utf-8", "utf-8", header.StatePresent},
		{"message", "Host", "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", "example.com", header.StatePresent},
		{"message missing", "Accept", "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", "", header.StateAbsent},
		{"last wins", "X-Foo", "X-Foo: a\r\nX-Foo: b\r\n\r\n", "b", header.StatePresent},
		{"empty does not win", "X-Foo", "X-Foo: a\r\nX-Foo:  \r\n\r\n", "a", header.StatePresent},
		{"body ignored", "X-Foo", "X-Foo: a\r\n\r\nX-Foo: b", "a", header.StatePresent},
		{"folded", "X-Foo", "X-Foo: a\r\n b\r\n\r\n", "a b", header.StatePresent},
		{"prefix of other name", "Accept", "Accept-Language: en\r\n\r\n", "", header.StateAbsent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			out := header.ExtractField(c.field, c.src)
			if got := out.State(); got != c.wantSt {
				t.Fatalf("header.ExtractField(%q, %q) state = %v, want %v", c.field, c.src, got, c.wantSt)
			}
			if got := out.Or(""); got != c.want {
				t.Errorf("header.ExtractField(%q, %q) = %q, want %q", c.field, c.src, got, c.want)
			}
		})
	}
}

func TestField_Parse(t *testing.T) {
	t.Parallel()

	msg := "GET / HTTP/1.1\r\n" +
		"Accept: text/plain\r\n" +
		"Accept: application/json;q=0.1, text/html\r\n" +
		"\r\n"
	got, ok := header.Accept.Parse(msg).Value()
	if want := []string{"text/html", "application/json;q=0.1"}; !ok || !cmp.Equal(got, want) {
		t.Errorf("header.Accept.Parse(%q) = %q, %v, want %q, true", msg, got, ok, want)
	}

	bare := "text/html\r\n"
	got, ok = header.Accept.Parse(bare).Value()
	if want := []string{"text/html"}; !ok || !cmp.Equal(got, want) {
		t.Errorf("header.Accept.Parse(%q) = %q, %v, want %q, true", bare, got, ok, want)
	}

	if out := header.Content_Length.Parse("Content-Length: abc"); !out.IsInvalid() {
		t.Errorf("header.Content_Length.Parse(\"Content-Length: abc\") = %v, want invalid", out)
	}
	if out := header.Content_Length.Parse("X-Other: 1\r\n\r\n"); !out.IsAbsent() {
		t.Errorf("header.Content_Length.Parse(\"X-Other: 1\") = %v, want absent", out)
	}
}

func TestField_ParseValue(t *testing.T) {
	t.Parallel()

	// the value is never treated as a message
	out := header.Cache_Control.ParseValue("Cache-Control: no-cache")
	if got, ok := out.Value(); !ok || !cmp.Equal(got, []string{"Cache-Control: no-cache"}) {
		t.Errorf("header.Cache_Control.ParseValue() = %q, %v", got, ok)
	}
	if out := header.Cache_Control.ParseValue("  "); !out.IsAbsent() {
		t.Errorf("header.Cache_Control.ParseValue(blank) = %v, want absent", out)
	}
}

func TestField_Names(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field  header.Parser
		name   string
		key    string
		envKey string
	}{
		{header.Accept, "Accept", "Accept", "HTTP_ACCEPT"},
		{header.Accept_Charset, "Accept-Charset", "Accept_Charset", "HTTP_ACCEPT_CHARSET"},
		{header.WWW_Authenticate, "WWW-Authenticate", "WWW_Authenticate", "HTTP_WWW_AUTHENTICATE"},
		{header.DNT, "DNT", "DNT", "HTTP_DNT"},
		{header.Content_Security_Policy, "Content-Security-Policy", "Content_Security_Policy", "HTTP_CONTENT_SECURITY_POLICY"},
	}
	for _, c := range cases {
		if got := c.field.Name(); got != c.name {
			t.Errorf("field.Name() = %q, want %q", got, c.name)
		}
		if got := c.field.Key(); got != c.key {
			t.Errorf("%s.Key() = %q, want %q", c.name, got, c.key)
		}
		if got := c.field.EnvKey(); got != c.envKey {
			t.Errorf("%s.EnvKey() = %q, want %q", c.name, got, c.envKey)
		}
	}
}

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"accept-encoding", "Accept-Encoding"},
		{"Accept_Encoding", "Accept-Encoding"},
		{" content-type ", "Content-Type"},
		{"x-foo", "X-Foo"},
	}
	for _, c := range cases {
		if got := header.CanonicName(c.in); got != c.want {
			t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	if got, want := header.Key("Accept-Charset"), "Accept_Charset"; got != want {
		t.Errorf("header.Key(\"Accept-Charset\") = %q, want %q", got, want)
	}
	if got, want := header.EnvKey("x-forwarded-for"), "HTTP_X_FORWARDED_FOR"; got != want {
		t.Errorf("header.EnvKey(\"x-forwarded-for\") = %q, want %q", got, want)
	}
}
