package header_test

import (
	"testing"
	"time"

	"github.com/xenocrat/HTTPHeader/header"
)

func TestSet_Cookie(t *testing.T) {
	t.Parallel()

	checkFieldCases(t, header.Set_Cookie, []fieldCase{
		{"id=a3fWa; Expires=Wed, 21 Oct 2015 07:28:00 GMT; Secure; HttpOnly; Path=/", header.SetCookie{
			Name:  "id",
			Value: "a3fWa",
			Attrs: header.Values{
				"expires":  {"Wed, 21 Oct 2015 07:28:00 GMT"},
				"secure":   {""},
				"httponly": {""},
				"path":     {"/"},
			},
		}},
		{"sid=", header.SetCookie{Name: "sid"}},
		{"=x", invalid},
		{"id=1; Path=/; Path=/a", header.SetCookie{Name: "id", Value: "1", Attrs: header.Values{"path": {"/", "/a"}}}},
		{"id=1; =x", invalid},
	})
}

func TestSetCookie_Attrs(t *testing.T) {
	t.Parallel()

	c, ok := header.Set_Cookie.ParseValue("id=1; Expires=Wed, 21 Oct 2015 07:28:00 GMT; Max-Age=-5; Secure").Value()
	if !ok {
		t.Fatal("header.Set_Cookie.ParseValue() ok = false, want true")
	}
	if exp, ok := c.Expires(); !ok || !exp.Equal(time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC)) {
		t.Errorf("c.Expires() = %v, %v", exp, ok)
	}
	if ma, ok := c.MaxAge(); !ok || ma != -5 {
		t.Errorf("c.MaxAge() = %v, %v, want -5, true", ma, ok)
	}
	if !c.Secure() || c.HttpOnly() {
		t.Errorf("c.Secure() = %v, c.HttpOnly() = %v, want true, false", c.Secure(), c.HttpOnly())
	}
}

func TestSetCookie_NoAttrs(t *testing.T) {
	t.Parallel()

	c, _ := header.Set_Cookie.ParseValue("id=1").Value()
	if _, ok := c.Expires(); ok {
		t.Error("c.Expires() ok = true, want false")
	}
	if _, ok := c.MaxAge(); ok {
		t.Error("c.MaxAge() ok = true, want false")
	}
	if c.Secure() || c.HttpOnly() {
		t.Errorf("c.Secure() = %v, c.HttpOnly() = %v, want false, false", c.Secure(), c.HttpOnly())
	}
}
