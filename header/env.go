package header

//go:generate go tool mockgen -destination=../internal/testutil/envmock/env.go -package=envmock github.com/xenocrat/HTTPHeader/header Env

import (
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Env is a read-only source of request header fields keyed by CGI variable
// names such as "HTTP_USER_AGENT".
type Env interface {
	Lookup(key string) (string, bool)
}

// EnvMap is an [Env] backed by a map.
type EnvMap map[string]string

func (m EnvMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvFunc adapts a lookup function, such as [os.LookupEnv], to [Env].
type EnvFunc func(key string) (string, bool)

func (f EnvFunc) Lookup(key string) (string, bool) { return f(key) }

// RequestEnv returns an [Env] exposing the header fields of r the way a CGI
// server would. Repeated fields are joined with ", ". Names that map to the
// same variable, such as "X-Foo" and "X_Foo", are joined in sorted name order.
// The Host field is served from r.Host when r has no explicit Host header.
func RequestEnv(r *http.Request) Env {
	return EnvFunc(func(key string) (string, bool) {
		if r == nil {
			return "", false
		}
		var vals []string
		for _, name := range slices.Sorted(maps.Keys(r.Header)) {
			if EnvKey(name) == key {
				vals = append(vals, r.Header[name]...)
			}
		}
		if len(vals) == 0 && key == "HTTP_HOST" && r.Host != "" {
			return r.Host, true
		}
		if len(vals) == 0 {
			return "", false
		}
		return strings.Join(vals, ", "), true
	})
}

// FromEnv reads the header named name from env. A missing or blank variable is absent.
func FromEnv(env Env, name string) Outcome[string] {
	if env == nil {
		return Absent[string]()
	}
	v, ok := env.Lookup(EnvKey(name))
	if !ok {
		return Absent[string]()
	}
	if v = util.TrimOWS(v); v == "" {
		return Absent[string]()
	}
	return Present(v)
}
