package header

import (
	"fmt"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Parser is implemented by every field known to the registry.
type Parser interface {
	// Name returns the canonical header name, e.g. "Accept-Charset".
	Name() string
	// Key returns the registry key, e.g. "Accept_Charset".
	Key() string
	// EnvKey returns the CGI environment variable name, e.g. "HTTP_ACCEPT_CHARSET".
	EnvKey() string
	// ParseAny parses a bare value or a message and boxes the result.
	ParseAny(src string) Outcome[any]
	// FromEnvAny reads the field from env and boxes the result.
	FromEnvAny(env Env) Outcome[any]
}

// Field describes one header field and how its value is parsed into T.
type Field[T any] struct {
	name string
	key  string
	rule func(value string) (T, bool)
}

// define creates a built-in field and adds it to the registry.
func define[T any](name string, rule func(value string) (T, bool)) *Field[T] {
	f := &Field[T]{
		name: name,
		key:  Key(name),
		rule: rule,
	}
	if _, ok := builtin[f.key]; ok {
		panic(fmt.Errorf("header field %q defined twice", name))
	}
	builtin[f.key] = f
	return f
}

func (f *Field[T]) Name() string { return f.name }

func (f *Field[T]) Key() string { return f.key }

func (f *Field[T]) EnvKey() string { return EnvKey(f.name) }

// Parse parses src, which is either the bare field value or a message
// containing the field (see [ExtractField]).
func (f *Field[T]) Parse(src string) Outcome[T] {
	return then(ExtractField(f.name, src), f.rule)
}

// ParseValue parses value as the bare field value.
// An empty value after trimming is absent.
func (f *Field[T]) ParseValue(value string) Outcome[T] {
	value = util.TrimOWS(value)
	if value == "" {
		return Absent[T]()
	}
	return then(Present(value), f.rule)
}

// FromEnv reads the field from env under [Field.EnvKey].
func (f *Field[T]) FromEnv(env Env) Outcome[T] {
	return then(FromEnv(env, f.name), f.rule)
}

func (f *Field[T]) ParseAny(src string) Outcome[any] { return toAny(f.Parse(src)) }

func (f *Field[T]) FromEnvAny(env Env) Outcome[any] { return toAny(f.FromEnv(env)) }

func (f *Field[T]) String() string { return f.name }
