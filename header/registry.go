package header

import (
	"context"
	"iter"
	"log/slog"
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/xenocrat/HTTPHeader/internal/errorutil"
	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/log"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// reservedName can never be dispatched by [Extract].
const reservedName = "Extract"

const maxLoggedValue = 128

// logValue leaves dates and URLs to the log handler's formatters.
func logValue(v any) any {
	switch v.(type) {
	case time.Time, *url.URL:
		return v
	default:
		return log.FmtValue(v, false)
	}
}

// builtin holds the fields created by define, keyed by [Field.Key].
// It is only written during package initialization.
var builtin = map[string]Parser{}

var customParsers sync.Map // map[string]Parser

// ParserFunc parses the bare value of an extension header field.
// It reports false if the value is malformed.
type ParserFunc func(value string) (any, bool)

// RegisterParser registers fn as the parser of the extension header field name.
// The name must be a valid field name that is neither reserved nor built in.
// Registering the same name again replaces the previous parser.
func RegisterParser(name string, fn ParserFunc) error {
	if fn == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil parser for %q", name))
	}
	if !grammar.IsToken(name) || !httpguts.ValidHeaderFieldName(name) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid header field name %q", name))
	}
	if util.EqFold(name, reservedName) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("reserved header field name %q", name))
	}
	key := Key(name)
	if _, ok := builtin[key]; ok {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("built-in header field %q", name))
	}
	customParsers.Store(key, &Field[any]{
		name: CanonicName(name),
		key:  key,
		rule: fn,
	})
	return nil
}

// UnregisterParser removes the extension parser registered under name.
func UnregisterParser(name string) {
	customParsers.Delete(Key(name))
}

func lookupParser(key string) (Parser, bool) {
	if p, ok := builtin[key]; ok {
		return p, true
	}
	if p, ok := customParsers.Load(key); ok {
		return p.(Parser), true //nolint:forcetypeassert
	}
	return nil, false
}

// Parsers iterates over all known parsers ordered by key, built-in ones first.
func Parsers() iter.Seq2[string, Parser] {
	return func(yield func(string, Parser) bool) {
		for _, k := range slices.Sorted(maps.Keys(builtin)) {
			if !yield(k, builtin[k]) {
				return
			}
		}

		custom := map[string]Parser{}
		customParsers.Range(func(k, v any) bool {
			custom[k.(string)] = v.(Parser) //nolint:forcetypeassert
			return true
		})
		for _, k := range slices.Sorted(maps.Keys(custom)) {
			if !yield(k, custom[k]) {
				return
			}
		}
	}
}

// Lookup parses src with the parser registered for the header name.
// The name may be given in header form ("Accept-Charset") or key form ("Accept_Charset");
// the match is case-sensitive. src must be a string, a []byte or nil, nil is absent.
func Lookup(name string, src any) (Outcome[any], error) {
	p, ok := lookupParser(Key(name))
	if !ok || util.EqFold(name, reservedName) {
		return Outcome[any]{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown header field %q", name))
	}
	switch v := src.(type) {
	case nil:
		return Absent[any](), nil
	case string:
		return p.ParseAny(v), nil
	case []byte:
		return p.ParseAny(string(v)), nil
	default:
		return Outcome[any]{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("unsupported source type %T", src))
	}
}

// Extraction maps upper-cased field keys to the parsed values of every
// occurrence of the field, in message order.
type Extraction map[string][]any

// Get returns the values of the header named name.
func (e Extraction) Get(name string) []any { return e[util.UCase(Key(name))] }

// ExtractOptions configures [Extract].
type ExtractOptions struct {
	// Logger receives a debug record for every field that was extracted or
	// failed to parse.
	// Defaults to a no-op logger.
	Logger *slog.Logger
}

func (opts *ExtractOptions) logger() *slog.Logger {
	if opts == nil || opts.Logger == nil {
		return log.Noop
	}
	return opts.Logger
}

// Extract parses every field line of msg that has a registered parser.
//
// Each line is matched to a parser by its name with '-' replaced by '_',
// case-sensitively. Unknown fields are skipped, as are fields whose value is
// invalid. Repeated fields are all kept, in message order.
func Extract(msg string, opts *ExtractOptions) Extraction {
	logger := opts.logger()
	res := Extraction{}
	for ln := range Lines(msg) {
		if util.EqFold(ln.Name, reservedName) {
			continue
		}
		p, ok := lookupParser(Key(ln.Name))
		if !ok {
			continue
		}

		out := p.ParseAny(ln.Raw)
		switch out.State() {
		case StatePresent:
			v, _ := out.Value()
			k := util.UCase(p.Key())
			res[k] = append(res[k], v)
			logger.LogAttrs(context.Background(), slog.LevelDebug, "extract header field",
				slog.String("field", p.Name()),
				slog.Any("value", logValue(v)),
			)
		case StateInvalid:
			logger.LogAttrs(context.Background(), slog.LevelDebug, "skip invalid header field",
				slog.String("field", p.Name()),
				slog.Any("value", log.StringValue(util.Ellipsis(ln.Value, maxLoggedValue))),
			)
		}
	}
	return res
}
