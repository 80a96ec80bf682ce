package header

import (
	"context"
	"iter"
	"strings"

	"github.com/qmuntal/stateless"
	"golang.org/x/net/http/httpguts"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Line is one header field line of a message, with obsolete line folding undone.
type Line struct {
	// Name is the text before the first colon.
	Name string
	// Value is the text after the first colon with surrounding whitespace removed.
	Value string
	// Raw is the whole line as it appeared in the message after unfolding.
	Raw string
}

func (ln Line) String() string { return ln.Raw }

type section string

const (
	sectHead  section = "head"
	sectField section = "field"
	sectBody  section = "body"
)

type lineEvt string

const (
	lineEvtField lineEvt = "field"
	lineEvtFold  lineEvt = "fold"
	lineEvtOther lineEvt = "other"
	lineEvtEnd   lineEvt = "end"
)

const crlf = "\r\n"

// Lines returns the field lines of msg in message order.
//
// The header block ends at the first CRLF CRLF, lines are separated by CRLF.
// A line starting with SP or HTAB continues the previous field line and is
// joined to it with a single space. Lines without a colon or with an invalid
// field name, such as a request or status line, are skipped.
func Lines(msg string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		head, _, _ := strings.Cut(msg, crlf+crlf)

		var (
			cur     Line
			stopped bool
		)
		fsm := stateless.NewStateMachine(sectHead)
		fsm.Configure(sectHead).
			Permit(lineEvtField, sectField).
			Ignore(lineEvtFold).
			Ignore(lineEvtOther).
			Permit(lineEvtEnd, sectBody)
		fsm.Configure(sectField).
			OnEntry(func(_ context.Context, args ...any) error {
				cur = args[0].(Line) //nolint:forcetypeassert
				return nil
			}).
			OnExit(func(context.Context, ...any) error {
				stopped = !yield(cur)
				return nil
			}).
			PermitReentry(lineEvtField).
			InternalTransition(lineEvtFold, func(_ context.Context, args ...any) error {
				ext := args[0].(string) //nolint:forcetypeassert
				if ext == "" {
					return nil
				}
				if cur.Value == "" {
					cur.Value = ext
				} else {
					cur.Value += " " + ext
				}
				cur.Raw = strings.TrimRight(cur.Raw, " \t") + " " + ext
				return nil
			}).
			Permit(lineEvtOther, sectHead).
			Permit(lineEvtEnd, sectBody)

		for raw := range strings.SplitSeq(head, crlf) {
			var err error
			switch {
			case raw != "" && (raw[0] == ' ' || raw[0] == '\t'):
				err = fsm.Fire(lineEvtFold, util.TrimOWS(raw))
			default:
				if ln, ok := parseLine(raw); ok {
					err = fsm.Fire(lineEvtField, ln)
				} else {
					err = fsm.Fire(lineEvtOther)
				}
			}
			if err != nil || stopped {
				return
			}
		}
		fsm.Fire(lineEvtEnd) //nolint:errcheck
	}
}

func parseLine(raw string) (Line, bool) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok || name == "" || !httpguts.ValidHeaderFieldName(name) {
		return Line{}, false
	}
	return Line{
		Name:  name,
		Value: util.TrimOWS(value),
		Raw:   raw,
	}, true
}
