package header

import (
	"fmt"
	"strconv"

	"github.com/xenocrat/HTTPHeader/internal/errorutil"
)

// State is the state of an [Outcome].
type State uint8

const (
	// StateAbsent means the field is missing or empty.
	StateAbsent State = iota
	// StateInvalid means the field is present but its value is malformed.
	StateInvalid
	// StatePresent means the field value was parsed.
	StatePresent
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateInvalid:
		return "invalid"
	case StatePresent:
		return "present"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

const (
	ErrAbsent  errorutil.Error = "header field is absent"
	ErrInvalid errorutil.Error = "header field is invalid"
)

// Outcome is the result of parsing a header field.
// The zero value is an absent outcome.
type Outcome[T any] struct {
	state State
	val   T
}

// Absent returns an outcome for a missing field.
func Absent[T any]() Outcome[T] { return Outcome[T]{state: StateAbsent} }

// Invalid returns an outcome for a malformed field.
func Invalid[T any]() Outcome[T] { return Outcome[T]{state: StateInvalid} }

// Present returns an outcome holding v.
func Present[T any](v T) Outcome[T] { return Outcome[T]{state: StatePresent, val: v} }

func (o Outcome[T]) State() State { return o.state }

func (o Outcome[T]) IsAbsent() bool { return o.state == StateAbsent }

func (o Outcome[T]) IsInvalid() bool { return o.state == StateInvalid }

func (o Outcome[T]) IsPresent() bool { return o.state == StatePresent }

// Value returns the parsed value and true if the outcome is present.
func (o Outcome[T]) Value() (T, bool) { return o.val, o.state == StatePresent }

// Err returns nil for a present outcome, [ErrAbsent] or [ErrInvalid] otherwise.
func (o Outcome[T]) Err() error {
	switch o.state {
	case StatePresent:
		return nil
	case StateInvalid:
		return ErrInvalid //errtrace:skip
	default:
		return ErrAbsent //errtrace:skip
	}
}

// Or returns the parsed value, or def if the outcome is not present.
func (o Outcome[T]) Or(def T) T {
	if o.state == StatePresent {
		return o.val
	}
	return def
}

func (o Outcome[T]) String() string {
	if o.state == StatePresent {
		return fmt.Sprint(o.val)
	}
	return o.state.String()
}

// Format implements [fmt.Formatter].
func (o Outcome[T]) Format(f fmt.State, verb rune) {
	if o.state != StatePresent {
		fmt.Fprint(f, o.state.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), o.val)
}

// then applies rule to the value of a present outcome.
// A rule failure turns the outcome invalid.
func then[T, U any](o Outcome[T], rule func(T) (U, bool)) Outcome[U] {
	switch o.state {
	case StatePresent:
		v, ok := rule(o.val)
		if !ok {
			return Invalid[U]()
		}
		return Present(v)
	case StateInvalid:
		return Invalid[U]()
	default:
		return Absent[U]()
	}
}

func toAny[T any](o Outcome[T]) Outcome[any] {
	return then(o, func(v T) (any, bool) { return v, true })
}
