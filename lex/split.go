package lex

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/xenocrat/HTTPHeader/internal/errorutil"
)

// Mode selects which regions of the input are protected from splitting.
type Mode uint8

const (
	// Quoted protects quoted-strings delimited by unescaped '"'.
	Quoted Mode = iota + 1
	// Commented protects comments delimited by unescaped '(' and ')', which may nest.
	Commented
)

func (m Mode) String() string {
	switch m {
	case Quoted:
		return "quoted"
	case Commented:
		return "commented"
	default:
		return "unknown"
	}
}

const (
	// ErrBadDelimiter is returned when the delimiter is a quote, parenthesis or backslash.
	ErrBadDelimiter errorutil.Error = "bad delimiter"
	// ErrUnbalanced is returned when quotes or comments in the input are not closed.
	ErrUnbalanced errorutil.Error = "unbalanced quotes or comments"
)

// state tracks quote and comment nesting of the chunk being accumulated.
type state struct {
	mode    Mode
	escaped bool
	quoted  bool
	depth   int
}

// feed consumes c and reports false when c closes a comment that was never opened.
func (st *state) feed(c byte) bool {
	if st.escaped {
		st.escaped = false
		return true
	}
	switch c {
	case '\\':
		st.escaped = true
	case '"':
		if st.mode == Quoted {
			st.quoted = !st.quoted
		}
	case '(':
		if st.mode == Commented {
			st.depth++
		}
	case ')':
		if st.mode == Commented {
			st.depth--
			return st.depth >= 0
		}
	}
	return true
}

func (st *state) closed() bool { return !st.escaped && !st.quoted && st.depth == 0 }

func balanced(s string, mode Mode) bool {
	st := state{mode: mode}
	for i := 0; i < len(s); i++ {
		if !st.feed(s[i]) {
			return false
		}
	}
	return !st.quoted && st.depth == 0
}

// Split splits s around every unescaped delim that is not inside a quoted-string
// (mode [Quoted]) or a comment (mode [Commented]).
//
// Tokens are returned raw, with escapes and quotes kept. An empty input yields
// a single empty token. If quotes or comments of s are not balanced, Split
// returns [ErrUnbalanced] and no tokens.
func Split(delim byte, s string, mode Mode) ([]string, error) {
	switch delim {
	case '"', '(', ')', '\\':
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrBadDelimiter, "%q", delim))
	}
	if mode != Quoted && mode != Commented {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown split mode %d", mode))
	}
	if !balanced(s, mode) {
		return nil, errtrace.Wrap(ErrUnbalanced)
	}

	var (
		toks  []string
		start int
	)
	st := state{mode: mode}
	for i := 0; i < len(s); i++ {
		if s[i] == delim && st.closed() {
			toks = append(toks, s[start:i])
			start = i + 1
			continue
		}
		st.feed(s[i])
	}
	return append(toks, s[start:]), nil
}

// SplitQuoted is a shortcut for Split(delim, s, Quoted).
func SplitQuoted(delim byte, s string) ([]string, error) {
	return errtrace.Wrap2(Split(delim, s, Quoted))
}

// SplitComments is a shortcut for Split(delim, s, Commented).
func SplitComments(delim byte, s string) ([]string, error) {
	return errtrace.Wrap2(Split(delim, s, Commented))
}
