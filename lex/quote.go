package lex

import "github.com/xenocrat/HTTPHeader/internal/util"

// IsQuoted reports whether s is a complete quoted-string: it starts and ends
// with '"' and the closing quote is not escaped.
func IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	st := state{mode: Quoted}
	for i := 0; i < len(s)-1; i++ {
		st.feed(s[i])
		if i > 0 && !st.quoted && !st.escaped {
			// the string closed before its last byte
			return false
		}
	}
	return st.quoted && !st.escaped
}

// Unquote removes the surrounding quotes of a quoted-string and resolves its
// quoted-pairs. Any other input is returned unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	in := s[1 : len(s)-1]
	for i := 0; i < len(in); i++ {
		if in[i] == '\\' && i+1 < len(in) {
			i++
		}
		sb.WriteByte(in[i])
	}
	return sb.String()
}
