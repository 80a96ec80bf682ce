package header

import (
	"strings"
)

// ExtractField isolates the value of the header named name from src.
//
// src is treated as a message when it contains CRLF CRLF or one of its
// CRLF separated lines starts with "name:" (case-insensitive). In that case
// the field lines of the header block are scanned (see [Lines]) and the last
// occurrence with a non-empty value wins. Otherwise src is the bare field
// value with surrounding whitespace and line breaks removed.
// An empty value is absent.
func ExtractField(name, src string) Outcome[string] {
	if !isMessage(name, src) {
		if v := strings.Trim(src, " \t\r\n"); v != "" {
			return Present(v)
		}
		return Absent[string]()
	}

	var (
		val   string
		found bool
	)
	for ln := range Lines(src) {
		if ln.Value != "" && sameName(ln.Name, name) {
			val, found = ln.Value, true
		}
	}
	if !found {
		return Absent[string]()
	}
	return Present(val)
}

func isMessage(name, src string) bool {
	if strings.Contains(src, crlf+crlf) {
		return true
	}
	for ln := range strings.SplitSeq(src, crlf) {
		if len(ln) > len(name) && ln[len(name)] == ':' && sameName(ln[:len(name)], name) {
			return true
		}
	}
	return false
}
