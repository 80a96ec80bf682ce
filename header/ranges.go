package header

import (
	"strings"

	"github.com/samber/lo"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

// ByteRanges is the value of the Range field.
// For the "bytes" unit every range is checked to be int-range or suffix-range.
type ByteRanges struct {
	Unit   string
	Ranges []string
}

// Span is one range of a "bytes" Range field.
// Last is -1 for an open range; First is -1 for a suffix range, in which
// case Last holds the suffix length.
type Span struct {
	First int64
	Last  int64
}

// Spans returns the ranges as spans, if the unit is "bytes".
func (br ByteRanges) Spans() ([]Span, bool) {
	if !util.EqFold(br.Unit, "bytes") {
		return nil, false
	}
	spans := make([]Span, 0, len(br.Ranges))
	for _, r := range br.Ranges {
		sp, ok := parseSpan(r)
		if !ok {
			return nil, false
		}
		spans = append(spans, sp)
	}
	return spans, true
}

func parseSpan(r string) (Span, bool) {
	first, last, ok := strings.Cut(r, "-")
	if !ok {
		return Span{}, false
	}
	if first == "" {
		n, ok := parseDelta(last)
		return Span{First: -1, Last: n}, ok
	}
	f, ok := parseDelta(first)
	if !ok {
		return Span{}, false
	}
	if last == "" {
		return Span{First: f, Last: -1}, true
	}
	l, ok := parseDelta(last)
	return Span{First: f, Last: l}, ok && f <= l
}

var Range = define("Range", func(v string) (ByteRanges, bool) {
	unit, set, ok := strings.Cut(v, "=")
	if !ok || unit == "" || !lo.EveryBy([]byte(unit), isAlnum) {
		return ByteRanges{}, false
	}
	ranges, ok := splitList(set)
	if !ok {
		return ByteRanges{}, false
	}
	br := ByteRanges{Unit: unit, Ranges: ranges}
	if util.EqFold(unit, "bytes") {
		if _, ok := br.Spans(); !ok {
			return ByteRanges{}, false
		}
	}
	return br, true
})

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
