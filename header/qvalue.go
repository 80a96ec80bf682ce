package header

import (
	"slices"
	"strconv"
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/util"
)

// QValue returns the weight carried by a trailing ";q=" parameter of s,
// or 1 if there is none. Only digits and dots are accepted in the weight;
// if it has more than one dot, the part before the second dot is used.
func QValue(s string) float64 {
	i := strings.LastIndexByte(s, ';')
	if i < 0 {
		return 1
	}
	p := util.TrimOWS(s[i+1:])
	if len(p) < 3 || !util.HasPrefixFold(p, "q=") {
		return 1
	}
	w := p[2:]
	if strings.Trim(w, "0123456789.") != "" {
		return 1
	}
	if j := strings.IndexByte(w, '.'); j >= 0 {
		if k := strings.IndexByte(w[j+1:], '.'); k >= 0 {
			w = w[:j+1+k]
		}
	}
	q, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0
	}
	return q
}

// CompareQ orders a before b when a has the higher weight.
// Equal weights compare equal.
func CompareQ(a, b string) int {
	qa, qb := QValue(a), QValue(b)
	switch {
	case qa > qb:
		return -1
	case qa < qb:
		return 1
	default:
		return 0
	}
}

// QSort sorts ss in place by descending weight, keeping the order of equal weights.
func QSort(ss []string) { slices.SortStableFunc(ss, CompareQ) }
