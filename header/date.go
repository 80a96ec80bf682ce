package header

import (
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

var (
	dayNames   = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// ParseIMFDate parses s as an IMF-fixdate, e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
// Obsolete date forms, names in the wrong case and dates that do not exist
// in the calendar are rejected. The result is in UTC.
func ParseIMFDate(s string) (time.Time, bool) {
	node, err := grammar.ParseIMFFixdate(s)
	if err != nil {
		return time.Time{}, false
	}
	if !slices.Contains(dayNames, grammar.MustGetNode(node, "day-name").String()) ||
		!slices.Contains(monthNames, grammar.MustGetNode(node, "month").String()) ||
		!strings.HasSuffix(s, " GMT") {
		return time.Time{}, false
	}

	t, err := time.Parse(http.TimeFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func parseDate(v string) (time.Time, bool) { return ParseIMFDate(v) }

var (
	Date                = define("Date", parseDate)
	Expires             = define("Expires", parseDate)
	Last_Modified       = define("Last-Modified", parseDate)
	If_Modified_Since   = define("If-Modified-Since", parseDate)
	If_Unmodified_Since = define("If-Unmodified-Since", parseDate)
)

// IfRange is the value of the If-Range field: either a date or an entity-tag.
type IfRange struct {
	Date time.Time
	ETag string
}

// IsDate reports whether the validator is a date.
func (ir IfRange) IsDate() bool { return ir.ETag == "" }

var If_Range = define("If-Range", func(v string) (IfRange, bool) {
	if t, ok := ParseIMFDate(v); ok {
		return IfRange{Date: t}, true
	}
	if isEntityTag(v) {
		return IfRange{ETag: v}, true
	}
	return IfRange{}, false
})

// RetryAfter is the value of the Retry-After field: either a date or a delay.
type RetryAfter struct {
	Date  time.Time
	Delay time.Duration
}

// IsDate reports whether the field carried a date.
func (ra RetryAfter) IsDate() bool { return !ra.Date.IsZero() }

var Retry_After = define("Retry-After", func(v string) (RetryAfter, bool) {
	if t, ok := ParseIMFDate(v); ok {
		return RetryAfter{Date: t}, true
	}
	n, ok := parseDelta(v)
	if !ok || n > int64(math.MaxInt64/time.Second) {
		return RetryAfter{}, false
	}
	return RetryAfter{Delay: time.Duration(n) * time.Second}, true
})

// parseDelta parses delta-seconds: 1*DIGIT.
func parseDelta(v string) (int64, bool) {
	if !util.IsDigits(v) {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
