package grammar

import "github.com/ghettovoice/abnf"

// Core and HTTP rules (RFC 5234 Appendix B, RFC 9110, RFC 3986).
// Literals are matched case-insensitively by abnf; callers that need exact case
// re-check the matched node values.

func rng(key string, lo, hi byte) abnf.Operator { return abnf.Range(key, []byte{lo}, []byte{hi}) }

func lit(key, val string) abnf.Operator { return abnf.Literal(key, []byte(val)) }

var (
	alpha  = abnf.Alt("ALPHA", rng("%x41-5A", 0x41, 0x5A), rng("%x61-7A", 0x61, 0x7A))
	digit  = rng("DIGIT", 0x30, 0x39)
	hexdig = abnf.Alt("HEXDIG", digit, rng("%x41-46", 0x41, 0x46), rng("%x61-66", 0x61, 0x66))
	sp     = lit("SP", " ")
	vchar  = rng("VCHAR", 0x21, 0x7E)
	colon  = lit(`":"`, ":")
)

var tchar = abnf.Alt(
	"tchar",
	alpha,
	digit,
	lit(`"!"`, "!"), lit(`"#"`, "#"), lit(`"$"`, "$"), lit(`"%"`, "%"), lit(`"&"`, "&"),
	lit(`"'"`, "'"), lit(`"*"`, "*"), lit(`"+"`, "+"), lit(`"-"`, "-"), lit(`"."`, "."),
	lit(`"^"`, "^"), lit(`"_"`, "_"), lit("\"`\"", "`"), lit(`"|"`, "|"), lit(`"~"`, "~"),
)

// token = 1*tchar
var token = abnf.Repeat1Inf("token", tchar)

// IMF-fixdate  = day-name "," SP date1 SP time-of-day SP GMT
// date1        = day SP month SP year
// time-of-day  = hour ":" minute ":" second
var imfFixdate = abnf.Concat(
	"IMF-fixdate",
	abnf.Repeat("day-name", 3, 3, alpha),
	lit(`","`, ","),
	sp,
	abnf.Concat(
		"date1",
		abnf.Repeat("day", 2, 2, digit),
		sp,
		abnf.Repeat("month", 3, 3, alpha),
		sp,
		abnf.Repeat("year", 4, 4, digit),
	),
	sp,
	abnf.Concat(
		"time-of-day",
		abnf.Repeat("hour", 2, 2, digit),
		colon,
		abnf.Repeat("minute", 2, 2, digit),
		colon,
		abnf.Repeat("second", 2, 2, digit),
	),
	sp,
	lit("GMT", "GMT"),
)

// host        = IP-literal / reg-name
// IP-literal  = "[" 1*( HEXDIG / ":" / "." ) "]"
// reg-name    = 1*( ALPHA / DIGIT / "-" / "." / "_" )
var host = abnf.Alt(
	"host",
	abnf.Concat(
		"IP-literal",
		lit(`"["`, "["),
		abnf.Repeat1Inf("IPv6address", abnf.Alt("ipv6-char", hexdig, colon, lit(`"."`, "."))),
		lit(`"]"`, "]"),
	),
	abnf.Repeat1Inf(
		"reg-name",
		abnf.Alt("reg-char", alpha, digit, lit(`"-"`, "-"), lit(`"."`, "."), lit(`"_"`, "_")),
	),
)

// port = 1*5DIGIT
var port = abnf.Repeat("port", 1, 5, digit)

// hostport = host [ ":" port ]
var hostport = abnf.Concat("hostport", host, abnf.Optional("[ \":\" port ]", abnf.Concat("\":\" port", colon, port)))

// origin = scheme "://" hostport [ "/" *VCHAR ]
var origin = abnf.Concat(
	"origin",
	abnf.Repeat1Inf("scheme", alpha),
	lit(`"://"`, "://"),
	hostport,
	abnf.Optional("[ path ]", abnf.Concat("path", lit(`"/"`, "/"), abnf.Repeat0Inf("*VCHAR", vchar))),
)
