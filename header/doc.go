// Package header parses HTTP header field values into typed Go values.
//
// # Fields
//
// Every supported header is exposed as a package-level [Field] descriptor named
// after the header, with '-' replaced by '_': [Accept], [Accept_Charset],
// [Content_Type], [Set_Cookie], [WWW_Authenticate] and so on. A field parses
// either a bare value or a whole message:
//
//	out := header.Accept.Parse("text/html;q=0.5, application/json")
//	types, ok := out.Value() // []string{"application/json", "text/html;q=0.5"}
//
//	msg := "GET / HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n"
//	host := header.Host.Parse(msg)
//
// When a message is given, the field's lines are located with [ExtractField]:
// the header block ends at the first empty line, folded lines are joined, and
// if the field is repeated the last non-empty occurrence wins.
//
// # Outcomes
//
// Parsing never fails with an error. It returns an [Outcome] in one of three
// states: absent (the field is not there or is empty), invalid (the field is
// there but its value does not match the field grammar) or present (the value
// was parsed). An invalid field is never reported as absent.
//
// # Environment
//
// Fields can also be read from a CGI style environment, where a field is stored
// under "HTTP_" followed by its upper-cased name with '-' replaced by '_':
//
//	ua := header.User_Agent.FromEnv(header.EnvFunc(os.LookupEnv))
//
// [RequestEnv] adapts an [*http.Request] to the same interface.
//
// # Extraction
//
// [Extract] parses every field of a message that has a registered parser and
// keeps all occurrences in message order, keyed by the upper-cased field key:
//
//	res := header.Extract(msg, nil)
//	res["ACCEPT"] // []any{[]string{"*/*"}}
//
// Parsers for extension fields can be added with [RegisterParser].
package header
