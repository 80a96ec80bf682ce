package header

import (
	"strings"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// MediaType is the value of the Content-Type field.
// Type and Subtype are lower-cased; parameter values keep their case.
type MediaType struct {
	Type    string
	Subtype string
	Params  Values
}

// MIMEType returns "type/subtype".
func (mt MediaType) MIMEType() string { return mt.Type + "/" + mt.Subtype }

// Charset returns the charset parameter, if any.
func (mt MediaType) Charset() (string, bool) { return mt.Params.Last("charset") }

func (mt MediaType) String() string { return mt.MIMEType() }

var Content_Type = define("Content-Type", func(v string) (MediaType, bool) {
	toks, ok := split(';', v)
	if !ok || len(toks) == 0 {
		return MediaType{}, false
	}
	typ, sub, ok := strings.Cut(toks[0], "/")
	if !ok || !grammar.IsToken(typ) || !grammar.IsToken(sub) {
		return MediaType{}, false
	}
	params, ok := parseParams(toks[1:])
	if !ok {
		return MediaType{}, false
	}
	return MediaType{
		Type:    util.LCase(typ),
		Subtype: util.LCase(sub),
		Params:  params,
	}, true
})

// Disposition is the value of the Content-Disposition field.
type Disposition struct {
	Type   string
	Params Values
}

// Filename returns the filename parameter, if any.
func (d Disposition) Filename() (string, bool) { return d.Params.Last("filename") }

var Content_Disposition = define("Content-Disposition", func(v string) (Disposition, bool) {
	toks, ok := split(';', v)
	if !ok || len(toks) == 0 || !grammar.IsToken(toks[0]) {
		return Disposition{}, false
	}
	params, ok := parseParams(toks[1:])
	if !ok {
		return Disposition{}, false
	}
	return Disposition{Type: util.LCase(toks[0]), Params: params}, true
})
