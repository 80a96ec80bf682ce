package header

import (
	"net/url"

	"github.com/xenocrat/HTTPHeader/uri"
)

func parseReference(v string) (*url.URL, bool) {
	u, err := uri.ParseReference(v)
	return u, err == nil
}

var (
	Location         = define("Location", parseReference)
	Content_Location = define("Content-Location", parseReference)
)

var ETag = define("ETag", func(v string) (string, bool) { return v, isEntityTag(v) })
