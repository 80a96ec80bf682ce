package header_test

import (
	"testing"

	"github.com/xenocrat/HTTPHeader/header"
)

func TestForwarded(t *testing.T) {
	t.Parallel()

	checkFieldCases(t, header.Forwarded, []fieldCase{
		{
			`for=192.0.2.60;proto=http;by=203.0.113.43, For="[2001:db8:cafe::17]:4711"`,
			[]map[string]string{
				{"for": "192.0.2.60", "proto": "http", "by": "203.0.113.43"},
				{"for": "[2001:db8:cafe::17]:4711"},
			},
		},
		{"for=a;secret=x", invalid},
		{"for=a;for=b", invalid},
		{"for", invalid},
		{"Proto=https;HOST=a.example", []map[string]string{{"proto": "https", "host": "a.example"}}},
		{"for=a, ", []map[string]string{{"for": "a"}}},
	})
}
