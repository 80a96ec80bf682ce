package header

import (
	"time"

	"github.com/xenocrat/HTTPHeader/internal/grammar"
)

// Metric is one server-timing-metric of the Server-Timing field.
type Metric struct {
	Name   string
	Params Values
}

// Duration returns the dur parameter, in milliseconds on the wire.
func (m Metric) Duration() (time.Duration, bool) {
	v, ok := m.Params.Last("dur")
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(v + "ms")
	if err != nil {
		return 0, false
	}
	return d, true
}

var Server_Timing = define("Server-Timing", func(v string) ([]Metric, bool) {
	elems, ok := splitList(v)
	if !ok {
		return nil, false
	}
	out := make([]Metric, 0, len(elems))
	for _, elem := range elems {
		parts, ok := split(';', elem)
		if !ok || len(parts) == 0 || !grammar.IsToken(parts[0]) {
			return nil, false
		}
		params, ok := parseParams(parts[1:])
		if !ok {
			return nil, false
		}
		out = append(out, Metric{Name: parts[0], Params: params})
	}
	return out, true
})
