// Package grammar holds the ABNF rules shared by the header parsers.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/xenocrat/HTTPHeader/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

const ErrNodeNotFound Error = "node not found"

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

func matchAll[T constraints.Byteseq](rule abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken reports whether s is an RFC 9110 token.
func IsToken[T constraints.Byteseq](s T) bool { return matchAll(token, s) }

// IsHost reports whether s is syntactically an IP-literal or a reg-name.
func IsHost[T constraints.Byteseq](s T) bool { return matchAll(host, s) }
