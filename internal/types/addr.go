package types

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/xenocrat/HTTPHeader/internal/constraints"
	"github.com/xenocrat/HTTPHeader/internal/errorutil"
	"github.com/xenocrat/HTTPHeader/internal/grammar"
	"github.com/xenocrat/HTTPHeader/internal/util"
)

// Addr is a container for host and optional port.
type Addr struct {
	host    string
	ip      net.IP
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	host = strings.Trim(host, "[]")
	ip := net.ParseIP(host)
	if v := ip.To4(); v != nil {
		ip = v
	}
	return Addr{
		host: host,
		ip:   ip,
	}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	addr := Host(host)
	addr.port = port
	addr.hasPort = true
	return addr
}

// ParseAddr parses a "host[:port]" string into an [Addr].
// The host must be a bracketed IPv6 literal, an IPv4 address or a domain name;
// the port must fit into 16 bits.
func ParseAddr[T constraints.Byteseq](s T) (Addr, error) {
	node, err := grammar.ParseHostport(s)
	if err != nil {
		return Addr{}, errtrace.Wrap(err)
	}

	host := grammar.MustGetNode(node, "host").String()
	if err := validateHost(host); err != nil {
		return Addr{}, errtrace.Wrap(err)
	}

	portNode, ok := node.GetNode("port")
	if !ok {
		return Host(host), nil
	}
	port, err := strconv.ParseUint(portNode.String(), 10, 16)
	if err != nil {
		return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "port %q out of range", portNode.String()))
	}
	return HostPort(host, uint16(port)), nil
}

func validateHost(host string) error {
	if strings.HasPrefix(host, "[") {
		// an IPv4-mapped literal such as [::ffff:1.2.3.4] is a valid IPv6address
		if inner := host[1 : len(host)-1]; !strings.Contains(inner, ":") || net.ParseIP(inner) == nil {
			return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "invalid IPv6 literal %q", host))
		}
		return nil
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if _, ok := dns.IsDomainName(host); !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "invalid domain name %q", host))
	}
	return nil
}

// Host returns the hostname portion of the address without IPv6 brackets.
func (addr Addr) Host() string { return addr.host }

// IP returns the parsed IP representation when the host is an IP literal, otherwise nil.
func (addr Addr) IP() net.IP { return addr.ip }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// String formats the address as host[:port], adding brackets for IPv6 literals.
func (addr Addr) String() string {
	host := addr.host
	if addr.ip != nil {
		host = addr.ip.String()
		// net.IP prints IPv4-mapped addresses in dotted form
		if strings.Contains(addr.host, ":") && !strings.Contains(host, ":") {
			host = "::ffff:" + host
		}
	}
	if !addr.hasPort {
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(int(addr.port)))
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
// Domain names are compared case-insensitively.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	var hostMatch bool
	switch {
	case addr.ip == nil && other.ip == nil:
		hostMatch = util.EqFold(addr.host, other.host)
	case addr.ip != nil && other.ip != nil:
		hostMatch = addr.ip.Equal(other.ip)
	default:
		return false
	}

	return hostMatch && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsValid reports whether the address contains a valid host component.
func (addr Addr) IsValid() bool {
	if addr.ip != nil {
		return true
	}
	return grammar.IsHost(addr.host) && validateHost(addr.host) == nil
}

// IsZero reports whether the address has zero host, IP and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && addr.ip == nil && !addr.hasPort }

// MarshalText encodes the address into its textual representation.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (addr *Addr) UnmarshalText(text []byte) error {
	var err error
	*addr, err = ParseAddr(text)
	if errors.Is(err, grammar.ErrEmptyInput) {
		return nil
	}
	return errtrace.Wrap(err)
}
