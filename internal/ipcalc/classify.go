package ipcalc

import "net/netip"

// Class is the historical address class of an IPv4 address.
type Class string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
	ClassD Class = "D (Multicast)"
	ClassE Class = "E (Experimental)"

	// ClassUndefined covers leading octets 0 and 127, which the
	// classful ranges never assigned to a class.
	ClassUndefined Class = "Undefined"
)

// Classify returns the address class of addr by its leading octet.
func Classify(addr netip.Addr) Class {
	octet := addr.As4()[0]
	switch {
	case octet >= 1 && octet <= 126:
		return ClassA
	case octet >= 128 && octet <= 191:
		return ClassB
	case octet >= 192 && octet <= 223:
		return ClassC
	case octet >= 224 && octet <= 239:
		return ClassD
	case octet >= 240:
		return ClassE
	default:
		return ClassUndefined
	}
}

var privateRanges = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
}

// IsPrivate reports whether addr belongs to one of the RFC 1918
// private ranges.
func IsPrivate(addr netip.Addr) bool {
	for _, r := range privateRanges {
		if r.Contains(addr) {
			return true
		}
	}
	return false
}
