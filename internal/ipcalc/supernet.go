package ipcalc

import (
	"net/netip"

	"go4.org/netipx"
)

// Aggregate collapses the given networks into their minimal covering
// set and returns the supernet when that set is a single block. A
// false result is not an error: it means the inputs do not merge into
// one contiguous, CIDR-aligned block.
func Aggregate(networks []netip.Prefix) (netip.Prefix, bool) {
	var builder netipx.IPSetBuilder
	for _, network := range networks {
		builder.AddPrefix(network.Masked())
	}
	set, err := builder.IPSet()
	if err != nil {
		return netip.Prefix{}, false
	}

	prefixes := set.Prefixes()
	if len(prefixes) != 1 {
		return netip.Prefix{}, false
	}
	return prefixes[0], true
}
