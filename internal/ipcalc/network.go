package ipcalc

import (
	"net/netip"

	"go4.org/netipx"
)

// NetworkInfo describes one IPv4 network. FirstHost and LastHost are
// the zero Addr when the block is too small to have a usable range
// (fewer than four addresses).
type NetworkInfo struct {
	Network        netip.Prefix
	Netmask        netip.Addr
	Broadcast      netip.Addr
	FirstHost      netip.Addr
	LastHost       netip.Addr
	UsableHosts    uint64
	TotalAddresses uint64
	Class          Class
	Private        bool
}

// Describe computes the full descriptor for a network. Host-form
// prefixes are masked down to their network boundary first.
func Describe(prefix netip.Prefix) NetworkInfo {
	prefix = prefix.Masked()
	netmask, _ := PrefixToNetmask(prefix.Bits())
	blockRange := netipx.RangeOfPrefix(prefix)
	total := uint64(1) << (32 - prefix.Bits())

	info := NetworkInfo{
		Network:        prefix,
		Netmask:        netmask,
		Broadcast:      blockRange.To(),
		TotalAddresses: total,
		Class:          Classify(prefix.Addr()),
		Private:        IsPrivate(prefix.Addr()),
	}

	// /31 and /32 have no network/broadcast pair to subtract, so the
	// usable count clamps to zero and the host range stays empty.
	if total >= 2 {
		info.UsableHosts = total - 2
	}
	if total >= 4 {
		info.FirstHost = uint32ToAddr(addrToUint32(prefix.Addr()) + 1)
		info.LastHost = uint32ToAddr(addrToUint32(blockRange.To()) - 1)
	}
	return info
}

// Contains reports whether addr falls inside the network.
func Contains(network netip.Prefix, addr netip.Addr) bool {
	return network.Masked().Contains(addr)
}
