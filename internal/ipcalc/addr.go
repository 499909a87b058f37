// Package ipcalc implements IPv4 network arithmetic: address and
// netmask validation, CIDR conversions, network description, FLSM and
// VLSM subnetting, supernet aggregation and membership testing.
//
// Every function is a pure computation over immutable values; the
// package holds no state and is safe for concurrent use.
package ipcalc

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddr4 parses a dotted-decimal IPv4 address. IPv6 forms,
// including IPv4-mapped ones, are rejected.
func ParseAddr4(text string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(text)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, text)
	}
	return addr, nil
}

// ParseCIDR parses a network in A.B.C.D/n form, where the suffix may
// also be a dotted netmask (192.168.1.0/255.255.255.0). The address
// does not have to be the network boundary; it is masked down to it.
func ParseCIDR(text string) (netip.Prefix, error) {
	addrText, suffix, found := strings.Cut(text, "/")
	if !found {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidNetwork, text)
	}

	addr, err := ParseAddr4(addrText)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidNetwork, text)
	}

	var prefixLen int
	if strings.Contains(suffix, ".") {
		prefixLen, err = NetmaskToPrefix(suffix)
	} else {
		prefixLen, err = strconv.Atoi(suffix)
		if err == nil && (prefixLen < 0 || prefixLen > 32) {
			err = ErrInvalidPrefix
		}
	}
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidNetwork, text)
	}

	return netip.PrefixFrom(addr, prefixLen).Masked(), nil
}

// PrefixToNetmask returns the dotted-decimal netmask for a prefix
// length in [0,32].
func PrefixToNetmask(prefixLen int) (netip.Addr, error) {
	if prefixLen < 0 || prefixLen > 32 {
		return netip.Addr{}, fmt.Errorf("%w: %d is outside [0,32]", ErrInvalidPrefix, prefixLen)
	}
	if prefixLen == 0 {
		return uint32ToAddr(0), nil
	}
	return uint32ToAddr(^uint32(0) << (32 - prefixLen)), nil
}

// NetmaskToPrefix returns the prefix length of a dotted-decimal
// netmask. Masks whose bit pattern is not contiguous ones followed by
// zeros are rejected, never truncated.
func NetmaskToPrefix(text string) (int, error) {
	addr, err := ParseAddr4(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMask, text)
	}

	mask := addrToUint32(addr)
	leadingOnes := bits.LeadingZeros32(^mask)
	if bits.OnesCount32(mask) != leadingOnes {
		return 0, fmt.Errorf("%w: %q has non-contiguous bits", ErrInvalidMask, text)
	}
	return leadingOnes, nil
}

func addrToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

func uint32ToAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
