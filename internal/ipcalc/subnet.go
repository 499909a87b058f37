package ipcalc

import (
	"fmt"
	"math/bits"
	"net/netip"
	"sort"
)

// SubnetRecord is one allocated subnet. Ordinal is its 1-based
// position: enumeration order for equal splits, original request order
// for VLSM. RequestedHosts is set only for VLSM allocations.
type SubnetRecord struct {
	Ordinal        int
	RequestedHosts int
	NetworkInfo
}

// SplitEqual divides a network into count equal-sized subnets and
// returns the first count of them in ascending address order.
func SplitEqual(prefix netip.Prefix, count int) ([]SubnetRecord, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: subnet count must be positive, got %d", ErrInvalidArgument, count)
	}

	prefix = prefix.Masked()
	newBits := prefix.Bits() + bitsFor(uint64(count))
	if newBits > 32 {
		return nil, fmt.Errorf("%w: cannot split %s into %d subnets", ErrInsufficientSpace, prefix, count)
	}

	records := make([]SubnetRecord, 0, count)
	base := uint64(addrToUint32(prefix.Addr()))
	step := uint64(1) << (32 - newBits)
	for i := 0; i < count; i++ {
		subnet := netip.PrefixFrom(uint32ToAddr(uint32(base)), newBits)
		records = append(records, SubnetRecord{
			Ordinal:     i + 1,
			NetworkInfo: Describe(subnet),
		})
		base += step
	}
	return records, nil
}

// AllocateVLSM carves one subnet per host requirement out of a
// network. Requirements are satisfied largest-first against the
// lowest-addressed free space so small allocations cannot fragment the
// block and starve larger ones, but the returned records are in the
// original request order.
//
// A requirement of zero (or less) is rejected: under network+broadcast
// accounting the smallest allocatable block would still hold no usable
// host, so the request cannot be meant literally.
func AllocateVLSM(prefix netip.Prefix, hostCounts []int) ([]SubnetRecord, error) {
	prefix = prefix.Masked()
	if len(hostCounts) == 0 {
		return []SubnetRecord{}, nil
	}

	type request struct {
		pos   int
		hosts int
	}
	requests := make([]request, len(hostCounts))
	for i, hosts := range hostCounts {
		if hosts <= 0 {
			return nil, fmt.Errorf("%w: host requirement must be positive, got %d", ErrInvalidArgument, hosts)
		}
		requests[i] = request{pos: i, hosts: hosts}
	}
	// Stable keeps equal-sized requirements in request order.
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].hosts > requests[j].hosts
	})

	records := make([]SubnetRecord, len(hostCounts))
	cursor := prefix
	exhausted := false
	for _, req := range requests {
		if exhausted {
			return nil, fmt.Errorf("%w: no free space left for %d hosts", ErrInsufficientSpace, req.hosts)
		}

		// +2 reserves the network and broadcast addresses.
		newBits := 32 - bitsFor(uint64(req.hosts)+2)
		if newBits < cursor.Bits() {
			return nil, fmt.Errorf("%w: no room for %d hosts in %s", ErrInsufficientSpace, req.hosts, cursor)
		}

		allocated := netip.PrefixFrom(cursor.Addr(), newBits)
		records[req.pos] = SubnetRecord{
			Ordinal:        req.pos + 1,
			RequestedHosts: req.hosts,
			NetworkInfo:    Describe(allocated),
		}

		free := subtract(cursor, allocated)
		if len(free) == 0 {
			exhausted = true
		} else {
			cursor = free[0]
		}
	}
	return records, nil
}

// subtract removes an aligned sub-block from a block that covers it
// and returns the free fragments, largest first. It halves the block
// toward the sub-block, keeping the untouched sibling at each level.
func subtract(block, sub netip.Prefix) []netip.Prefix {
	var free []netip.Prefix
	for block.Bits() < sub.Bits() {
		half := block.Bits() + 1
		lower := netip.PrefixFrom(block.Addr(), half)
		upper := netip.PrefixFrom(uint32ToAddr(addrToUint32(block.Addr())|uint32(1)<<(32-half)), half)
		if lower.Contains(sub.Addr()) {
			free = append(free, upper)
			block = lower
		} else {
			free = append(free, lower)
			block = upper
		}
	}
	return free
}

// bitsFor returns ceil(log2(n)) for n >= 1.
func bitsFor(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}
