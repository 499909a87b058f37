package domain

import (
	"net/netip"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

// SummarizeResult is the outcome of a supernet computation. A false
// Aggregatable is a legitimate negative answer, not a failure: the
// inputs simply do not collapse into one contiguous block.
type SummarizeResult struct {
	Inputs       []netip.Prefix
	Aggregatable bool
	Supernet     ipcalc.NetworkInfo
}

type MembershipResult struct {
	Network   netip.Prefix
	Address   netip.Addr
	Contained bool
}
