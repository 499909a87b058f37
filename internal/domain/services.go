package domain

import (
	"context"
	"net/netip"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

type CalculatorService interface {
	DescribeNetwork(ctx context.Context, cidr string) (ipcalc.NetworkInfo, error)
	CIDRToNetmask(ctx context.Context, prefixLen int) (netip.Addr, error)
	NetmaskToCIDR(ctx context.Context, netmask string) (int, error)
	SplitNetwork(ctx context.Context, cidr string, subnets int) ([]ipcalc.SubnetRecord, error)
	AllocateVLSM(ctx context.Context, cidr string, hostCounts []int) ([]ipcalc.SubnetRecord, error)
	Summarize(ctx context.Context, cidrs []string) (SummarizeResult, error)
	CheckMembership(ctx context.Context, cidr string, ip string) (MembershipResult, error)
	ValidateAddress(ctx context.Context, text string) bool
	ValidateNetwork(ctx context.Context, text string) bool
}
