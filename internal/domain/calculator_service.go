package domain

import (
	"context"
	"net/netip"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

type calculatorService struct{}

// NewCalculatorService returns the stateless calculator backed by the
// ipcalc engine.
func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (s *calculatorService) DescribeNetwork(_ context.Context, cidr string) (ipcalc.NetworkInfo, error) {
	prefix, err := ipcalc.ParseCIDR(cidr)
	if err != nil {
		return ipcalc.NetworkInfo{}, err
	}
	return ipcalc.Describe(prefix), nil
}

func (s *calculatorService) CIDRToNetmask(_ context.Context, prefixLen int) (netip.Addr, error) {
	return ipcalc.PrefixToNetmask(prefixLen)
}

func (s *calculatorService) NetmaskToCIDR(_ context.Context, netmask string) (int, error) {
	return ipcalc.NetmaskToPrefix(netmask)
}

func (s *calculatorService) SplitNetwork(_ context.Context, cidr string, subnets int) ([]ipcalc.SubnetRecord, error) {
	prefix, err := ipcalc.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	return ipcalc.SplitEqual(prefix, subnets)
}

func (s *calculatorService) AllocateVLSM(_ context.Context, cidr string, hostCounts []int) ([]ipcalc.SubnetRecord, error) {
	prefix, err := ipcalc.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	return ipcalc.AllocateVLSM(prefix, hostCounts)
}

func (s *calculatorService) Summarize(_ context.Context, cidrs []string) (SummarizeResult, error) {
	networks := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := ipcalc.ParseCIDR(cidr)
		if err != nil {
			return SummarizeResult{}, err
		}
		networks = append(networks, prefix)
	}

	result := SummarizeResult{Inputs: networks}
	if supernet, ok := ipcalc.Aggregate(networks); ok {
		result.Aggregatable = true
		result.Supernet = ipcalc.Describe(supernet)
	}
	return result, nil
}

func (s *calculatorService) CheckMembership(_ context.Context, cidr string, ip string) (MembershipResult, error) {
	prefix, err := ipcalc.ParseCIDR(cidr)
	if err != nil {
		return MembershipResult{}, err
	}
	addr, err := ipcalc.ParseAddr4(ip)
	if err != nil {
		return MembershipResult{}, err
	}
	return MembershipResult{
		Network:   prefix,
		Address:   addr,
		Contained: ipcalc.Contains(prefix, addr),
	}, nil
}

func (s *calculatorService) ValidateAddress(_ context.Context, text string) bool {
	_, err := ipcalc.ParseAddr4(text)
	return err == nil
}

func (s *calculatorService) ValidateNetwork(_ context.Context, text string) bool {
	_, err := ipcalc.ParseCIDR(text)
	return err == nil
}
