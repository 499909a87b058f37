package domain

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

type loggingCalculatorService struct {
	logger *slog.Logger
	next   CalculatorService
}

func NewLoggingCalculatorService(logger *slog.Logger, next CalculatorService) CalculatorService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingCalculatorService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingCalculatorService) DescribeNetwork(ctx context.Context, cidr string) (ipcalc.NetworkInfo, error) {
	info, err := s.next.DescribeNetwork(ctx, cidr)
	if err != nil {
		s.logger.ErrorContext(ctx, "describe network failed", "cidr", cidr, "err", err.Error())
		return ipcalc.NetworkInfo{}, err
	}

	s.logger.DebugContext(ctx, "network described", "cidr", cidr, "network", info.Network.String())
	return info, nil
}

func (s *loggingCalculatorService) CIDRToNetmask(ctx context.Context, prefixLen int) (netip.Addr, error) {
	mask, err := s.next.CIDRToNetmask(ctx, prefixLen)
	if err != nil {
		s.logger.ErrorContext(ctx, "cidr to netmask failed", "prefix_len", prefixLen, "err", err.Error())
	}
	return mask, err
}

func (s *loggingCalculatorService) NetmaskToCIDR(ctx context.Context, netmask string) (int, error) {
	prefixLen, err := s.next.NetmaskToCIDR(ctx, netmask)
	if err != nil {
		s.logger.ErrorContext(ctx, "netmask to cidr failed", "netmask", netmask, "err", err.Error())
	}
	return prefixLen, err
}

func (s *loggingCalculatorService) SplitNetwork(ctx context.Context, cidr string, subnets int) ([]ipcalc.SubnetRecord, error) {
	records, err := s.next.SplitNetwork(ctx, cidr, subnets)
	if err != nil {
		s.logger.ErrorContext(ctx, "split network failed", "cidr", cidr, "subnets", subnets, "err", err.Error())
		return nil, err
	}

	s.logger.InfoContext(ctx, "network split", "cidr", cidr, "subnets", len(records))
	return records, nil
}

func (s *loggingCalculatorService) AllocateVLSM(ctx context.Context, cidr string, hostCounts []int) ([]ipcalc.SubnetRecord, error) {
	records, err := s.next.AllocateVLSM(ctx, cidr, hostCounts)
	if err != nil {
		s.logger.ErrorContext(ctx, "vlsm allocation failed", "cidr", cidr, "requirements", hostCounts, "err", err.Error())
		return nil, err
	}

	s.logger.InfoContext(ctx, "vlsm allocated", "cidr", cidr, "subnets", len(records))
	return records, nil
}

func (s *loggingCalculatorService) Summarize(ctx context.Context, cidrs []string) (SummarizeResult, error) {
	result, err := s.next.Summarize(ctx, cidrs)
	if err != nil {
		s.logger.ErrorContext(ctx, "summarize failed", "cidrs", cidrs, "err", err.Error())
		return SummarizeResult{}, err
	}

	if result.Aggregatable {
		s.logger.InfoContext(ctx, "networks summarized", "supernet", result.Supernet.Network.String())
	} else {
		s.logger.InfoContext(ctx, "no single supernet", "networks", len(result.Inputs))
	}
	return result, nil
}

func (s *loggingCalculatorService) CheckMembership(ctx context.Context, cidr string, ip string) (MembershipResult, error) {
	result, err := s.next.CheckMembership(ctx, cidr, ip)
	if err != nil {
		s.logger.ErrorContext(ctx, "membership check failed", "cidr", cidr, "ip", ip, "err", err.Error())
		return MembershipResult{}, err
	}

	s.logger.DebugContext(ctx, "membership checked", "cidr", cidr, "ip", ip, "contained", result.Contained)
	return result, nil
}

func (s *loggingCalculatorService) ValidateAddress(ctx context.Context, text string) bool {
	return s.next.ValidateAddress(ctx, text)
}

func (s *loggingCalculatorService) ValidateNetwork(ctx context.Context, text string) bool {
	return s.next.ValidateNetwork(ctx, text)
}
