package http

import (
	"fmt"

	"github.com/rviana/subnetcalc/internal/domain"
	"github.com/rviana/subnetcalc/internal/ipcalc"
)

// NetworkResponse is the JSON view of a network descriptor. FirstHost
// and LastHost are omitted for blocks too small to have a usable range.
type NetworkResponse struct {
	Network        string `json:"network" example:"192.168.1.0"`
	CIDR           string `json:"cidr" example:"/24"`
	Netmask        string `json:"netmask" example:"255.255.255.0"`
	Broadcast      string `json:"broadcast" example:"192.168.1.255"`
	FirstHost      string `json:"first_host,omitempty" example:"192.168.1.1"`
	LastHost       string `json:"last_host,omitempty" example:"192.168.1.254"`
	TotalHosts     uint64 `json:"total_hosts" example:"254"`
	TotalAddresses uint64 `json:"total_addresses" example:"256"`
	Class          string `json:"class" example:"C"`
	Type           string `json:"type" example:"Private"`
}

// SubnetResponse is one allocated subnet. RequestedHosts is present
// only for VLSM results.
type SubnetResponse struct {
	SubnetID       int `json:"subnet_id" example:"1"`
	RequestedHosts int `json:"requested_hosts,omitempty" example:"50"`
	NetworkResponse
}

// DescribeNetworkRequest asks for the full descriptor of one network.
type DescribeNetworkRequest struct {
	CIDR string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
}

// SplitNetworkRequest asks for an equal split into Subnets parts.
type SplitNetworkRequest struct {
	CIDR    string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	Subnets int    `json:"subnets" example:"4" validate:"required"`
}

// VLSMRequest asks for one subnet per host requirement.
type VLSMRequest struct {
	CIDR  string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	Hosts []int  `json:"hosts" example:"50,25,10" validate:"required"`
}

// SummarizeRequest asks for the supernet of a list of networks.
type SummarizeRequest struct {
	CIDRs []string `json:"cidrs" example:"192.168.0.0/24,192.168.1.0/24" validate:"required"`
}

// SummarizeResponse reports the supernet when one exists. A false
// Aggregatable with a 200 status is the no-single-supernet outcome.
type SummarizeResponse struct {
	Aggregatable bool             `json:"aggregatable" example:"true"`
	Supernet     *NetworkResponse `json:"supernet,omitempty"`
	Networks     []string         `json:"networks" example:"192.168.0.0/24,192.168.1.0/24"`
}

// MembershipRequest asks whether IP belongs to CIDR.
type MembershipRequest struct {
	CIDR string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	IP   string `json:"ip" example:"192.168.1.200" validate:"required"`
}

type MembershipResponse struct {
	Network   string `json:"network" example:"192.168.1.0/24"`
	IP        string `json:"ip" example:"192.168.1.200"`
	Contained bool   `json:"contained" example:"true"`
}

// CIDRToMaskRequest converts a prefix length to a dotted netmask.
type CIDRToMaskRequest struct {
	PrefixLen int `json:"prefix_len" example:"24"`
}

// MaskToCIDRRequest converts a dotted netmask to a prefix length.
type MaskToCIDRRequest struct {
	Netmask string `json:"netmask" example:"255.255.255.0" validate:"required"`
}

type ConversionResponse struct {
	PrefixLen int    `json:"prefix_len" example:"24"`
	Netmask   string `json:"netmask" example:"255.255.255.0"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid network"`
}

func networkToResponse(info ipcalc.NetworkInfo) NetworkResponse {
	resp := NetworkResponse{
		Network:        info.Network.Addr().String(),
		CIDR:           fmt.Sprintf("/%d", info.Network.Bits()),
		Netmask:        info.Netmask.String(),
		Broadcast:      info.Broadcast.String(),
		TotalHosts:     info.UsableHosts,
		TotalAddresses: info.TotalAddresses,
		Class:          string(info.Class),
		Type:           "Public",
	}
	if info.Private {
		resp.Type = "Private"
	}
	if info.FirstHost.IsValid() {
		resp.FirstHost = info.FirstHost.String()
		resp.LastHost = info.LastHost.String()
	}
	return resp
}

func subnetToResponse(rec ipcalc.SubnetRecord) SubnetResponse {
	return SubnetResponse{
		SubnetID:        rec.Ordinal,
		RequestedHosts:  rec.RequestedHosts,
		NetworkResponse: networkToResponse(rec.NetworkInfo),
	}
}

func subnetsToResponse(records []ipcalc.SubnetRecord) []SubnetResponse {
	out := make([]SubnetResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, subnetToResponse(rec))
	}
	return out
}

func summarizeToResponse(result domain.SummarizeResult) SummarizeResponse {
	resp := SummarizeResponse{
		Aggregatable: result.Aggregatable,
		Networks:     make([]string, 0, len(result.Inputs)),
	}
	for _, network := range result.Inputs {
		resp.Networks = append(resp.Networks, network.String())
	}
	if result.Aggregatable {
		supernet := networkToResponse(result.Supernet)
		resp.Supernet = &supernet
	}
	return resp
}
