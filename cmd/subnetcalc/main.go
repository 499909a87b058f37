// Command subnetcalc is the interactive terminal front end for the
// calculator engine. It only reads input and renders results; all
// address arithmetic happens in the service it wraps.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rviana/subnetcalc/internal/domain"
	"github.com/rviana/subnetcalc/internal/ipcalc"
)

const banner = `==============================================================
                    SUBNET CALCULATOR
            IPv4 subnetting, VLSM and supernetting
==============================================================`

const menu = `
  1. Show network information
  2. Convert CIDR prefix to netmask
  3. Convert netmask to CIDR prefix
  4. Split network into equal subnets (FLSM)
  5. Allocate variable-length subnets (VLSM)
  6. Check whether an IP belongs to a network
  7. Summarize networks into a supernet
  8. Validate an IP address
  9. Validate a network
  0. Quit`

type cli struct {
	in      *bufio.Scanner
	out     io.Writer
	service domain.CalculatorService
}

func main() {
	c := &cli{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		service: domain.NewCalculatorService(),
	}
	c.run(context.Background())
}

func (c *cli) run(ctx context.Context) {
	fmt.Fprintln(c.out, banner)

	for {
		fmt.Fprintln(c.out, menu)
		choice, ok := c.promptInt("Choose an option")
		if !ok {
			return
		}

		switch choice {
		case 0:
			fmt.Fprintln(c.out, "Bye!")
			return
		case 1:
			c.networkInfo(ctx)
		case 2:
			c.cidrToNetmask(ctx)
		case 3:
			c.netmaskToCIDR(ctx)
		case 4:
			c.splitNetwork(ctx)
		case 5:
			c.allocateVLSM(ctx)
		case 6:
			c.checkMembership(ctx)
		case 7:
			c.summarize(ctx)
		case 8:
			c.validateAddress(ctx)
		case 9:
			c.validateNetwork(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid option, pick a number from 0 to 9.")
		}
	}
}

func (c *cli) networkInfo(ctx context.Context) {
	cidr, ok := c.prompt("Network (e.g. 192.168.1.0/24)")
	if !ok {
		return
	}

	info, err := c.service.DescribeNetwork(ctx, cidr)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.printNetworkInfo(info)
}

func (c *cli) cidrToNetmask(ctx context.Context) {
	prefixLen, ok := c.promptInt("CIDR prefix length (0-32)")
	if !ok {
		return
	}

	mask, err := c.service.CIDRToNetmask(ctx, prefixLen)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "/%d = %s\n", prefixLen, mask)
}

func (c *cli) netmaskToCIDR(ctx context.Context) {
	netmask, ok := c.prompt("Netmask (e.g. 255.255.255.0)")
	if !ok {
		return
	}

	prefixLen, err := c.service.NetmaskToCIDR(ctx, netmask)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%s = /%d\n", netmask, prefixLen)
}

func (c *cli) splitNetwork(ctx context.Context) {
	cidr, ok := c.prompt("Network (e.g. 192.168.1.0/24)")
	if !ok {
		return
	}
	subnets, ok := c.promptInt("Number of subnets")
	if !ok {
		return
	}

	records, err := c.service.SplitNetwork(ctx, cidr, subnets)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "\n%-4s %-18s %-6s %-16s %-16s %s\n", "ID", "Network", "CIDR", "Netmask", "Broadcast", "Hosts")
	for _, rec := range records {
		fmt.Fprintf(c.out, "%-4d %-18s /%-5d %-16s %-16s %d\n",
			rec.Ordinal, rec.Network.Addr(), rec.Network.Bits(), rec.Netmask, rec.Broadcast, rec.UsableHosts)
	}
}

func (c *cli) allocateVLSM(ctx context.Context) {
	cidr, ok := c.prompt("Network (e.g. 192.168.1.0/24)")
	if !ok {
		return
	}
	fmt.Fprintln(c.out, "Host requirements per subnet, comma-separated (e.g. 50,25,10)")
	list, ok := c.prompt("Requirements")
	if !ok {
		return
	}

	hostCounts, err := domain.ParseHostCounts(list)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	records, err := c.service.AllocateVLSM(ctx, cidr, hostCounts)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "\n%-6s %-10s %-18s %-6s %-10s %s\n", "Order", "Requested", "Network", "CIDR", "Usable", "Host range")
	for _, rec := range records {
		hostRange := "-"
		if rec.FirstHost.IsValid() {
			hostRange = fmt.Sprintf("%s - %s", rec.FirstHost, rec.LastHost)
		}
		fmt.Fprintf(c.out, "%-6d %-10d %-18s /%-5d %-10d %s\n",
			rec.Ordinal, rec.RequestedHosts, rec.Network.Addr(), rec.Network.Bits(), rec.UsableHosts, hostRange)
	}
}

func (c *cli) checkMembership(ctx context.Context) {
	ip, ok := c.prompt("IP address")
	if !ok {
		return
	}
	cidr, ok := c.prompt("Network (e.g. 192.168.1.0/24)")
	if !ok {
		return
	}

	result, err := c.service.CheckMembership(ctx, cidr, ip)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if result.Contained {
		fmt.Fprintf(c.out, "%s belongs to %s\n", result.Address, result.Network)
	} else {
		fmt.Fprintf(c.out, "%s does NOT belong to %s\n", result.Address, result.Network)
	}
}

func (c *cli) summarize(ctx context.Context) {
	fmt.Fprintln(c.out, "Networks, comma-separated (e.g. 192.168.1.0/26,192.168.1.64/26)")
	list, ok := c.prompt("Networks")
	if !ok {
		return
	}

	cidrs, err := domain.ParseCIDRList(list)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	result, err := c.service.Summarize(ctx, cidrs)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if !result.Aggregatable {
		fmt.Fprintln(c.out, "No single supernet covers these networks.")
		return
	}
	fmt.Fprintf(c.out, "Supernet: %s\n", result.Supernet.Network)
	c.printNetworkInfo(result.Supernet)
}

func (c *cli) validateAddress(ctx context.Context) {
	text, ok := c.prompt("IP address")
	if !ok {
		return
	}

	if !c.service.ValidateAddress(ctx, text) {
		fmt.Fprintf(c.out, "%s is INVALID\n", text)
		return
	}

	fmt.Fprintf(c.out, "%s is valid\n", text)
	addr, err := ipcalc.ParseAddr4(text)
	if err == nil {
		kind := "Public"
		if ipcalc.IsPrivate(addr) {
			kind = "Private"
		}
		fmt.Fprintf(c.out, "  Class: %s\n  Type:  %s\n", ipcalc.Classify(addr), kind)
	}
}

func (c *cli) validateNetwork(ctx context.Context) {
	text, ok := c.prompt("Network (e.g. 192.168.1.0/24)")
	if !ok {
		return
	}

	if c.service.ValidateNetwork(ctx, text) {
		fmt.Fprintf(c.out, "%s is a valid network\n", text)
	} else {
		fmt.Fprintf(c.out, "%s is NOT a valid network\n", text)
	}
}

func (c *cli) printNetworkInfo(info ipcalc.NetworkInfo) {
	kind := "Public"
	if info.Private {
		kind = "Private"
	}

	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "  Network:          %s\n", info.Network.Addr())
	fmt.Fprintf(c.out, "  CIDR:             /%d\n", info.Network.Bits())
	fmt.Fprintf(c.out, "  Netmask:          %s\n", info.Netmask)
	fmt.Fprintf(c.out, "  Broadcast:        %s\n", info.Broadcast)
	if info.FirstHost.IsValid() {
		fmt.Fprintf(c.out, "  First host:       %s\n", info.FirstHost)
		fmt.Fprintf(c.out, "  Last host:        %s\n", info.LastHost)
	}
	fmt.Fprintf(c.out, "  Usable hosts:     %d\n", info.UsableHosts)
	fmt.Fprintf(c.out, "  Total addresses:  %d\n", info.TotalAddresses)
	fmt.Fprintf(c.out, "  Class:            %s\n", info.Class)
	fmt.Fprintf(c.out, "  Type:             %s\n", kind)
}

func (c *cli) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "\n%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *cli) promptInt(label string) (int, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, "Not a number, try again.")
			continue
		}
		return value, true
	}
}
