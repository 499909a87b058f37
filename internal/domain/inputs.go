package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

// ParseHostCounts parses a comma-separated list of host requirements,
// e.g. "50, 25, 10".
func ParseHostCounts(text string) ([]int, error) {
	fields := splitList(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty host count list", ipcalc.ErrInvalidArgument)
	}

	counts := make([]int, 0, len(fields))
	for _, field := range fields {
		count, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ipcalc.ErrInvalidArgument, field)
		}
		counts = append(counts, count)
	}
	return counts, nil
}

// ParseCIDRList splits a comma-separated list of CIDR strings, e.g.
// "192.168.0.0/24, 192.168.1.0/24". Each entry is validated later by
// the operation that consumes it.
func ParseCIDRList(text string) ([]string, error) {
	fields := splitList(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty network list", ipcalc.ErrInvalidArgument)
	}
	return fields, nil
}

func splitList(text string) []string {
	var fields []string
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}
