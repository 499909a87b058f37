package ipcalc

import (
	"net/netip"
	"testing"
)

func prefixes(t *testing.T, inputs ...string) []netip.Prefix {
	t.Helper()
	out := make([]netip.Prefix, 0, len(inputs))
	for _, input := range inputs {
		out = append(out, netip.MustParsePrefix(input))
	}
	return out
}

func TestAggregateCollapsesSiblings(t *testing.T) {
	supernet, ok := Aggregate(prefixes(t, "192.168.1.0/26", "192.168.1.64/26", "192.168.1.128/26", "192.168.1.192/26"))
	if !ok {
		t.Fatal("expected a single supernet")
	}
	if supernet.String() != "192.168.1.0/24" {
		t.Fatalf("supernet = %s, want 192.168.1.0/24", supernet)
	}
}

func TestAggregateAdjacentPair(t *testing.T) {
	supernet, ok := Aggregate(prefixes(t, "10.0.0.0/24", "10.0.1.0/24"))
	if !ok {
		t.Fatal("expected a single supernet")
	}
	if supernet.String() != "10.0.0.0/23" {
		t.Fatalf("supernet = %s, want 10.0.0.0/23", supernet)
	}
}

func TestAggregateDiscontiguousNetworks(t *testing.T) {
	if _, ok := Aggregate(prefixes(t, "192.168.1.0/26", "192.168.3.0/26")); ok {
		t.Fatal("discontiguous networks must not collapse to one supernet")
	}
}

func TestAggregateMisalignedPairHasNoSupernet(t *testing.T) {
	// Contiguous but not CIDR-aligned: 10.0.1.0/24 + 10.0.2.0/24
	// cannot be one block.
	if _, ok := Aggregate(prefixes(t, "10.0.1.0/24", "10.0.2.0/24")); ok {
		t.Fatal("misaligned networks must not collapse to one supernet")
	}
}

func TestAggregateOverlappingNetworks(t *testing.T) {
	supernet, ok := Aggregate(prefixes(t, "10.0.0.0/24", "10.0.0.128/25"))
	if !ok {
		t.Fatal("expected the covering network back")
	}
	if supernet.String() != "10.0.0.0/24" {
		t.Fatalf("supernet = %s, want 10.0.0.0/24", supernet)
	}
}

func TestAggregateSingleNetwork(t *testing.T) {
	supernet, ok := Aggregate(prefixes(t, "172.16.5.9/16"))
	if !ok {
		t.Fatal("expected a single network to aggregate to itself")
	}
	if supernet.String() != "172.16.0.0/16" {
		t.Fatalf("supernet = %s, want 172.16.0.0/16", supernet)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Fatal("empty input has no supernet")
	}
}
