package ipcalc

import (
	"errors"
	"testing"
)

func TestParseAddr4RejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"192.168.1",
		"192.168.1.0.5",
		"192.168.1.256",
		"192.168.1.-1",
		"192.168.1.1 ",
		"192.168.1.a",
		"2001:db8::1",
		"::ffff:192.168.1.1",
	}
	for _, input := range bad {
		if _, err := ParseAddr4(input); !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("ParseAddr4(%q): expected ErrInvalidAddress, got %v", input, err)
		}
	}
}

func TestParseAddr4RoundTrips(t *testing.T) {
	for _, input := range []string{"0.0.0.0", "10.0.0.1", "192.168.1.200", "255.255.255.255"} {
		addr, err := ParseAddr4(input)
		if err != nil {
			t.Fatalf("ParseAddr4(%q): %v", input, err)
		}
		if addr.String() != input {
			t.Fatalf("ParseAddr4(%q) formatted back as %q", input, addr)
		}
	}
}

func TestPrefixToNetmask(t *testing.T) {
	tests := []struct {
		prefixLen int
		want      string
	}{
		{0, "0.0.0.0"},
		{8, "255.0.0.0"},
		{12, "255.240.0.0"},
		{24, "255.255.255.0"},
		{26, "255.255.255.192"},
		{30, "255.255.255.252"},
		{32, "255.255.255.255"},
	}
	for _, tt := range tests {
		mask, err := PrefixToNetmask(tt.prefixLen)
		if err != nil {
			t.Fatalf("PrefixToNetmask(%d): %v", tt.prefixLen, err)
		}
		if mask.String() != tt.want {
			t.Fatalf("PrefixToNetmask(%d) = %s, want %s", tt.prefixLen, mask, tt.want)
		}
	}
}

func TestPrefixToNetmaskRejectsOutOfRange(t *testing.T) {
	for _, prefixLen := range []int{-1, 33, 128} {
		if _, err := PrefixToNetmask(prefixLen); !errors.Is(err, ErrInvalidPrefix) {
			t.Fatalf("PrefixToNetmask(%d): expected ErrInvalidPrefix, got %v", prefixLen, err)
		}
	}
}

func TestNetmaskPrefixRoundTrip(t *testing.T) {
	for prefixLen := 0; prefixLen <= 32; prefixLen++ {
		mask, err := PrefixToNetmask(prefixLen)
		if err != nil {
			t.Fatalf("PrefixToNetmask(%d): %v", prefixLen, err)
		}
		got, err := NetmaskToPrefix(mask.String())
		if err != nil {
			t.Fatalf("NetmaskToPrefix(%s): %v", mask, err)
		}
		if got != prefixLen {
			t.Fatalf("round trip of /%d came back as /%d", prefixLen, got)
		}
	}
}

func TestNetmaskToPrefix(t *testing.T) {
	got, err := NetmaskToPrefix("255.255.255.252")
	if err != nil {
		t.Fatalf("NetmaskToPrefix: %v", err)
	}
	if got != 30 {
		t.Fatalf("NetmaskToPrefix(255.255.255.252) = %d, want 30", got)
	}
}

func TestNetmaskToPrefixRejectsNonContiguousMasks(t *testing.T) {
	for _, input := range []string{"255.0.255.0", "255.255.0.255", "0.255.255.255", "128.128.0.0"} {
		if _, err := NetmaskToPrefix(input); !errors.Is(err, ErrInvalidMask) {
			t.Fatalf("NetmaskToPrefix(%q): expected ErrInvalidMask, got %v", input, err)
		}
	}
}

func TestParseCIDRMasksHostBits(t *testing.T) {
	prefix, err := ParseCIDR("192.168.1.77/24")
	if err != nil {
		t.Fatalf("ParseCIDR: %v", err)
	}
	if prefix.String() != "192.168.1.0/24" {
		t.Fatalf("expected host bits masked off, got %s", prefix)
	}
}

func TestParseCIDRAcceptsNetmaskSuffix(t *testing.T) {
	prefix, err := ParseCIDR("192.168.1.0/255.255.255.0")
	if err != nil {
		t.Fatalf("ParseCIDR: %v", err)
	}
	if prefix.String() != "192.168.1.0/24" {
		t.Fatalf("prefix = %s, want 192.168.1.0/24", prefix)
	}

	if _, err := ParseCIDR("10.0.0.0/255.0.255.0"); !errors.Is(err, ErrInvalidNetwork) {
		t.Fatalf("non-contiguous mask suffix: expected ErrInvalidNetwork, got %v", err)
	}
}

func TestParseCIDRRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "192.168.1.0", "192.168.1.0/33", "192.168.1.0/-1", "2001:db8::/64", "not-a-cidr"} {
		if _, err := ParseCIDR(input); !errors.Is(err, ErrInvalidNetwork) {
			t.Fatalf("ParseCIDR(%q): expected ErrInvalidNetwork, got %v", input, err)
		}
	}
}
