package trace

import (
	"net/netip"
	"testing"

	"github.com/newtron-network/ribtrace/pkg/util"
)

func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	addr, err := util.ParseAddr(s)
	if err != nil {
		t.Fatalf("ParseAddr(%q): %v", s, err)
	}
	return addr
}

func TestResolveConnected(t *testing.T) {
	idx := buildIndex(
		ent("10.1.1.0/24", "connected", nil, []string{"r1"}, []string{"r1"}),
		ent("10.2.2.0/24", "connected", nil, []string{"r2"}, []string{"r2"}),
	)

	device, entry := idx.ResolveConnected("10.1.1.55")
	if device != "r1" {
		t.Errorf("ResolveConnected(10.1.1.55) device = %q, want r1", device)
	}
	if entry == nil || entry.Prefix != "10.1.1.0/24" {
		t.Errorf("ResolveConnected entry = %v, want 10.1.1.0/24", entry)
	}
}

func TestResolveConnectedLongestWins(t *testing.T) {
	idx := buildIndex(
		ent("10.0.0.0/8", "connected", nil, []string{"core1"}, []string{"core1"}),
		ent("10.1.1.0/24", "connected", nil, []string{"r1"}, []string{"r1"}),
		ent("10.1.1.1/32", "connected", nil, []string{"host1"}, []string{"host1"}),
	)

	device, entry := idx.ResolveConnected("10.1.1.1")
	if device != "host1" || entry.Network.Bits() != 32 {
		t.Errorf("ResolveConnected(10.1.1.1) = (%q, /%d), want (host1, /32)", device, entry.Network.Bits())
	}

	device, _ = idx.ResolveConnected("10.1.1.2")
	if device != "r1" {
		t.Errorf("ResolveConnected(10.1.1.2) = %q, want r1", device)
	}

	device, _ = idx.ResolveConnected("10.9.9.9")
	if device != "core1" {
		t.Errorf("ResolveConnected(10.9.9.9) = %q, want core1", device)
	}
}

func TestResolveConnectedDeterministicDevice(t *testing.T) {
	// Multiple devices claim the prefix: the lexicographically smallest
	// name wins, regardless of list order.
	idx := buildIndex(
		ent("10.2.2.0/24", "connected", nil, []string{"r3", "r2"}, []string{"r3", "r2"}),
	)

	for i := 0; i < 5; i++ {
		if device, _ := idx.ResolveConnected("10.2.2.5"); device != "r2" {
			t.Fatalf("ResolveConnected = %q, want r2 (smallest name)", device)
		}
	}
}

func TestResolveConnectedMiss(t *testing.T) {
	idx := buildIndex(
		ent("10.1.1.0/24", "connected", nil, []string{"r1"}, []string{"r1"}),
	)

	tests := []string{"192.0.2.1", "not-an-ip", ""}
	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			if device, entry := idx.ResolveConnected(addr); device != "" || entry != nil {
				t.Errorf("ResolveConnected(%q) = (%q, %v), want none", addr, device, entry)
			}
		})
	}
}

func TestResolveConnectedIgnoresNonConnected(t *testing.T) {
	// Learned routes never land in the connected index, even when they
	// cover the address with a longer prefix.
	idx := buildIndex(
		ent("10.1.1.0/24", "connected", nil, []string{"r1"}, []string{"r1"}),
		ent("10.1.1.0/25", "bgp", []string{"10.0.0.2"}, []string{"r2"}, nil),
	)

	device, entry := idx.ResolveConnected("10.1.1.5")
	if device != "r1" || entry.Prefix != "10.1.1.0/24" {
		t.Errorf("ResolveConnected = (%q, %v), want the connected /24 on r1", device, entry)
	}
}
