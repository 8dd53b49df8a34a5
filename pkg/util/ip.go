package util

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddr parses an IP literal (v4 or v6) into a netip.Addr.
// IPv4-in-IPv6 forms are unmapped to native IPv4.
func ParseAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid IP address: %s", s)
	}
	return addr.Unmap(), nil
}

// ParsePrefix parses CIDR notation into a canonical (masked) netip.Prefix.
func ParsePrefix(cidr string) (netip.Prefix, error) {
	pfx, err := netip.ParsePrefix(strings.TrimSpace(cidr))
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid CIDR notation: %s", cidr)
	}
	return pfx.Masked(), nil
}

// Family returns 4 or 6 for an address, 0 for the zero Addr.
func Family(addr netip.Addr) int {
	switch {
	case addr.Is4():
		return 4
	case addr.Is6():
		return 6
	default:
		return 0
	}
}

// SplitPrefix splits CIDR notation into the address part and mask length.
// Returns the input unchanged with length 0 when no mask is present.
func SplitPrefix(cidr string) (string, int) {
	parts := strings.Split(cidr, "/")
	if len(parts) != 2 {
		return cidr, 0
	}
	maskLen, err := strconv.Atoi(parts[1])
	if err != nil {
		return parts[0], 0
	}
	return parts[0], maskLen
}

// IsValidAddr checks if a string is a valid IP literal (v4 or v6).
func IsValidAddr(s string) bool {
	_, err := netip.ParseAddr(strings.TrimSpace(s))
	return err == nil
}

// IsValidPrefix checks if a string is valid CIDR notation.
func IsValidPrefix(cidr string) bool {
	_, err := netip.ParsePrefix(strings.TrimSpace(cidr))
	return err == nil
}

// IsNullRoute reports whether a next-hop string is a null/discard marker
// rather than a real forwarding address. Collectors encode discard routes
// as an all-zeros next-hop or a pseudo-interface name.
func IsNullRoute(nexthop string) bool {
	switch strings.ToLower(strings.TrimSpace(nexthop)) {
	case "", "0.0.0.0", "::", "null0", "blackhole", "drop", "reject":
		return true
	}
	return false
}
