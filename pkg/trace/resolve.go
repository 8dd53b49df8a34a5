package trace

import (
	"sort"

	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/util"
)

// ResolveConnected finds which device treats the address as directly
// connected: longest-prefix match over the connected index, then the
// lexicographically smallest device name on the winning entry so the
// choice is reproducible across runs. Returns ("", nil) when no
// connected prefix covers the address — the address is outside the
// modeled network.
//
// This answers both "which device originates this endpoint" and
// "which device owns this next-hop IP".
func (idx *Index) ResolveConnected(address string) (string, *rib.Entry) {
	addr, err := util.ParseAddr(address)
	if err != nil {
		return "", nil
	}

	entries, ok := idx.connected.Lookup(addr)
	if !ok || len(entries) == 0 {
		return "", nil
	}

	// Same-prefix entries keep insertion order; the first one wins.
	entry := entries[0]
	if len(entry.ConnectedDevices) == 0 {
		return "", nil
	}

	devices := make([]string, len(entry.ConnectedDevices))
	copy(devices, entry.ConnectedDevices)
	sort.Strings(devices)
	return devices[0], entry
}
