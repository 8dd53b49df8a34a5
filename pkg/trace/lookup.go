package trace

import (
	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/util"
)

// Lookup simulates one device's forwarding decision for a target address
// in a VRF: longest-prefix match over that device's own entries only.
// Returns nil when the address does not parse or no entry matches;
// callers treat both as "no route". Equal-length ties go to the entry
// seen first in the device's list (overlapping same-length prefixes are
// a data anomaly, so the tie-break only needs to be deterministic).
func (idx *Index) Lookup(device, target, vrf string) *rib.Entry {
	addr, err := util.ParseAddr(target)
	if err != nil {
		return nil
	}

	var best *rib.Entry
	for _, entry := range idx.devices[device] {
		if entry.VRF != vrf {
			continue
		}
		if !entry.Network.Contains(addr) {
			continue
		}
		if best == nil || entry.Network.Bits() > best.Network.Bits() {
			best = entry
		}
	}
	return best
}
