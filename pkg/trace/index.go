// Package trace implements the path-tracing engine: indexing of a
// classified routing dataset for longest-prefix-match lookup, and the
// recursive walk that reconstructs per-hop forwarding decisions.
package trace

import (
	"net/netip"
	"sort"

	"github.com/gaissmai/bart"

	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/util"
)

// Index holds the lookup structures derived from one dataset load.
// It is immutable after Build returns; concurrent traces may share it.
// Must not be copied by value (the bart table embeds a lock sentinel).
type Index struct {
	// buckets: family → prefix length → entries, for global longest-match scans.
	buckets map[int]map[int][]*rib.Entry

	// connected: LPM table over directly-connected prefixes, valued with
	// the entries claiming that prefix as connected.
	connected bart.Table[[]*rib.Entry]

	// devices: device name → entries that device participates in,
	// in first-seen order. This is the view the lookup simulator scans.
	devices map[string][]*rib.Entry
}

// Build derives an Index from a classified dataset. Entries with an
// unparsable prefix are dropped from all indexes; this is a data-quality
// gap, not a build failure. Classes are visited in sorted order so the
// index is deterministic for a given dataset.
func Build(ds *rib.Dataset) *Index {
	idx := &Index{
		buckets: make(map[int]map[int][]*rib.Entry),
		devices: make(map[string][]*rib.Entry),
	}

	classes := make([]rib.Class, 0, len(ds.Routes))
	for class := range ds.Routes {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	dropped := 0
	for _, class := range classes {
		for _, entry := range ds.Routes[class] {
			pfx, err := util.ParsePrefix(entry.Prefix)
			if err != nil {
				util.Debugf("dropping entry with unparsable prefix %q (class %s)", entry.Prefix, class)
				dropped++
				continue
			}
			entry.Network = pfx
			entry.Class = class
			idx.add(entry)
		}
	}

	if dropped > 0 {
		util.Warnf("route index: dropped %d entries with unparsable prefixes", dropped)
	}
	util.Debugf("route index: %d devices, %d connected prefixes",
		len(idx.devices), idx.connected.Size4()+idx.connected.Size6())

	return idx
}

func (idx *Index) add(entry *rib.Entry) {
	family := util.Family(entry.Network.Addr())
	if idx.buckets[family] == nil {
		idx.buckets[family] = make(map[int][]*rib.Entry)
	}
	bits := entry.Network.Bits()
	idx.buckets[family][bits] = append(idx.buckets[family][bits], entry)

	if len(entry.ConnectedDevices) > 0 {
		existing, _ := idx.connected.Get(entry.Network)
		idx.connected.Insert(entry.Network, append(existing, entry))
	}

	for _, device := range entry.Devices {
		idx.devices[device] = append(idx.devices[device], entry)
	}
}

// Entries returns the entries indexed under a device, in first-seen order.
func (idx *Index) Entries(device string) []*rib.Entry {
	return idx.devices[device]
}

// Devices returns all device names in the device index, sorted.
func (idx *Index) Devices() []string {
	names := make([]string, 0, len(idx.devices))
	for name := range idx.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LongestMatch scans the prefix buckets for the given family, longest
// lengths first, and returns every entry at the winning length whose
// network contains addr and whose VRF matches. Used for network-wide
// "who routes this address" queries, not for per-device simulation.
func (idx *Index) LongestMatch(addr netip.Addr, vrf string) []*rib.Entry {
	byLen := idx.buckets[util.Family(addr)]
	if byLen == nil {
		return nil
	}

	lengths := make([]int, 0, len(byLen))
	for bits := range byLen {
		lengths = append(lengths, bits)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	for _, bits := range lengths {
		var matched []*rib.Entry
		for _, entry := range byLen[bits] {
			if entry.VRF == vrf && entry.Network.Contains(addr) {
				matched = append(matched, entry)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	return nil
}
