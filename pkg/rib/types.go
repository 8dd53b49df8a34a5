// Package rib defines the classified routing dataset consumed by the tracer
// and its loaders (JSON export file or the collector's Redis store).
package rib

import "net/netip"

// Class is the classification label assigned to a prefix by the
// collection pipeline.
type Class string

// Classification labels produced by the route classifier.
const (
	ClassPublic    Class = "public"
	ClassPrivate   Class = "private"
	ClassLinkLocal Class = "link-local"
	ClassLoopback  Class = "loopback"
	ClassMulticast Class = "multicast"
	ClassUnknown   Class = "unknown"
)

// DefaultVRF is the VRF assumed when an entry or trace request names none.
const DefaultVRF = "default"

// Entry is one classified routing table entry. Entries are produced by the
// external classification stage and are immutable for the lifetime of a
// trace session. Network and Class are filled in at index-build time.
type Entry struct {
	Prefix           string   `json:"prefix"`
	Protocol         string   `json:"protocol,omitempty"`
	VRF              string   `json:"vrf,omitempty"`
	NextHops         []string `json:"next_hops,omitempty"`
	ConnectedDevices []string `json:"connected_devices,omitempty"`
	Devices          []string `json:"devices,omitempty"`

	// Set by the index builder, not by loaders.
	Network netip.Prefix `json:"-"`
	Class   Class        `json:"-"`
}

// IsConnectedOn reports whether the entry claims its prefix as directly
// connected on the given device.
func (e *Entry) IsConnectedOn(device string) bool {
	for _, d := range e.ConnectedDevices {
		if d == device {
			return true
		}
	}
	return false
}

// SiteInfo is per-site metadata carried alongside the routing dataset.
// The tracer does not consume it; it passes through to report rendering.
type SiteInfo struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Dataset is the full classified routing snapshot: routes grouped by
// classification label plus optional site metadata.
type Dataset struct {
	Routes map[Class][]*Entry  `json:"routes"`
	Sites  map[string]SiteInfo `json:"sites,omitempty"`
}

// EntryCount returns the total number of entries across all classes.
func (d *Dataset) EntryCount() int {
	n := 0
	for _, entries := range d.Routes {
		n += len(entries)
	}
	return n
}
