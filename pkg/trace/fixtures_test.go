package trace

import (
	"github.com/newtron-network/ribtrace/pkg/rib"
)

// ent builds a routing entry the way the classification stage emits them.
func ent(prefix, protocol string, nexthops, devices, connected []string) *rib.Entry {
	return &rib.Entry{
		Prefix:           prefix,
		Protocol:         protocol,
		VRF:              rib.DefaultVRF,
		NextHops:         nexthops,
		Devices:          devices,
		ConnectedDevices: connected,
	}
}

func buildIndex(entries ...*rib.Entry) *Index {
	return Build(&rib.Dataset{
		Routes: map[rib.Class][]*rib.Entry{rib.ClassPrivate: entries},
	})
}

// fabricIndex models a small BGP fabric in the shape the collector
// produces: /32 loopbacks as connected prefixes, loopback next-hops.
//
//	host 10.1.1.1 -- r1 --(ECMP)-- r2, r3 -- anycast LAN 10.2.2.0/24
func fabricIndex() *Index {
	return buildIndex(
		// Loopbacks
		ent("10.0.0.1/32", "connected", nil, []string{"r1"}, []string{"r1"}),
		ent("10.0.0.2/32", "connected", nil, []string{"r2"}, []string{"r2"}),
		ent("10.0.0.3/32", "connected", nil, []string{"r3"}, []string{"r3"}),
		// Source LAN on r1
		ent("10.1.1.0/24", "connected", nil, []string{"r1"}, []string{"r1"}),
		// Destination LAN, anycast-connected on r2 and r3
		ent("10.2.2.0/24", "connected", nil, []string{"r2", "r3"}, []string{"r2", "r3"}),
		// r1 reaches the destination LAN over ECMP
		ent("10.2.2.0/24", "bgp", []string{"10.0.0.2", "10.0.0.3"}, []string{"r1"}, nil),
		// Return routes toward the source LAN
		ent("10.1.1.0/24", "bgp", []string{"10.0.0.1"}, []string{"r2"}, nil),
		ent("10.1.1.0/24", "bgp", []string{"10.0.0.1"}, []string{"r3"}, nil),
	)
}
