package trace

import (
	"github.com/newtron-network/ribtrace/pkg/util"
)

// maxWalkDepth bounds recursion per branch. Real datacenter paths are
// well under this; anything deeper is a routing loop or garbage data.
const maxWalkDepth = 15

// walk reconstructs the forwarding tree from device toward target in the
// given VRF. It returns nil when the branch is pruned (already-visited
// device/target pair or depth ceiling); pruned branches simply do not
// appear in the tree.
//
// Each recursive call receives its own copy of visited so sibling ECMP
// branches explore independently: one branch revisiting a device must
// not prune another branch's legitimate path through it.
func (idx *Index) walk(device, target, vrf string, visited map[string]bool, depth int) *Hop {
	key := device + "|" + target
	if visited[key] {
		util.WithDevice(device).Debugf("pruning loop toward %s", target)
		return nil
	}
	if depth > maxWalkDepth {
		util.WithDevice(device).Debugf("pruning at depth ceiling toward %s", target)
		return nil
	}

	branch := make(map[string]bool, len(visited)+1)
	for k := range visited {
		branch[k] = true
	}
	branch[key] = true

	entry := idx.Lookup(device, target, vrf)
	if entry == nil {
		// The device has no route toward the target. For a device
		// legitimately on the path this points at a collection gap;
		// surfaced as a leaf rather than an error.
		return &Hop{Device: device, VRF: vrf, Unknown: true}
	}

	hop := &Hop{
		Device:        device,
		MatchedPrefix: entry.Prefix,
		PrefixLength:  entry.Network.Bits(),
		Protocol:      entry.Protocol,
		NextHops:      entry.NextHops,
		VRF:           entry.VRF,
		Connected:     entry.IsConnectedOn(device),
	}

	if owner, _ := idx.ResolveConnected(target); owner == device {
		hop.Destination = true
		hop.Connected = true
		return hop
	}

	if len(entry.NextHops) == 0 {
		if hop.Connected {
			// Directly attached endpoint with no further routing.
			hop.Destination = true
		}
		// Otherwise a blackhole route: terminal, not a destination.
		return hop
	}

	for _, nexthop := range entry.NextHops {
		if util.IsNullRoute(nexthop) {
			continue
		}

		nhDevice, _ := idx.ResolveConnected(nexthop)
		if nhDevice == "" {
			// Next-hop owned by no known device: the path exits the
			// modeled network here.
			hop.Children = append(hop.Children, &Hop{Device: nexthop, VRF: vrf, Exit: true})
			continue
		}
		if nhDevice == device {
			// Self-loop artifact, not a real branch.
			continue
		}

		if child := idx.walk(nhDevice, target, vrf, branch, depth+1); child != nil {
			hop.Children = append(hop.Children, child)
		}
	}

	// All next-hops pruned: still a valid, if truncated, leaf.
	return hop
}
