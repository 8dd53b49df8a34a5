package trace

import (
	"fmt"
	"sort"

	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/util"
)

// Result is the outcome of one trace request. It is created fresh per
// invocation and not mutated after Trace returns.
type Result struct {
	SourceAddress      string `json:"source_address"`
	DestinationAddress string `json:"destination_address"`
	VRF                string `json:"vrf"`

	SourceDevice      string `json:"source_device,omitempty"`
	DestinationDevice string `json:"destination_device,omitempty"`

	ForwardPath *Hop `json:"forward_path,omitempty"`
	ReturnPath  *Hop `json:"return_path,omitempty"`

	ForwardHopCount  int `json:"forward_hop_count"`
	ReturnHopCount   int `json:"return_hop_count"`
	ForwardPathCount int `json:"forward_path_count"`
	ReturnPathCount  int `json:"return_path_count"`

	IsAsymmetric bool     `json:"is_asymmetric"`
	Notes        []string `json:"notes,omitempty"`
}

// Tracer runs trace requests against an immutable route index.
// Safe for concurrent use: every lookup is read-only.
type Tracer struct {
	idx *Index
}

// New creates a tracer over a built index.
func New(idx *Index) *Tracer {
	return &Tracer{idx: idx}
}

// Trace reconstructs the forward and return path trees between two
// addresses. An error is returned only for unparsable addresses; every
// data gap (unknown source, external destination, missing routes) is
// reported inside the Result instead.
func (t *Tracer) Trace(source, destination, vrf string) (*Result, error) {
	if vrf == "" {
		vrf = rib.DefaultVRF
	}

	if !util.IsValidAddr(source) {
		return nil, util.NewAddressError("source", source)
	}
	if !util.IsValidAddr(destination) {
		return nil, util.NewAddressError("destination", destination)
	}

	result := &Result{
		SourceAddress:      source,
		DestinationAddress: destination,
		VRF:                vrf,
	}

	log := util.WithTrace(source, destination)

	srcDevice, _ := t.idx.ResolveConnected(source)
	if srcDevice == "" {
		result.Notes = append(result.Notes,
			fmt.Sprintf("source %s is not connected to any known device; cannot start trace", source))
		return result, nil
	}
	result.SourceDevice = srcDevice

	dstDevice, _ := t.idx.ResolveConnected(destination)
	result.DestinationDevice = dstDevice

	result.ForwardPath = t.idx.walk(srcDevice, destination, vrf, nil, 0)
	if result.ForwardPath != nil {
		result.ForwardHopCount = result.ForwardPath.Depth()
		result.ForwardPathCount = result.ForwardPath.PathCount()
	}

	returnStart := dstDevice
	if returnStart == "" {
		returnStart = inferReturnStart(result.ForwardPath)
		if returnStart != "" {
			result.Notes = append(result.Notes,
				fmt.Sprintf("destination %s is external; return path traced from inferred device %s",
					destination, returnStart))
		} else {
			result.Notes = append(result.Notes,
				fmt.Sprintf("destination %s is external and no forward leaf is usable; return path not traced", destination))
		}
	}

	if returnStart != "" {
		result.ReturnPath = t.idx.walk(returnStart, source, vrf, nil, 0)
		if result.ReturnPath != nil {
			result.ReturnHopCount = result.ReturnPath.Depth()
			result.ReturnPathCount = result.ReturnPath.PathCount()
		}
	}

	// Symmetry is set-based: a return path visiting the same devices in
	// a different order is still symmetric. Only meaningful when both
	// trees exist.
	if result.ForwardPath != nil && result.ReturnPath != nil {
		result.IsAsymmetric = !sameDeviceSet(result.ForwardPath.DeviceSet(), result.ReturnPath.DeviceSet())
	}

	log.Debugf("trace complete: %d forward paths, %d return paths, asymmetric=%v",
		result.ForwardPathCount, result.ReturnPathCount, result.IsAsymmetric)

	return result, nil
}

// inferReturnStart picks the device to trace the return path from when
// the destination is external: the lexicographically smallest forward
// leaf device that is neither an exit nor an unknown hop. Smallest-name
// rather than first-seen keeps the choice reproducible.
func inferReturnStart(forward *Hop) string {
	if forward == nil {
		return ""
	}

	var candidates []string
	for _, leaf := range forward.Leaves() {
		if leaf.Exit || leaf.Unknown || leaf.Device == "" {
			continue
		}
		candidates = append(candidates, leaf.Device)
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Strings(candidates)
	return candidates[0]
}

func sameDeviceSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if !b[name] {
			return false
		}
	}
	return true
}
