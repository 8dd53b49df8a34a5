package trace

import "sort"

// Terminal kinds a hop can report. Empty string means the hop is either
// internal (has children) or a leaf truncated by branch pruning.
const (
	TerminalDestination = "destination"
	TerminalExit        = "exit"
	TerminalUnknown     = "no-route"
	TerminalBlackhole   = "blackhole"
)

// Hop is one node in a path tree. A tree is owned by the Result that
// created it and is immutable after the walk returns. The boolean flags
// are mutually informative tags on one conceptual state: use Terminal()
// to read them as a single kind.
type Hop struct {
	Device        string   `json:"device"`
	MatchedPrefix string   `json:"matched_prefix,omitempty"`
	PrefixLength  int      `json:"matched_prefix_length,omitempty"`
	Protocol      string   `json:"protocol,omitempty"`
	NextHops      []string `json:"next_hops,omitempty"`
	VRF           string   `json:"vrf,omitempty"`
	Connected     bool     `json:"is_connected,omitempty"`
	Destination   bool     `json:"is_destination,omitempty"`
	Exit          bool     `json:"is_exit,omitempty"`
	Unknown       bool     `json:"is_unknown,omitempty"`
	Children      []*Hop   `json:"children,omitempty"`
}

// Terminal returns the terminal kind of this hop, or "" for an internal
// hop or a leaf whose branches were all pruned. A leaf with no next-hops
// that is neither connected nor unknown is a blackhole route; it is kept
// distinct from both destination and no-route so data gaps stay inspectable.
func (h *Hop) Terminal() string {
	switch {
	case h.Destination:
		return TerminalDestination
	case h.Exit:
		return TerminalExit
	case h.Unknown:
		return TerminalUnknown
	case len(h.Children) == 0 && len(h.NextHops) == 0:
		return TerminalBlackhole
	default:
		return ""
	}
}

// Depth returns the maximum depth of the tree; 1 for a single node.
func (h *Hop) Depth() int {
	deepest := 0
	for _, child := range h.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// PathCount returns the number of distinct ECMP paths through the tree:
// a leaf counts 1, an internal node sums its children. This counts
// end-to-end paths, not nodes.
func (h *Hop) PathCount() int {
	if len(h.Children) == 0 {
		return 1
	}
	n := 0
	for _, child := range h.Children {
		n += child.PathCount()
	}
	return n
}

// Leaves returns all leaf hops of the tree in branch order.
func (h *Hop) Leaves() []*Hop {
	if len(h.Children) == 0 {
		return []*Hop{h}
	}
	var leaves []*Hop
	for _, child := range h.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// DeviceSet returns the set of real device names in the tree. Exit and
// unknown hops carry synthetic markers, not devices, and are excluded.
// A device on several ECMP branches appears once.
func (h *Hop) DeviceSet() map[string]bool {
	set := make(map[string]bool)
	h.collectDevices(set)
	return set
}

func (h *Hop) collectDevices(set map[string]bool) {
	if !h.Exit && !h.Unknown && h.Device != "" {
		set[h.Device] = true
	}
	for _, child := range h.Children {
		child.collectDevices(set)
	}
}

// SortedDevices returns DeviceSet as a sorted slice.
func (h *Hop) SortedDevices() []string {
	set := h.DeviceSet()
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
