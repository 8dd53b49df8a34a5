package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/newtron-network/ribtrace/pkg/trace"
)

// maxShownNextHops caps how many next-hops are printed per line; the
// rest collapse into a "+N more" suffix.
const maxShownNextHops = 3

// RenderHopTree writes a path tree as one line per hop, indented two
// spaces per tree depth:
//
//	r1  10.2.2.0/24  bgp  via 10.1.2.1
//	  r2  10.2.2.0/24  connected  DESTINATION
func RenderHopTree(w io.Writer, root *trace.Hop) {
	if root == nil {
		fmt.Fprintln(w, "(no path)")
		return
	}
	renderHop(w, root, 0)
}

func renderHop(w io.Writer, hop *trace.Hop, depth int) {
	indent := strings.Repeat("  ", depth)

	fields := []string{Bold(hop.Device)}
	if hop.MatchedPrefix != "" {
		fields = append(fields, hop.MatchedPrefix)
	}
	if hop.Protocol != "" {
		fields = append(fields, hop.Protocol)
	}
	if nh := formatNextHops(hop.NextHops); nh != "" {
		fields = append(fields, nh)
	}
	if marker := terminalMarker(hop); marker != "" {
		fields = append(fields, marker)
	}

	fmt.Fprintln(w, indent+strings.Join(fields, "  "))

	for _, child := range hop.Children {
		renderHop(w, child, depth+1)
	}
}

func formatNextHops(nexthops []string) string {
	if len(nexthops) == 0 {
		return ""
	}
	shown := nexthops
	extra := 0
	if len(shown) > maxShownNextHops {
		extra = len(shown) - maxShownNextHops
		shown = shown[:maxShownNextHops]
	}
	s := "via " + strings.Join(shown, ", ")
	if extra > 0 {
		s += fmt.Sprintf(" (+%d more)", extra)
	}
	return s
}

func terminalMarker(hop *trace.Hop) string {
	switch hop.Terminal() {
	case trace.TerminalDestination:
		return Green("DESTINATION")
	case trace.TerminalExit:
		return Yellow("EXIT")
	case trace.TerminalUnknown:
		return Red("NO ROUTE")
	case trace.TerminalBlackhole:
		return Dim("BLACKHOLE")
	}
	return ""
}

// RenderResult writes a full trace result: header, forward tree, return
// tree, and the aggregate statistics and notes.
func RenderResult(w io.Writer, r *trace.Result) {
	fmt.Fprintf(w, "Trace: %s -> %s (vrf %s)\n", r.SourceAddress, r.DestinationAddress, r.VRF)
	if r.SourceDevice != "" {
		fmt.Fprintf(w, "Source device: %s\n", r.SourceDevice)
	}
	if r.DestinationDevice != "" {
		fmt.Fprintf(w, "Destination device: %s\n", r.DestinationDevice)
	} else {
		fmt.Fprintf(w, "Destination device: %s\n", Dim("(external)"))
	}

	fmt.Fprintln(w, "\nForward path:")
	RenderHopTree(w, r.ForwardPath)

	fmt.Fprintln(w, "\nReturn path:")
	RenderHopTree(w, r.ReturnPath)

	fmt.Fprintf(w, "\nForward: %d hops, %d path(s)   Return: %d hops, %d path(s)\n",
		r.ForwardHopCount, r.ForwardPathCount, r.ReturnHopCount, r.ReturnPathCount)

	if r.IsAsymmetric {
		fmt.Fprintln(w, Yellow("Routing is ASYMMETRIC: forward and return paths traverse different devices"))
	} else if r.ForwardPath != nil && r.ReturnPath != nil {
		fmt.Fprintln(w, Green("Routing is symmetric"))
	}

	for _, note := range r.Notes {
		fmt.Fprintln(w, Dim("note: "+note))
	}
}
