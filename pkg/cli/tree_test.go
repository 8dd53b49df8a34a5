package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/newtron-network/ribtrace/pkg/trace"
)

func sampleTree() *trace.Hop {
	return &trace.Hop{
		Device: "r1", MatchedPrefix: "10.2.2.0/24", Protocol: "bgp",
		NextHops: []string{"10.0.0.2", "10.0.0.3"},
		Children: []*trace.Hop{
			{Device: "r2", MatchedPrefix: "10.2.2.0/24", Protocol: "connected",
				Destination: true, Connected: true},
			{Device: "192.0.2.1", Exit: true},
		},
	}
}

func TestRenderHopTree(t *testing.T) {
	var buf bytes.Buffer
	RenderHopTree(&buf, sampleTree())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "r1") {
		t.Errorf("root line should start unindented: %q", lines[0])
	}
	if !strings.Contains(lines[0], "via 10.0.0.2, 10.0.0.3") {
		t.Errorf("root line missing next-hops: %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "  r2") {
		t.Errorf("child line should be indented one level: %q", lines[1])
	}
	if !strings.Contains(lines[1], "DESTINATION") {
		t.Errorf("destination marker missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "EXIT") {
		t.Errorf("exit marker missing: %q", lines[2])
	}
}

func TestRenderHopTreeElidesNextHops(t *testing.T) {
	hop := &trace.Hop{
		Device:        "r1",
		MatchedPrefix: "0.0.0.0/0",
		NextHops:      []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4", "10.0.0.5"},
	}

	var buf bytes.Buffer
	RenderHopTree(&buf, hop)

	out := buf.String()
	if !strings.Contains(out, "(+2 more)") {
		t.Errorf("expected elision suffix, got: %q", out)
	}
	if strings.Contains(out, "10.0.0.4") {
		t.Errorf("elided next-hop rendered: %q", out)
	}
}

func TestRenderHopTreeMarkers(t *testing.T) {
	tests := []struct {
		name string
		hop  *trace.Hop
		want string
	}{
		{"no route", &trace.Hop{Device: "r9", Unknown: true}, "NO ROUTE"},
		{"blackhole", &trace.Hop{Device: "r1", MatchedPrefix: "10.0.0.0/8"}, "BLACKHOLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderHopTree(&buf, tt.hop)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q missing marker %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderHopTreeNil(t *testing.T) {
	var buf bytes.Buffer
	RenderHopTree(&buf, nil)
	if !strings.Contains(buf.String(), "(no path)") {
		t.Errorf("nil tree should render placeholder, got %q", buf.String())
	}
}

func TestRenderResult(t *testing.T) {
	result := &trace.Result{
		SourceAddress:      "10.1.1.1",
		DestinationAddress: "10.2.2.5",
		VRF:                "default",
		SourceDevice:       "r1",
		DestinationDevice:  "r2",
		ForwardPath:        sampleTree(),
		ReturnPath:         &trace.Hop{Device: "r2", Destination: true, Connected: true},
		ForwardHopCount:    2,
		ForwardPathCount:   2,
		ReturnHopCount:     1,
		ReturnPathCount:    1,
		IsAsymmetric:       true,
		Notes:              []string{"something inferred"},
	}

	var buf bytes.Buffer
	RenderResult(&buf, result)

	out := buf.String()
	for _, want := range []string{
		"10.1.1.1 -> 10.2.2.5",
		"Forward path:",
		"Return path:",
		"ASYMMETRIC",
		"note: something inferred",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderResult output missing %q:\n%s", want, out)
		}
	}
}
