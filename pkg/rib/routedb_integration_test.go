//go:build integration

package rib_test

import (
	"testing"

	"github.com/newtron-network/ribtrace/internal/testutil"
	"github.com/newtron-network/ribtrace/pkg/rib"
)

const routesDB = 0

func TestRouteStoreLoad(t *testing.T) {
	testutil.SkipIfNoRedis(t)
	addr := testutil.RedisAddr()

	testutil.FlushDB(t, addr, routesDB)
	testutil.SeedRoutes(t, addr, routesDB, []testutil.SeedRoute{
		{
			Class: "private", Prefix: "10.1.1.0/24", Protocol: "connected",
			Devices: []string{"r1"}, Connected: []string{"r1"},
		},
		{
			Class: "private", Prefix: "10.2.2.0/24", Protocol: "bgp",
			NextHops: []string{"10.1.2.1", "10.1.3.1"}, Devices: []string{"r1"},
		},
		{
			Class: "public", VRF: "cust-a", Prefix: "203.0.113.0/24", Protocol: "bgp",
			Devices: []string{"edge1"},
		},
	})

	store := rib.NewRouteStore(addr, routesDB)
	if err := store.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer store.Close()

	ds, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := ds.EntryCount(); got != 3 {
		t.Fatalf("EntryCount() = %d, want 3", got)
	}
	if len(ds.Routes["private"]) != 2 {
		t.Errorf("private entries = %d, want 2", len(ds.Routes["private"]))
	}

	var ecmp *rib.Entry
	for _, e := range ds.Routes["private"] {
		if e.Prefix == "10.2.2.0/24" {
			ecmp = e
		}
	}
	if ecmp == nil {
		t.Fatal("10.2.2.0/24 not loaded")
	}
	if len(ecmp.NextHops) != 2 {
		t.Errorf("next_hops = %v, want 2 entries", ecmp.NextHops)
	}
	if ecmp.VRF != "default" {
		t.Errorf("vrf = %q, want default", ecmp.VRF)
	}

	pub := ds.Routes["public"][0]
	if pub.VRF != "cust-a" {
		t.Errorf("public entry vrf = %q, want cust-a", pub.VRF)
	}
}
