//go:build integration

package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/go-redis/redis/v8"
)

// SeedRoutes loads classified route entries into the test Redis instance
// in the collector's hash layout: key "ROUTES|<class>|<vrf>|<prefix>"
// with fields protocol, nexthops, devices, connected (comma-separated).
func SeedRoutes(t *testing.T, addr string, db int, routes []SeedRoute) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	ctx := context.Background()

	for _, r := range routes {
		vrf := r.VRF
		if vrf == "" {
			vrf = "default"
		}
		key := strings.Join([]string{"ROUTES", r.Class, vrf, r.Prefix}, "|")

		fields := map[string]interface{}{
			"protocol":  r.Protocol,
			"nexthops":  strings.Join(r.NextHops, ","),
			"devices":   strings.Join(r.Devices, ","),
			"connected": strings.Join(r.Connected, ","),
		}
		if err := client.HSet(ctx, key, fields).Err(); err != nil {
			t.Fatalf("seeding %s: %v", key, err)
		}
	}
}

// SeedRoute is one route entry for SeedRoutes.
type SeedRoute struct {
	Class     string
	VRF       string
	Prefix    string
	Protocol  string
	NextHops  []string
	Devices   []string
	Connected []string
}

// FlushDB flushes a specific Redis database.
func FlushDB(t *testing.T, addr string, db int) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flushing DB %d: %v", db, err)
	}
}
