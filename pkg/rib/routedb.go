// This file implements dataset access against the collector's Redis store,
// where the classification stage publishes routes as hashes keyed
// "ROUTES|<class>|<vrf>|<prefix>".
package rib

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/newtron-network/ribtrace/pkg/util"
)

// routesTable is the hash key namespace for classified routes.
const routesTable = "ROUTES"

// RouteStore reads a classified routing dataset from the collector's
// Redis instance instead of a JSON export file.
type RouteStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRouteStore creates a route store for the given Redis address.
func NewRouteStore(addr string, db int) *RouteStore {
	return &RouteStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
		ctx: context.Background(),
	}
}

// Connect tests the connection
func (s *RouteStore) Connect() error {
	return s.client.Ping(s.ctx).Err()
}

// Close closes the connection
func (s *RouteStore) Close() error {
	return s.client.Close()
}

// Load reads the entire routes table and reconstructs a Dataset.
// Hash fields: protocol, nexthops, devices, connected (comma-separated lists).
func (s *RouteStore) Load() (*Dataset, error) {
	keys, err := scanKeys(s.ctx, s.client, routesTable+"|*", 100)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Routes: make(map[Class][]*Entry)}

	for _, key := range keys {
		// ROUTES|<class>|<vrf>|<prefix>
		parts := strings.SplitN(key, "|", 4)
		if len(parts) < 4 {
			util.Debugf("skipping malformed route key %q", key)
			continue
		}
		class := Class(parts[1])

		vals, err := s.client.HGetAll(s.ctx, key).Result()
		if err != nil {
			return nil, err
		}

		entry := &Entry{
			Prefix:           parts[3],
			VRF:              parts[2],
			Protocol:         vals["protocol"],
			NextHops:         splitList(vals["nexthops"]),
			Devices:          splitList(vals["devices"]),
			ConnectedDevices: splitList(vals["connected"]),
		}
		if entry.VRF == "" {
			entry.VRF = DefaultVRF
		}
		ds.Routes[class] = append(ds.Routes[class], entry)
	}

	return ds, nil
}

// splitList splits a comma-separated hash field into a string slice,
// dropping empty elements.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// scanKeys iterates Redis keys matching the given pattern using cursor-based
// SCAN instead of the blocking O(N) KEYS command. The count hint controls
// how many keys Redis returns per iteration (not an exact limit).
func scanKeys(ctx context.Context, client *redis.Client, pattern string, countHint int64) ([]string, error) {
	var cursor uint64
	var keys []string
	for {
		batch, nextCursor, err := client.Scan(ctx, cursor, pattern, countHint).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
