package rib

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/newtron-network/ribtrace/pkg/util"
)

// Load reads a classified routing dataset from a JSON export file.
// The file is written by the collection pipeline's export stage:
//
//	{"routes": {"private": [{"prefix": "10.1.1.0/24", ...}, ...], ...}}
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	ds.applyDefaults()
	return &ds, nil
}

// validate checks the dataset shape. Per-entry prefix syntax is not
// checked here: an unparsable prefix is a data-quality gap the index
// builder skips, not a reason to reject the whole snapshot.
func (d *Dataset) validate() error {
	var vb util.ValidationBuilder

	vb.Add(d.Routes != nil, "dataset has no routes section")

	for class, entries := range d.Routes {
		vb.Add(class != "", "empty classification label")
		for i, e := range entries {
			if e == nil {
				vb.AddErrorf("class %s: entry %d is null", class, i)
				continue
			}
			vb.Add(e.Prefix != "", fmt.Sprintf("class %s: entry %d has no prefix", class, i))
		}
	}

	return vb.Build()
}

// applyDefaults fills in the default VRF on entries that name none.
func (d *Dataset) applyDefaults() {
	for _, entries := range d.Routes {
		for _, e := range entries {
			if e.VRF == "" {
				e.VRF = DefaultVRF
			}
		}
	}
}
