package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newtron-network/ribtrace/pkg/cli"
	"github.com/newtron-network/ribtrace/pkg/trace"
)

// batchRequest is one entry in a batch file.
type batchRequest struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	VRF         string `yaml:"vrf,omitempty"`
}

// batchFile is the YAML shape consumed by the batch command.
type batchFile struct {
	Traces []batchRequest `yaml:"traces"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Run a batch of traces concurrently",
	Long: `Batch reads source/destination pairs from a YAML file and traces them
all against the same routing snapshot. Traces run concurrently; the
index is immutable, so no locking is needed.

  traces:
    - source: 10.1.1.1
      destination: 10.2.2.5
    - source: 10.1.1.1
      destination: 198.51.100.5
      vrf: cust-a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading batch file %s: %w", args[0], err)
		}

		var batch batchFile
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("parsing batch file %s: %w", args[0], err)
		}
		if len(batch.Traces) == 0 {
			return fmt.Errorf("batch file %s contains no traces", args[0])
		}

		results := make([]*trace.Result, len(batch.Traces))
		errs := make([]error, len(batch.Traces))

		var wg sync.WaitGroup
		for i, req := range batch.Traces {
			wg.Add(1)
			go func(i int, req batchRequest) {
				defer wg.Done()
				vrf := req.VRF
				if vrf == "" {
					vrf = vrfOrDefault()
				}
				results[i], errs[i] = tracer.Trace(req.Source, req.Destination, vrf)
			}(i, req)
		}
		wg.Wait()

		failed := 0
		for i, err := range errs {
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "trace %s -> %s: %v\n",
					batch.Traces[i].Source, batch.Traces[i].Destination, err)
			}
		}

		if jsonOutput {
			ok := make([]*trace.Result, 0, len(results))
			for _, r := range results {
				if r != nil {
					ok = append(ok, r)
				}
			}
			if err := json.NewEncoder(os.Stdout).Encode(ok); err != nil {
				return err
			}
		} else {
			for i, result := range results {
				if result == nil {
					continue
				}
				if i > 0 {
					fmt.Println()
				}
				cli.RenderResult(os.Stdout, result)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d traces failed", failed, len(batch.Traces))
		}
		return nil
	},
}
