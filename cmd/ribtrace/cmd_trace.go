package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ribtrace/pkg/cli"
)

var traceVRF string

var traceCmd = &cobra.Command{
	Use:   "trace <source> <destination>",
	Short: "Trace the forward and return path between two addresses",
	Long: `Trace simulates per-hop forwarding decisions from the device owning the
source address toward the destination, then independently back. The
result is a tree that branches at every ECMP next-hop.

A completed trace exits 0 even when it contains exits, missing routes,
or asymmetry; only malformed input fails.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := tracer.Trace(args[0], args[1], vrfOrDefault())
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		cli.RenderResult(os.Stdout, result)
		return nil
	},
}

func vrfOrDefault() string {
	if traceVRF != "" {
		return traceVRF
	}
	if userSettings != nil {
		return userSettings.GetDefaultVRF()
	}
	return "default"
}

func init() {
	traceCmd.Flags().StringVar(&traceVRF, "vrf", "", "VRF to trace in (default \"default\")")
}
