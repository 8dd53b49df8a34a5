// Ribtrace - RIB Path Tracing Tool
//
// Ribtrace replays a previously collected, classified routing snapshot to
// simulate how packets would be forwarded across the network. Given a
// source and destination address it reconstructs the forward and return
// path trees (branching at ECMP) and flags routing asymmetry.
//
// The snapshot is produced by the collection pipeline, either exported as
// a JSON file or published to its Redis store:
//
//	ribtrace -D routes.json trace 10.1.1.1 10.2.2.5
//	ribtrace -r 127.0.0.1:6379 trace 10.1.1.1 10.2.2.5 --vrf cust-a
//	ribtrace -D routes.json batch traces.yaml --json
//	ribtrace -D routes.json routes match 10.2.2.5
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/settings"
	"github.com/newtron-network/ribtrace/pkg/trace"
	"github.com/newtron-network/ribtrace/pkg/util"
	"github.com/newtron-network/ribtrace/pkg/version"
)

var (
	// Global option flags
	datasetPath string // -D, --dataset
	redisAddr   string // -r, --redis
	redisDB     int
	verbose     bool
	jsonOutput  bool

	// Global state
	userSettings *settings.Settings
	dataset      *rib.Dataset
	index        *trace.Index
	tracer       *trace.Tracer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "ribtrace",
	Short:             "RIB Path Tracing Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Ribtrace simulates packet forwarding across a network by replaying a
collected routing snapshot, hop by hop, device by device.

  ribtrace -D routes.json trace <source> <destination> [--vrf <vrf>]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Settings and version commands work without a dataset
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Apply defaults from settings
		if datasetPath == "" {
			datasetPath = userSettings.DatasetPath
		}
		if redisAddr == "" {
			redisAddr = userSettings.RedisAddr
		}
		if redisDB == 0 {
			redisDB = userSettings.RedisDB
		}

		// Set log level: quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		dataset, err = loadDataset()
		if err != nil {
			return err
		}

		index = trace.Build(dataset)
		tracer = trace.New(index)
		return nil
	},
}

// loadDataset reads the routing snapshot from Redis when an address is
// configured, otherwise from the dataset file.
func loadDataset() (*rib.Dataset, error) {
	switch {
	case redisAddr != "":
		store := rib.NewRouteStore(redisAddr, redisDB)
		if err := store.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to route store %s: %w", redisAddr, err)
		}
		defer store.Close()

		ds, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading routes from %s: %w", redisAddr, err)
		}
		return ds, nil

	case datasetPath != "":
		return rib.Load(datasetPath)

	default:
		return nil, fmt.Errorf("no routing dataset: use --dataset/-D, --redis/-r, or 'ribtrace settings set'")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "D", "", "Routing dataset file (JSON export)")
	rootCmd.PersistentFlags().StringVarP(&redisAddr, "redis", "r", "", "Collector Redis address (host:port)")
	rootCmd.PersistentFlags().IntVar(&redisDB, "redis-db", 0, "Collector Redis database number")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	for _, cmd := range []*cobra.Command{traceCmd, batchCmd, routesCmd, routesMatchCmd, devicesCmd} {
		addOutputFlags(cmd)
	}

	rootCmd.AddCommand(
		traceCmd,
		batchCmd,
		routesCmd,
		devicesCmd,
		settingsCmd,
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("ribtrace %s\n", version.Info())
			},
		},
	)
}
