package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ribtrace/pkg/cli"
	"github.com/newtron-network/ribtrace/pkg/rib"
	"github.com/newtron-network/ribtrace/pkg/util"
)

var (
	routesDevice string
	routesClass  string
	matchVRF     string
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List indexed routing entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []*rib.Entry
		if routesDevice != "" {
			entries = index.Entries(routesDevice)
		} else {
			for _, device := range index.Devices() {
				entries = append(entries, index.Entries(device)...)
			}
		}

		var filtered []*rib.Entry
		for _, e := range entries {
			if routesClass != "" && string(e.Class) != routesClass {
				continue
			}
			filtered = append(filtered, e)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(filtered)
		}

		tbl := cli.NewTable("PREFIX", "CLASS", "PROTO", "VRF", "NEXT-HOPS", "DEVICES")
		for _, e := range filtered {
			tbl.Row(e.Prefix, string(e.Class), e.Protocol, e.VRF,
				strings.Join(e.NextHops, ","), strings.Join(e.Devices, ","))
		}
		tbl.Flush()

		if len(filtered) == 0 {
			fmt.Println("No matching routes")
		}
		return nil
	},
}

var routesMatchCmd = &cobra.Command{
	Use:   "match <address>",
	Short: "Show the network-wide longest-prefix match for an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := util.ParseAddr(args[0])
		if err != nil {
			return err
		}

		vrf := matchVRF
		if vrf == "" {
			vrf = userSettings.GetDefaultVRF()
		}

		matched := index.LongestMatch(addr, vrf)
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(matched)
		}

		if len(matched) == 0 {
			fmt.Printf("No prefix covers %s in vrf %s\n", addr, vrf)
			return nil
		}

		fmt.Printf("Longest match for %s (vrf %s): %s\n\n",
			cli.Bold(addr.String()), vrf, matched[0].Prefix)
		tbl := cli.NewTable("PREFIX", "CLASS", "PROTO", "NEXT-HOPS", "DEVICES")
		for _, e := range matched {
			tbl.Row(e.Prefix, string(e.Class), e.Protocol,
				strings.Join(e.NextHops, ","), strings.Join(e.Devices, ","))
		}
		tbl.Flush()
		return nil
	},
}

func init() {
	routesCmd.Flags().StringVarP(&routesDevice, "device", "d", "", "Only entries on this device")
	routesCmd.Flags().StringVarP(&routesClass, "class", "c", "", "Only entries with this classification")
	routesMatchCmd.Flags().StringVar(&matchVRF, "vrf", "", "VRF to match in (default \"default\")")
	routesCmd.AddCommand(routesMatchCmd)
}
