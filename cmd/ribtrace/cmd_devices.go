package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ribtrace/pkg/cli"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List devices present in the routing snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices := index.Devices()

		if jsonOutput {
			type deviceInfo struct {
				Name       string `json:"name"`
				EntryCount int    `json:"entry_count"`
			}
			infos := make([]deviceInfo, 0, len(devices))
			for _, name := range devices {
				infos = append(infos, deviceInfo{Name: name, EntryCount: len(index.Entries(name))})
			}
			return json.NewEncoder(os.Stdout).Encode(infos)
		}

		tbl := cli.NewTable("DEVICE", "ENTRIES")
		for _, name := range devices {
			tbl.Row(name, strconv.Itoa(len(index.Entries(name))))
		}
		tbl.Flush()

		if len(devices) == 0 {
			fmt.Println("No devices in dataset")
		}
		return nil
	},
}
