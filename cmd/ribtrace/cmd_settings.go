package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ribtrace/pkg/cli"
	"github.com/newtron-network/ribtrace/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent ribtrace settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Settings file: %s\n\n", cli.Dim(settings.DefaultSettingsPath()))
		fmt.Printf("dataset:  %s\n", orUnset(s.DatasetPath))
		fmt.Printf("redis:    %s\n", orUnset(s.RedisAddr))
		fmt.Printf("redis-db: %d\n", s.RedisDB)
		fmt.Printf("vrf:      %s\n", s.GetDefaultVRF())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (dataset, redis, redis-db, vrf)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "dataset":
			s.DatasetPath = value
		case "redis":
			s.RedisAddr = value
		case "redis-db":
			db, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("redis-db must be a number: %q", value)
			}
			s.RedisDB = db
		case "vrf":
			s.DefaultVRF = value
		default:
			return fmt.Errorf("unknown setting %q (valid: dataset, redis, redis-db, vrf)", key)
		}

		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return cli.Dim("(unset)")
	}
	return s
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}
