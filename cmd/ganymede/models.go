package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the configured model catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
		}

		table := cli.NewTable(os.Stdout)
		table.Header("ID", "LABEL", "PROVIDER", "UPSTREAM MODEL")
		for _, m := range cfg.Models {
			upstream := m.Model
			if upstream == "" {
				upstream = m.ID
			}
			table.Row(m.ID, m.Label, m.Provider, upstream)
		}
		return table.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
