package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-attack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the search
order and the --difficulty preset are applied. The output is a valid
config file.

Examples:
  zombies config dump > ~/.zombies/configs/zombies.yaml
  zombies config dump --difficulty hard
  zombies config dump --config ./my-zombies.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
