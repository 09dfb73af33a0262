package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CultureBotAI/assay-metadata/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a config file",
	Long: `Write a starter config file at .assay-metadata/config.yaml.

By default the commented template with default values is written.
With --effective, the currently effective configuration (defaults
merged with any loaded config file and flags) is written instead.

Examples:
  assay-metadata config:init
  assay-metadata config:init --path ~/.config/assay-metadata/config.yaml
  assay-metadata config:init --effective --force`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().String("path", ".assay-metadata/config.yaml", "where to write the config file")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configInitCmd.Flags().Bool("effective", false, "write the effective configuration instead of the template")
	rootCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")
	effective, _ := cmd.Flags().GetBool("effective")

	if _, err := os.Stat(path); err == nil && !force {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if effective {
		if err := config.Save(path, cfg); err != nil {
			return err
		}
	} else {
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
