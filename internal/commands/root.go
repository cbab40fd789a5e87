package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. defaultConfig is the config path used when --config is not
// given.
func NewRootCommand(defaultConfig string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "beanport",
		Short:   "Convert bank CSV exports into ledger entries",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfig, "path to beanport.yaml")

	rootCmd.AddCommand(newInitCommand(&configPath))
	rootCmd.AddCommand(newIdentifyCommand(&configPath))
	rootCmd.AddCommand(newExtractCommand(&configPath))

	return rootCmd
}
