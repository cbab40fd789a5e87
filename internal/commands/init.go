package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/config"
	"github.com/beanport-dev/beanport/internal/payeemap"
)

func newInitCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter beanport.yaml and payee mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, *configPath)
		},
	}
}

func runInit(cmd *cobra.Command, configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default()
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.PayeeMapping); os.IsNotExist(err) {
		starter := map[string]string{
			"Example Landlord": "Expenses:Rent",
		}
		if err := payeemap.Save(cfg.PayeeMapping, starter); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", configPath)
	return nil
}
