package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIdentifyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <file>...",
		Short: "Show which importer claims each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(*configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				imp := reg.Identify(path)
				if imp == nil {
					fmt.Fprintf(out, "%s: unknown\n", path)
					continue
				}
				fmt.Fprintf(out, "%s: %s (%s)\n", path, imp.Name(), imp.Account(path))
			}
			return nil
		},
	}
}
