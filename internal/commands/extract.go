package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beanport-dev/beanport/internal/importer"
	"github.com/beanport-dev/beanport/internal/model"
	"github.com/beanport-dev/beanport/internal/render"
)

func newExtractCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file-or-dir>...",
		Short: "Extract ledger entries from bank CSV exports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(*configPath)
			if err != nil {
				return err
			}

			paths, err := expandArgs(args)
			if err != nil {
				return err
			}

			var all []model.Transaction
			for _, path := range paths {
				imp := reg.Identify(path)
				if imp == nil {
					slog.Warn("no importer claims file", "file", path)
					continue
				}
				all = append(all, imp.Extract(path)...)
			}

			return render.Write(cmd.OutOrStdout(), all)
		},
	}
}

// expandArgs resolves directory arguments to the CSV files inside them;
// plain files pass through as-is.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := importer.Scan(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}
	return paths, nil
}
