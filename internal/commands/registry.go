package commands

import (
	"fmt"

	"github.com/beanport-dev/beanport/internal/config"
	"github.com/beanport-dev/beanport/internal/importer"
	"github.com/beanport-dev/beanport/internal/payeemap"
)

// loadRegistry loads config and payee mapping, then builds the importer
// registry the config declares.
func loadRegistry(configPath string) (*importer.Registry, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	payees, err := payeemap.Load(cfg.PayeeMapping)
	if err != nil {
		return nil, err
	}

	return buildRegistry(cfg, payees)
}

func buildRegistry(cfg *config.Config, payees map[string]string) (*importer.Registry, error) {
	reg := importer.NewRegistry()
	for _, spec := range cfg.Importers {
		switch spec.Format {
		case "revolut":
			reg.Register(importer.NewRevolut(spec.Account, payees))
		case "neon":
			reg.Register(importer.NewNeon(spec.Account, spec.Currency, payees))
		case "swisscard":
			sc, err := importer.NewSwisscard(spec.Account, spec.Pattern, payees)
			if err != nil {
				return nil, err
			}
			reg.Register(sc)
		default:
			return nil, fmt.Errorf("unknown importer format: %q", spec.Format)
		}
	}
	return reg, nil
}
