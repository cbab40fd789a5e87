package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/beanport-dev/beanport/internal/commands"
)

// env holds environment overrides for CLI defaults.
type env struct {
	Config   string `envconfig:"BEANPORT_CONFIG" default:"beanport.yaml"`
	LogLevel string `envconfig:"BEANPORT_LOG_LEVEL" default:"info"`
}

func main() {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(e.LogLevel)

	rootCmd := commands.NewRootCommand(e.Config)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
