// Package main implements the entry point for the taskboard API server,
// which tracks tasks and their effort tags in memory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// main is the entry point for the taskboard server.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the flags that do not map onto configuration keys.
type rootOptions struct {
	configFile string
	envFile    string
}

// newRootCommand builds the taskboard-server command.
// --port and --log-level are read by config.Load through the flag set.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "taskboard-server",
		Short:         "Serve the taskboard HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "path to a .env file; ignored when missing")
	flags.Int("port", 8000, "port to listen on")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// run loads configuration, builds the application and serves until ctx is done.
func run(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadAppConfig(opts.configFile, opts.envFile, cmd.Flags())
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
