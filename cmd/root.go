// Package cmd provides the command-line interface for conlog
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/conlog/internal/config"
	"github.com/kedare/conlog/internal/env"
	"github.com/kedare/conlog/internal/logger"
	"github.com/kedare/conlog/pkg/conlog"
)

var (
	logLevel     string
	configPath   string
	platformName string
	noColor      bool

	cfg     = config.Default()
	factory *conlog.Factory
)

var rootCmd = &cobra.Command{
	Use:   "conlog",
	Short: "Print structured, styled log lines from the shell",
	Long: `conlog composes a prefix, message, detail, data, timestamp and divider lines
into one styled output line. Records render with ANSI colours on terminals or as
%c/CSS console calls, and long-running steps can be shown as a spinner.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level '%s': %w", logLevel, err)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)

		return setup(cmd)
	},
}

func setup(cmd *cobra.Command) error {
	path := configPath
	required := path != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Log.Debugf("No default config path: %v", err)
		}
		path = p
	}

	loaded := config.Default()
	if path != "" {
		var err error
		loaded, err = config.Load(path, required)
		if err != nil {
			return err
		}
		logger.Log.Debugf("Configuration loaded from %s", path)
	}
	cfg = loaded

	name := cfg.Platform
	if cmd.Flags().Changed("platform") {
		name = platformName
	}
	platform, err := env.ParsePlatform(name)
	if err != nil {
		return err
	}

	opts := []conlog.Option{
		conlog.WithPlatform(platform),
		conlog.WithRegistry(conlog.NewRegistry()),
	}
	if out := cmd.OutOrStdout(); out != os.Stdout {
		opts = append(opts, conlog.WithWriter(out))
	}
	if noColor {
		opts = append(opts, conlog.WithColor(false))
	}

	factory = conlog.New(opts...)
	for name, styles := range cfg.Types {
		if err := factory.Register(name, styles...); err != nil {
			return fmt.Errorf("config type %q: %w", name, err)
		}
	}
	logger.Log.Debugf("Rendering for %s", factory.Platform())

	return nil
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Set the diagnostic logging level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML configuration file (default ~/.config/conlog/config.toml)")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "auto", "Rendering platform (auto, terminal, console)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable terminal colours")
}
