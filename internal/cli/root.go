package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/telemetry"
)

type configKeyType struct{}

var configKey = configKeyType{}

var rootCmd = &cobra.Command{
	Use:   "reviewctl",
	Short: "Review recruiting applications and their AI evaluations",
	Long: `reviewctl serves the reviewer API and inspects applications from the
command line. Configuration comes from the environment (UPSTREAM_API_URL,
DATABASE_URL, PORT, ...) with flags taking precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadFrom(viper.GetViper())
		telemetry.SetLevel(cfg.LogLevel)
		cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
		return nil
	},
}

// Execute runs the root command with ctx as the base context.
func Execute(ctx context.Context, args []string, stdout io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	return rootCmd.ExecuteContext(ctx)
}

func getConfigFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	panic("config not found in context")
}

// newBackendClient builds a client for the configured recruiting API.
func newBackendClient(cfg config.Config) (*backend.Client, error) {
	if cfg.UpstreamAPIURL == "" {
		return nil, fmt.Errorf("UPSTREAM_API_URL (or --upstream) is required")
	}
	return backend.NewClient(cfg.UpstreamAPIURL, backend.Options{
		Timeout:        cfg.UpstreamTimeout,
		BreakerEnabled: false,
	})
}

func init() {
	rootCmd.PersistentFlags().String("upstream", "", "Base URL of the recruiting API (overrides UPSTREAM_API_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	bindFlag(rootCmd, "UPSTREAM_API_URL", "upstream", true)
	bindFlag(rootCmd, "LOG_LEVEL", "log-level", true)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(cmd *cobra.Command, key, flagName string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	if err := viper.BindPFlag(key, flags.Lookup(flagName)); err != nil {
		panic(err)
	}
}
