package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/sftraintimes/config"
	"github.com/theoremus-urban-solutions/sftraintimes/internal"
)

var (
	configPath string
	envFile    string
	logLevel   string

	logger *slog.Logger
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sftraintimes",
		Short:        "Voice skill backend for SF Muni next-train times",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			var paths []string
			if configPath != "" {
				paths = append(paths, configPath)
			}
			if err := config.LoadAppConfig(paths...); err != nil {
				return err
			}
			level := config.Config.Log.Level
			if logLevel != "" {
				level = logLevel
			}
			logger = internal.InitLogging(level)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default config.yml)")
	root.PersistentFlags().StringVarP(&envFile, "env", "e", ".env", "env file path")
	root.PersistentFlags().StringVarP(&logLevel, "log", "l", "", "log level (debug|info|warn|error)")

	root.AddCommand(serveCmd(), invokeCmd(), resolveCmd(), nextCmd())
	return root
}
