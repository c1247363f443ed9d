package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/NilFoundation/ledger-gateway/common/concurrent"
	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/common/version"
	"github.com/NilFoundation/ledger-gateway/internal/telemetry"
	"github.com/NilFoundation/ledger-gateway/services/gateway"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appTitle = "Ledger gateway"

type RootCommand struct {
	baseCmd  *cobra.Command
	viper    *viper.Viper
	cfgFile  string
	logLevel string
}

var logger = logging.NewLogger("ledgergw")

func main() {
	rootCmd := newRootCommand()
	rootCmd.Execute()
}

func newRootCommand() *RootCommand {
	rc := &RootCommand{}
	rc.baseCmd = &cobra.Command{
		Use:   "ledgergw",
		Short: "HTTP gateway to a ledger smart contract",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetupGlobalLogger(rc.logLevel); err != nil {
				return err
			}
			var err error
			rc.viper, err = newViper(cmd.Root().PersistentFlags())
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rc.baseCmd.PersistentFlags()
	flags.StringVarP(&rc.cfgFile, "config", "c", "", "path to config file (ini, yaml or toml)")
	flags.StringVarP(&rc.logLevel, "log-level", "l", "info", "log level: trace|debug|info|warn|error|fatal|panic")
	addConfigFlags(flags)

	rc.registerSubCommands()
	return rc
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		rc.runCommand(),
		rc.configCommand(),
		versionCommand(),
	)
}

func (rc *RootCommand) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Resolve the contract and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc.viper, rc.cfgFile)
			if err != nil {
				return err
			}
			return runGateway(cmd.Context(), cfg)
		},
	}
}

func (rc *RootCommand) configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfigFile(rc.cfgFile)
			if err != nil {
				return err
			}
			logger.Info().Msgf("Config initialized successfully: %s", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(rc.viper, rc.cfgFile); err != nil {
				return err
			}
			if used := rc.viper.ConfigFileUsed(); used != "" {
				logger.Info().Msgf("Config file: %s", used)
			}

			out, err := renderConfig(rc.viper)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersionString(appTitle))
		},
	}
}

func runGateway(ctx context.Context, cfg *gateway.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go concurrent.OnSignal(ctx, logger, cancel, syscall.SIGINT, syscall.SIGTERM)

	telemetryConfig := &telemetry.Config{
		ServiceName:    "ledgergw",
		ServiceVersion: version.GetGitRevision(),
	}
	if cfg.Metrics {
		telemetryConfig.MetricExportOption = telemetry.ExportOptionGrpc
	}
	if err := telemetry.Init(ctx, telemetryConfig); err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer telemetry.Shutdown(context.Background())

	return gateway.Run(ctx, cfg, logging.NewLogger("gateway"))
}

// Execute runs the root command and handles any errors
func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
