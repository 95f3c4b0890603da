package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hdlkit/regmap/cmd/check"
	"github.com/hdlkit/regmap/cmd/generate"
	"github.com/hdlkit/regmap/cmd/show"
	"github.com/hdlkit/regmap/cmd/tools"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "regmap",
	Short: "A register map compiler for FPGA projects",
	Long: `Regmap compiles declarative register definition files (TOML or YAML) into
structured register models and generates artifacts from them, such as VHDL
packages, C headers and documentation.

This CLI is the entry point for the regmap toolkit.`,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(check.CheckCmd, generate.GenerateCmd, show.ShowCmd, tools.ToolsCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.regmap.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs, as JSON, to this file")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn

	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)

		if err != nil {
			return fmt.Errorf("error opening log file %s: %w", logFile, err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".regmap" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".regmap")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
