package cmd

import (
	"fmt"
	"log/slog"
	"os"

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
	Use:   "picrasm",
	Short: "Readable assembly translator for PIC16/PIC18 microcontrollers",
	Long: `Picrasm translates between readable PIC16/PIC18 assembly (.rasm), where every
instruction is an English or Slovenian verb phrase, and standard Microchip
assembly (.asm) that MPASM, pic-as or gpasm can consume.

The translation is table driven and purely textual: comments, labels,
directives and operands always pass through untouched, and both language
variants can be mixed in the same source file.`,
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
	cobra.OnInitialize(initConfig, initLogging)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $HOME/.picrasm.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs as JSON to this file")
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

		// Search config in home directory with name ".picrasm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".picrasm")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogging wires the default slog logger: human-readable text on stderr,
// optionally fanned out to a JSON log file.
func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile == "" {
		logFile = viper.GetString("log-file")
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening log file:", err)
			os.Exit(1)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

// stringFlag resolves a string option: an explicitly set flag wins, then the
// config file, then the flag default.
func stringFlag(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}

	value, _ := cmd.Flags().GetString(name)
	return value
}
