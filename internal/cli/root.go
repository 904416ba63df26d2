// Package cli implements the arules command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/YuminosukeSato/arules/internal/config"
	"github.com/YuminosukeSato/arules/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "arules",
	Short: "Mine categorical datasets for if-then association rules",
	Long: `arules one-hot encodes a categorical table, mines frequent itemsets with Apriori,
derives rules scored by support, confidence and lift, removes redundant rules
and prints the ranked result.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// --log-level debug のときはスタックトレースも出力される
		slog.Debug("Command failed", log.ErrAttr(err))
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.arules/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := log.SetupLogger(cfg.LogLevel); err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetProvider(log.NewZerologProvider(os.Stderr, level))
	log.InstallWarningHook(log.GetLogger())
	return nil
}
