package cmd

import (
	"fmt"
	"os"

	"asset-picker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envDir is where LoadConfig looks for a .env file.
var envDir string

// RootCmd is the asset-picker command; it only groups subcommands.
var RootCmd = &cobra.Command{
	Use:   "asset-picker",
	Short: "Asset Picker Service",
	Long: `Asset Picker serves selection components (checkbox groups and selects)
over an asset catalog kept in memory, a database or an S3 bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding the .env file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	// The development config prints readable timestamps on the console.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
