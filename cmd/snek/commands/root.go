package commands

import (
	"fmt"
	"os"

	"github.com/DanaL/snek/config"
	"github.com/DanaL/snek/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snek",
	Short:   "snek is a little snake arcade game that lives in your terminal",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		play()
	},
}

var (
	seed     int64
	logFile  string
	logLevel string
	mute     bool
)

// Execute runs the root command
func Execute() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for hazard placement; 0 picks one from the clock")
	rootCmd.Flags().StringVar(&logFile, "log-file", config.LogFile, "append logs to this file instead of dropping them")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.LogLevel, "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&mute, "mute", config.Mute, "disable sound")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
