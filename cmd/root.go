package cmd

import (
	"fmt"
	"os"

	"media-library/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "media-library",
	Short: "Media Library Service",
	Long: `Media Library curates a personal collection of liked videos.
It syncs the remote snapshot into a local library, preserves your ratings
and comments across syncs, and answers condition based searches.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application logger in console format so CLI
		// errors read the same as server logs.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
