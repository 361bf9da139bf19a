package cmd

import (
	"context"
	"errors"
	"log"

	"media-library/core/config"
	"media-library/core/database"
	"media-library/core/logger"
	"media-library/core/remote"
	"media-library/feature/library"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncKeepAll   bool
	syncDeleteAll bool
)

// syncCmd runs a one-shot reconciliation against the remote snapshot.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the library against the remote snapshot",
	Long: `Fetches the complete remote snapshot and merges it into the local
library. Ratings, comments and hype counters survive the merge. Items that
disappeared remotely are flagged as orphans and handled according to the
retention policy, or resolved directly with --keep-all / --delete-all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if syncKeepAll && syncDeleteAll {
			return errors.New("--keep-all and --delete-all are mutually exclusive")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		svc, err := buildService(cfg, logg)
		if err != nil {
			return err
		}

		ctx := context.Background()
		report, err := svc.Sync(ctx)
		if err != nil {
			return err
		}

		logg.Info("Sync finished",
			zap.Int("fetched", report.TotalFetched),
			zap.Int("added", len(report.Added)),
			zap.Int("orphaned", len(report.Orphaned)),
		)

		if !report.NeedsConfirmation {
			return nil
		}

		switch {
		case syncKeepAll:
			_, err = svc.ConfirmSync(ctx, library.ActionKeepAll)
		case syncDeleteAll:
			_, err = svc.ConfirmSync(ctx, library.ActionDeleteAll)
		default:
			logg.Warn("Orphans need confirmation",
				zap.Strings("ids", report.Orphaned),
				zap.String("hint", "rerun with --keep-all or --delete-all, or resolve per item over the API"),
			)
			return nil
		}
		if err != nil {
			return err
		}

		logg.Info("Orphans resolved", zap.Bool("kept", syncKeepAll))
		return nil
	},
}

// buildService assembles a library service outside the HTTP server, for
// one-shot commands.
func buildService(cfg *config.Config, logg *zap.Logger) (*library.Service, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	fetcher := library.NewRemoteFetcher(remote.NewClient(cfg.Remote))
	feature := library.NewFeature(db, fetcher, logg)
	if err := feature.Migrate(); err != nil {
		return nil, err
	}
	return feature.Service(), nil
}

func init() {
	syncCmd.Flags().BoolVar(&syncKeepAll, "keep-all", false, "keep every orphaned item")
	syncCmd.Flags().BoolVar(&syncDeleteAll, "delete-all", false, "delete every orphaned item and ledger it")
	RootCmd.AddCommand(syncCmd)
}
