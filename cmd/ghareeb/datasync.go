package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mushafapp/ghareeb/internal/database"
	"github.com/mushafapp/ghareeb/internal/datasync"
)

func newDatasyncCommand() *cobra.Command {
	datasyncCmd := &cobra.Command{
		Use:   "datasync",
		Short: "Keep the local reference data up to date",
	}

	datasyncCmd.AddCommand(
		newDatasyncCheckCommand(),
		newDatasyncApplyCommand(),
	)
	return datasyncCmd
}

func newDatasyncCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare the local data version against the remote manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, closeDB, err := newUpdater()
			if err != nil {
				return err
			}
			defer closeDB()

			result, err := updater.Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("updater.Check() > %w", err)
			}

			out := cmd.OutOrStdout()
			if result.ToVersion > result.FromVersion {
				fmt.Fprintf(out, "Update available: local version %d, remote version %d (%d files)\n",
					result.FromVersion, result.ToVersion, len(result.Files))
			} else {
				fmt.Fprintf(out, "Up to date at version %d\n", result.FromVersion)
			}
			return nil
		},
	}
}

func newDatasyncApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Download and apply newer reference data",
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, closeDB, err := newUpdater()
			if err != nil {
				return err
			}
			defer closeDB()

			result, err := updater.CheckAndUpdate(cmd.Context())
			if err != nil {
				return fmt.Errorf("updater.CheckAndUpdate() > %w", err)
			}

			out := cmd.OutOrStdout()
			if result.Applied {
				fmt.Fprintf(out, "Updated from version %d to %d (%d files)\n",
					result.FromVersion, result.ToVersion, len(result.Files))
			} else {
				fmt.Fprintf(out, "Already up to date at version %d\n", result.FromVersion)
			}
			return nil
		},
	}
}

func newUpdater() (*datasync.Updater, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Sync.ManifestURL == "" {
		return nil, nil, fmt.Errorf("no manifest URL configured. Set GHAREEB_MANIFEST_URL")
	}

	db, err := database.Open(cfg.DatabaseFile)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}

	updater := datasync.NewUpdater(
		datasync.NewHTTPFetcher(),
		datasync.NewDBStore(db),
		cfg.Sync.ManifestURL,
	)
	return updater, func() { _ = db.Close() }, nil
}
