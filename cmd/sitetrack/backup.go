package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/sitetrack/internal/export"
)

// newExportCmd writes a full backup file without starting the UI.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write a JSON backup of the project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := export.DefaultFilename(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			snap, err := s.Snapshot(context.Background())
			if err != nil {
				return err
			}

			if err := export.WriteFile(path, snap); err != nil {
				return err
			}
			fmt.Printf("Backup written to %s\n", path)
			return nil
		},
	}
}

// newImportCmd restores state from a backup file.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Restore the project from a JSON backup",
		Long: "Replaces the stored collections with the ones present in the backup\n" +
			"file. Collections absent from the file are left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := export.ParseFile(args[0])
			if err != nil {
				return err
			}

			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ImportState(context.Background(), payload.ImportData()); err != nil {
				return err
			}
			fmt.Printf("Backup restored from %s\n", args[0])
			return nil
		},
	}
}
