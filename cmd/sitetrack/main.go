// sitetrack is a terminal dashboard for tracking a home construction
// project: timeline, budget, contractors, documents, issues, daily
// photos, and an AI assistant.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/sitetrack/internal/app"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/store"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "sitetrack",
		Short: "Construction project tracker",
		Long: "SiteTrack is a terminal dashboard for tracking a home construction\n" +
			"project: schedule, budget, contractors, documents, and site issues.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(),
		"path to the configuration file")

	root.AddCommand(
		newReportCmd(),
		newExportCmd(),
		newImportCmd(),
		newCredentialCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore loads the configuration and opens the SQLite store.
func openStore() (*store.SQLiteStore, *model.AppConfig, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = model.DefaultDatabasePath()
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return s, cfg, nil
}

func runTUI() error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	m := app.New(s, cfg.AI.Model, cfg.AI.MaxTokens)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
