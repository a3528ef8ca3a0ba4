package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/download"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"github.com/urfave/cli/v3"
)

func browseAction(_ context.Context, cmd *cli.Command) error {
	dataDir := cmd.String("datadir")

	store, err := storage.OpenReadOnly(dataDir, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer store.Close()

	p := tea.NewProgram(NewModel(store, dataDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "data",
		Usage: "Browse downloaded candles and trades",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "datadir",
				Aliases: []string{"d"},
				Usage:   "Path to the data directory",
				Value:   download.DefaultDataDir,
			},
		},
		Action: browseAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
