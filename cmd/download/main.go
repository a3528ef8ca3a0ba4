package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/internal/version"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/download"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/history"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/provider"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// exitInterrupted is the conventional status for a process stopped by SIGINT.
const exitInterrupted = 130

// downloadAction loads the configuration, wires provider, store and source
// together and runs one download.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := download.RequirePairs(cfg.PairList()); err != nil {
		return err
	}

	if err := checkProvider(cfg); err != nil {
		return err
	}

	p, err := provider.NewMarketDataProvider(provider.ProviderType(cfg.Provider), cfg.PolygonAPIKey)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DataDir, log)
	if err != nil {
		return err
	}
	defer store.Close()

	source := history.NewSource(p, store, log, history.Options{
		Concurrency:  cfg.Concurrency,
		NewPairsDays: cfg.NewPairsDays,
		Progress:     os.Stderr,
	})

	downloader := download.NewDownloader(source, source, log)
	if err := downloader.Run(ctx, cfg); err != nil {
		if !errors.IsInterrupted(err) {
			log.Error("Download failed", zap.Error(err))
		}

		return err
	}

	log.Info("Download completed successfully.")

	return nil
}

// checkProvider rejects requests the configured provider cannot serve.
func checkProvider(cfg download.Config) error {
	info, err := provider.GetProviderInfo(cfg.Provider)
	if err != nil {
		return err
	}

	if cfg.DownloadTrades && !info.Trades {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "%s does not serve trades, run without --dl-trades", info.DisplayName)
	}

	return nil
}

// exitCode maps the result of a run to the process exit status and the
// message written to stderr.
func exitCode(err error) (int, string) {
	switch {
	case err == nil:
		return 0, ""
	case errors.IsInterrupted(err):
		return exitInterrupted, "SIGINT received, aborting ..."
	default:
		return 1, err.Error()
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "download",
		Usage:   "Download historical candles or trades into the local data directory",
		Version: version.GetVersion(),
		Flags:   downloadFlags(),
		Action:  downloadAction,
		Commands: []*cli.Command{
			{
				Name:   "list-data",
				Usage:  "List the datasets stored in the data directory",
				Flags:  []cli.Flag{dataDirFlag()},
				Action: listDataAction,
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the configuration file",
				Action: func(_ context.Context, cmd *cli.Command) error {
					schema, err := download.GetConfigSchema()
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(cmd.Root().Writer, schema)

					return err
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore the default handlers once the first signal arrives so a second
	// one kills a run that is stuck ignoring ctx.
	go func() {
		<-ctx.Done()
		stop()
	}()

	code, message := exitCode(newCommand().Run(ctx, os.Args))
	if message != "" {
		fmt.Fprintln(os.Stderr, message)
	}

	stop()
	os.Exit(code)
}
