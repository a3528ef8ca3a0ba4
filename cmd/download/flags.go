package main

import (
	"fmt"
	"strings"

	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/download"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/provider"
	"github.com/urfave/cli/v3"
)

func dataDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "datadir",
		Aliases: []string{"d"},
		Usage:   "Path to the data directory",
		Value:   download.DefaultDataDir,
	}
}

func downloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file; flags override its values",
		},
		&cli.StringSliceFlag{
			Name:    "pairs",
			Aliases: []string{"p"},
			Usage:   "Pairs to download, e.g. `BTC/USDT`",
		},
		&cli.StringSliceFlag{
			Name:    "timeframes",
			Aliases: []string{"t"},
			Usage: fmt.Sprintf("Candle timeframes (default %s), one of %s",
				strings.Join(marketdata.TimeframeStrings(marketdata.DefaultTimeframes), ","),
				strings.Join(marketdata.TimeframeStrings(marketdata.AllTimeframes), ",")),
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "Download the last `N` days; takes precedence over --timerange",
		},
		&cli.StringFlag{
			Name:  "timerange",
			Usage: "Explicit range as `START-END`, e.g. 20240101-20240201",
		},
		&cli.StringFlag{
			Name:  "provider",
			Usage: fmt.Sprintf("Data provider, one of %s", strings.Join(provider.GetSupportedProviders(), ", ")),
			Value: download.DefaultProvider,
		},
		dataDirFlag(),
		&cli.BoolFlag{
			Name:  "erase",
			Usage: "Remove stored data for the requested pairs before downloading",
		},
		&cli.BoolFlag{
			Name:    "dl-trades",
			Aliases: []string{"download-trades"},
			Usage:   "Download trades and derive candles from them",
		},
		&cli.StringFlag{
			Name:    "polygon-api-key",
			Usage:   "Polygon.io API key",
			Sources: cli.EnvVars("POLYGON_API_KEY"),
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "Number of pairs downloaded in parallel",
			Value: download.DefaultConcurrency,
		},
		&cli.IntFlag{
			Name:  "new-pairs-days",
			Usage: "Days of history fetched for pairs without stored data when no range start is given",
			Value: download.DefaultNewPairsDays,
		},
	}
}

// buildConfig reads the config file, if any, and applies every flag the user set on top of it.
func buildConfig(cmd *cli.Command) (download.Config, error) {
	cfg := download.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := download.LoadConfig(path)
		if err != nil {
			return cfg, err
		}

		cfg = loaded
	}

	if cmd.IsSet("pairs") {
		cfg.Pairs = cmd.StringSlice("pairs")
	}

	if cmd.IsSet("timeframes") {
		cfg.Timeframes = cmd.StringSlice("timeframes")
	}

	if cmd.IsSet("days") {
		days := int(cmd.Int("days"))
		cfg.Days = &days
	}

	if cmd.IsSet("timerange") {
		cfg.TimeRange = cmd.String("timerange")
	}

	if cmd.IsSet("provider") {
		cfg.Provider = cmd.String("provider")
	}

	if cmd.IsSet("datadir") {
		cfg.DataDir = cmd.String("datadir")
	}

	if cmd.IsSet("erase") {
		cfg.Erase = cmd.Bool("erase")
	}

	if cmd.IsSet("dl-trades") {
		cfg.DownloadTrades = cmd.Bool("dl-trades")
	}

	if cmd.IsSet("polygon-api-key") {
		cfg.PolygonAPIKey = cmd.String("polygon-api-key")
	}

	if cmd.IsSet("concurrency") {
		cfg.Concurrency = int(cmd.Int("concurrency"))
	}

	if cmd.IsSet("new-pairs-days") {
		cfg.NewPairsDays = int(cmd.Int("new-pairs-days"))
	}

	return cfg, nil
}
