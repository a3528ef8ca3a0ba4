package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/download"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli/v3"
)

type FlagsTestSuite struct {
	suite.Suite
}

func TestFlagsSuite(t *testing.T) {
	suite.Run(t, new(FlagsTestSuite))
}

// parse runs a command carrying the download flags and returns the resulting config.
func (suite *FlagsTestSuite) parse(args ...string) (download.Config, error) {
	var (
		cfg      download.Config
		buildErr error
	)

	cmd := &cli.Command{
		Name:  "download",
		Flags: downloadFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, buildErr = buildConfig(cmd)

			return nil
		},
	}

	suite.Require().NoError(cmd.Run(context.Background(), append([]string{"download"}, args...)))

	return cfg, buildErr
}

func (suite *FlagsTestSuite) TestDefaults() {
	suite.T().Setenv("POLYGON_API_KEY", "")

	cfg, err := suite.parse()
	suite.Require().NoError(err)

	suite.Equal(download.DefaultConfig(), cfg)
}

func (suite *FlagsTestSuite) TestFlags() {
	cfg, err := suite.parse(
		"--pairs", "BTC/USDT", "--pairs", "eth/usdt",
		"--timeframes", "1h",
		"--days", "3",
		"--timerange", "20240101-",
		"--provider", "polygon",
		"--polygon-api-key", "key",
		"--datadir", "/tmp/data",
		"--erase",
		"--dl-trades",
		"--concurrency", "8",
		"--new-pairs-days", "10",
	)
	suite.Require().NoError(err)

	suite.Equal([]string{"BTC/USDT", "ETH/USDT"}, cfg.PairList())
	suite.Equal([]marketdata.Timeframe{marketdata.TimeframeOneHour}, cfg.TimeframeList())
	suite.Equal(3, *cfg.Days)
	suite.Equal("20240101-", cfg.TimeRange)
	suite.Equal("polygon", cfg.Provider)
	suite.Equal("key", cfg.PolygonAPIKey)
	suite.Equal("/tmp/data", cfg.DataDir)
	suite.True(cfg.Erase)
	suite.True(cfg.DownloadTrades)
	suite.Equal(8, cfg.Concurrency)
	suite.Equal(10, cfg.NewPairsDays)
	suite.NoError(cfg.Validate())
}

func (suite *FlagsTestSuite) TestPolygonKeyFromEnvironment() {
	suite.T().Setenv("POLYGON_API_KEY", "from-env")

	cfg, err := suite.parse("--provider", "polygon")
	suite.Require().NoError(err)
	suite.Equal("from-env", cfg.PolygonAPIKey)
}

func (suite *FlagsTestSuite) TestFlagsOverrideConfigFile() {
	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("pairs: [BTC/USDT]\ntimeframes: [1d]\nerase: true\nconcurrency: 2\n"), 0o600))

	cfg, err := suite.parse("--config", path, "--timeframes", "4h")
	suite.Require().NoError(err)

	suite.Equal([]string{"BTC/USDT"}, cfg.Pairs)
	suite.Equal([]string{"4h"}, cfg.Timeframes)
	suite.True(cfg.Erase)
	suite.Equal(2, cfg.Concurrency)
}

func (suite *FlagsTestSuite) TestMissingConfigFile() {
	_, err := suite.parse("--config", filepath.Join(suite.T().TempDir(), "nope.yaml"))
	suite.Error(err)
}

func (suite *FlagsTestSuite) TestPrintDatasets() {
	var out bytes.Buffer
	suite.Require().NoError(printDatasets(&out, nil))
	suite.Equal("No data found.\n", out.String())

	out.Reset()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	datasets := []storage.Dataset{
		{
			Pair:      "BTC/USDT",
			Kind:      storage.DatasetCandles,
			Timeframe: optional.Some(marketdata.TimeframeOneHour),
			Path:      "BTC_USDT-1h.parquet",
			Rows:      24,
			Start:     optional.Some(start),
			End:       optional.Some(start.Add(23 * time.Hour)),
		},
		{
			Pair:      "ETH/USDT",
			Kind:      storage.DatasetTrades,
			Timeframe: optional.None[marketdata.Timeframe](),
			Path:      "ETH_USDT-trades.parquet",
			Rows:      0,
			Start:     optional.None[time.Time](),
			End:       optional.None[time.Time](),
		},
	}
	suite.Require().NoError(printDatasets(&out, datasets))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	suite.Require().Len(lines, 3)
	suite.Contains(lines[0], "DATASET")
	suite.Contains(lines[1], "BTC/USDT 1h")
	suite.Contains(lines[1], "2024-01-01 23:00:00")
	suite.Contains(lines[2], "ETH/USDT trades")
	suite.Contains(lines[2], "-")
}

func (suite *FlagsTestSuite) TestListDataCommand() {
	dir := suite.T().TempDir()

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	suite.Require().NoError(cmd.Run(context.Background(), []string{"download", "list-data", "--datadir", dir}))
	suite.Equal("No data found.\n", out.String())
	suite.NoFileExists(filepath.Join(dir, storage.MetadataFileName))
}

func (suite *FlagsTestSuite) TestListDataLeavesMissingDirectoryAlone() {
	dir := filepath.Join(suite.T().TempDir(), "missing")

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	suite.Require().NoError(cmd.Run(context.Background(), []string{"download", "list-data", "--datadir", dir}))
	suite.Equal("No data found.\n", out.String())
	suite.NoDirExists(dir)
}

func (suite *FlagsTestSuite) TestDownloadWithoutPairsTouchesNoDataDirectory() {
	dir := filepath.Join(suite.T().TempDir(), "data")

	err := newCommand().Run(context.Background(), []string{"download", "--datadir", dir})
	suite.Error(err)
	suite.True(errors.IsConfigurationError(err))
	suite.NoDirExists(dir)
}

func (suite *FlagsTestSuite) TestCheckProvider() {
	cfg := download.DefaultConfig()
	cfg.DownloadTrades = true
	suite.NoError(checkProvider(cfg))

	cfg.Provider = "kraken"
	err := checkProvider(cfg)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
}

func (suite *FlagsTestSuite) TestExitCode() {
	code, message := exitCode(nil)
	suite.Equal(0, code)
	suite.Empty(message)

	interrupted := errors.Wrap(errors.ErrCodeInterrupted, "download interrupted", context.Canceled)
	code, message = exitCode(interrupted)
	suite.Equal(130, code)
	suite.Equal("SIGINT received, aborting ...", message)

	failed := errors.New(errors.ErrCodeAcquisitionFailed, "candles download from Binance failed")
	code, message = exitCode(failed)
	suite.Equal(1, code)
	suite.Equal(failed.Error(), message)
}

func (suite *FlagsTestSuite) TestSchemaCommand() {
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	suite.Require().NoError(cmd.Run(context.Background(), []string{"download", "schema"}))
	suite.Contains(out.String(), `"download_trades"`)
}
