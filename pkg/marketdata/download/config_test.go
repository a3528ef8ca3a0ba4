package download

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg := DefaultConfig()

	suite.Equal("binance", cfg.Provider)
	suite.Equal("data", cfg.DataDir)
	suite.Equal(4, cfg.Concurrency)
	suite.Equal(30, cfg.NewPairsDays)
	suite.Equal([]marketdata.Timeframe{marketdata.TimeframeOneMinute, marketdata.TimeframeFiveMinutes}, cfg.TimeframeList())
	suite.True(cfg.DaysOption().IsNone())
	suite.NoError(cfg.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfig(`
pairs:
  - eth/usdt
  - " BTC/USDT "
  - ETH/USDT
timeframes: [1h, 1d]
days: 7
provider: polygon
polygon_api_key: secret
download_trades: true
`)

	cfg, err := LoadConfig(path)
	suite.Require().NoError(err)

	suite.Equal([]string{"ETH/USDT", "BTC/USDT"}, cfg.PairList())
	suite.Equal([]marketdata.Timeframe{marketdata.TimeframeOneHour, marketdata.TimeframeOneDay}, cfg.TimeframeList())
	suite.Equal(7, cfg.DaysOption().Unwrap())
	suite.Equal("polygon", cfg.Provider)
	suite.True(cfg.DownloadTrades)
	// untouched fields keep their defaults
	suite.Equal("data", cfg.DataDir)
	suite.Equal(4, cfg.Concurrency)
	suite.NoError(cfg.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfigErrors() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))

	_, err = LoadConfig(suite.writeConfig("pairs: [unterminated"))
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestValidate() {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{name: "defaults", modify: func(*Config) {}, valid: true},
		{name: "unknown provider", modify: func(c *Config) { c.Provider = "kraken" }, valid: false},
		{name: "empty data dir", modify: func(c *Config) { c.DataDir = "" }, valid: false},
		{name: "polygon without key", modify: func(c *Config) { c.Provider = "polygon" }, valid: false},
		{name: "polygon with key", modify: func(c *Config) { c.Provider = "polygon"; c.PolygonAPIKey = "key" }, valid: true},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, valid: false},
		{name: "too much concurrency", modify: func(c *Config) { c.Concurrency = 33 }, valid: false},
		{name: "zero new pairs days", modify: func(c *Config) { c.NewPairsDays = 0 }, valid: false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				suite.NoError(err)
			} else {
				suite.True(errors.IsConfigurationError(err))
			}
		})
	}
}

func (suite *ConfigTestSuite) TestEmptyTimeframesFallBackToDefaults() {
	cfg := DefaultConfig()
	cfg.Timeframes = []string{" ", ""}

	suite.Equal(marketdata.DefaultTimeframes, cfg.TimeframeList())
}

func (suite *ConfigTestSuite) TestGetConfigSchema() {
	raw, err := GetConfigSchema()
	suite.Require().NoError(err)

	var schema map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(raw), &schema))

	properties, ok := schema["properties"].(map[string]any)
	suite.Require().True(ok)

	for _, key := range []string{"pairs", "timeframes", "days", "timerange", "provider", "datadir", "erase", "download_trades", "concurrency"} {
		suite.Contains(properties, key)
	}

	provider := properties["provider"].(map[string]any)
	suite.Equal([]any{"binance", "polygon"}, provider["enum"])
}
