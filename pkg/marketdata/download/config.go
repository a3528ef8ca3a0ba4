package download

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir      = "data"
	DefaultProvider     = "binance"
	DefaultConcurrency  = 4
	DefaultNewPairsDays = 30
)

// Config is the download configuration read from a YAML file and overridden by CLI flags.
type Config struct {
	Pairs          []string `yaml:"pairs" json:"pairs" jsonschema:"title=Pairs,description=Pairs to download in BASE/QUOTE form (e.g. BTC/USDT) or plain tickers for stocks"`
	Timeframes     []string `yaml:"timeframes" json:"timeframes" jsonschema:"title=Timeframes,description=Candle timeframes to download (default 1m and 5m)"`
	Days           *int     `yaml:"days,omitempty" json:"days,omitempty" jsonschema:"title=Days,description=Download the last N days; takes precedence over timerange,minimum=1"`
	TimeRange      string   `yaml:"timerange,omitempty" json:"timerange,omitempty" jsonschema:"title=Time Range,description=Explicit range as START-END with YYYYMMDD dates or epoch timestamps; either side may be empty"`
	Provider       string   `yaml:"provider" json:"provider" jsonschema:"title=Provider,description=Market data source,enum=binance,enum=polygon,default=binance" validate:"required,oneof=binance polygon"`
	DataDir        string   `yaml:"datadir" json:"datadir" jsonschema:"title=Data Directory,description=Directory holding the downloaded parquet files,default=data" validate:"required"`
	Erase          bool     `yaml:"erase" json:"erase" jsonschema:"title=Erase,description=Remove stored data for the requested pairs before downloading"`
	DownloadTrades bool     `yaml:"download_trades" json:"download_trades" jsonschema:"title=Download Trades,description=Download raw trades and derive candles from them instead of downloading candles"`
	PolygonAPIKey  string   `yaml:"polygon_api_key,omitempty" json:"polygon_api_key,omitempty" jsonschema:"title=Polygon API Key,description=Required when provider is polygon" validate:"required_if=Provider polygon"`
	Concurrency    int      `yaml:"concurrency" json:"concurrency" jsonschema:"title=Concurrency,description=Number of pairs downloaded in parallel,minimum=1,maximum=32,default=4" validate:"min=1,max=32"`
	NewPairsDays   int      `yaml:"new_pairs_days" json:"new_pairs_days" jsonschema:"title=New Pairs Days,description=Days of history to fetch for pairs without stored data when no range start is given,minimum=1,default=30" validate:"min=1"`
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() Config {
	return Config{
		Pairs:          nil,
		Timeframes:     marketdata.TimeframeStrings(marketdata.DefaultTimeframes),
		Days:           nil,
		TimeRange:      "",
		Provider:       DefaultProvider,
		DataDir:        DefaultDataDir,
		Erase:          false,
		DownloadTrades: false,
		PolygonAPIKey:  "",
		Concurrency:    DefaultConcurrency,
		NewPairsDays:   DefaultNewPairsDays,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config file %s", path)
	}

	return cfg, nil
}

// Validate checks the fields that do not depend on the data source.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// PairList returns the configured pairs, normalized.
func (c Config) PairList() []string {
	return marketdata.NormalizePairs(c.Pairs)
}

// TimeframeList returns the configured timeframes, or the defaults when none are set.
func (c Config) TimeframeList() []marketdata.Timeframe {
	timeframes := marketdata.NormalizeTimeframes(c.Timeframes)
	if len(timeframes) == 0 {
		return append([]marketdata.Timeframe(nil), marketdata.DefaultTimeframes...)
	}

	return timeframes
}

// DaysOption returns Days as an optional value.
func (c Config) DaysOption() optional.Option[int] {
	if c.Days == nil {
		return optional.None[int]()
	}

	return optional.Some(*c.Days)
}

// GetConfigSchema returns the JSON schema of Config.
func GetConfigSchema() (string, error) {
	//nolint:exhaustruct // Empty struct is intentional for schema generation
	return utils.GetSchemaFromConfig(Config{})
}
