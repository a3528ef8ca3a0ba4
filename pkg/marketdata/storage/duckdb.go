package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"go.uber.org/zap"
)

const (
	parquetExt  = ".parquet"
	tradeSuffix = "trades"
)

// table describes the staging table used to merge new rows into a parquet file.
type table struct {
	name    string
	columns []string
	ddl     string
	key     string
	updates []string
}

var candleTable = table{
	name:    "candle_staging",
	columns: []string{"id", "time", "symbol", "open", "high", "low", "close", "volume"},
	ddl: `id TEXT,
		time TIMESTAMP,
		symbol TEXT,
		open DOUBLE,
		high DOUBLE,
		low DOUBLE,
		close DOUBLE,
		volume DOUBLE,
		PRIMARY KEY (symbol, time)`,
	key:     "symbol, time",
	updates: []string{"id", "open", "high", "low", "close", "volume"},
}

var tradeTable = table{
	name:    "trade_staging",
	columns: []string{"id", "time", "symbol", "price", "amount", "side"},
	ddl: `id TEXT,
		time TIMESTAMP,
		symbol TEXT,
		price DOUBLE,
		amount DOUBLE,
		side TEXT,
		PRIMARY KEY (time, id)`,
	key:     "time, id",
	updates: []string{"symbol", "price", "amount", "side"},
}

// DuckDBStore implements Store on top of parquet files in a data directory.
type DuckDBStore struct {
	dataDir string
	db      *sql.DB
	logger  *logger.Logger
	sq      squirrel.StatementBuilderType

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// Open prepares dataDir for use and opens an in-memory DuckDB instance that
// reads and writes the parquet files in it.
func Open(dataDir string, log *logger.Logger) (*DuckDBStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to create data directory", err)
	}

	if err := ensureMetadata(dataDir, time.Now()); err != nil {
		return nil, err
	}

	return newStore(dataDir, log)
}

// OpenReadOnly opens dataDir for reading without creating the directory or
// its metadata file. Existing metadata is still checked for compatibility.
func OpenReadOnly(dataDir string, log *logger.Logger) (*DuckDBStore, error) {
	if err := checkMetadata(dataDir); err != nil {
		return nil, err
	}

	return newStore(dataDir, log)
}

func newStore(dataDir string, log *logger.Logger) (*DuckDBStore, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open DuckDB connection", err)
	}

	return &DuckDBStore{
		dataDir: dataDir,
		db:      db,
		logger:  log,
		sq:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		locksMu: sync.Mutex{},
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (s *DuckDBStore) CandleFile(pair string, timeframe marketdata.Timeframe) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s-%s%s", marketdata.PairFileName(pair), timeframe, parquetExt))
}

func (s *DuckDBStore) TradeFile(pair string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s-%s%s", marketdata.PairFileName(pair), tradeSuffix, parquetExt))
}

func (s *DuckDBStore) EraseCandles(pair string, timeframe marketdata.Timeframe) error {
	return s.erase(s.CandleFile(pair, timeframe))
}

func (s *DuckDBStore) EraseTrades(pair string) error {
	return s.erase(s.TradeFile(pair))
}

func (s *DuckDBStore) AppendCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, candles []types.MarketData) error {
	if len(candles) == 0 {
		return nil
	}

	path := s.CandleFile(pair, timeframe)

	return s.merge(ctx, path, candleTable, func(stmt *sql.Stmt) error {
		for _, c := range candles {
			id := c.Id
			if id == "" {
				id = uuid.New().String()
			}

			_, err := stmt.ExecContext(ctx, id, c.Time.UTC(), pair, c.Open, c.High, c.Low, c.Close, c.Volume)
			if err != nil {
				return fmt.Errorf("failed to insert candle at %s: %w", c.Time, err)
			}
		}

		return nil
	})
}

func (s *DuckDBStore) AppendTrades(ctx context.Context, pair string, trades []types.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	path := s.TradeFile(pair)

	return s.merge(ctx, path, tradeTable, func(stmt *sql.Stmt) error {
		for _, t := range trades {
			id := t.Id
			if id == "" {
				id = uuid.New().String()
			}

			_, err := stmt.ExecContext(ctx, id, t.Time.UTC(), pair, t.Price, t.Amount, string(t.Side))
			if err != nil {
				return fmt.Errorf("failed to insert trade %s: %w", id, err)
			}
		}

		return nil
	})
}

func (s *DuckDBStore) LoadCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, timeRange marketdata.TimeRange) ([]types.MarketData, error) {
	path := s.CandleFile(pair, timeframe)
	if !fileExists(path) {
		return []types.MarketData{}, nil
	}

	query, args, err := s.sq.
		Select("id", "time", "symbol", "open", "high", "low", "close", "volume").
		From(readParquet(path)).
		Where(rangeFilter(timeRange)).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query candles in %s", path)
	}
	defer rows.Close()

	result := make([]types.MarketData, 0)

	for rows.Next() {
		var c types.MarketData

		if err := rows.Scan(&c.Id, &c.Time, &c.Symbol, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan candle", err)
		}

		c.Time = c.Time.UTC()
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read candles", err)
	}

	return result, nil
}

func (s *DuckDBStore) LoadTrades(ctx context.Context, pair string, timeRange marketdata.TimeRange) ([]types.Trade, error) {
	path := s.TradeFile(pair)
	if !fileExists(path) {
		return []types.Trade{}, nil
	}

	query, args, err := s.sq.
		Select("id", "time", "symbol", "price", "amount", "side").
		From(readParquet(path)).
		Where(rangeFilter(timeRange)).
		OrderBy("time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query trades in %s", path)
	}
	defer rows.Close()

	result := make([]types.Trade, 0)

	for rows.Next() {
		var (
			t    types.Trade
			side string
		)

		if err := rows.Scan(&t.Id, &t.Time, &t.Symbol, &t.Price, &t.Amount, &side); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan trade", err)
		}

		t.Time = t.Time.UTC()
		t.Side = types.TradeSide(side)
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read trades", err)
	}

	return result, nil
}

func (s *DuckDBStore) LastCandleTime(ctx context.Context, pair string, timeframe marketdata.Timeframe) (optional.Option[time.Time], error) {
	return s.lastTime(ctx, s.CandleFile(pair, timeframe))
}

func (s *DuckDBStore) LastTradeTime(ctx context.Context, pair string) (optional.Option[time.Time], error) {
	return s.lastTime(ctx, s.TradeFile(pair))
}

// ListDatasets returns the stored datasets sorted by file name.
func (s *DuckDBStore) ListDatasets(ctx context.Context) ([]Dataset, error) {
	paths, err := filepath.Glob(filepath.Join(s.dataDir, "*"+parquetExt))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to list data directory", err)
	}

	sort.Strings(paths)

	datasets := make([]Dataset, 0, len(paths))

	for _, path := range paths {
		dataset, ok := parseDatasetFile(path)
		if !ok {
			s.logger.Debug("Skipping unrecognised file", zap.String("path", path))

			continue
		}

		if err := s.summarize(ctx, &dataset); err != nil {
			return nil, err
		}

		datasets = append(datasets, dataset)
	}

	return datasets, nil
}

func (s *DuckDBStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

// merge loads the existing file into a staging table, upserts the new rows
// and atomically replaces the file with the merged, time-ordered result.
func (s *DuckDBStore) merge(ctx context.Context, path string, t table, insert func(stmt *sql.Stmt) error) error {
	unlock := s.lock(path)
	defer unlock()

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return writeError(path, "failed to acquire connection", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, fmt.Sprintf("CREATE OR REPLACE TEMP TABLE %s (%s)", t.name, t.ddl)); err != nil {
		return writeError(path, "failed to create staging table", err)
	}

	defer func() {
		if _, err := conn.ExecContext(context.Background(), "DROP TABLE IF EXISTS "+t.name); err != nil {
			s.logger.Warn("Failed to drop staging table", zap.String("table", t.name), zap.Error(err))
		}
	}()

	columns := strings.Join(t.columns, ", ")

	if fileExists(path) {
		_, err := conn.ExecContext(ctx, fmt.Sprintf(`
			INSERT INTO %s
			SELECT %s FROM %s
			ON CONFLICT (%s) DO NOTHING
		`, t.name, columns, readParquet(path), t.key))
		if err != nil {
			return writeError(path, "failed to load existing data", err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return writeError(path, "failed to begin transaction", err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertStatement(t))
	if err != nil {
		_ = tx.Rollback()

		return writeError(path, "failed to prepare statement", err)
	}

	if err := insert(stmt); err != nil {
		stmt.Close()
		_ = tx.Rollback()

		return writeError(path, "failed to insert rows", err)
	}

	stmt.Close()

	if err := tx.Commit(); err != nil {
		return writeError(path, "failed to commit transaction", err)
	}

	tmpPath := path + ".tmp"

	_, err = conn.ExecContext(ctx, fmt.Sprintf(`
		COPY (SELECT %s FROM %s ORDER BY time ASC)
		TO '%s' (FORMAT PARQUET)
	`, columns, t.name, escapeLiteral(tmpPath)))
	if err != nil {
		os.Remove(tmpPath)

		return writeError(path, "failed to export to parquet", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return writeError(path, "failed to replace parquet file", err)
	}

	return nil
}

func (s *DuckDBStore) erase(path string) error {
	unlock := s.lock(path)
	defer unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return writeError(path, "failed to erase", err)
	}

	s.logger.Debug("Erased stored data", zap.String("path", path))

	return nil
}

func (s *DuckDBStore) lastTime(ctx context.Context, path string) (optional.Option[time.Time], error) {
	if !fileExists(path) {
		return optional.None[time.Time](), nil
	}

	query, args, err := s.sq.Select("max(time)").From(readParquet(path)).ToSql()
	if err != nil {
		return optional.None[time.Time](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	var last sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		return optional.None[time.Time](), errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query last time in %s", path)
	}

	if !last.Valid {
		return optional.None[time.Time](), nil
	}

	return optional.Some(last.Time.UTC()), nil
}

func (s *DuckDBStore) summarize(ctx context.Context, dataset *Dataset) error {
	query, args, err := s.sq.
		Select("any_value(symbol)", "count(*)", "min(time)", "max(time)").
		From(readParquet(dataset.Path)).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	var (
		symbol     sql.NullString
		start, end sql.NullTime
	)

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&symbol, &dataset.Rows, &start, &end); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to summarize %s", dataset.Path)
	}

	if symbol.Valid {
		dataset.Pair = symbol.String
	}

	if start.Valid {
		dataset.Start = optional.Some(start.Time.UTC())
	}

	if end.Valid {
		dataset.End = optional.Some(end.Time.UTC())
	}

	return nil
}

func (s *DuckDBStore) lock(path string) func() {
	s.locksMu.Lock()

	mu, ok := s.locks[path]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[path] = mu
	}

	s.locksMu.Unlock()

	mu.Lock()

	return mu.Unlock
}

// parseDatasetFile recognises "<PAIR>-<timeframe>.parquet" and "<PAIR>-trades.parquet".
// The pair is taken from the file name until the file content says otherwise.
func parseDatasetFile(path string) (Dataset, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), parquetExt)

	idx := strings.LastIndex(stem, "-")
	if idx <= 0 || idx == len(stem)-1 {
		return Dataset{}, false
	}

	pair := strings.Replace(stem[:idx], "_", "/", 1)
	suffix := stem[idx+1:]

	dataset := Dataset{
		Pair:      pair,
		Kind:      DatasetTrades,
		Timeframe: optional.None[marketdata.Timeframe](),
		Path:      path,
		Rows:      0,
		Start:     optional.None[time.Time](),
		End:       optional.None[time.Time](),
	}

	if suffix == tradeSuffix {
		return dataset, true
	}

	timeframe := marketdata.Timeframe(suffix)
	if timeframe.Validate() != nil {
		return Dataset{}, false
	}

	dataset.Kind = DatasetCandles
	dataset.Timeframe = optional.Some(timeframe)

	return dataset, true
}

func upsertStatement(t table) string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = "?"
	}

	sets := make([]string, len(t.updates))
	for i, column := range t.updates {
		sets[i] = fmt.Sprintf("%s = excluded.%s", column, column)
	}

	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s
	`, t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), t.key, strings.Join(sets, ", "))
}

// rangeFilter restricts rows to [start, end).
func rangeFilter(timeRange marketdata.TimeRange) squirrel.And {
	filter := squirrel.And{}

	if timeRange.Start.IsSome() {
		filter = append(filter, squirrel.GtOrEq{"time": timeRange.Start.Unwrap().UTC()})
	}

	if timeRange.End.IsSome() {
		filter = append(filter, squirrel.Lt{"time": timeRange.End.Unwrap().UTC()})
	}

	return filter
}

func readParquet(path string) string {
	return fmt.Sprintf("read_parquet('%s')", escapeLiteral(path))
}

func escapeLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func writeError(path string, message string, err error) error {
	return errors.Wrapf(errors.ErrCodeMarketDataWriteFailed, err, "%s for %s", message, path)
}

// Verify DuckDBStore implements Store interface.
var _ Store = (*DuckDBStore)(nil)
