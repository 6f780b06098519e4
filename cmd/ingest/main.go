// Command ingest is a demo harness: it replays an ITCH 5.0 byte stream
// (a plain flat file, read whole with os.ReadFile — no mmap) through a
// Feed and logs the resulting counters.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"itchfeed/internal/config"
	"itchfeed/internal/feed"
	"itchfeed/internal/symboldir"
	"itchfeed/internal/wire"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var writer io.Writer = os.Stdout

	if cfg.Logging.File != "" {
		if dir := filepath.Dir(cfg.Logging.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return slog.New(slog.NewJSONHandler(os.Stderr, nil))
			}
		}
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAge:     cfg.Logging.MaxAgeDays,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stdout, fileLogger)
	}

	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
}

// loggingSubscriber relays feed-level events to slog, satisfying
// feed.Subscriber.
type loggingSubscriber struct {
	log *slog.Logger
}

func (s *loggingSubscriber) OnTrade(e feed.TradeEvent) {
	s.log.Debug("trade",
		slog.Uint64("locate", uint64(e.Locate)),
		slog.Int64("price", int64(e.Price)),
		slog.Uint64("quantity", uint64(e.Quantity)),
		slog.Uint64("match_number", e.MatchNumber))
}

func (s *loggingSubscriber) OnBBOUpdate(e feed.BBOEvent) {
	s.log.Debug("bbo_update",
		slog.Uint64("locate", uint64(e.Locate)),
		slog.Int64("bid", int64(e.New.BidPrice)),
		slog.Int64("ask", int64(e.New.AskPrice)))
}

func (s *loggingSubscriber) OnSymbolAdded(locate uint16, symbol symboldir.Symbol) {
	s.log.Info("symbol_added", slog.Uint64("locate", uint64(locate)), slog.String("symbol", string(symbol[:])))
}

func (s *loggingSubscriber) OnParseError(reason string, _ []byte, length int) {
	s.log.Warn("parse_error", slog.String("reason", reason), slog.Int("length", length))
}

var _ feed.Subscriber = (*loggingSubscriber)(nil)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	inputPath := flag.String("input", "", "path to a raw ITCH 5.0 message stream to replay")
	mold := flag.Bool("mold", false, "treat -input as a single MoldUDP64 packet rather than bare back-to-back ITCH messages")
	resetBetween := flag.Bool("reset-between", false, "reset the feed's state between each replay of -input")
	repeat := flag.Int("repeat", 1, "number of times to replay -input")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := newLogger(cfg)

	if *inputPath == "" {
		log.Error("missing required -input flag")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Error("failed to read input file", slog.Any("error", err))
		os.Exit(1)
	}

	f := feed.New(cfg.Pool.BlockSize)
	f.SetSubscriber(&loggingSubscriber{log: log})
	if len(cfg.Feed.LocateAllowlist) > 0 {
		f.SetLocateFilter(cfg.Feed.LocateAllowlist)
	}
	decoder := wire.NewDecoder(f)

	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if *mold {
			decoder.ParseMoldUDP64(data)
		} else {
			decoder.Parse(data)
		}
		if *resetBetween && i < *repeat-1 {
			f.Reset()
			decoder.Reset()
		}
	}
	elapsed := time.Since(start)

	snapshot := f.Counters.Snapshot()
	log.Info("replay complete",
		slog.Duration("elapsed", elapsed),
		slog.Uint64("messages_processed", snapshot.MessagesProcessed),
		slog.Uint64("orders_added", snapshot.OrdersAdded),
		slog.Uint64("trades", snapshot.Trades),
		slog.Uint64("bbo_updates", snapshot.BBOUpdates),
		slog.Uint64("parse_errors", decoder.Stats.ParseErrors))
}
