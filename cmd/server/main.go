package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"github.com/xaenox/sentimeter/internal/analyzer"
	"github.com/xaenox/sentimeter/internal/classifier"
	"github.com/xaenox/sentimeter/internal/metrics"
	"github.com/xaenox/sentimeter/internal/server"
	"github.com/xaenox/sentimeter/internal/storage"
	"github.com/xaenox/sentimeter/pkg/config"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	config.ServerFlags(flags)
	_ = flags.Parse(os.Args[1:])
	configPath, _ := flags.GetString("config")

	// Load configuration
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize history storage
	store, err := storage.NewMemoryStorage(cfg.History.Capacity)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	clf := classifier.NewKeywordClassifier(cfg.Lexicon, nil)
	svc := analyzer.NewService(clf, store, logger,
		analyzer.WithMetrics(m),
		analyzer.WithRecentLimit(cfg.History.RecentLimit),
	)

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr(),
		Mode:            cfg.Server.Mode,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, svc, m, reg, logger)

	base := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	logger.Info("Sentiment Analysis API ready",
		zap.String("addr", cfg.Server.Addr()),
		zap.Int("history_capacity", store.Capacity()),
		zap.String("stats_url", base+"/stats"),
		zap.String("health_url", base+"/health"),
		zap.String("analyze_url", base+"/analyze"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
