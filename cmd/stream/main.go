package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/xaenox/sentimeter/internal/stream"
	"github.com/xaenox/sentimeter/pkg/config"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("stream", pflag.ExitOnError)
	config.StreamFlags(flags)
	_ = flags.Parse(os.Args[1:])
	configPath, _ := flags.GetString("config")

	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := stream.NewClient(cfg.Stream.APIURL, cfg.Stream.RequestTimeout)
	runner, err := stream.New(client, stream.Tweets,
		stream.WithTweetsPerMinute(cfg.Stream.TweetsPerMinute),
		stream.WithMaxTweets(cfg.Stream.MaxTweets),
		stream.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("Failed to create stream", zap.Error(err))
	}

	logger.Info("Replaying labeled tweets",
		zap.String("api_url", cfg.Stream.APIURL),
		zap.Float64("tweets_per_minute", cfg.Stream.TweetsPerMinute),
		zap.Int("max_tweets", cfg.Stream.MaxTweets),
		zap.Int("dataset_size", len(stream.Tweets)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary := runner.Run(ctx)
	logger.Info("Replay finished",
		zap.Int("processed", summary.Processed),
		zap.Bool("interrupted", summary.Interrupted))
}
