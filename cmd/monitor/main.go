package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraudwatch/config"
	"fraudwatch/internal/alerts"
	"fraudwatch/internal/feed"
	"fraudwatch/internal/server"
	"fraudwatch/internal/sound"
	"fraudwatch/internal/stream"
	"fraudwatch/pkg/log"
	"fraudwatch/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Sound emitter: terminal bell when enabled, silent otherwise
	var emitter sound.Emitter = sound.Noop{}
	if cfg.Feed.SoundEnabled {
		emitter = &sound.Bell{W: os.Stdout}
	}

	// Live feed state
	queue := feed.NewNotificationQueue(feed.NotificationTimings{
		ShowDelay:  cfg.Feed.NotificationShow,
		DisplayFor: cfg.Feed.NotificationDisplay,
		ExitDelay:  cfg.Feed.NotificationExit,
	})
	store := feed.NewStore(feed.StoreConfig{
		HighlightTTL: cfg.Feed.HighlightTTL,
		SoundEnabled: cfg.Feed.SoundEnabled,
	}, queue, emitter, logger)

	// Transaction stream source
	source, err := buildSource(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize stream source: ", err)
		return
	}

	if err := source.Connect(ctx, store.Ingest); err != nil {
		logger.Error(ctx, "Failed to connect stream source: ", err)
		return
	}
	logger.Infof(ctx, "Stream source %q connected", cfg.Stream.Source)

	// Alert search over the backend REST API
	tokens := alerts.NewFileTokenStore(cfg.API.TokenPath, logger)
	client := alerts.NewClient(alerts.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, tokens, logger)
	search := alerts.NewSearchView(client, alerts.SearchOptions{}, logger)

	// Read-only status server
	srv, err := server.New(logger, server.Config{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		Mode:          cfg.Server.Mode,
		Store:         store,
		Notifications: queue,
		Source:        source,
		Search:        search,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize status server: ", err)
		return
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(ctx)
	}()

	// Wait for shutdown signal or a fatal listener error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof(ctx, "Received %v, shutting down gracefully...", sig)
	case err := <-serverErr:
		logger.Error(ctx, "Status server failed: ", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	source.Disconnect()
	search.Close()
	store.Close()
	queue.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Status server shutdown error: ", err)
	}

	logger.Info(ctx, "Cleanup completed")
}

// buildSource selects the stream implementation from configuration.
func buildSource(cfg *config.Config, logger log.Logger) (stream.Source, error) {
	switch cfg.Stream.Source {
	case "websocket", "":
		return stream.NewWSSource(stream.WSConfig{
			URL:              cfg.Stream.URL,
			ReconnectDelay:   cfg.Stream.ReconnectDelay,
			PingInterval:     cfg.Stream.PingInterval,
			PongWait:         cfg.Stream.PongWait,
			WriteWait:        cfg.Stream.WriteWait,
			HandshakeTimeout: cfg.Stream.HandshakeTimeout,
		}, logger), nil

	case "redis":
		client, err := redis.NewClient(redis.Config{
			Host:            cfg.Redis.Host,
			Password:        cfg.Redis.Password,
			DB:              cfg.Redis.DB,
			UseTLS:          cfg.Redis.UseTLS,
			MaxRetries:      cfg.Redis.MaxRetries,
			MinIdleConns:    cfg.Redis.MinIdleConns,
			PoolSize:        cfg.Redis.PoolSize,
			PoolTimeout:     cfg.Redis.PoolTimeout,
			ConnMaxIdleTime: cfg.Redis.ConnMaxIdleTime,
			ConnMaxLifetime: cfg.Redis.ConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return stream.NewRedisSource(client, cfg.Redis.Channel, logger), nil

	default:
		return nil, fmt.Errorf("unknown stream source %q", cfg.Stream.Source)
	}
}
