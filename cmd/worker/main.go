package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/config"
	"github.com/Thecityismine/project-ganttflow/internal/export"
	"github.com/Thecityismine/project-ganttflow/internal/mq"
	redisclient "github.com/Thecityismine/project-ganttflow/internal/redis"
	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// The worker keeps the chart cache warm: every project.saved re-renders the
// PNG through headless Chromium, every project.deleted drops it. Downloads
// from the API then hit the cache instead of blocking on a browser.
func main() {
	cfg := config.Load()

	logger := util.NewLogger(os.Getenv("DEBUG") == "true")
	defer logger.Sync()

	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()
	chartCache := redisclient.NewChartCache(rdb, time.Duration(cfg.Export.CacheTTLSec)*time.Second)

	exporter := export.NewExporter(cfg.Export.BaseURL, chartCache, logger)

	savedConsumer, err := mq.NewConsumer(cfg.MQ.URL, mq.RoutingProjectSaved, logger)
	if err != nil {
		logger.Fatal("Failed to init saved consumer", zap.Error(err))
	}
	defer savedConsumer.Close()

	savedConsumer.SetHandler(func(ctx context.Context, data json.RawMessage) error {
		var payload mq.ProjectSavedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Error("Malformed project.saved payload", zap.Error(err))
			// Drop it; requeueing a bad payload loops forever.
			return nil
		}

		logger.Info("Warming chart cache",
			zap.String("project_id", payload.ProjectID),
			zap.String("name", payload.Name),
		)
		if err := exporter.WarmPNG(ctx, payload.ProjectID); err != nil {
			logger.Error("Chart warm-up failed",
				zap.String("project_id", payload.ProjectID),
				zap.Error(err),
			)
		}
		// Warm-up failures are not retried; the next save or a cold export
		// re-renders anyway.
		return nil
	})

	deletedConsumer, err := mq.NewConsumer(cfg.MQ.URL, mq.RoutingProjectDeleted, logger)
	if err != nil {
		logger.Fatal("Failed to init deleted consumer", zap.Error(err))
	}
	defer deletedConsumer.Close()

	deletedConsumer.SetHandler(func(ctx context.Context, data json.RawMessage) error {
		var payload mq.ProjectDeletedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Error("Malformed project.deleted payload", zap.Error(err))
			return nil
		}

		chartCache.Invalidate(ctx, payload.ProjectID)
		logger.Info("Dropped cached chart", zap.String("project_id", payload.ProjectID))
		return nil
	})

	go func() {
		if err := savedConsumer.StartConsuming(); err != nil {
			logger.Fatal("Saved consumer failed", zap.Error(err))
		}
	}()

	logger.Info("Worker started")
	if err := deletedConsumer.StartConsuming(); err != nil {
		logger.Fatal("Deleted consumer failed", zap.Error(err))
	}
}
