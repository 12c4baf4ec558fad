package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/adapters/directions"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/adapters/http"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/usecases"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/config"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/logging"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("travel-planner-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Provider capability set: resolved once, immutable for the process.
	caps := directions.ResolveCapabilities(cfg.Providers)
	if !caps.Any() {
		slog.Warn("no route provider credentials configured; routes will use geometric estimates")
	}

	chain := directions.NewChain(caps)
	planner := usecases.NewPlannerService(chain)

	deps := &http.Dependencies{
		Planner:      planner,
		Capabilities: caps,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    256 * 1024, // optimize payloads are small
		AppName:      "Travel Planner API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr,
			"kakao_configured", caps.HasKakao(), "odsay_configured", caps.HasODsay())
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
