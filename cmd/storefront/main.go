package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/infrastructure/config"
	"github.com/erp/storefront/internal/infrastructure/event"
	"github.com/erp/storefront/internal/infrastructure/logger"
	"github.com/erp/storefront/internal/infrastructure/persistence"
	"github.com/erp/storefront/internal/infrastructure/seed"
	"github.com/erp/storefront/internal/interfaces/cli"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: config.toml in . or ./config)")
	seedDemo := flag.Bool("seed", false, "generate demo data at startup when the store is empty")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log, *seedDemo); err != nil {
		_ = logger.Sync(log)
		log.Fatal("Storefront failed", zap.Error(err))
	}
}

// run wires the store and drives the console until it exits
func run(cfg *config.Config, log *zap.Logger, seedDemo bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, log = logger.WithSessionID(ctx, log, uuid.NewString())

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("data_file", cfg.Data.File),
		zap.Bool("atomic_orders", cfg.Orders.Atomic),
	)

	engine := store.NewEngine(store.EngineConfig{AtomicOrders: cfg.Orders.Atomic}, persistence.NewFileStore())

	generator, err := seed.NewGenerator(seed.Config{
		Products:  cfg.Seed.Products,
		Customers: cfg.Seed.Customers,
		Seed:      uint64(cfg.Seed.Seed),
	})
	if err != nil {
		return fmt.Errorf("failed to create demo data generator: %w", err)
	}

	console := cli.NewConsole(engine, os.Stdin, os.Stdout,
		cli.WithDataFile(cfg.Data.File),
		cli.WithSeeder(generator),
	)

	// Event bus with audit logging and stock alerts printed on the console
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))
	stockAlerts := store.NewStockAlertHandler(log, cfg.Alerts.LowStockThreshold).WithNotifier(console)
	eventBus.Subscribe(stockAlerts)
	engine.SetEventPublisher(eventBus)
	log.Debug("Event bus ready", zap.Int("handlers", eventBus.HandlerCount()))

	if cfg.Data.AutoLoad {
		if err := engine.Load(ctx, cfg.Data.File); err != nil {
			return fmt.Errorf("failed to load data file %s: %w", cfg.Data.File, err)
		}
	}

	if seedDemo && len(engine.Products()) == 0 && len(engine.Customers()) == 0 {
		if _, err := generator.Populate(ctx, engine); err != nil {
			return fmt.Errorf("failed to generate demo data: %w", err)
		}
	}

	runErr := console.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Console stopped", zap.Error(runErr))
	}

	if cfg.Data.AutoSave {
		// ctx may already be cancelled by a signal
		saveCtx, cancel := context.WithTimeout(logger.WithContext(context.Background(), log), 10*time.Second)
		defer cancel()
		if err := engine.Save(saveCtx, cfg.Data.File); err != nil {
			log.Error("Failed to save data file", zap.String("path", cfg.Data.File), zap.Error(err))
		}
	}

	log.Info("Storefront exited", zap.Int("orders", len(engine.Orders())))
	return nil
}
