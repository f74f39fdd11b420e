package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fjod/go_cart/console-shop/internal/config"
	"github.com/fjod/go_cart/console-shop/internal/menu"
	"github.com/fjod/go_cart/console-shop/internal/prompt"
	"github.com/fjod/go_cart/console-shop/internal/repository"
	"github.com/fjod/go_cart/console-shop/internal/service"
	"github.com/fjod/go_cart/console-shop/internal/store"
	"github.com/fjod/go_cart/console-shop/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("SHOP_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()
	zl = zl.With(zap.String("session_id", uuid.NewString()))
	zl.Info("shop starting", zap.String("order_log", cfg.Orders.LogPath))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		zl.Error("catalog load failed", zap.Error(err))
		log.Fatalf("Failed to load catalog: %v", err)
	}
	zl.Info("catalog loaded", zap.Int("products", catalog.Len()))

	// the single ledger for this run
	ledger := store.NewMemoryLedger(
		store.NewFileAuditLog(cfg.Orders.LogPath),
		cfg.Orders.Capacity,
		cfg.Orders.FirstID,
		zl.Named("ledger"),
	)
	cart := service.NewCart(catalog, cfg.Cart.Capacity, zl.Named("cart"))
	checkout := service.NewCheckoutService(cart, ledger, zl.Named("checkout"))

	reader := prompt.NewReader(os.Stdin, os.Stdout)
	session := menu.NewSession(reader, os.Stdout, catalog, cart, checkout, ledger, zl.Named("menu"))

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			zl.Error("session ended with error", zap.Error(err))
			log.Printf("Session error: %v", err)
		}
	case sig := <-quit:
		cancel()
		zl.Info("interrupted", zap.String("signal", sig.String()))
	}

	zl.Info("shop stopped", zap.Int("orders", ledger.Len()))
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig) (*repository.Catalog, error) {
	if cfg.DBPath == "" {
		return repository.NewCatalog(repository.DefaultProducts())
	}

	repo, err := repository.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	if err := repo.RunMigrations(); err != nil {
		return nil, err
	}
	return repository.LoadCatalog(ctx, repo)
}
