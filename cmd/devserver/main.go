package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloomshop/internal/config"
	"bloomshop/internal/db"
	"bloomshop/internal/devserver"
	cartlinerepo "bloomshop/internal/repository/cartline"
	orderrepo "bloomshop/internal/repository/order"
	productrepo "bloomshop/internal/repository/product"
	userrepo "bloomshop/internal/repository/user"
	wishlistrepo "bloomshop/internal/repository/wishlist"
)

func connectIfConfigured(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}
	return db.Connect(ctx, dsn)
}

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[devserver] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var deps devserver.Deps
	dbpool, err := connectIfConfigured(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	if dbpool != nil {
		defer dbpool.Close()
		deps = devserver.Deps{
			Users:     userrepo.NewPostgres(dbpool, logger),
			CartLines: cartlinerepo.NewPostgres(dbpool, logger),
			Wishlist:  wishlistrepo.NewPostgres(dbpool, logger),
			Orders:    orderrepo.NewPostgres(dbpool, logger),
			Products:  productrepo.NewPostgres(dbpool, logger),
		}
		logger.Printf("using postgres storage")
	} else {
		deps = devserver.Deps{
			Users:     userrepo.NewMemory(),
			CartLines: cartlinerepo.NewMemory(),
			Wishlist:  wishlistrepo.NewMemory(),
			Orders:    orderrepo.NewMemory(),
			Products:  productrepo.NewMemory(),
		}
		logger.Printf("BLOOMSHOP_DB_DSN not set, using in-memory storage")
	}

	srv := devserver.New(cfg.HTTPAddr, logger, dbpool, deps)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
