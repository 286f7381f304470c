package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "toy-exchange/internal/auctionService"
	"toy-exchange/internal/bidquery"
	"toy-exchange/internal/config"
	cronrunner "toy-exchange/internal/cron"
	"toy-exchange/internal/repository"
	"toy-exchange/internal/seed"
	"toy-exchange/internal/server"
	"toy-exchange/internal/theme"
	handler "toy-exchange/services/auction/handler"
	"toy-exchange/utils"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TOYX_CONFIG"))
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		utils.Fatal("failed to configure logger", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := repository.NewMemoryRepo()
	if cfg.Auction.Seed {
		seed.Load(repo, time.Now().UTC(), rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	auctionSvc := auction.NewAuctionService(repo, auction.WithPriceHistoryPoints(cfg.Auction.PriceHistoryPoints))
	queries := bidquery.NewBidQueryService(repo)

	kv, closeKV := themeBackend(cfg.Theme)
	defer closeKV()
	prefs := theme.NewStore(ctx, kv)

	router := server.SetupRouter(
		handler.NewAuctionHandler(auctionSvc, queries, cfg.Auction.MinBidIncrement),
		handler.NewThemeHandler(prefs),
	)
	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var runner *cronrunner.Runner
	if cfg.Expiry.Enabled {
		runner = cronrunner.New(ctx)
		if _, err := runner.Add(cfg.Expiry.Schedule, cronrunner.ExpirySweep(auctionSvc.ExpireEnded)); err != nil {
			utils.Fatal("invalid expiry schedule", map[string]any{"schedule": cfg.Expiry.Schedule, "error": err.Error()})
		}
		runner.Start()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{"addr": cfg.Server.HTTPAddr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if runner != nil {
			runner.Stop()
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("server stopped", nil)
}

// themeBackend picks the preference store configured by theme.backend
func themeBackend(cfg config.ThemeConfig) (theme.KV, func()) {
	if cfg.Backend != "redis" {
		return theme.NewMemoryKV(), func() {}
	}

	kv := theme.NewRedisKV(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	utils.Info("theme preference backed by redis", map[string]any{"addr": cfg.RedisAddr, "db": cfg.RedisDB})
	return kv, func() {
		if err := kv.Close(); err != nil {
			utils.Warn("failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
}
