package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"steam_trader/internal/config"
	"steam_trader/internal/domain/service/trade"
	"steam_trader/internal/infrastructure/notifier"
	"steam_trader/internal/infrastructure/persistence"
	"steam_trader/internal/infrastructure/pollstate"
	"steam_trader/internal/infrastructure/pricefeed"
	"steam_trader/internal/infrastructure/queue"
	"steam_trader/internal/infrastructure/steam"
	"steam_trader/internal/server"
	"steam_trader/internal/worker"
	"steam_trader/pkg/application/connectors"
	"steam_trader/pkg/application/modules"
	"steam_trader/pkg/httpx"
	"steam_trader/pkg/logx"
	"steam_trader/pkg/middlewarex"
)

const (
	appName        = "steam-trader"
	logFieldMaxLen = 4096

	httpServerReadHeaderTimeout = 5 * time.Second
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

//nolint:funlen
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// Connectors.
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rd.Client(ctx)
	defer rd.Close(ctx)

	// Infrastructure.
	masker := logx.NewSensitiveDataMasker()

	tradeRepo := persistence.NewTradeRepository(db)
	cursorStore := pollstate.NewStore(redisClient)

	feed := pricefeed.NewClient(cfg.PriceFeed, loggingHTTPClient(masker))
	holder := worker.NewPriceTableHolder()
	refresher := worker.NewPriceRefresher(feed, holder, cfg.Trade.Apps, cfg.PriceFeed.UpdateInterval)

	// No price table means no basis for any value decision, so the first
	// load has to succeed before offers are touched.
	if err := refresher.RefreshOnce(ctx); err != nil {
		return fmt.Errorf("initial price refresh: %w", err)
	}

	steamClient := steam.NewClient(cfg.Steam, loggingHTTPClient(masker))

	var alerts worker.Alerter = notifier.NewNop()

	if cfg.Bot.Enabled() {
		bot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		if err := bot.SendText(ctx, "Trade bot is starting."); err != nil {
			logger(ctx).Warn("alert channel test failed", logx.Error(err))
		}

		alerts = bot
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	}

	scheduler := queue.NewConfirmScheduler(redisOpt)
	defer scheduler.Close() //nolint:errcheck

	// Domain services and workers.
	tradeService := trade.NewTradeService(steamClient, steamClient, scheduler, tradeRepo, holder, cfg.Trade.Policy())
	confirmer := worker.NewConfirmer(steamClient, scheduler, tradeRepo, alerts)
	poller := worker.NewOfferPoller(steamClient, tradeService, cursorStore, cfg.Steam.PollInterval)

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          appName,
		Version:       Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricListenAddress,
	}.Run(ctx, g)

	modules.AsynqServer{
		RedisAddress:  cfg.Redis.Address,
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqQueues{queue.QueueTrades: 1},
		modules.AsynqHandler{Pattern: worker.TaskTypeConfirmOffer, Handle: confirmer.HandleTask},
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	srv := server.NewServer(appName, Version, cfg.Trade.Apps, holder, tradeRepo)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	g.Go(func() error {
		return refresher.Run(ctx)
	})

	g.Go(func() error {
		return poller.Run(ctx)
	})

	logger(ctx).Info("application started", logx.FieldAppName, appName, logx.FieldAppVersion, Version)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func loggingHTTPClient(masker logx.SensitiveDataMasker) *http.Client {
	return &http.Client{
		//nolint:exhaustruct
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}
}
