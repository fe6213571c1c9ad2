package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundslock/internal/config"
	"github.com/GlebRadaev/fundslock/internal/handlers"
	"github.com/GlebRadaev/fundslock/internal/payout"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"github.com/GlebRadaev/fundslock/internal/repo"
	"github.com/GlebRadaev/fundslock/internal/service"
	"github.com/GlebRadaev/fundslock/pkg/logger"
	"github.com/GlebRadaev/fundslock/pkg/rabbitmq"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	payouts *payout.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if cfg.WeakJWTSecret() {
		zap.L().Warn("JWT_SECRET is empty or the built-in placeholder, tokens can be forged")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo)

	if err := a.initVault(ctx); err != nil {
		return err
	}

	a.api = handlers.New(a.srv)
	a.payouts = payout.New(cfg, a.repo.PayoutRepo, rabbitmq.NewPublisher(cfg.AMQPURL))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPayoutDispatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// initVault records the administrator and reserves its login before any
// request is served.
func (a *Application) initVault(ctx context.Context) error {
	vault, err := a.srv.VaultService.Init(ctx, a.cfg.AdminLogin)
	if err != nil {
		zap.L().Error("vault init failed: ", zap.Error(err))
		return fmt.Errorf("can't init vault: %w", err)
	}
	if _, err := a.srv.AuthService.ProvisionAdministrator(ctx, vault.Administrator, a.cfg.AdminPassword); err != nil {
		zap.L().Error("administrator provisioning failed: ", zap.Error(err))
		return fmt.Errorf("can't provision administrator: %w", err)
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startPayoutDispatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.payouts.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
