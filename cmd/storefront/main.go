package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/i18n"
	"storefront/internal/infra/db"
	"storefront/internal/infra/mockcatalog"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/middleware"
	repo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/usecase"
	logx "storefront/pkg/logger"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

const (
	shutdownTimeout = 30 * time.Second
	sweepInterval   = time.Minute
	redisKeyPrefix  = "storefront:"
)

// openStorage は STORAGE_DRIVER に応じてセッション状態の保存先を開く。
// 戻り値の closer は終了時に呼ぶ。
func openStorage(ctx context.Context, cfg config.Config) (repo.LocalStorage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case "memory":
		return infraRepo.NewLocalStorageMemoryRepository(), noop, nil

	case "redis":
		client, err := infraRepo.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return infraRepo.NewLocalStorageRedisRepository(client, redisKeyPrefix), client.Close, nil

	default:
		dsn := cfg.SQLitePath
		if cfg.StorageDriver == "postgres" {
			dsn = cfg.DatabaseURL
		}
		gormDB, err := db.Connect(cfg.StorageDriver, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connect %s: %w", cfg.StorageDriver, err)
		}
		storage := infraRepo.NewLocalStorageGormRepository(gormDB)
		if err := storage.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, err
		}
		return storage, sqlDB.Close, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Env(), Debug: cfg.EnableDebug})

	ctx := context.Background()

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("storage: open failed")
	}

	//モックデータ（商品・カテゴリだけ）
	var mock *mockcatalog.Catalog
	if cfg.EnableMockData {
		mock = mockcatalog.NewSeeded(time.Now())
		logx.Info().Msg("catalog: using mock data")
	}

	mgr, err := session.NewManager(session.Options{
		Storage:         storage,
		BaseURL:         cfg.APIBaseURL,
		Timeout:         cfg.APITimeout,
		AccessTokenKey:  cfg.AuthTokenKey,
		RefreshTokenKey: cfg.AuthRefreshTokenKey,
		MockCatalog:     mock,
		Translator:      i18n.NewTranslator(nil, cfg.DefaultLanguage),
		Pricing: usecase.Pricing{
			TaxRate:          cfg.Tax(),
			ShippingFee:      cfg.Shipping(),
			FreeShippingOver: cfg.FreeShippingOver(),
		},
		PageSize: cfg.PageSize,
		TTL:      cfg.SessionTTL,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("session: manager init failed")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	go mgr.Run(sweepCtx, sweepInterval)

	e := server.New(server.Deps{
		Manager: mgr,
		Page: handler.PageConfig{
			AppName:        cfg.AppName,
			AppVersion:     cfg.AppVersion,
			Currency:       cfg.Currency,
			CurrencySymbol: cfg.CurrencySymbol,
			FeaturedLimit:  cfg.FeaturedLimit,
		},
		Session: middleware.SessionConfig{
			CookieName: cfg.SessionCookie,
			TTL:        cfg.SessionTTL,
			Secure:     cfg.Env().IsProduction(),
		},
	})

	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}
	go func() {
		if err := server.Start(e, addr); err != nil {
			logx.Fatal().Err(err).Msg("server: start failed")
		}
	}()

	logx.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.AppVersion).
		Str("env", cfg.Env().String()).
		Str("api", cfg.APIBaseURL).
		Str("storage", cfg.StorageDriver).
		Msg("storefront started")

	//HTTPを止めてからセッションと保存先を閉じる
	wait := gfshutdown.GracefulShutdown(
		ctx,
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"storefront": func(ctx context.Context) error {
				herr := server.Shutdown(ctx, e)
				stopSweep()
				mgr.Close()
				if err := closeStorage(); err != nil {
					logx.Error().Err(err).Msg("storage: close failed")
				}
				return herr
			},
		},
	)

	exitCode := <-wait
	logx.Info().Int("code", exitCode).Msg("storefront stopped")
	os.Exit(exitCode)
}
