package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/broker"
	"github.com/stpnv0/HotelBooker/internal/cache"
	"github.com/stpnv0/HotelBooker/internal/config"
	"github.com/stpnv0/HotelBooker/internal/handler"
	"github.com/stpnv0/HotelBooker/internal/journal"
	"github.com/stpnv0/HotelBooker/internal/lock"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/stpnv0/HotelBooker/internal/notification"
	"github.com/stpnv0/HotelBooker/internal/payment"
	"github.com/stpnv0/HotelBooker/internal/repository"
	"github.com/stpnv0/HotelBooker/internal/router"
	"github.com/stpnv0/HotelBooker/internal/scheduler"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type closer struct {
	name  string
	close func(ctx context.Context) error
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	// закрываются в обратном порядке
	closers []closer
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeAll(context.Background())
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.addCloser("database", func(context.Context) error { return db.Master.Close() })
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	ctx := context.Background()

	userRepo := repository.NewUserRepo(a.db)
	hotelRepo := repository.NewHotelRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	roomCache := cache.NewRoomRepo(
		repository.NewRoomRepo(a.db),
		cache.NewMemcached(a.cfg.Cache.MemcachedAddr),
		cache.Options{
			LocalSize: a.cfg.Cache.LocalSize,
			LocalTTL:  a.cfg.Cache.LocalTTL,
			RemoteTTL: a.cfg.Cache.RemoteTTL,
		},
		a.log,
	)
	a.addCloser("room cache", func(context.Context) error { roomCache.Stop(); return nil })

	locker, deduper, err := a.initLocks(ctx)
	if err != nil {
		return err
	}

	sender, err := a.initEmail()
	if err != nil {
		return fmt.Errorf("init email: %w", err)
	}

	owners, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Currency.Symbol, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	publisher, err := a.initPublisher()
	if err != nil {
		return fmt.Errorf("init broker: %w", err)
	}

	paymentJournal, err := a.initJournal(ctx)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}

	gateway := payment.NewStripeGateway(payment.Config{
		SecretKey:     a.cfg.Stripe.SecretKey,
		WebhookSecret: a.cfg.Stripe.WebhookSecret,
		Timeout:       a.cfg.Stripe.Timeout,
	}, nil)

	tokens := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.cfg.Auth.Issuer)

	userService := service.NewUserService(userRepo, tokens, a.cfg.Auth.BcryptCost)
	catalogService := service.NewCatalogService(hotelRepo, roomCache, userRepo, a.log)
	bookingService := service.NewBookingService(
		bookingRepo,
		roomCache,
		hotelRepo,
		userRepo,
		service.NewAvailabilityChecker(bookingRepo, a.log),
		locker,
		sender,
		owners,
		publisher,
		service.BookingOptions{
			NotifyWait:    a.cfg.Notification.Wait,
			NotifyTimeout: a.cfg.Notification.Timeout,
			CheckoutGrace: a.cfg.Scheduler.Grace,
		},
		a.log,
	)
	checkoutService := service.NewCheckoutService(
		bookingRepo,
		roomCache,
		hotelRepo,
		userRepo,
		gateway,
		service.CheckoutOptions{
			Currency:   a.cfg.Stripe.Currency,
			SuccessURL: a.cfg.Stripe.SuccessURL,
			CancelURL:  a.cfg.Stripe.CancelURL,
			SessionTTL: a.cfg.Stripe.CheckoutTTL,
			Timeout:    a.cfg.Stripe.Timeout,
		},
		a.log,
	)
	webhookService := service.NewWebhookService(
		gateway,
		bookingRepo,
		hotelRepo,
		userRepo,
		deduper,
		paymentJournal,
		owners,
		publisher,
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(userService, catalogService, bookingService, checkoutService, webhookService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(tokens),
		middleware.RequireOwner(userService),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initLocks falls back to in-process locking when redis is not configured.
// That is only safe with a single instance.
func (a *App) initLocks(ctx context.Context) (ports.RoomLocker, ports.EventDeduper, error) {
	rc := a.cfg.Redis
	if rc.Addr == "" {
		a.log.Warn("redis is not configured, using in-process room locks")
		return lock.NewLocalRoomLocker(), lock.NewLocalDeduper(rc.DedupeTTL), nil
	}

	rdb, err := lock.NewRedisClient(ctx, lock.RedisOptions{
		Addr:        rc.Addr,
		Password:    rc.Password,
		DB:          rc.DB,
		DialTimeout: rc.DialTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init redis: %w", err)
	}
	a.addCloser("redis", func(context.Context) error { return rdb.Close() })
	a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected", logger.String("addr", rc.Addr))

	return lock.NewRoomLocker(rdb, rc.LockTTL, rc.LockRetry, a.log), lock.NewEventDeduper(rdb, rc.DedupeTTL), nil
}

func (a *App) initEmail() (ports.ConfirmationSender, error) {
	ec := a.cfg.Email

	switch ec.Provider {
	case "smtp":
		return notification.NewSMTPSender(notification.SMTPConfig{
			Host:           ec.Host,
			Port:           ec.Port,
			Username:       ec.Username,
			Password:       ec.Password,
			From:           ec.From,
			TLSPolicy:      ec.TLSPolicy,
			Timeout:        ec.Timeout,
			CurrencySymbol: a.cfg.Currency.Symbol,
		})
	case "resend":
		if ec.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend provider requires RESEND_API_KEY")
		}
		return notification.NewResendSender(notification.ResendConfig{
			APIKey:         ec.ResendAPIKey,
			From:           ec.From,
			Timeout:        ec.Timeout,
			CurrencySymbol: a.cfg.Currency.Symbol,
		}), nil
	default:
		a.log.Warn("email provider is not configured, confirmations are only logged")
		return notification.NewNoopSender(a.log), nil
	}
}

func (a *App) initPublisher() (ports.EventPublisher, error) {
	if a.cfg.RabbitMQ.URL == "" {
		return broker.NewNoopPublisher(a.log), nil
	}

	p, err := broker.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue, a.log)
	if err != nil {
		return nil, err
	}
	a.addCloser("rabbitmq", func(context.Context) error { return p.Close() })

	return p, nil
}

func (a *App) initJournal(ctx context.Context) (ports.PaymentJournal, error) {
	mc := a.cfg.Mongo
	if mc.URI == "" {
		return journal.NewLogJournal(a.log), nil
	}

	j, err := journal.Connect(ctx, mc.URI, mc.Database, mc.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	a.addCloser("mongo", j.Close)

	return j, nil
}

func (a *App) addCloser(name string, fn func(ctx context.Context) error) {
	a.closers = append(a.closers, closer{name: name, close: fn})
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeAll(context.Background())
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeAll(shutdownCtx)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeAll(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(ctx); err != nil {
			a.log.LogAttrs(ctx, logger.ErrorLevel, "failed to close resource",
				logger.String("resource", c.name),
				logger.String("error", err.Error()),
			)
			continue
		}
		a.log.LogAttrs(ctx, logger.InfoLevel, "resource closed", logger.String("resource", c.name))
	}
	a.closers = nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
