package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multivendor-shop/internal/admin"
	"multivendor-shop/internal/cart"
	"multivendor-shop/internal/category"
	"multivendor-shop/internal/config"
	"multivendor-shop/internal/db"
	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/middleware"
	"multivendor-shop/internal/order"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"
	"multivendor-shop/internal/web"

	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	migrateFunc     = db.Migrate
	startServerFunc = serve
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database := initDBFunc(cfg.Database)
	defer database.Close()

	if err := migrateFunc(ctx, database, db.ModeUp); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.RunCleanup(ctx)

	router, err := newServer(cfg, database, store, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.L().Info("server starting", zap.String("addr", srv.Addr), zap.String("session_store", cfg.SessionStore))
	err = startServerFunc(ctx, srv)

	fields := []zap.Field{zap.Uint64("requests_served", logger.RequestsServed())}
	for _, sample := range logger.ResponseClasses() {
		fields = append(fields, zap.Uint64("responses_"+sample.Label, sample.Value))
	}
	logger.L().Info("server stopped", fields...)
	return err
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.SessionStore == "redis" {
		rdb, err := session.ConnectRedis(ctx, session.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(rdb), nil
	}

	store := session.NewMemoryStore()
	go store.RunCleanup(ctx, 10*time.Minute)
	return store, nil
}

// newServer wires repositories, services and handlers on top of database.
func newServer(cfg *config.Config, database *sql.DB, store session.Store, limiter *middleware.RateLimiter) (http.Handler, error) {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)
	userSvc := user.NewService(user.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))

	sessions := session.NewManager(store, session.Options{
		Secret:     []byte(cfg.SessionSecret),
		TTL:        cfg.SessionTTL,
		CookieName: cfg.SessionCookie,
		Secure:     cfg.CookieSecure,
	})

	h, err := web.NewHandler(web.Handler{
		UserSvc:    userSvc,
		ProductSvc: productSvc,
		CartSvc:    cart.NewService(productRepo),
		OrderSvc:   orderSvc,
		AdminSvc:   admin.NewService(userSvc, productSvc, orderSvc, categorySvc),
		Sessions:   sessions,
	})
	if err != nil {
		return nil, err
	}

	return setupRouter(h, sessions, limiter, cfg.StaticDir), nil
}

func setupRouter(h *web.Handler, sessions *session.Manager, limiter *middleware.RateLimiter, staticDir string) http.Handler {
	app := http.NewServeMux()
	h.Routes(app)

	var pages http.Handler = app
	pages = limiter.Middleware(pages)
	pages = logger.LoggingMiddleware(pages)
	pages = sessions.Middleware(pages)

	// images are outside the limiter: a catalog page pulls one per product
	static := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))

	root := http.NewServeMux()
	root.Handle("GET /static/", logger.LoggingMiddleware(static))
	root.Handle("/", pages)

	var handler http.Handler = root
	handler = logger.RequestIDMiddleware(handler)
	return handler
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
