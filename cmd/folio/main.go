// folio: servicio de contenido multi-marca del portfolio.
//
// Levanta la API pública (contenido por hostname), el panel de admin
// (CRUD + fetch/merge cross-tenant) y el endpoint de métricas.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	rdb "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/folio/internal/cache"
	"github.com/dropDatabas3/folio/internal/config"
	"github.com/dropDatabas3/folio/internal/email"
	httpx "github.com/dropDatabas3/folio/internal/http"
	admincontentctrl "github.com/dropDatabas3/folio/internal/http/controllers/admincontent"
	authctrl "github.com/dropDatabas3/folio/internal/http/controllers/auth"
	contactctrl "github.com/dropDatabas3/folio/internal/http/controllers/contact"
	contentctrl "github.com/dropDatabas3/folio/internal/http/controllers/content"
	crosstenantctrl "github.com/dropDatabas3/folio/internal/http/controllers/crosstenant"
	healthctrl "github.com/dropDatabas3/folio/internal/http/controllers/health"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	"github.com/dropDatabas3/folio/internal/http/router"
	authsvc "github.com/dropDatabas3/folio/internal/http/services/auth"
	contactsvc "github.com/dropDatabas3/folio/internal/http/services/contact"
	contentsvc "github.com/dropDatabas3/folio/internal/http/services/content"
	crosstenantsvc "github.com/dropDatabas3/folio/internal/http/services/crosstenant"
	updatessvc "github.com/dropDatabas3/folio/internal/http/services/updates"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/rate"
	"github.com/dropDatabas3/folio/internal/security/session"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/store/memory"
	"github.com/dropDatabas3/folio/internal/store/pg"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/jackc/pgx/v5/pgxpool"
)

var version = "dev" // inyectado con -ldflags

func main() {
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "ruta al config.yaml (vacío = solo env)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       os.Getenv("LOG_LEVEL"),
		ServiceName: "folio",
		Version:     version,
	})
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.L().Fatal("service exited with error", logger.Err(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ─── Tenants ───
	resolver, err := tenant.NewResolver(map[tenant.Tenant]tenant.Brand{
		tenant.Internal: {Hosts: cfg.Tenants.Internal.Hosts, Label: cfg.Tenants.Internal.Label},
		tenant.External: {Hosts: cfg.Tenants.External.Hosts, Label: cfg.Tenants.External.Label},
	})
	if err != nil {
		return err
	}
	resolver.AllowQueryOverride = !cfg.IsProd()

	// ─── Storage ───
	var repo core.Repository
	var poolFn func() *pgxpool.Pool
	switch cfg.Storage.Driver {
	case "postgres":
		store, err := pg.New(ctx, cfg.Storage.DSN, pg.Config{
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return err
		}
		if cfg.Flags.Migrate {
			if err := store.Migrate(ctx); err != nil {
				store.Close()
				return err
			}
		}
		repo = store
		poolFn = store.Pool
	default:
		logger.L().Warn("using in-memory storage, data will not survive restarts")
		repo = memory.New()
	}
	defer repo.Close()

	// ─── Cache ───
	cacheTTL := 2 * time.Minute
	if raw := cfg.Cache.Memory.DefaultTTL; raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cacheTTL = d
		}
	}
	cacheClient, err := cache.New(cache.Config{
		Kind:       cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cacheTTL,
	})
	if err != nil {
		return err
	}
	defer func() { _ = cacheClient.Close() }()

	// ─── Rate limiting (contacto) ───
	var contactLimiter rate.Limiter
	if cfg.Rate.Enabled {
		if cfg.Cache.Kind == "redis" {
			client := rdb.NewClient(&rdb.Options{Addr: cfg.Cache.Redis.Addr, DB: cfg.Cache.Redis.DB})
			contactLimiter = rate.NewRedisLimiter(client, "folio:rl:contact:", cfg.Rate.Contact.Limit, cfg.ContactWindow())
		} else {
			contactLimiter = rate.NewMemoryLimiter(cfg.Rate.Contact.Limit, cfg.ContactWindow())
		}
	}

	// ─── Email ───
	var sender email.Sender
	if cfg.SMTP.Host != "" {
		smtp := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
		smtp.InsecureSkipVerify = cfg.SMTP.InsecureSkipVerify
		sender = smtp
	}

	// ─── Sesiones de admin ───
	issuer := session.NewIssuer(cfg.Auth.JWTSecret, cfg.SessionTTL())
	cookieOpts := helpers.SessionCookieOpts{
		Name:     cfg.Auth.Session.CookieName,
		Domain:   cfg.Auth.Session.Domain,
		Secure:   cfg.Auth.Session.Secure,
		SameSite: parseSameSite(cfg.Auth.Session.SameSite),
		TTL:      cfg.SessionTTL(),
	}

	// ─── Metrics ───
	metricsHandler, err := httpx.RegisterMetrics(httpx.MetricsConfig{Pool: poolFn})
	if err != nil {
		return err
	}

	// ─── Services ───
	content := contentsvc.New(repo, cacheClient, cacheTTL)
	updates := updatessvc.New(repo)
	crossTenant := crosstenantsvc.New(repo, httpx.RecordCrossTenantCopy)
	auth := authsvc.New(repo, issuer)
	contact := contactsvc.New(sender, cfg.Contact.To)

	// ─── Router ───
	api := router.New(router.Deps{
		Content:      contentctrl.NewController(content, updates),
		AdminContent: admincontentctrl.NewController(content, resolver),
		CrossTenant:  crosstenantctrl.NewController(crossTenant, resolver),
		Auth:         authctrl.NewController(auth, resolver, cookieOpts),
		Contact:      contactctrl.NewController(contact, resolver),
		Health:       healthctrl.NewController(repo, version),
		RequireAdmin: middlewares.RequireAdmin(middlewares.AuthConfig{
			Issuer:     issuer,
			CookieName: cookieOpts.Name,
			SignInPath: cfg.Auth.SignInPath,
		}),
		ContactLimiter: contactLimiter,
	})

	handler := middlewares.Chain(api,
		middlewares.WithRequestID(),
		httpx.WithMetrics,
		middlewares.WithRecover(),
		middlewares.WithCORS(cfg.Server.CORSAllowedOrigins),
		middlewares.WithTenant(middlewares.TenantConfig{
			Resolver:     resolver,
			AdminBaseURL: cfg.Server.AdminBaseURL,
		}),
		middlewares.WithLogging(),
	)

	srv := httpx.NewServer(cfg.Server.Addr, handler)

	// /metrics y /healthz en un listener separado para no exponerlos al público
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsSrv := httpx.NewServer(cfg.Server.MetricsAddr, metricsMux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(metricsSrv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutCtx)
		return srv.Shutdown(shutCtx)
	})

	logger.L().Info("folio is up",
		logger.String("addr", cfg.Server.Addr),
		logger.String("env", cfg.App.Env),
		logger.String("storage", cfg.Storage.Driver),
	)

	return g.Wait()
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
