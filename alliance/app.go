// Package alliance wires the message codecs, the ledger and the transports
// into the HTTP service the form frontends talk to.
package alliance

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/alovak/swift-alliance/internal/middleware"
	"github.com/alovak/swift-alliance/ledger"
	"github.com/alovak/swift-alliance/transport"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	_ "github.com/lib/pq"
)

// App is the main application, it contains all the components of the message
// service and is responsible for starting and stopping them.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *Config
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "alliance"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: config,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	var repository *ledger.Repository
	switch a.config.LedgerBackend {
	case "pg":
		if a.config.LedgerDSN == "" {
			return fmt.Errorf("ledger_dsn is required for pg backend")
		}
		db, err := sql.Open("postgres", a.config.LedgerDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxIdleConns(5)
		db.SetMaxOpenConns(10)
		if err := db.Ping(); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}
		repository = ledger.NewPGRepository(db)
	case "mem":
		repository = ledger.NewRepository()
		if err := ledger.SeedDemo(context.Background(), repository); err != nil {
			return fmt.Errorf("seeding demo ledger: %w", err)
		}
	default:
		return fmt.Errorf("unsupported ledger_backend=%s", a.config.LedgerBackend)
	}

	transports := buildTransports(a.config.Transports)
	a.logger.Info("transports enabled", slog.Any("names", transports.Names()))
	if a.config.SchemaPath == "" {
		a.logger.Info("no pain.001 schema configured; XML validation will report invalid")
	}

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))

	api := NewAPI(ledger.NewService(repository), transports, a.config)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Get("/-/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := repository.Ping(ctx); err != nil {
			http.Error(w, "ledger not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func buildTransports(cfg TransportConfig) *transport.Registry {
	enabled := []transport.Transport{
		transport.NewLocalSave(cfg.LocalLogPath),
	}
	if cfg.SMTPEnabled {
		enabled = append(enabled, transport.NewSMTP(cfg.SMTPAddr, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTo))
	}
	if cfg.SFTPEnabled {
		enabled = append(enabled, transport.NewSFTP(cfg.SFTPAddr, cfg.SFTPUsername, cfg.SFTPPassword, cfg.SFTPRemoteDir))
	}
	return transport.NewRegistry(enabled...)
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	a.srv.Shutdown(context.Background())

	a.wg.Wait()

	a.logger.Info("app stopped")
}
