package router

import (
	"database/sql"
	"net/http"

	"rescue-passport/internal/adapters/identity"
	mem "rescue-passport/internal/adapters/storage/memory"
	pg "rescue-passport/internal/adapters/storage/postgres"
	_ "rescue-passport/internal/docs"
	"rescue-passport/internal/domain/events"
	"rescue-passport/internal/domain/passports"
	"rescue-passport/internal/middleware"
	"rescue-passport/internal/platform/logger"
	"rescue-passport/internal/platform/metrics"
	"rescue-passport/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Opcional: default UUIDAllocator.
	Allocator passports.Allocator

	// Sinks adicionales al historial (ej. Redis stream).
	ExtraSinks []passports.EventSink

	// Registry de Prometheus. nil => uno nuevo por router.
	Metrics *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", healthHandler)

	reg := opts.Metrics
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(reg)
	r.Handle("/metrics", metrics.Handler(reg))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		holdings  passports.Holdings
		eventRepo events.Repository
	)

	if opts.DB != nil {
		holdings = pg.NewPassportsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	} else {
		holdings = mem.NewPassportRepo()
		eventRepo = mem.NewEventRepo()
	}

	alloc := opts.Allocator
	if alloc == nil {
		alloc = identity.NewUUIDAllocator()
	}

	// Services por módulo
	eventsSvc := events.NewService(eventRepo, log.With(map[string]any{"module": "events"}))

	sink := passports.MultiSink{eventsSvc}
	sink = append(sink, opts.ExtraSinks...)

	passportsSvc := passports.NewService(alloc, holdings, sink,
		passports.WithLogger(log.With(map[string]any{"module": "passports"})),
		passports.WithRecorder(collector),
	)

	// Rutas por módulo
	passports.RegisterRoutes(r, passportsSvc, alloc)
	events.RegisterRoutes(r, eventsSvc, passportsSvc)

	return r
}

// healthHandler godoc
// @Summary Health check
// @Tags ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
