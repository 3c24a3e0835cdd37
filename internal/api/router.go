package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"WireRing/internal/config"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func NewRouter(cfg config.Config, logger *zap.Logger) http.Handler {
	router := mux.NewRouter()
	h := &Handler{Log: logger}
	limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/brands", h.Brands).Methods("GET")
	api.HandleFunc("/brands/{id}", h.Brand).Methods("GET")
	api.HandleFunc("/formulas", h.Formulas).Methods("GET")

	api.HandleFunc("/tools/wire/calc", h.Calc).Methods("POST")
	api.HandleFunc("/tools/wire/batch", h.Batch).Methods("POST")
	api.HandleFunc("/tools/wire/import", h.Import).Methods("POST")
	api.HandleFunc("/tools/wire/report/pdf", h.ReportPDF).Methods("POST")
	api.HandleFunc("/tools/wire/report/xlsx", h.ReportXLSX).Methods("POST")

	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return AccessLog(logger)(CORS(router))
}

// Serve runs the API on ln until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, cfg config.Config, logger *zap.Logger) error {
	server := &http.Server{
		Handler: NewRouter(cfg, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		var err error
		if cfg.TLS() {
			err = server.ServeTLS(ln, cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info("server started", zap.String("addr", ln.Addr().String()), zap.Bool("tls", cfg.TLS()))

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, closing active connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	logger.Info("server stopped")
	return nil
}

// ListenAndServe binds cfg.Addr and calls Serve.
func ListenAndServe(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, ln, cfg, logger)
}
