package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/results"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the discovery HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := discovery.New(cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Session-Key"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/api/discover", func(w http.ResponseWriter, req *http.Request) {
			var profile model.ProductProfile
			if err := json.NewDecoder(req.Body).Decode(&profile); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}

			set, err := engine.Discover(req.Context(), profile, sessionKey(req))
			if err != nil {
				if model.IsValidation(err) {
					writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
					return
				}
				zap.L().Error("discovery failed", zap.Error(err))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "discovery failed"})
				return
			}
			writeJSON(w, http.StatusOK, set)
		})

		r.Get("/api/discover/{id}/page", func(w http.ResponseWriter, req *http.Request) {
			pageIndex, _ := strconv.Atoi(req.URL.Query().Get("page"))
			pageSize, _ := strconv.Atoi(req.URL.Query().Get("size"))

			page, err := engine.Page(chi.URLParam(req, "id"), pageIndex, pageSize)
			if err != nil {
				if eris.Is(err, results.ErrNotFound) {
					writeJSON(w, http.StatusNotFound, map[string]string{"error": "search not found"})
					return
				}
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "page lookup failed"})
				return
			}
			writeJSON(w, http.StatusOK, page)
		})

		r.Post("/api/contacts", func(w http.ResponseWriter, req *http.Request) {
			var company model.CompanyCandidate
			if err := json.NewDecoder(req.Body).Decode(&company); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			if company.Name == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
				return
			}
			writeJSON(w, http.StatusOK, engine.Contacts(req.Context(), company))
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownServer(srv)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// shutdownGrace bounds how long in-flight requests may drain on shutdown.
const shutdownGrace = 10 * time.Second

// shutdownServer drains on a fresh context; the signal context is already
// cancelled by the time shutdown starts.
func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// sessionKey identifies the caller so a rerun supersedes its previous result
// set instead of leaking it.
func sessionKey(req *http.Request) string {
	if key := req.Header.Get("X-Session-Key"); key != "" {
		return key
	}
	return req.RemoteAddr
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
