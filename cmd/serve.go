package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/makao-group/advisor-cli/internal/guardrail"
	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/internal/risk"
	"github.com/makao-group/advisor-cli/internal/tradeoff"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the evaluation HTTP server",
	Long: `Serves the three core evaluations over JSON:

  POST /v1/guardrail  {"query": "..."}
  POST /v1/risk       {user context fields}
  POST /v1/tradeoff   {"budget_max": N, "workplace_minutes": N, "options": [...]}

Every evaluation is pure and request-scoped; the underlying tables are
shared read-only across requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := newEngine()
		if err != nil {
			return err
		}
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		r := newRouter(guardrail.New(), engine, analyzer)

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
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the boundary router. Separated from the command so
// handlers can be tested with httptest.
func newRouter(guard *guardrail.Guardrail, engine *risk.Engine, analyzer *tradeoff.Analyzer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/guardrail", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, guard.Validate(body.Query))
	})

	r.Post("/v1/risk", func(w http.ResponseWriter, req *http.Request) {
		ctx := model.DefaultUserContext()
		if err := json.NewDecoder(req.Body).Decode(&ctx); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, engine.Evaluate(ctx))
	})

	r.Post("/v1/risk/compare", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Options []risk.Option `json:"options"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, engine.CompareOptions(body.Options))
	})

	r.Post("/v1/tradeoff", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			BudgetMax        float64               `json:"budget_max"`
			WorkplaceMinutes int                   `json:"workplace_minutes"`
			Options          []model.HousingOption `json:"options"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if len(body.Options) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "options are required"})
			return
		}
		writeJSON(w, http.StatusOK, analyzer.AnalyzeOptions(body.Options, body.BudgetMax, body.WorkplaceMinutes))
	})

	return r
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		zap.L().Debug("request received",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
