package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kokualaw/expunge-api/api"
	"github.com/kokualaw/expunge-api/config"
	"github.com/kokualaw/expunge-api/models"
)

// App stores the router, config and the evaluated-case cache, so it
// can be reused
type App struct {
	Router *mux.Router
	Config config.Config
	Cache  *CaseCache
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)
	r.Use(api.MetricsMiddleware)
	r.Use(api.TimeoutMiddleware(api.RequestTimeout))

	auth := api.Middleware(a.Config.AuthSecret)

	authHandler := Auth{Config: a.Config}
	caseHandler := Case{Cache: a.Cache}
	chargeHandler := Charge{}
	docketHandler := Docket{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(authHandler.CreateToken)).Methods("POST")

	apiCreate.Handle("/case/evaluate", auth(http.HandlerFunc(caseHandler.EvaluateCaseHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}", auth(http.HandlerFunc(caseHandler.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/case-types", auth(http.HandlerFunc(caseTypesHandler))).Methods("GET")

	apiCreate.Handle("/charge/evaluate", auth(http.HandlerFunc(chargeHandler.EvaluateChargeHandler))).Methods("POST")

	apiCreate.Handle("/docket/warrant-status", auth(http.HandlerFunc(docketHandler.WarrantStatusHandler))).Methods("POST")

	apiCreate.Handle("/metrics", auth(http.HandlerFunc(metricsSummaryHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to set up the cache, metrics and the
// router
func (a *App) Initialize() error {
	if a.Config.AuthSecret == "" {
		return fmt.Errorf("auth secret is not set")
	}

	api.InitMetrics()

	cache, err := NewCaseCache(a.Config.CacheSize)
	if err != nil {
		return err
	}
	a.Cache = cache

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
