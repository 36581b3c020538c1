package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auth_mw "github.com/bulletin-dev/bulletin/backend/internal/middleware"
	"github.com/bulletin-dev/bulletin/backend/internal/setup"
	mw "github.com/bulletin-dev/bulletin/shared/middleware"
	"github.com/bulletin-dev/bulletin/shared/middleware/metrics"
	rl "github.com/bulletin-dev/bulletin/shared/middleware/ratelimiter"
)

// New creates and configures a new mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for the editor frontend
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{deps.Config.Public.CORSAllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	))

	// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies, backendCSP))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/health", h.Health).Methods("GET")
	v1.HandleFunc("/ready", h.Ready).Methods("GET")

	// Admin routes: account creation is invite-only, done by an admin
	admin := v1.PathPrefix("/admin").Subrouter()
	admin.Use(auth_mw.AdminOnly(deps.Jwt))
	admin.HandleFunc("/users", h.Register).Methods("POST")

	// Auth routes
	auth := v1.PathPrefix("/auth").Subrouter()

	// Login endpoint (brute-force limits)
	authLogin := auth.NewRoute().Subrouter()
	authLogin.Use(mw.RateLimit(rl.New(5.0/60.0, 5, 1*time.Hour), mw.GetEmailFromBody)) // 5 attempts per minute by email
	authLogin.Use(mw.RateLimit(rl.OncePerSecond(), mw.GetIP))                          // 1 per second by IP
	authLogin.Use(mw.GlobalRateLimit(rl.PerSecond(100)))                               // 100 global RPS
	authLogin.HandleFunc("/login", h.Login).Methods("POST")

	// Logout (no rate limits)
	auth.HandleFunc("/logout", h.Logout).Methods("POST")

	// Logged-in editor routes
	loggedIn := v1.NewRoute().Subrouter()
	loggedIn.Use(auth_mw.NeedAuth(deps.Jwt))
	loggedIn.Use(mw.RateLimit(rl.PerSecond(100), mw.GetIP)) // 100 RPS per client

	loggedIn.HandleFunc("/bulletins", h.GetBulletins).Methods("GET")
	loggedIn.HandleFunc("/bulletins", h.CreateBulletin).Methods("POST")
	loggedIn.HandleFunc("/bulletins/validate", h.ValidateBulletin).Methods("POST")
	loggedIn.HandleFunc("/bulletins/from-template", h.FromTemplate).Methods("POST")
	loggedIn.HandleFunc("/bulletins/{id}", h.GetBulletin).Methods("GET")
	loggedIn.HandleFunc("/bulletins/{id}", h.UpdateBulletin).Methods("PUT")
	loggedIn.HandleFunc("/bulletins/{id}", h.DeleteBulletin).Methods("DELETE")

	loggedIn.HandleFunc("/templates", h.GetTemplates).Methods("GET")
	loggedIn.HandleFunc("/duty-rotation", h.DutyRotation).Methods("POST")

	return r
}
