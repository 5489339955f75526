package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Oliverknowledge/Signal-Backend/internal/service"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/rest/handler"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/rest/middleware"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	AnalyzerService *service.AnalyzerService
	FeedbackService *service.FeedbackService
	WSHub           *ws.Hub
	Log             zerolog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	analyzeHandler := handler.NewAnalyzeHandler(c.AnalyzerService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Log)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/token", authHandler.Token).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/decisions", wsHandler.Decisions).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Client routes (require client auth)
	clientRoutes := v1.NewRoute().Subrouter()
	clientRoutes.Use(authMW.RequireClient)

	clientRoutes.HandleFunc("/analyze", analyzeHandler.Analyze).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/telemetry/decision", analyzeHandler.Relay).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/feedback", feedbackHandler.Submit).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/feedback", feedbackHandler.List).Methods("GET")
	clientRoutes.HandleFunc("/recall/grade", feedbackHandler.Grade).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/recall/grades", feedbackHandler.ListGrades).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
