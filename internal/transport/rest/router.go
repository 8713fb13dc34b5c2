package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/service"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest/handler"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest/middleware"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService          *service.AuthService
	QuestionnaireService *service.QuestionnaireService
	ResponseService      *service.ResponseService
	StatisticsService    *service.StatisticsService
	ActivityService      *service.ActivityService
	WSHub                *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.QuestionnaireService)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.StatisticsService)
	activityHandler := handler.NewActivityHandler(c.ActivityService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.Serve).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireAuth)

	authed.HandleFunc("/questionnaires", questionnaireHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/questionnaires/{id}", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/questionnaires/{id}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	authed.HandleFunc("/questionnaires/{id}/response", responseHandler.Save).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/questionnaires/{id}/response", responseHandler.GetMine).Methods("GET", "OPTIONS")
	authed.HandleFunc("/responses/mine", responseHandler.ListMine).Methods("GET", "OPTIONS")
	authed.HandleFunc("/activity-logs/my-activities", activityHandler.ListMine).Methods("GET", "OPTIONS")

	// Admin routes
	admin := authed.NewRoute().Subrouter()
	admin.Use(authMW.RequireAdmin)

	admin.HandleFunc("/questionnaires", questionnaireHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/questionnaires/{id}", questionnaireHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/questionnaires/{id}/close", questionnaireHandler.Close).Methods("PATCH", "OPTIONS")
	admin.HandleFunc("/questionnaires/{id}/responses", responseHandler.ListSubmitted).Methods("GET", "OPTIONS")
	admin.HandleFunc("/questionnaires/{id}/statistics", responseHandler.Statistics).Methods("GET", "OPTIONS")
	admin.HandleFunc("/activity-logs", activityHandler.List).Methods("GET", "OPTIONS")

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
			allowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
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
