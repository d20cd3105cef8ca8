package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	pageHandler *PageHandler,
	summaryHandler *SummaryHandler,
	requestLogger *RequestLogger,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger.Middleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-summary-agent"}`))
	}).Methods("GET")

	router.HandleFunc("/", pageHandler.Index).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/summaries", summaryHandler.UploadPDF).Methods("POST")
	api.HandleFunc("/summaries/latest", summaryHandler.GetLatest).Methods("GET")
	api.HandleFunc("/summaries/latest/speech", summaryHandler.ReadAloud).Methods("POST")
	api.HandleFunc("/session", summaryHandler.GetSession).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			requestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
