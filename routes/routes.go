package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/marinereport/handlers"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes
	// =====================================================
	r.HandleFunc("/health", handleHealth).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// API Routes
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/companies", handlers.GetCompanies).Methods("GET")
	api.HandleFunc("/uploads/photo", handlers.UploadPhotoHandler).Methods("POST")

	RegisterReportRoutes(api)

	return r
}

// handleHealth reports service liveness
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
