package routes

import (
	"github.com/gorilla/mux"

	"p9e.in/marinereport/handlers"
)

// RegisterReportRoutes registers the report snapshot routes using Mux
func RegisterReportRoutes(api *mux.Router) {
	// Snapshots. /reports/key must be registered before /reports/{key}
	// so the preview endpoint is not swallowed by the key route.
	api.HandleFunc("/reports/key", handlers.GetReportKey).Methods("GET")
	api.HandleFunc("/reports", handlers.SaveReport).Methods("POST")
	api.HandleFunc("/reports", handlers.ListReports).Methods("GET")
	api.HandleFunc("/reports/{key}", handlers.GetReport).Methods("GET")
	api.HandleFunc("/reports/{key}", handlers.DeleteReport).Methods("DELETE")

	// Print layout
	api.HandleFunc("/reports/{key}/layout", handlers.GetReportLayout).Methods("GET")

	// Document export
	api.HandleFunc("/reports/{key}/export/xlsx", handlers.ExportReportToExcel).Methods("GET")
	api.HandleFunc("/reports/{key}/export/csv", handlers.ExportReportToCSV).Methods("GET")
}
