package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"p9e.in/marinereport/config"
	"p9e.in/marinereport/models"
	"p9e.in/marinereport/pkg/reportstore"
	"p9e.in/marinereport/utils"
)

// SaveReport persists the posted snapshot under its derived key.
// Saving under an existing key overwrites the prior record.
func SaveReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Form   *models.ReportForm `json:"form"`
		Photos []models.Photo     `json:"photos"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Form == nil {
		http.Error(w, "form is required", http.StatusBadRequest)
		return
	}

	refDate := utils.ReferenceDate(req.Form.JobStartDate, req.Form.JobEndDate)
	key := utils.DeriveRecordKey(req.Form.VesselName, refDate)

	snap := models.Snapshot{
		Form:    *req.Form,
		Photos:  req.Photos,
		SavedAt: models.JSONTime(time.Now()),
	}
	if snap.Photos == nil {
		snap.Photos = []models.Photo{}
	}

	if err := config.Store.Save(key, snap); err != nil {
		if errors.Is(err, reportstore.ErrQuota) {
			http.Error(w, "failed to save report: storage quota exceeded (try removing photos)", http.StatusInsufficientStorage)
			return
		}
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Report saved successfully",
		"key":     key,
	})
}

// GetReport returns the snapshot saved under the key, or 404 when no
// record exists (a corrupt record counts as absent).
func GetReport(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	snap, ok, err := config.Store.Load(key)
	if err != nil {
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no saved data for this key", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// ListReports enumerates all saved records with first-photo previews.
func ListReports(w http.ResponseWriter, r *http.Request) {
	entries, err := config.Store.List()
	if err != nil {
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"count":   len(entries),
		"reports": entries,
	})
}

// DeleteReport removes a saved record.
func DeleteReport(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := config.Store.Delete(key); err != nil {
		http.Error(w, "failed to delete report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Report deleted",
		"key":     key,
	})
}

// GetReportKey previews the persistence key for the given vessel and
// job dates, mirroring how the editor recomputes it on every field
// change. Never fails: bad input just yields a degenerate key.
func GetReportKey(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	refDate := utils.ReferenceDate(q.Get("start"), q.Get("end"))
	key := utils.DeriveRecordKey(q.Get("vessel"), refDate)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"key": key})
}

// GetReportLayout returns the print grouping of a saved report's
// photos: up to two on the first content page, then pages of four.
func GetReportLayout(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	snap, ok, err := config.Store.Load(key)
	if err != nil {
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no saved data for this key", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(utils.PaginatePhotos(snap.Photos))
}

// GetCompanies returns the issuing-entity registry the letterhead is
// drawn from.
func GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies := models.DefaultCompanies()
	if config.DB != nil {
		var fromDB []models.Company
		if err := config.DB.Order("code").Find(&fromDB).Error; err == nil && len(fromDB) > 0 {
			companies = fromDB
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(companies)
}
