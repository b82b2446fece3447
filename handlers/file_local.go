package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const defaultUploadDir = "./uploads" // Local directory for file storage

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return defaultUploadDir
}

// UploadPhotoLocal ingests a photo upload, keeping a copy on the local
// filesystem and returning the embeddable data URL plus a fresh photo
// ID. The editor appends photos in upload order; IDs stay stable
// across reorder so captions follow their image.
func UploadPhotoLocal(w http.ResponseWriter, r *http.Request) {
	data, dataURL, hdr, err := readPhotoUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		http.Error(w, "failed to create upload directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Create unique filename with timestamp to avoid collisions
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s", timestamp, hdr.Filename)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		http.Error(w, "failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":       uuid.NewString(),
		"dataUrl":  dataURL,
		"filename": filename,
		"url":      fmt.Sprintf("/uploads/%s", filename),
	})
}
