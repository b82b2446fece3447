package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// UploadPhotoGCS ingests a photo upload, archiving the original as a
// GCS object. The data URL in the response is what the editor embeds;
// the object is a durable copy. A GCS failure degrades to a plain
// error response, never a crash.
func UploadPhotoGCS(w http.ResponseWriter, r *http.Request) {
	data, dataURL, hdr, err := readPhotoUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		http.Error(w, "GCS_BUCKET not configured", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	client, err := storage.NewClient(ctx)
	if err != nil {
		http.Error(w, "failed to create storage client: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer client.Close()

	objectName := fmt.Sprintf("photos/%s-%s", time.Now().Format("20060102-150405"), hdr.Filename)
	obj := client.Bucket(bucket).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = http.DetectContentType(data)
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		wc.Close()
		http.Error(w, "failed to upload to storage: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := wc.Close(); err != nil {
		http.Error(w, "failed to finalize upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":       uuid.NewString(),
		"dataUrl":  dataURL,
		"filename": hdr.Filename,
		"url":      fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName),
	})
}
