package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
)

// UploadPhotoHandler routes to the appropriate upload handler based on environment
func UploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
	// Check if running in production (Google Cloud)
	// Google Cloud sets GOOGLE_APPLICATION_CREDENTIALS or K_SERVICE (Cloud Run)
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != "" // Cloud Run indicator

	if useGCS {
		// Production: archive the original in Google Cloud Storage
		UploadPhotoGCS(w, r)
	} else {
		// Development: keep the original on the local filesystem
		UploadPhotoLocal(w, r)
	}
}

// readPhotoUpload pulls the image out of the multipart form and
// converts it to the data URL the editor embeds into snapshots.
// Content type is sniffed from the bytes, not trusted from the client.
func readPhotoUpload(r *http.Request) (data []byte, dataURL string, hdr *multipart.FileHeader, err error) {
	// Parse the multipart form (max 50MB)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		return nil, "", nil, fmt.Errorf("bad multipart form: %w", err)
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, "", nil, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", nil, fmt.Errorf("read upload: %w", err)
	}

	contentType := http.DetectContentType(data)
	dataURL = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return data, dataURL, hdr, nil
}
