package utils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"p9e.in/marinereport/models"
)

func makePhotos(n int) []models.Photo {
	photos := make([]models.Photo, n)
	for i := range photos {
		photos[i] = models.Photo{
			ID:      uuid.New(),
			DataURL: fmt.Sprintf("data:image/jpeg;base64,photo%d", i),
			Caption: fmt.Sprintf("caption %d", i),
		}
	}
	return photos
}

func TestPaginatePhotos(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		wantFirstPage int
		wantPages     []int // group sizes in order
	}{
		{"empty list", 0, 0, nil},
		{"single photo", 1, 1, nil},
		{"first page exactly full", 2, 2, nil},
		{"one photo spills over", 3, 2, []int{1}},
		{"first grouped page full", 6, 2, []int{4}},
		{"second group starts", 7, 2, []int{4, 1}},
		{"two full groups", 10, 2, []int{4, 4}},
		{"ragged final group", 13, 2, []int{4, 4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := makePhotos(tt.count)
			layout := PaginatePhotos(photos)

			if len(layout.FirstPage) != tt.wantFirstPage {
				t.Errorf("FirstPage has %d photos, expected %d", len(layout.FirstPage), tt.wantFirstPage)
			}
			if len(layout.Pages) != len(tt.wantPages) {
				t.Fatalf("got %d grouped pages, expected %d", len(layout.Pages), len(tt.wantPages))
			}
			for i, want := range tt.wantPages {
				if len(layout.Pages[i]) != want {
					t.Errorf("page %d has %d photos, expected %d", i, len(layout.Pages[i]), want)
				}
			}

			// Round-trip: first page + flattened pages reproduces the
			// input in order, no photo lost or duplicated.
			flat := append([]models.Photo{}, layout.FirstPage...)
			for _, page := range layout.Pages {
				flat = append(flat, page...)
			}
			if len(flat) != len(photos) {
				t.Fatalf("flattened layout has %d photos, expected %d", len(flat), len(photos))
			}
			for i := range photos {
				if flat[i].ID != photos[i].ID {
					t.Errorf("photo %d out of order: got %s, expected %s", i, flat[i].ID, photos[i].ID)
				}
			}
		})
	}
}

func TestPaginatePhotosEmptyIsNotNilFirstPage(t *testing.T) {
	layout := PaginatePhotos(nil)
	if layout.FirstPage == nil {
		t.Error("FirstPage should be an empty slice, not nil, so it serializes as []")
	}
	if len(layout.Pages) != 0 {
		t.Errorf("expected no grouped pages, got %d", len(layout.Pages))
	}
}
