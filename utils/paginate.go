package utils

import "p9e.in/marinereport/models"

const (
	firstPagePhotos = 2
	photosPerPage   = 4
)

// PhotoLayout is the print grouping of a report's photographs. The
// first content page carries up to two photos at 2-per-row; every
// later group fills its own page as a 2x2 grid. Page breaks between
// groups are the renderer's job; this is only the grouping.
type PhotoLayout struct {
	FirstPage []models.Photo   `json:"firstPage"`
	Pages     [][]models.Photo `json:"pages"`
}

// PaginatePhotos partitions an ordered photo list into the print
// layout. Order is preserved; concatenating FirstPage with the pages
// flattened reproduces the input. Defined for any length, including
// empty.
func PaginatePhotos(photos []models.Photo) PhotoLayout {
	layout := PhotoLayout{FirstPage: []models.Photo{}}

	n := len(photos)
	if n == 0 {
		return layout
	}

	cut := firstPagePhotos
	if n < cut {
		cut = n
	}
	layout.FirstPage = photos[:cut]

	for i := cut; i < n; i += photosPerPage {
		end := i + photosPerPage
		if end > n {
			end = n
		}
		layout.Pages = append(layout.Pages, photos[i:end])
	}
	return layout
}
