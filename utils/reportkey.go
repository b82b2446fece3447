package utils

import (
	"strings"
	"time"
)

const (
	// vesselFallback stands in when the vessel name has no usable
	// characters at all.
	vesselFallback = "VESSEL"

	// invalidDateSuffix is the sentinel appended when the reference
	// date cannot be parsed. Saving still works; the key is just
	// visibly degenerate in the saved-report list.
	invalidDateSuffix = "INVALIDDATE"
)

// dateLayouts are the forms the browser's date inputs produce.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// DeriveRecordKey computes the persistence key for a report:
// the vessel name reduced to uppercase alphanumerics (non-alphanumerics
// stripped, not replaced) followed by the reference date as DDMMYY.
//
//	DeriveRecordKey("Sea Wolf", "2025-09-16") == "SEAWOLF160925"
//
// An empty or fully-stripped vessel name falls back to "VESSEL"; an
// unparseable date falls back to the "INVALIDDATE" suffix. Never fails.
func DeriveRecordKey(vesselName, referenceDateISO string) string {
	var b strings.Builder
	for _, r := range vesselName {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	vessel := b.String()
	if vessel == "" {
		vessel = vesselFallback
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, referenceDateISO); err == nil {
			return vessel + t.Format("020106")
		}
	}
	return vessel + invalidDateSuffix
}

// ReferenceDate picks the date a record key is derived from: job end
// date when filled in, else job start date, else today.
func ReferenceDate(jobStartDate, jobEndDate string) string {
	if jobEndDate != "" {
		return jobEndDate
	}
	if jobStartDate != "" {
		return jobStartDate
	}
	return time.Now().Format("2006-01-02")
}
