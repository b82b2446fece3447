package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ReportType selects which of the two document headings the report is
// printed under. Exactly one is active at a time.
type ReportType string

const (
	ReportTypeService       ReportType = "SERVICE REPORT"
	ReportTypeJobCompletion ReportType = "JOB COMPLETION REPORT"
)

// Fixed service-type vocabulary. "Others" carries a free-text qualifier.
const (
	ServiceTroubleshooting = "Troubleshooting"
	ServiceInspection      = "Inspection"
	ServiceDryDocking      = "Dry-Docking"
	ServiceOthers          = "Others"
)

// ServiceSelection is the set of service types ticked on the form plus
// the qualifier text entered when "Others" is among them.
type ServiceSelection struct {
	Selected        []string `json:"selected"`
	OthersQualifier string   `json:"othersQualifier,omitempty"`
}

// Display returns the selection as the strings printed on the report.
// "Others" is rendered with its qualifier, e.g. "Others: Leak test".
func (s ServiceSelection) Display() []string {
	out := make([]string, 0, len(s.Selected))
	for _, st := range s.Selected {
		if st == ServiceOthers && s.OthersQualifier != "" {
			out = append(out, fmt.Sprintf("%s: %s", ServiceOthers, s.OthersQualifier))
			continue
		}
		out = append(out, st)
	}
	return out
}

// Contains reports whether a service type is ticked.
func (s ServiceSelection) Contains(serviceType string) bool {
	for _, st := range s.Selected {
		if st == serviceType {
			return true
		}
	}
	return false
}

// LogoField is the letterhead logo URL with its sticky-override flag.
// The value tracks the selected company's default until the user edits
// it directly; after that, company changes no longer touch it.
type LogoField struct {
	Value          string `json:"value"`
	UserOverridden bool   `json:"userOverridden"`
}

// ApplyCompanyDefault resets the value from the company default unless
// the user has overridden it.
func (l *LogoField) ApplyCompanyDefault(c Company) {
	if !l.UserOverridden {
		l.Value = c.LogoURL
	}
}

// Override records a manual edit. From here on the value is sticky.
func (l *LogoField) Override(value string) {
	l.Value = value
	l.UserOverridden = true
}

// ReportForm is the mutable record a report is edited into. Dates are
// ISO calendar dates ("2006-01-02") as entered by the form's date
// inputs; empty means not filled in.
type ReportForm struct {
	Company         CompanyCode      `json:"company"`
	ReportType      ReportType       `json:"reportType"`
	CustomerName    string           `json:"customerName"`
	VesselName      string           `json:"vesselName"`
	ReferenceNumber string           `json:"referenceNumber"`
	JobNumber       string           `json:"jobNumber"`
	JobStartDate    string           `json:"jobStartDate"`
	JobEndDate      string           `json:"jobEndDate"`
	Location        string           `json:"location"`
	ServiceTypes    ServiceSelection `json:"serviceTypes"`
	Equipment       string           `json:"equipment"`
	Findings        string           `json:"findings"`
	Summary         string           `json:"summary"`
	Recommendations string           `json:"recommendations"`
	PreparedBy      string           `json:"preparedBy"`
	Logo            LogoField        `json:"logo"`
}

// NewReportForm returns a form with the defaults a fresh editing
// session starts from: first issuing entity, service report heading,
// logo tracking the company default.
func NewReportForm() ReportForm {
	f := ReportForm{
		Company:    CompanyPoseidon,
		ReportType: ReportTypeService,
	}
	if c, ok := CompanyByCode(f.Company); ok {
		f.Logo.ApplyCompanyDefault(c)
	}
	return f
}

// SetCompany switches the issuing entity and applies the single logo
// rule: a non-overridden logo follows the company default.
func (f *ReportForm) SetCompany(code CompanyCode) bool {
	c, ok := CompanyByCode(code)
	if !ok {
		return false
	}
	f.Company = code
	f.Logo.ApplyCompanyDefault(c)
	return true
}

// Photo is one attached photograph. The ID stays stable across reorder
// and removal so the caption remains attached to the right image.
type Photo struct {
	ID      uuid.UUID `json:"id"`
	DataURL string    `json:"dataUrl"`
	Caption string    `json:"caption"`
}

// Snapshot is the persisted record: a complete copy of the form and its
// ordered photo list at time of save. SavedAt is informational and
// tolerated absent in older snapshots.
type Snapshot struct {
	Form    ReportForm `json:"form"`
	Photos  []Photo    `json:"photos"`
	SavedAt JSONTime   `json:"savedAt"`
}
