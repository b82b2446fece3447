package models

// MergePatch mirrors ReportForm with pointer fields so a loaded
// snapshot can be laid over the current form without clobbering fields
// the stored JSON never had. Older snapshots saved before a field
// existed simply leave it alone on load; this is the forward
// compatibility contract for schema evolution.
type MergePatch struct {
	Company         *CompanyCode      `json:"company"`
	ReportType      *ReportType       `json:"reportType"`
	CustomerName    *string           `json:"customerName"`
	VesselName      *string           `json:"vesselName"`
	ReferenceNumber *string           `json:"referenceNumber"`
	JobNumber       *string           `json:"jobNumber"`
	JobStartDate    *string           `json:"jobStartDate"`
	JobEndDate      *string           `json:"jobEndDate"`
	Location        *string           `json:"location"`
	ServiceTypes    *ServiceSelection `json:"serviceTypes"`
	Equipment       *string           `json:"equipment"`
	Findings        *string           `json:"findings"`
	Summary         *string           `json:"summary"`
	Recommendations *string           `json:"recommendations"`
	PreparedBy      *string           `json:"preparedBy"`
	Logo            *LogoField        `json:"logo"`
}

// SnapshotPatch is the shape a stored record is decoded into on load.
// A present photo list replaces the current one wholesale; photos are
// never merged item by item.
type SnapshotPatch struct {
	Form    MergePatch `json:"form"`
	Photos  *[]Photo   `json:"photos"`
	SavedAt *JSONTime  `json:"savedAt"`
}

// ApplyPatch shallow-merges every present field of the patch over the
// form. Absent (nil) fields keep their current value. Applying an
// empty patch is the identity.
func (f *ReportForm) ApplyPatch(p MergePatch) {
	if p.Company != nil {
		f.Company = *p.Company
	}
	if p.ReportType != nil {
		f.ReportType = *p.ReportType
	}
	if p.CustomerName != nil {
		f.CustomerName = *p.CustomerName
	}
	if p.VesselName != nil {
		f.VesselName = *p.VesselName
	}
	if p.ReferenceNumber != nil {
		f.ReferenceNumber = *p.ReferenceNumber
	}
	if p.JobNumber != nil {
		f.JobNumber = *p.JobNumber
	}
	if p.JobStartDate != nil {
		f.JobStartDate = *p.JobStartDate
	}
	if p.JobEndDate != nil {
		f.JobEndDate = *p.JobEndDate
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.ServiceTypes != nil {
		f.ServiceTypes = *p.ServiceTypes
	}
	if p.Equipment != nil {
		f.Equipment = *p.Equipment
	}
	if p.Findings != nil {
		f.Findings = *p.Findings
	}
	if p.Summary != nil {
		f.Summary = *p.Summary
	}
	if p.Recommendations != nil {
		f.Recommendations = *p.Recommendations
	}
	if p.PreparedBy != nil {
		f.PreparedBy = *p.PreparedBy
	}
	if p.Logo != nil {
		f.Logo = *p.Logo
	}
}

// MergeSnapshot lays a loaded record over the current snapshot and
// returns the result. Form fields merge per ApplyPatch; a present
// photo list replaces the current one.
func MergeSnapshot(current Snapshot, loaded SnapshotPatch) Snapshot {
	out := current
	out.Form.ApplyPatch(loaded.Form)
	if loaded.Photos != nil {
		out.Photos = *loaded.Photos
	}
	if loaded.SavedAt != nil {
		out.SavedAt = *loaded.SavedAt
	}
	return out
}
