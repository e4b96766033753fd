// Package metrics holds patient health metrics, uploaded reports, and the
// dashboard summary aggregated from them.
package metrics

import (
	"time"

	"github.com/healthtrack/api/pkg/validation"
)

// Collection names in the record store.
const (
	CollectionHealthMetric = "healthmetric"
	CollectionReport       = "report"
)

type HealthMetric struct {
	ID                     string     `json:"id,omitempty"`
	PatientID              string     `json:"patient_id"`
	Timestamp              *time.Time `json:"timestamp"`
	BloodPressureSystolic  *int       `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int       `json:"blood_pressure_diastolic,omitempty"`
	BloodOxygenLevel       *float64   `json:"blood_oxygen_level,omitempty"`
	WBCCount               *float64   `json:"wbc_count,omitempty"`
	PlateletCount          *float64   `json:"platelet_count,omitempty"`
	SugarLevel             *float64   `json:"sugar_level,omitempty"`
	VitaminDeficiencies    []string   `json:"vitamin_deficiencies"`
	ChronicDisease         []string   `json:"chronic_disease"`
	CurrentMedication      []string   `json:"current_medication"`
}

func (m *HealthMetric) Validate() error {
	var e validation.Errors
	e.Required("patient_id", m.PatientID)
	if m.Timestamp == nil {
		e.Add("timestamp", "is required")
	}
	return e.Err()
}

type Report struct {
	ID         string  `json:"id,omitempty"`
	PatientID  string  `json:"patient_id"`
	Title      string  `json:"title"`
	ReportDate string  `json:"report_date"`
	FileURL    *string `json:"file_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *Report) Validate() error {
	var e validation.Errors
	e.Required("patient_id", r.PatientID)
	e.Required("title", r.Title)
	e.Required("report_date", r.ReportDate)
	if r.ReportDate != "" {
		if _, err := time.Parse("2006-01-02", r.ReportDate); err != nil {
			e.Add("report_date", "must be a date in YYYY-MM-DD form")
		}
	}
	return e.Err()
}

// HealthBlock carries the latest readings for the dashboard. BP is always a
// two-element systolic/diastolic pair; absent readings stay null.
type HealthBlock struct {
	BP       []*int   `json:"bp"`
	Oxygen   *float64 `json:"oxygen"`
	WBC      *float64 `json:"wbc"`
	Platelet *float64 `json:"platelet"`
	Sugar    *float64 `json:"sugar"`
}

// Summary is the dashboard view for one patient. Calendar is a reserved
// placeholder and always empty.
type Summary struct {
	Disease             []string    `json:"disease"`
	Medications         []string    `json:"medications"`
	ReportsCount        int         `json:"reports_count"`
	Calendar            []any       `json:"calendar"`
	Health              HealthBlock `json:"health"`
	VitaminDeficiencies []string    `json:"vitamin_deficiencies"`
}
