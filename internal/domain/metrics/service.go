package metrics

import (
	"context"

	"github.com/healthtrack/api/internal/platform/docstore"
)

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// CreateMetric validates and persists a health metric reading.
func (s *Service) CreateMetric(ctx context.Context, m *HealthMetric) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	return s.store.Create(ctx, CollectionHealthMetric, m)
}

// ListMetrics returns metrics in insertion order, optionally filtered by
// patient.
func (s *Service) ListMetrics(ctx context.Context, patientID string) ([]HealthMetric, error) {
	return docstore.FetchAs[HealthMetric](ctx, s.store, CollectionHealthMetric, patientFilter(patientID))
}

// CreateReport validates and persists an uploaded report reference.
func (s *Service) CreateReport(ctx context.Context, r *Report) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return s.store.Create(ctx, CollectionReport, r)
}

func (s *Service) ListReports(ctx context.Context, patientID string) ([]Report, error) {
	return docstore.FetchAs[Report](ctx, s.store, CollectionReport, patientFilter(patientID))
}

// Summarize reduces a patient's metrics and reports into the dashboard
// view. The latest metric is the last one in store-returned order, which
// the store guarantees is insertion order; a backfilled reading inserted
// later therefore counts as latest. An unknown patient yields the empty
// summary, never an error.
func (s *Service) Summarize(ctx context.Context, patientID string) (*Summary, error) {
	items, err := docstore.FetchAs[HealthMetric](ctx, s.store, CollectionHealthMetric, map[string]any{"patient_id": patientID})
	if err != nil {
		return nil, err
	}
	reports, err := docstore.FetchAs[Report](ctx, s.store, CollectionReport, map[string]any{"patient_id": patientID})
	if err != nil {
		return nil, err
	}

	var latest HealthMetric
	if len(items) > 0 {
		latest = items[len(items)-1]
	}

	return &Summary{
		Disease:      emptyIfNil(latest.ChronicDisease),
		Medications:  emptyIfNil(latest.CurrentMedication),
		ReportsCount: len(reports),
		Calendar:     []any{},
		Health: HealthBlock{
			BP:       []*int{latest.BloodPressureSystolic, latest.BloodPressureDiastolic},
			Oxygen:   latest.BloodOxygenLevel,
			WBC:      latest.WBCCount,
			Platelet: latest.PlateletCount,
			Sugar:    latest.SugarLevel,
		},
		VitaminDeficiencies: emptyIfNil(latest.VitaminDeficiencies),
	}, nil
}

func patientFilter(patientID string) map[string]any {
	if patientID == "" {
		return nil
	}
	return map[string]any{"patient_id": patientID}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
