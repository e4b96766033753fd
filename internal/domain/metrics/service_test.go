package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/healthtrack/api/internal/platform/docstore"
)

func tsPtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int            { return &v }
func floatPtr(v float64) *float64  { return &v }

func newTestService() (*Service, *docstore.Memory) {
	store := docstore.NewMemory()
	return NewService(store), store
}

func TestCreateMetric_Required(t *testing.T) {
	svc, store := newTestService()
	if _, err := svc.CreateMetric(context.Background(), &HealthMetric{PatientID: "P-1"}); err == nil {
		t.Error("expected error for missing timestamp")
	}
	if _, err := svc.CreateMetric(context.Background(), &HealthMetric{Timestamp: tsPtr(time.Now())}); err == nil {
		t.Error("expected error for missing patient_id")
	}
	if store.Count(CollectionHealthMetric) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestSummarize_Empty(t *testing.T) {
	svc, _ := newTestService()
	s, err := svc.Summarize(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ReportsCount != 0 {
		t.Errorf("expected 0 reports, got %d", s.ReportsCount)
	}
	if len(s.Disease) != 0 || len(s.Medications) != 0 || len(s.VitaminDeficiencies) != 0 {
		t.Error("expected empty lists for unknown patient")
	}
	if s.Disease == nil || s.Medications == nil || s.VitaminDeficiencies == nil || s.Calendar == nil {
		t.Error("expected empty lists, not nulls")
	}
	if len(s.Health.BP) != 2 || s.Health.BP[0] != nil || s.Health.BP[1] != nil {
		t.Errorf("expected two-element null bp pair, got %v", s.Health.BP)
	}
	if s.Health.Oxygen != nil || s.Health.Sugar != nil {
		t.Error("expected null readings for unknown patient")
	}
}

func TestSummarize_LatestIsLastInserted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	earlier := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)

	// Insert the newer timestamp first: latest follows insertion order,
	// not the timestamp.
	svc.CreateMetric(ctx, &HealthMetric{
		PatientID: "P-1", Timestamp: tsPtr(later),
		BloodPressureSystolic: intPtr(120), BloodPressureDiastolic: intPtr(80),
	})
	svc.CreateMetric(ctx, &HealthMetric{
		PatientID: "P-1", Timestamp: tsPtr(earlier),
		BloodPressureSystolic: intPtr(140), BloodPressureDiastolic: intPtr(95),
		SugarLevel: floatPtr(6.2),
	})

	s, err := svc.Summarize(ctx, "P-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Health.BP[0] == nil || *s.Health.BP[0] != 140 {
		t.Errorf("expected last-inserted systolic 140, got %v", s.Health.BP[0])
	}
	if s.Health.Sugar == nil || *s.Health.Sugar != 6.2 {
		t.Errorf("expected sugar 6.2, got %v", s.Health.Sugar)
	}
}

func TestSummarize_FullBlock(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.CreateMetric(ctx, &HealthMetric{
		PatientID:              "P-1",
		Timestamp:              tsPtr(time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)),
		BloodPressureSystolic:  intPtr(118),
		BloodPressureDiastolic: intPtr(76),
		BloodOxygenLevel:       floatPtr(98.5),
		WBCCount:               floatPtr(6.1),
		PlateletCount:          floatPtr(250),
		SugarLevel:             floatPtr(5.4),
		VitaminDeficiencies:    []string{"D", "B12"},
		ChronicDisease:         []string{"asthma"},
		CurrentMedication:      []string{"salbutamol"},
	})
	svc.CreateReport(ctx, &Report{PatientID: "P-1", Title: "CBC", ReportDate: "2026-03-04"})
	svc.CreateReport(ctx, &Report{PatientID: "P-1", Title: "X-Ray", ReportDate: "2026-03-05"})
	svc.CreateReport(ctx, &Report{PatientID: "P-2", Title: "Other", ReportDate: "2026-03-05"})

	s, err := svc.Summarize(ctx, "P-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ReportsCount != 2 {
		t.Errorf("expected 2 reports for P-1, got %d", s.ReportsCount)
	}
	if len(s.Disease) != 1 || s.Disease[0] != "asthma" {
		t.Errorf("expected disease [asthma], got %v", s.Disease)
	}
	if len(s.Medications) != 1 || s.Medications[0] != "salbutamol" {
		t.Errorf("expected medications [salbutamol], got %v", s.Medications)
	}
	if *s.Health.BP[0] != 118 || *s.Health.BP[1] != 76 {
		t.Errorf("expected bp [118 76], got %v %v", s.Health.BP[0], s.Health.BP[1])
	}
	if *s.Health.Oxygen != 98.5 || *s.Health.Platelet != 250 {
		t.Error("unexpected oxygen or platelet reading")
	}
	if len(s.VitaminDeficiencies) != 2 {
		t.Errorf("expected 2 vitamin deficiencies, got %v", s.VitaminDeficiencies)
	}
	if len(s.Calendar) != 0 {
		t.Errorf("expected empty calendar placeholder, got %v", s.Calendar)
	}
}

func TestListMetrics_FilterAndOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		svc.CreateMetric(ctx, &HealthMetric{PatientID: "P-1", Timestamp: tsPtr(base.Add(time.Duration(i) * time.Hour))})
	}
	svc.CreateMetric(ctx, &HealthMetric{PatientID: "P-2", Timestamp: tsPtr(base)})

	items, err := svc.ListMetrics(ctx, "P-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(items))
	}
	for i, m := range items {
		if !m.Timestamp.Equal(base.Add(time.Duration(i) * time.Hour)) {
			t.Errorf("metric %d out of insertion order", i)
		}
	}
}

func TestReportValidate_Date(t *testing.T) {
	r := &Report{PatientID: "P-1", Title: "CBC", ReportDate: "04-03-2026"}
	if err := r.Validate(); err == nil {
		t.Error("expected error for malformed report_date")
	}
}
