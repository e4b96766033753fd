package reminder

import (
	"context"
	"time"

	"github.com/healthtrack/api/internal/platform/docstore"
	"github.com/healthtrack/api/pkg/validation"
)

// Generation defaults.
const (
	DefaultTimesPerDay   = 2
	DefaultDays          = 7
	DefaultIntervalHours = 2
	DefaultWindowHours   = 12
)

// Service generates and persists reminders. Writes are sequential and not
// transactional: a store failure mid-run leaves earlier reminders in place.
type Service struct {
	store      docstore.Store
	maxPerCall int
	now        func() time.Time
}

func NewService(store docstore.Store, maxPerCall int) *Service {
	return &Service{store: store, maxPerCall: maxPerCall, now: time.Now}
}

// Create validates and persists a single reminder.
func (s *Service) Create(ctx context.Context, r *Reminder) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return s.store.Create(ctx, Collection, r)
}

// List returns reminders, optionally filtered by patient.
func (s *Service) List(ctx context.Context, patientID string) ([]Reminder, error) {
	var filter map[string]any
	if patientID != "" {
		filter = map[string]any{"patient_id": patientID}
	}
	return docstore.FetchAs[Reminder](ctx, s.store, Collection, filter)
}

// GenerateMedicationSchedule creates daily dosing reminders for the next
// `days` days. Dose slots anchor at 09:00 relative to now and step 8 hours
// per dose: due = now + d days + (9 + 8t) hours. The anchor-plus-offset
// formula intentionally does not divide the day evenly for more than three
// doses. Returns the number of reminders created.
func (s *Service) GenerateMedicationSchedule(ctx context.Context, patientID string, timesPerDay, days int) (int, error) {
	if patientID == "" {
		return 0, validation.New("patient_id", "is required").Err()
	}
	if timesPerDay > 0 && days > 0 {
		if err := s.checkFanOut("days", timesPerDay*days); err != nil {
			return 0, err
		}
	}

	now := s.now().UTC()
	created := 0
	for d := 0; d < days; d++ {
		for t := 0; t < timesPerDay; t++ {
			due := now.Add(time.Duration(d)*24*time.Hour + time.Duration(9+8*t)*time.Hour)
			rem := &Reminder{
				PatientID:    patientID,
				ReminderType: TypeMedication,
				Message:      "Time to take your medication",
				DueAt:        &due,
			}
			if err := rem.Validate(); err != nil {
				return created, err
			}
			if _, err := s.store.Create(ctx, Collection, rem); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// ScheduleAppointmentReminder creates a single pre-notification one day
// before the appointment. The due time may already be in the past when
// scheduling happens late; that is not guarded.
func (s *Service) ScheduleAppointmentReminder(ctx context.Context, appointmentID string, appointmentTime time.Time, patientID string) (string, error) {
	var e validation.Errors
	e.Required("appointment_id", appointmentID)
	e.Required("patient_id", patientID)
	if appointmentTime.IsZero() {
		e.Add("appointment_time", "is required")
	}
	if err := e.Err(); err != nil {
		return "", err
	}

	due := appointmentTime.Add(-24 * time.Hour)
	rem := &Reminder{
		PatientID:     patientID,
		ReminderType:  TypeAppointment,
		Message:       "Appointment tomorrow",
		DueAt:         &due,
		AppointmentID: &appointmentID,
	}
	if err := rem.Validate(); err != nil {
		return "", err
	}
	return s.store.Create(ctx, Collection, rem)
}

// GenerateHydrationSchedule creates reminders at offsets 0, interval,
// 2*interval, ... strictly below the window, all relative to now. A
// non-positive interval is rejected rather than looping forever. Returns
// the number of reminders created.
func (s *Service) GenerateHydrationSchedule(ctx context.Context, patientID string, intervalHours, hours int) (int, error) {
	var e validation.Errors
	e.Required("patient_id", patientID)
	if intervalHours <= 0 {
		e.Add("interval_hours", "must be positive")
	}
	if err := e.Err(); err != nil {
		return 0, err
	}
	if hours > 0 {
		total := (hours + intervalHours - 1) / intervalHours
		if err := s.checkFanOut("hours", total); err != nil {
			return 0, err
		}
	}

	now := s.now().UTC()
	created := 0
	for h := 0; h < hours; h += intervalHours {
		due := now.Add(time.Duration(h) * time.Hour)
		rem := &Reminder{
			PatientID:    patientID,
			ReminderType: TypeHydration,
			Message:      "Drink water",
			DueAt:        &due,
		}
		if err := rem.Validate(); err != nil {
			return created, err
		}
		if _, err := s.store.Create(ctx, Collection, rem); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// checkFanOut rejects a generation request before any write when it would
// exceed the per-call cap.
func (s *Service) checkFanOut(field string, total int) error {
	if s.maxPerCall > 0 && total > s.maxPerCall {
		return validation.New(field, "request would create too many reminders").Err()
	}
	return nil
}
