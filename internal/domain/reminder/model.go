// Package reminder holds the reminder schema, its CRUD surface, and the
// scheduled reminder generators (medication, appointment, hydration).
package reminder

import (
	"time"

	"github.com/healthtrack/api/pkg/validation"
)

// Collection is the reminder collection name in the record store.
const Collection = "reminder"

// Reminder types.
const (
	TypeAppointment = "Appointment"
	TypeMedication  = "Medication"
	TypeDiet        = "Diet"
	TypeHydration   = "Hydration"
	TypeCall        = "Call"
)

type Reminder struct {
	ID            string     `json:"id,omitempty"`
	PatientID     string     `json:"patient_id"`
	ReminderType  string     `json:"reminder_type"`
	Message       string     `json:"message"`
	DueAt         *time.Time `json:"due_at"`
	Dosage        *string    `json:"dosage,omitempty"`
	AppointmentID *string    `json:"appointment_id,omitempty"`
}

func (r *Reminder) Validate() error {
	var e validation.Errors
	e.Required("patient_id", r.PatientID)
	e.Required("reminder_type", r.ReminderType)
	e.OneOf("reminder_type", r.ReminderType, TypeAppointment, TypeMedication, TypeDiet, TypeHydration, TypeCall)
	e.Required("message", r.Message)
	if r.DueAt == nil {
		e.Add("due_at", "is required")
	}
	return e.Err()
}
