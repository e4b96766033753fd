// Package records holds the schemas and CRUD surface for the plain record
// kinds: doctors, patients, families, admins, appointments, payments,
// articles, and emergency contacts. Each collection is named after the
// lowercase record kind.
package records

import (
	"net/mail"
	"time"

	"github.com/healthtrack/api/pkg/validation"
)

// Collection names in the record store.
const (
	CollectionDoctor      = "doctor"
	CollectionPatient     = "patient"
	CollectionFamily      = "family"
	CollectionAdmin       = "admin"
	CollectionAppointment = "appointment"
	CollectionPayment     = "payment"
	CollectionArticle     = "article"
	CollectionEmergency   = "emergency"
)

type Doctor struct {
	ID                string  `json:"id,omitempty"`
	Name              string  `json:"name"`
	Specialization    string  `json:"specialization"`
	Qualification     string  `json:"qualification"`
	CurrentHospital   string  `json:"current_hospital"`
	YearsOfExperience *int    `json:"years_of_experience"`
	Location          string  `json:"location"`
	ProfilePhoto      *string `json:"profile_photo,omitempty"`
}

func (d *Doctor) Validate() error {
	var e validation.Errors
	e.Required("name", d.Name)
	e.Required("specialization", d.Specialization)
	e.Required("qualification", d.Qualification)
	e.Required("current_hospital", d.CurrentHospital)
	e.Required("location", d.Location)
	if d.YearsOfExperience == nil {
		e.Add("years_of_experience", "is required")
	} else if *d.YearsOfExperience < 0 || *d.YearsOfExperience > 80 {
		e.Add("years_of_experience", "must be between 0 and 80")
	}
	return e.Err()
}

// PatientMedicalInfo is the embedded medical block on a patient record.
type PatientMedicalInfo struct {
	BloodGroup        *string  `json:"blood_group,omitempty"`
	Allergies         []string `json:"allergies"`
	CurrentMedication []string `json:"current_medication"`
	PastMedication    []string `json:"past_medication"`
	ChronicDisease    []string `json:"chronic_disease"`
	AssignedDoctor    *string  `json:"assigned_doctor,omitempty"`
}

type Patient struct {
	ID                 string             `json:"id,omitempty"`
	PatientID          string             `json:"patient_id"`
	FullName           string             `json:"full_name"`
	DateOfBirth        string             `json:"date_of_birth"`
	Gender             string             `json:"gender"`
	ContactNumber      string             `json:"contact_number"`
	AlternateNumber    *string            `json:"alternate_number,omitempty"`
	Email              *string            `json:"email,omitempty"`
	Address            string             `json:"address"`
	ProfilePhoto       *string            `json:"profile_photo,omitempty"`
	MedicalInformation PatientMedicalInfo `json:"medical_information"`
}

func (p *Patient) Validate() error {
	var e validation.Errors
	e.Required("patient_id", p.PatientID)
	e.Required("full_name", p.FullName)
	e.Required("date_of_birth", p.DateOfBirth)
	if p.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", p.DateOfBirth); err != nil {
			e.Add("date_of_birth", "must be a date in YYYY-MM-DD form")
		}
	}
	e.Required("gender", p.Gender)
	e.OneOf("gender", p.Gender, "Male", "Female", "Other")
	e.Required("contact_number", p.ContactNumber)
	e.Required("address", p.Address)
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			e.Add("email", "must be a valid email address")
		}
	}
	return e.Err()
}

type Family struct {
	ID            string `json:"id,omitempty"`
	FamilyID      string `json:"family_id"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

func (f *Family) Validate() error {
	var e validation.Errors
	e.Required("family_id", f.FamilyID)
	e.Required("contact_number", f.ContactNumber)
	e.Required("address", f.Address)
	return e.Err()
}

type Admin struct {
	ID            string  `json:"id,omitempty"`
	AdminID       string  `json:"admin_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contact_number"`
	ProfilePhoto  *string `json:"profile_photo,omitempty"`
	Role          string  `json:"role"`
}

func (a *Admin) Validate() error {
	var e validation.Errors
	e.Required("admin_id", a.AdminID)
	e.Required("full_name", a.FullName)
	e.Required("email", a.Email)
	if a.Email != "" {
		if _, err := mail.ParseAddress(a.Email); err != nil {
			e.Add("email", "must be a valid email address")
		}
	}
	e.Required("contact_number", a.ContactNumber)
	e.Required("role", a.Role)
	e.OneOf("role", a.Role, "Super Admin", "Hospital Admin", "Receptionist", "Staff", "Other")
	return e.Err()
}

type Appointment struct {
	ID              string     `json:"id,omitempty"`
	PatientID       string     `json:"patient_id"`
	DoctorID        string     `json:"doctor_id"`
	AppointmentTime *time.Time `json:"appointment_time"`
	Status          string     `json:"status"`
	Notes           *string    `json:"notes,omitempty"`
}

func (a *Appointment) Validate() error {
	if a.Status == "" {
		a.Status = "Scheduled"
	}
	var e validation.Errors
	e.Required("patient_id", a.PatientID)
	e.Required("doctor_id", a.DoctorID)
	if a.AppointmentTime == nil {
		e.Add("appointment_time", "is required")
	}
	e.OneOf("status", a.Status, "Scheduled", "Completed", "Cancelled", "Reassigned")
	return e.Err()
}

type Payment struct {
	ID            string   `json:"id,omitempty"`
	AppointmentID *string  `json:"appointment_id,omitempty"`
	PatientID     string   `json:"patient_id"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
	Status        string   `json:"status"`
	Method        *string  `json:"method,omitempty"`
}

func (p *Payment) Validate() error {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Status == "" {
		p.Status = "Pending"
	}
	var e validation.Errors
	e.Required("patient_id", p.PatientID)
	if p.Amount == nil {
		e.Add("amount", "is required")
	}
	e.OneOf("currency", p.Currency, "USD", "INR", "EUR", "GBP", "Other")
	e.OneOf("status", p.Status, "Pending", "Approved", "Refunded", "Failed")
	return e.Err()
}

type Article struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Excerpt *string  `json:"excerpt,omitempty"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
}

func (a *Article) Validate() error {
	var e validation.Errors
	e.Required("title", a.Title)
	e.Required("slug", a.Slug)
	e.Required("body", a.Body)
	return e.Err()
}

// Emergency is an emergency contact entry for an area.
type Emergency struct {
	ID          string  `json:"id,omitempty"`
	Area        string  `json:"area"`
	Number      string  `json:"number"`
	Description *string `json:"description,omitempty"`
}

func (em *Emergency) Validate() error {
	var e validation.Errors
	e.Required("area", em.Area)
	e.Required("number", em.Number)
	return e.Err()
}
