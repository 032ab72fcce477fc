package job

import (
	"fmt"
	"time"
)

// Statuses a job can be in. New is the only initial state; any status may
// move to any other, the enum membership is the only rule enforced.
const (
	StatusNew        = "New"
	StatusInProgress = "In-Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On-Hold"
	StatusCancelled  = "Cancelled"
)

// Channels a job request can arrive through.
const (
	ModeEmail    = "Email"
	ModePhone    = "Phone"
	ModeWhatsApp = "WhatsApp"
	ModePhysical = "Physical Documents"
	ModeOther    = "Other"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

func ValidMode(m string) bool {
	switch m {
	case ModeEmail, ModePhone, ModeWhatsApp, ModePhysical, ModeOther:
		return true
	}
	return false
}

// Flag is a bool that serializes as 0/1 for parity with the existing
// dashboard clients.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %q", b)
	}
	return nil
}

// Job is a unit of work tracked from intake through completion,
// invoicing and payment. JobID ("DC-<id>") is stamped from the assigned
// primary key inside the creation transaction and never changes.
type Job struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	JobID string `gorm:"index;not null;default:''" json:"job_id"`

	ClientName  string `gorm:"not null" json:"client_name"`
	ClientEmail string `gorm:"not null" json:"client_email"`
	ClientPhone string `gorm:"not null" json:"client_phone"`

	JobReceivedDate time.Time `gorm:"not null" json:"job_received_date"`
	ModeReceived    string    `gorm:"not null" json:"mode_received"`
	JobDescription  string    `gorm:"type:text;not null" json:"job_description"`
	TypeOfJob       string    `gorm:"not null" json:"type_of_job"`
	AssignedTo      uint64    `gorm:"not null" json:"assigned_to"`

	TargetCompletionDate time.Time `gorm:"not null" json:"target_completion_date"`
	Status               string    `gorm:"index;not null;default:'New'" json:"status"`

	IsDelivered     Flag `gorm:"not null;default:false" json:"is_delivered"`
	InvoiceRaised   Flag `gorm:"not null;default:false" json:"invoice_raised"`
	PaymentReceived Flag `gorm:"not null;default:false" json:"payment_received"`

	InvoiceNumber    string  `gorm:"not null;default:''" json:"invoice_number"`
	InvoiceAmount    float64 `gorm:"type:numeric(12,2);not null;default:0" json:"invoice_amount"`
	PaymentMode      string  `gorm:"not null;default:''" json:"payment_mode"`
	PaymentReference string  `gorm:"not null;default:''" json:"payment_reference"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
