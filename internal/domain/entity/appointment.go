package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// TreatmentType enumerates the treatments the clinic offers
type TreatmentType string

const (
	TreatmentCleaning     TreatmentType = "cleaning"
	TreatmentRootCanal    TreatmentType = "root_canal"
	TreatmentCosmetic     TreatmentType = "cosmetic"
	TreatmentExam         TreatmentType = "exam"
	TreatmentEmergency    TreatmentType = "emergency"
	TreatmentOrthodontics TreatmentType = "orthodontics"
	TreatmentExtraction   TreatmentType = "extraction"
)

// BookingMethod records how the appointment was made
type BookingMethod string

const (
	BookingMethodPhone   BookingMethod = "phone"
	BookingMethodWebsite BookingMethod = "website"
	BookingMethodWalkIn  BookingMethod = "walk_in"
	BookingMethodAIVoice BookingMethod = "ai_voice"
)

// ContactChannel is the patient's preferred contact channel
type ContactChannel string

const (
	ChannelSMS   ContactChannel = "sms"
	ChannelEmail ContactChannel = "email"
	ChannelBoth  ContactChannel = "both"
)

// Appointment represents a booked patient appointment.
// AppointmentDate and AppointmentTime are stored as zero-padded strings
// (YYYY-MM-DD, HH:MM) so that lexicographic ordering equals chronological
// ordering. Records are immutable after creation.
type Appointment struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName            string            `gorm:"type:text;not null" json:"firstName"`
	LastName             string            `gorm:"type:text;not null" json:"lastName"`
	Phone                string            `gorm:"type:text;not null" json:"phone"`
	Email                string            `gorm:"type:text;not null" json:"email"`
	PreferredChannel     ContactChannel    `gorm:"type:text;not null" json:"preferredChannel"`
	PreferredContactTime string            `gorm:"type:text;not null" json:"preferredContactTime"`
	AppointmentDate      string            `gorm:"type:text;not null;index" json:"appointmentDate"`
	AppointmentTime      string            `gorm:"type:text;not null" json:"appointmentTime"`
	TreatmentType        TreatmentType     `gorm:"type:text;not null" json:"treatmentType"`
	BookingMethod        BookingMethod     `gorm:"type:text;not null" json:"bookingMethod"`
	Status               AppointmentStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// PatientName is the display name used in notifications
func (a *Appointment) PatientName() string {
	return a.FirstName + " " + a.LastName
}

// IsPending checks if the appointment is still pending
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
