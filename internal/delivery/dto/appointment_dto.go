package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest is the booking form payload. Field names are the
// wire contract of the booking client; validate tags mirror the schema
// constraints exactly.
type CreateAppointmentRequest struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	Phone                string `json:"phone" validate:"required,phone_intl"`
	Email                string `json:"email" validate:"required,email"`
	PreferredChannel     string `json:"preferredChannel" validate:"required,oneof=sms email both"`
	PreferredContactTime string `json:"preferredContactTime" validate:"required,oneof=morning afternoon evening anytime"`
	AppointmentDate      string `json:"appointmentDate" validate:"required,iso_date"`
	AppointmentTime      string `json:"appointmentTime" validate:"required,clock_24h"`
	TreatmentType        string `json:"treatmentType" validate:"required,oneof=cleaning root_canal cosmetic exam emergency orthodontics extraction"`
	BookingMethod        string `json:"bookingMethod" validate:"required,oneof=phone website walk_in ai_voice"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	PreferredChannel     string    `json:"preferredChannel"`
	PreferredContactTime string    `json:"preferredContactTime"`
	AppointmentDate      string    `json:"appointmentDate"`
	AppointmentTime      string    `json:"appointmentTime"`
	TreatmentType        string    `json:"treatmentType"`
	BookingMethod        string    `json:"bookingMethod"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
