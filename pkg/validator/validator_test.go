package validator

import (
	"testing"

	"github.com/lumedental/clinic-api/internal/delivery/dto"
)

func validRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		FirstName:            "Jane",
		LastName:             "Doe",
		Phone:                "+15551234567",
		Email:                "jane@example.com",
		PreferredChannel:     "email",
		PreferredContactTime: "morning",
		AppointmentDate:      "2025-03-10",
		AppointmentTime:      "09:30",
		TreatmentType:        "cleaning",
		BookingMethod:        "website",
	}
}

func TestValidAppointmentRequest(t *testing.T) {
	cv := NewValidator()
	req := validRequest()
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestSingleFieldViolations(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name   string
		mutate func(*dto.CreateAppointmentRequest)
		field  string
	}{
		{"empty first name", func(r *dto.CreateAppointmentRequest) { r.FirstName = "" }, "FirstName"},
		{"empty last name", func(r *dto.CreateAppointmentRequest) { r.LastName = "" }, "LastName"},
		{"phone too short", func(r *dto.CreateAppointmentRequest) { r.Phone = "12345" }, "Phone"},
		{"phone missing plus", func(r *dto.CreateAppointmentRequest) { r.Phone = "15551234567" }, "Phone"},
		{"phone too long", func(r *dto.CreateAppointmentRequest) { r.Phone = "+1234567890123456" }, "Phone"},
		{"bad email", func(r *dto.CreateAppointmentRequest) { r.Email = "not-an-email" }, "Email"},
		{"bad channel", func(r *dto.CreateAppointmentRequest) { r.PreferredChannel = "fax" }, "PreferredChannel"},
		{"bad contact time", func(r *dto.CreateAppointmentRequest) { r.PreferredContactTime = "midnight" }, "PreferredContactTime"},
		{"bad date", func(r *dto.CreateAppointmentRequest) { r.AppointmentDate = "03/10/2025" }, "AppointmentDate"},
		{"impossible date", func(r *dto.CreateAppointmentRequest) { r.AppointmentDate = "2025-13-40" }, "AppointmentDate"},
		{"hour out of range", func(r *dto.CreateAppointmentRequest) { r.AppointmentTime = "25:00" }, "AppointmentTime"},
		{"unpadded hour", func(r *dto.CreateAppointmentRequest) { r.AppointmentTime = "9:30" }, "AppointmentTime"},
		{"bad treatment", func(r *dto.CreateAppointmentRequest) { r.TreatmentType = "invalid" }, "TreatmentType"},
		{"bad booking method", func(r *dto.CreateAppointmentRequest) { r.BookingMethod = "carrier_pigeon" }, "BookingMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := cv.Validate(&req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			fields := cv.FormatValidationErrors(err)
			if _, ok := fields[tt.field]; !ok {
				t.Fatalf("expected violation on %s, got %v", tt.field, fields)
			}
		})
	}
}

func TestAllViolationsReported(t *testing.T) {
	cv := NewValidator()
	req := validRequest()
	req.Phone = "12345"
	req.Email = "not-an-email"
	req.TreatmentType = "invalid"

	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := cv.FormatValidationErrors(err)
	for _, f := range []string{"Phone", "Email", "TreatmentType"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing violation for %s: %v", f, fields)
		}
	}
	if len(fields) != 3 {
		t.Errorf("expected exactly 3 violations, got %v", fields)
	}
}
