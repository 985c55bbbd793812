package converter

import (
	"github.com/lumedental/clinic-api/internal/delivery/dto"
	"github.com/lumedental/clinic-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		FirstName:            appointment.FirstName,
		LastName:             appointment.LastName,
		Phone:                appointment.Phone,
		Email:                appointment.Email,
		PreferredChannel:     string(appointment.PreferredChannel),
		PreferredContactTime: appointment.PreferredContactTime,
		AppointmentDate:      appointment.AppointmentDate,
		AppointmentTime:      appointment.AppointmentTime,
		TreatmentType:        string(appointment.TreatmentType),
		BookingMethod:        string(appointment.BookingMethod),
		Status:               string(appointment.Status),
		CreatedAt:            appointment.CreatedAt,
	}
}

func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
