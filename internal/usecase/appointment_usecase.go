package usecase

import (
	"context"

	"github.com/lumedental/clinic-api/internal/converter"
	"github.com/lumedental/clinic-api/internal/delivery/dto"
	"github.com/lumedental/clinic-api/internal/domain/entity"
	"github.com/lumedental/clinic-api/internal/domain/repository"
	"github.com/lumedental/clinic-api/internal/service"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	// Create persists an already-validated booking and fires the
	// notification fan-out. Fan-out outcome never affects the result.
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListUpcoming(ctx context.Context, from string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        *service.Notifier
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository, notifier *service.Notifier) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Phone:                req.Phone,
		Email:                req.Email,
		PreferredChannel:     entity.ContactChannel(req.PreferredChannel),
		PreferredContactTime: req.PreferredContactTime,
		AppointmentDate:      req.AppointmentDate,
		AppointmentTime:      req.AppointmentTime,
		TreatmentType:        entity.TreatmentType(req.TreatmentType),
		BookingMethod:        entity.BookingMethod(req.BookingMethod),
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s created for %s on %s %s",
		appointment.ID, appointment.PatientName(), appointment.AppointmentDate, appointment.AppointmentTime)

	u.notifier.DispatchAsync(appointment)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *appointmentUsecase) ListUpcoming(ctx context.Context, from string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcoming(ctx, from)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}
