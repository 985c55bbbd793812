package repository

import (
	"context"
	"time"

	"github.com/lumedental/clinic-api/internal/domain/entity"
	domainRepo "github.com/lumedental/clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	appointment.Status = entity.AppointmentStatusPending
	appointment.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, from string) ([]entity.Appointment, error) {
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}

	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_date >= ?", from).
		Order("appointment_date, appointment_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
