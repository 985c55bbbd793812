package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lumedental/clinic-api/internal/domain/entity"
	domainRepo "github.com/lumedental/clinic-api/internal/domain/repository"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment.ID = uuid.New()
	appointment.Status = entity.AppointmentStatusPending
	appointment.CreatedAt = time.Now()

	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, from string) ([]entity.Appointment, error) {
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.AppointmentDate >= from {
			out = append(out, *a)
		}
	}

	// string order equals chronological order for zero-padded values
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate < out[j].AppointmentDate
		}
		return out[i].AppointmentTime < out[j].AppointmentTime
	})
	return out, nil
}
