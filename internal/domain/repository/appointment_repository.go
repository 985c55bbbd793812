package repository

import (
	"context"

	"github.com/lumedental/clinic-api/internal/domain/entity"
)

// AppointmentRepository persists appointments. Create assigns the ID,
// defaults the status to pending and stamps CreatedAt; it is intentionally
// not idempotent, two calls with the same payload create two records.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindAll returns an unordered snapshot of every stored appointment.
	FindAll(ctx context.Context) ([]entity.Appointment, error)

	// FindUpcoming returns appointments with appointment_date >= from,
	// ascending by (appointment_date, appointment_time). The comparison is
	// lexicographic, which is correct only because both columns hold
	// fixed-width zero-padded values. An empty from means today.
	FindUpcoming(ctx context.Context, from string) ([]entity.Appointment, error)
}
