package memory

import (
	"context"
	"testing"

	"github.com/lumedental/clinic-api/internal/domain/entity"
)

func testAppointment(date, timeOfDay string) *entity.Appointment {
	return &entity.Appointment{
		FirstName:            "Jane",
		LastName:             "Doe",
		Phone:                "+15551234567",
		Email:                "jane@example.com",
		PreferredChannel:     entity.ChannelEmail,
		PreferredContactTime: "morning",
		AppointmentDate:      date,
		AppointmentTime:      timeOfDay,
		TreatmentType:        entity.TreatmentCleaning,
		BookingMethod:        entity.BookingMethodWebsite,
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	repo := NewAppointmentRepository()

	a := testAppointment("2025-03-10", "09:30")
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("create: %v", err)
	}

	if a.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected assigned id")
	}
	if a.Status != entity.AppointmentStatusPending {
		t.Fatalf("expected pending status, got %q", a.Status)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}

func TestCreateIsNotIdempotent(t *testing.T) {
	repo := NewAppointmentRepository()

	first := testAppointment("2025-03-10", "09:30")
	second := testAppointment("2025-03-10", "09:30")
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(context.Background(), second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("identical payloads must produce distinct records")
	}

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(all))
	}
}

func TestFindUpcomingFiltersAndSorts(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	for _, in := range []struct{ date, timeOfDay string }{
		{"2024-05-31", "10:00"},
		{"2024-06-02", "10:00"},
		{"2024-06-02", "09:30"},
		{"2024-06-01", "14:00"},
		{"2024-07-01", "08:00"},
	} {
		if err := repo.Create(ctx, testAppointment(in.date, in.timeOfDay)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.FindUpcoming(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("find upcoming: %v", err)
	}

	want := []struct{ date, timeOfDay string }{
		{"2024-06-01", "14:00"},
		{"2024-06-02", "09:30"},
		{"2024-06-02", "10:00"},
		{"2024-07-01", "08:00"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].AppointmentDate != w.date || got[i].AppointmentTime != w.timeOfDay {
			t.Errorf("position %d: got %s %s, want %s %s",
				i, got[i].AppointmentDate, got[i].AppointmentTime, w.date, w.timeOfDay)
		}
	}
}
