package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lumedental/clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAppointment(treatment entity.TreatmentType) *entity.Appointment {
	return &entity.Appointment{
		ID:                   uuid.New(),
		FirstName:            "Jane",
		LastName:             "Doe",
		Phone:                "+15551234567",
		Email:                "jane@example.com",
		PreferredChannel:     entity.ChannelEmail,
		PreferredContactTime: "morning",
		AppointmentDate:      "2025-03-10",
		AppointmentTime:      "09:30",
		TreatmentType:        treatment,
		BookingMethod:        entity.BookingMethodWebsite,
		Status:               entity.AppointmentStatusPending,
	}
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []Email
}

func (m *fakeMailer) Send(ctx context.Context, email Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) emails() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.sent...)
}

func TestWebhookDeliversFullPayload(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode webhook body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	appt := testAppointment(entity.TreatmentCleaning)
	d := NewWebhookDispatcher(srv.URL, 2*time.Second)
	if err := d.Send(context.Background(), appt); err != nil {
		t.Fatalf("send: %v", err)
	}

	if received["id"] != appt.ID.String() {
		t.Errorf("payload id = %v, want %s", received["id"], appt.ID)
	}
	if received["phone"] != "+15551234567" {
		t.Errorf("payload phone = %v", received["phone"])
	}
	if received["treatmentType"] != "cleaning" {
		t.Errorf("payload treatmentType = %v", received["treatmentType"])
	}
	if received["status"] != "pending" {
		t.Errorf("payload status = %v", received["status"])
	}
}

func TestWebhookNonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(srv.URL, 2*time.Second)
	if err := d.Send(context.Background(), testAppointment(entity.TreatmentExam)); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestDispatchWithNoChannelsConfigured(t *testing.T) {
	n := NewNotifier(testLogger(), nil, nil, nil, time.Second)
	// must be a silent no-op
	n.Dispatch(context.Background(), testAppointment(entity.TreatmentExam))
}

func TestDispatchSendsEducationalEmail(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(testLogger(), nil, mailer, nil, time.Second)

	n.Dispatch(context.Background(), testAppointment(entity.TreatmentRootCanal))

	sent := mailer.emails()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].To != "jane@example.com" {
		t.Errorf("to = %s", sent[0].To)
	}
	if sent[0].Subject != "Your Root Canal Appointment - What to Expect" {
		t.Errorf("subject = %s", sent[0].Subject)
	}
	if !strings.Contains(sent[0].Text, "Jane Doe") {
		t.Error("email text missing patient name")
	}
	if !strings.Contains(sent[0].Text, "2025-03-10") || !strings.Contains(sent[0].Text, "09:30") {
		t.Error("email text missing appointment date or time")
	}
}

func TestDispatchAsyncCompletesBeforeWait(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(testLogger(), nil, mailer, nil, time.Second)

	n.DispatchAsync(testAppointment(entity.TreatmentCleaning))
	n.Wait()

	if len(mailer.emails()) != 1 {
		t.Fatal("expected async dispatch to complete by Wait")
	}
}

func TestWebhookFailureDoesNotBlockEmail(t *testing.T) {
	// webhook target that always refuses
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	mailer := &fakeMailer{}
	n := NewNotifier(testLogger(), NewWebhookDispatcher(srv.URL, time.Second), mailer, nil, time.Second)

	n.Dispatch(context.Background(), testAppointment(entity.TreatmentExam))

	if len(mailer.emails()) != 1 {
		t.Fatal("email must still be dispatched when the webhook fails")
	}
}

func TestEmailTemplateSelection(t *testing.T) {
	subjects := map[entity.TreatmentType]string{
		entity.TreatmentCleaning:     "Your Dental Cleaning Appointment - Oral Hygiene Tips",
		entity.TreatmentRootCanal:    "Your Root Canal Appointment - What to Expect",
		entity.TreatmentCosmetic:     "Your Cosmetic Dentistry Appointment",
		entity.TreatmentExam:         "Your Dental Exam Appointment",
		entity.TreatmentEmergency:    "Your Emergency Dental Appointment",
		entity.TreatmentOrthodontics: "Your Orthodontic Consultation",
		entity.TreatmentExtraction:   "Your Tooth Extraction Appointment - Preparation Guide",
	}

	for treatment, subject := range subjects {
		got := emailContentForTreatment(treatment, "Jane Doe", "2025-03-10", "09:30")
		if got.Subject != subject {
			t.Errorf("%s: subject = %q, want %q", treatment, got.Subject, subject)
		}
		if !strings.Contains(got.HTML, "Jane Doe") || !strings.Contains(got.Text, "Jane Doe") {
			t.Errorf("%s: rendered content missing patient name", treatment)
		}
	}
}

func TestUnknownTreatmentFallsBackToExam(t *testing.T) {
	got := emailContentForTreatment(entity.TreatmentType("whitening"), "Jane Doe", "2025-03-10", "09:30")
	if got.Subject != "Your Dental Exam Appointment" {
		t.Fatalf("expected exam fallback, got %q", got.Subject)
	}
}
