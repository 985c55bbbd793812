package service

import (
	"context"
	"sync"
	"time"

	"github.com/lumedental/clinic-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notifier fans out best-effort notifications after a booking is persisted.
// Each channel is independent and unordered; a failure is logged and
// swallowed, it never reaches the booking client. Channels whose
// configuration is absent are nil and skipped.
type Notifier struct {
	log     *logrus.Logger
	webhook *WebhookDispatcher
	mailer  Mailer
	events  *EventPublisher
	timeout time.Duration

	wg sync.WaitGroup
}

func NewNotifier(log *logrus.Logger, webhook *WebhookDispatcher, mailer Mailer, events *EventPublisher, timeout time.Duration) *Notifier {
	return &Notifier{
		log:     log,
		webhook: webhook,
		mailer:  mailer,
		events:  events,
		timeout: timeout,
	}
}

// DispatchAsync runs the fan-out in a detached goroutine so the booking
// response never waits on notification outcomes. The goroutine carries its
// own bounded context, independent of the request's.
func (n *Notifier) DispatchAsync(appointment *entity.Appointment) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		n.Dispatch(ctx, appointment)
	}()
}

// Dispatch runs every configured channel, logging failures.
func (n *Notifier) Dispatch(ctx context.Context, appointment *entity.Appointment) {
	if n.webhook != nil {
		if err := n.webhook.Send(ctx, appointment); err != nil {
			n.log.Warnf("Webhook dispatch failed for appointment %s: %+v", appointment.ID, err)
		} else {
			n.log.Infof("Webhook dispatched for appointment %s", appointment.ID)
		}
	} else {
		n.log.Debug("Webhook URL not configured, skipping webhook dispatch")
	}

	if n.mailer != nil {
		content := emailContentForTreatment(
			appointment.TreatmentType,
			appointment.PatientName(),
			appointment.AppointmentDate,
			appointment.AppointmentTime,
		)
		email := Email{
			To:      appointment.Email,
			Subject: content.Subject,
			HTML:    content.HTML,
			Text:    content.Text,
		}
		if err := n.mailer.Send(ctx, email); err != nil {
			n.log.Warnf("Educational email failed for appointment %s: %+v", appointment.ID, err)
		} else {
			n.log.Infof("Educational email sent to %s for %s", appointment.Email, appointment.TreatmentType)
		}
	} else {
		n.log.Debug("Mailer not configured, skipping educational email")
	}

	if n.events != nil {
		if err := n.events.PublishAppointmentCreated(ctx, appointment); err != nil {
			n.log.Warnf("Event publish failed for appointment %s: %+v", appointment.ID, err)
		}
	}
}

// Wait blocks until in-flight dispatches finish. Called during shutdown.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
