package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lumedental/clinic-api/config"
	"github.com/lumedental/clinic-api/internal/domain/entity"

	"github.com/segmentio/kafka-go"
)

// EventPublisher emits appointment-created events so downstream consumers
// (reminder jobs, analytics) can react without coupling to this service.
type EventPublisher struct {
	writer *kafka.Writer
}

func NewEventPublisher(cfg config.KafkaConfig) *EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &EventPublisher{writer: writer}
}

func (p *EventPublisher) PublishAppointmentCreated(ctx context.Context, appointment *entity.Appointment) error {
	value, err := json.Marshal(appointment)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(appointment.ID.String()),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("produce event: %w", err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
