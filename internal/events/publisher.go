package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"go.uber.org/zap"
)

const (
	// TopicMapEvents carries route planning events.
	TopicMapEvents = "maps.events"

	// Event types published by this service.
	RoutePlanned = "maps.route.planned"
	RouteFailed  = "maps.route.failed"

	eventSource = "service-maps"
)

// CloudEvent is the envelope all published events share.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// ParseData unmarshals the event payload into the given value.
func (e CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// NewCloudEvent wraps a payload in a CloudEvent envelope.
func NewCloudEvent(eventType string, data interface{}) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: eventSource,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// RoutePlannedEvent is published after a successful planning cycle.
type RoutePlannedEvent struct {
	PlanID          uuid.UUID         `json:"plan_id"`
	Source          string            `json:"source"`
	Destination     string            `json:"destination"`
	VehicleType     route.VehicleType `json:"vehicle_type"`
	AvoidTraffic    bool              `json:"avoid_traffic"`
	RouteFound      bool              `json:"route_found"`
	Fallback        bool              `json:"fallback"`
	DistanceMeters  float64           `json:"distance_meters"`
	DurationSeconds float64           `json:"duration_seconds"`
	OccurredAt      time.Time         `json:"occurred_at"`
}

// RouteFailedEvent is published when a planning cycle signals a failure.
type RouteFailedEvent struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher sends map events to Kafka, fire and forget. A nil Publisher is a
// valid no-op so eventing stays optional.
type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewPublisher creates a Publisher against the given brokers.
func NewPublisher(brokers []string, logger *zap.Logger) *Publisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		Async:        false,
	}
	return &Publisher{writer: writer, logger: logger}
}

// PublishRoutePlanned publishes a RoutePlannedEvent keyed by plan ID.
func (p *Publisher) PublishRoutePlanned(ctx context.Context, evt RoutePlannedEvent) {
	p.publish(ctx, RoutePlanned, evt.PlanID.String(), evt)
}

// PublishRouteFailed publishes a RouteFailedEvent keyed by the source text.
func (p *Publisher) PublishRouteFailed(ctx context.Context, evt RouteFailedEvent) {
	p.publish(ctx, RouteFailed, evt.Source, evt)
}

func (p *Publisher) publish(ctx context.Context, eventType, key string, data interface{}) {
	if p == nil {
		return
	}

	event, err := NewCloudEvent(eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	msg := kafkago.Message{
		Topic: TopicMapEvents,
		Key:   []byte(key),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicMapEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
