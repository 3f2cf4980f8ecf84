package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ntmai/folio-api/internal/config"
	"github.com/segmentio/kafka-go"
)

const (
	TopicProfileEvents = "profile.events"
)

type ProfileEventType string

const (
	ProfileEventTypeBioUpserted       ProfileEventType = "bio.upserted"
	ProfileEventTypeProjectCreated    ProfileEventType = "project.created"
	ProfileEventTypeProjectUpdated    ProfileEventType = "project.updated"
	ProfileEventTypeProjectDeleted    ProfileEventType = "project.deleted"
	ProfileEventTypeExperienceCreated ProfileEventType = "experience.created"
	ProfileEventTypeExperienceUpdated ProfileEventType = "experience.updated"
	ProfileEventTypeExperienceDeleted ProfileEventType = "experience.deleted"
)

type ProfileEventPayload struct {
	EventType  ProfileEventType `json:"event_type"`
	EntityID   uuid.UUID        `json:"entity_id"`
	OwnerID    uuid.UUID        `json:"owner_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Publisher is what the use cases depend on; KafkaProducerClient is the
// production implementation.
type Publisher interface {
	PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'profile.events'
	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	}

	if err := c.ProfileEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write profile event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
