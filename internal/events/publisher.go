// Package events publishes transaction lifecycle events to Kafka so that
// downstream consumers (reporting, notifications) can react to writes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// TransactionEvent is the wire envelope for a transaction write.
type TransactionEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	UserID        int       `json:"user_id"`
	TransactionID int       `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher writes transaction events. A nil Publisher or a Publisher without
// a writer silently drops events, which keeps it out of the way in tests and
// in deployments without Kafka.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// Publish emits one event. Publishing is best effort: a broker failure is
// logged and never fails the originating request.
func (p *Publisher) Publish(ctx context.Context, action string, userID, transactionID int) {
	if p == nil || p.writer == nil {
		return
	}

	event := TransactionEvent{
		EventID:       uuid.NewString(),
		Type:          "transaction." + action,
		UserID:        userID,
		TransactionID: transactionID,
		OccurredAt:    time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Error marshalling transaction event")
		return
	}

	// key -> "transaction.created.42", "transaction.deleted.42", ...
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("transaction.%s.%d", action, transactionID)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error().Err(err).Str("action", action).Msg("Error publishing transaction event")
	}
}
