// Package kafka publishes money-movement events for downstream consumers
// (notifications, analytics). Publishing is best effort: a broker outage
// never fails the movement that triggered the event.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"aura-bank-core/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const transferCompletedTopic = "transfer_completed"

// Publisher implements ports.EventPublisher on a kafka-go writer.
type Publisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// NewPublisher creates a publisher for the transfer events topic.
func NewPublisher(brokers []string, log zerolog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        transferCompletedTopic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
		},
		log: log.With().Str("component", "kafka_publisher").Logger(),
	}
}

type transferCompletedEvent struct {
	TransactionID       string    `json:"transaction_id"`
	LedgerTransactionID string    `json:"ledger_transaction_id"`
	AccountID           string    `json:"account_id"`
	Kind                string    `json:"kind"`
	Amount              string    `json:"amount"`
	Currency            string    `json:"currency"`
	OccurredAt          time.Time `json:"occurred_at"`
}

// PublishTransferCompleted emits an event for a committed movement. Errors
// are logged and swallowed; the money already moved.
func (p *Publisher) PublishTransferCompleted(ctx context.Context, outcome *ports.TransferOutcome) {
	if outcome == nil || outcome.Transaction == nil {
		return
	}
	t := outcome.Transaction

	event := transferCompletedEvent{
		TransactionID:       t.ID.String(),
		LedgerTransactionID: t.LedgerTransactionID.String(),
		AccountID:           t.AccountID.String(),
		Kind:                string(t.Kind),
		Amount:              t.Amount.String(),
		Currency:            t.Currency,
		OccurredAt:          t.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Msg("encode transfer event")
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(t.AccountID.String()),
		Value: data,
	})
	if err != nil {
		p.log.Error().Err(err).Str("transaction_id", t.ID.String()).Msg("publish transfer event")
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
