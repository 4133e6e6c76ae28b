package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
)

// replayOutcome reconstructs a previously returned outcome from a stored
// idempotency record and marks it as a replay.
func replayOutcome(record *domain.IdempotencyRecord) (*ports.TransferOutcome, error) {
	outcome := &ports.TransferOutcome{}
	if err := json.Unmarshal(record.Response, outcome); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached outcome: %w", err))
	}
	outcome.Replayed = true
	outcome.OriginalTimestamp = record.CreatedAt
	return outcome, nil
}

// buildIdempotencyRecord freezes an outcome into the form stored by both
// idempotency layers.
func buildIdempotencyRecord(key string, outcome *ports.TransferOutcome, at time.Time) (*domain.IdempotencyRecord, error) {
	respJSON, err := json.Marshal(outcome)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	return &domain.IdempotencyRecord{
		Key:        key,
		StatusCode: http.StatusCreated,
		Response:   respJSON,
		CreatedAt:  at,
	}, nil
}
