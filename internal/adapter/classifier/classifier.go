// Package classifier calls the expense categorization sidecar, guarded by a
// circuit breaker with a local keyword heuristic as fallback.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/pkg/breaker"

	"github.com/rs/zerolog"
)

// Client implements ports.Classifier against the ML sidecar's HTTP API.
type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *breaker.Breaker
	log     zerolog.Logger
}

// New creates a classifier client. Per-call timeouts are enforced by the
// breaker, not the http.Client.
func New(baseURL string, b *breaker.Breaker, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		breaker: b,
		log:     log.With().Str("component", "classifier").Logger(),
	}
}

type categorizeRequest struct {
	Description string `json:"description"`
}

// Categorize asks the sidecar for a category. Any failure, a rejected call
// on an open breaker or the call itself erroring, degrades to the keyword
// fallback, so transaction recording never blocks on the model. Failed calls
// still count against the breaker.
func (c *Client) Categorize(ctx context.Context, description string) (*domain.Category, error) {
	v, err := c.breaker.DoWithFallback(ctx,
		func(ctx context.Context) (any, error) {
			return c.call(ctx, description)
		},
		func(ctx context.Context) (any, error) {
			c.log.Warn().Str("description", description).Msg("classifier unavailable, using keyword fallback")
			return FallbackCategory(description), nil
		},
	)
	if err != nil {
		c.log.Warn().Err(err).Str("description", description).Msg("classifier call failed, using keyword fallback")
		return FallbackCategory(description), nil
	}
	return v.(*domain.Category), nil
}

func (c *Client) call(ctx context.Context, description string) (*domain.Category, error) {
	body, err := json.Marshal(categorizeRequest{Description: description})
	if err != nil {
		return nil, fmt.Errorf("encode categorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/categorize_expense", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build categorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	cat := &domain.Category{}
	if err := json.NewDecoder(resp.Body).Decode(cat); err != nil {
		return nil, fmt.Errorf("decode categorize response: %w", err)
	}
	return cat, nil
}
