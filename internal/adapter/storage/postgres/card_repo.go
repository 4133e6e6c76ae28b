package postgres

import (
	"context"
	"errors"
	"fmt"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CardRepo implements ports.CardRepository.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// Create inserts a new card.
func (r *CardRepo) Create(ctx context.Context, c *domain.Card) error {
	query := `INSERT INTO cards (id, account_id, pin_hash, status, daily_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.AccountID, c.PINHash, c.Status,
		c.DailyLimit, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// GetByAccountID fetches the card linked to an account.
func (r *CardRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Card, error) {
	query := `SELECT id, account_id, pin_hash, status, daily_limit, created_at, updated_at
		FROM cards WHERE account_id = $1`

	c := &domain.Card{}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&c.ID, &c.AccountID, &c.PINHash, &c.Status,
		&c.DailyLimit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card by account: %w", err)
	}
	return c, nil
}

// UpdateStatus changes a card's status (freeze, unfreeze, block).
func (r *CardRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error {
	query := `UPDATE cards SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update card status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card not found: %s", id)
	}
	return nil
}
