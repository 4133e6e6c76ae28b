package service

import (
	"context"
	"fmt"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CardServiceImpl implements ports.CardService. One card per account; the
// card's PIN doubles as the ATM-style login credential.
type CardServiceImpl struct {
	cardRepo    ports.CardRepository
	accountRepo ports.AccountRepository
	pins        ports.PINService
	tokens      ports.TokenService
	log         zerolog.Logger
}

// NewCardService creates a new CardServiceImpl.
func NewCardService(
	cardRepo ports.CardRepository,
	accountRepo ports.AccountRepository,
	pins ports.PINService,
	tokens ports.TokenService,
	log zerolog.Logger,
) *CardServiceImpl {
	return &CardServiceImpl{
		cardRepo:    cardRepo,
		accountRepo: accountRepo,
		pins:        pins,
		tokens:      tokens,
		log:         log,
	}
}

// IssueCard creates an active card for the account. A zero daily limit means
// unrestricted spending.
func (s *CardServiceImpl) IssueCard(ctx context.Context, accountID uuid.UUID, pin string, dailyLimit decimal.Decimal) (*domain.Card, error) {
	if dailyLimit.IsNegative() {
		return nil, apperror.Validation("daily limit must not be negative")
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	existing, err := s.cardRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check existing card: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("account already has a card")
	}

	hash, err := s.pins.Hash(pin)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	now := time.Now().UTC()
	card := &domain.Card{
		ID:         uuid.New(),
		AccountID:  accountID,
		PINHash:    hash,
		Status:     domain.CardStatusActive,
		DailyLimit: dailyLimit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create card: %w", err))
	}

	s.log.Info().
		Str("card_id", card.ID.String()).
		Str("account_id", accountID.String()).
		Str("daily_limit", dailyLimit.String()).
		Msg("card issued")

	return card, nil
}

// SetCardStatus freezes, unfreezes or blocks a card.
func (s *CardServiceImpl) SetCardStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus) error {
	switch status {
	case domain.CardStatusActive, domain.CardStatusFrozen, domain.CardStatusBlocked:
	default:
		return apperror.Validation(fmt.Sprintf("unknown card status %q", status))
	}

	if err := s.cardRepo.UpdateStatus(ctx, cardID, status); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update card status: %w", err))
	}

	s.log.Info().
		Str("card_id", cardID.String()).
		Str("status", string(status)).
		Msg("card status changed")

	return nil
}

// Authenticate verifies the account's card PIN and issues a session token
// for the account's owner. Blocked cards cannot log in; frozen cards can,
// so the owner can unfreeze them.
func (s *CardServiceImpl) Authenticate(ctx context.Context, accountID uuid.UUID, pin string) (string, time.Time, error) {
	card, err := s.cardRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("get card: %w", err))
	}
	if card == nil || card.Status == domain.CardStatusBlocked {
		return "", time.Time{}, apperror.ErrInvalidPIN()
	}

	ok, err := s.pins.Verify(pin, card.PINHash)
	if err != nil {
		return "", time.Time{}, apperror.ErrInvalidPIN()
	}
	if !ok {
		s.log.Warn().Str("account_id", accountID.String()).Msg("failed PIN attempt")
		return "", time.Time{}, apperror.ErrInvalidPIN()
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return "", time.Time{}, apperror.ErrNotFound("account")
	}

	token, expiresAt, err := s.tokens.Generate(account.UserID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiresAt, nil
}
