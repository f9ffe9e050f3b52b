package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/cache"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
	"github.com/AzmathBegum/finance-tracker/internal/events"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
)

// CreateTransactionInput carries the caller-supplied fields of a new
// transaction. The owner is never taken from input; it always comes from the
// authenticated identity.
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
	Description string
	Date        entity.Date
}

// UpdateTransactionInput is a partial payload: nil fields are left unchanged.
type UpdateTransactionInput struct {
	Amount      *decimal.Decimal
	Type        *entity.TransactionType
	Category    *string
	Description *string
	Date        *entity.Date
}

// TransactionService owns all transaction reads and writes. Every operation
// is scoped to the calling user; writes publish an event and invalidate the
// user's cached insights.
type TransactionService struct {
	transactions repository.TransactionStore
	publisher    *events.Publisher
	insights     *cache.InsightsCache
}

func NewTransactionService(transactions repository.TransactionStore, publisher *events.Publisher, insights *cache.InsightsCache) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		publisher:    publisher,
		insights:     insights,
	}
}

// List returns the user's transactions, newest date first.
func (s *TransactionService) List(ctx context.Context, userID int) ([]*entity.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *TransactionService) Create(ctx context.Context, userID int, input CreateTransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		UserID:      userID,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}
	if tx.Date.IsZero() {
		tx.Date = entity.Today()
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	created, err := s.transactions.Create(ctx, tx)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("Error creating transaction")
		return nil, err
	}

	s.publisher.Publish(ctx, events.ActionCreated, userID, created.ID)
	s.insights.Invalidate(ctx, userID)
	return created, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id int) (*entity.Transaction, error) {
	return s.transactions.GetByID(ctx, userID, id)
}

// Update applies only the supplied fields, re-validates the result and
// persists it under the same ownership scoping as Get.
func (s *TransactionService) Update(ctx context.Context, userID, id int, input UpdateTransactionInput) (*entity.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Type != nil {
		tx.Type = *input.Type
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	updated, err := s.transactions.Update(ctx, tx)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Int("transaction_id", id).Msg("Error updating transaction")
		return nil, err
	}

	s.publisher.Publish(ctx, events.ActionUpdated, userID, id)
	s.insights.Invalidate(ctx, userID)
	return updated, nil
}

// Delete removes the transaction permanently. Deleting a missing or
// foreign-owned id fails with NotFound, so a repeated delete is a clean error
// rather than a crash.
func (s *TransactionService) Delete(ctx context.Context, userID, id int) error {
	if err := s.transactions.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ActionDeleted, userID, id)
	s.insights.Invalidate(ctx, userID)
	return nil
}

func validateTransaction(tx *entity.Transaction) error {
	if tx.Amount.Sign() < 0 {
		return apperr.Validationf("amount must not be negative")
	}
	if !tx.Amount.Equal(tx.Amount.Round(2)) {
		return apperr.Validationf("amount must have at most two decimal places")
	}
	if !tx.Type.Valid() {
		return apperr.Validationf("type must be either income or expense")
	}
	if tx.Category == "" {
		return apperr.Validationf("category is required")
	}
	return nil
}
