package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
)

func newTransactionService() *TransactionService {
	return NewTransactionService(repository.NewMemoryTransactionStore(), nil, nil)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateRoundTripsAllFields(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	date := entity.NewDate(2024, time.February, 10)
	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount:      amount("42.50"),
		Type:        entity.TypeExpense,
		Category:    "food",
		Description: "groceries",
		Date:        date,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1, created.UserID)

	got, err := svc.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(amount("42.50")))
	assert.Equal(t, entity.TypeExpense, got.Type)
	assert.Equal(t, "food", got.Category)
	assert.Equal(t, "groceries", got.Description)
	assert.Equal(t, date.String(), got.Date.String())
}

func TestCreateDefaultsDateToToday(t *testing.T) {
	svc := newTransactionService()

	created, err := svc.Create(context.Background(), 1, CreateTransactionInput{
		Amount:   amount("5.00"),
		Type:     entity.TypeIncome,
		Category: "salary",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Today().String(), created.Date.String())
}

func TestCreateValidation(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateTransactionInput
	}{
		{"negative amount", CreateTransactionInput{Amount: amount("-1.00"), Type: entity.TypeExpense, Category: "food"}},
		{"too many decimals", CreateTransactionInput{Amount: amount("1.005"), Type: entity.TypeExpense, Category: "food"}},
		{"bad type", CreateTransactionInput{Amount: amount("1.00"), Type: "transfer", Category: "food"}},
		{"missing type", CreateTransactionInput{Amount: amount("1.00"), Category: "food"}},
		{"empty category", CreateTransactionInput{Amount: amount("1.00"), Type: entity.TypeExpense}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tt.input)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestOwnershipScoping(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount: amount("10.00"), Type: entity.TypeExpense, Category: "food",
	})
	require.NoError(t, err)

	// Another user must see the transaction as missing, not forbidden.
	_, err = svc.Get(ctx, 2, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	cat := "hacked"
	_, err = svc.Update(ctx, 2, created.ID, UpdateTransactionInput{Category: &cat})
	assert.True(t, apperr.IsNotFound(err))

	err = svc.Delete(ctx, 2, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	// The owner still sees the original record untouched.
	got, err := svc.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "food", got.Category)
}

func TestListOrderedByDateDescThenIDDesc(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	mk := func(day int, category string) {
		_, err := svc.Create(ctx, 1, CreateTransactionInput{
			Amount:   amount("1.00"),
			Type:     entity.TypeExpense,
			Category: category,
			Date:     entity.NewDate(2024, time.January, day),
		})
		require.NoError(t, err)
	}
	mk(10, "first")
	mk(20, "second")
	mk(10, "third") // same date as "first", created later

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "second", list[0].Category)
	assert.Equal(t, "third", list[1].Category) // newer id wins the date tie
	assert.Equal(t, "first", list[2].Category)
}

func TestListOnlyOwnTransactions(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateTransactionInput{Amount: amount("1.00"), Type: entity.TypeExpense, Category: "mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, CreateTransactionInput{Amount: amount("2.00"), Type: entity.TypeExpense, Category: "theirs"})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Category)
}

func TestUpdatePreservesUnsuppliedFields(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	date := entity.NewDate(2024, time.March, 1)
	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount:      amount("100.00"),
		Type:        entity.TypeExpense,
		Category:    "food",
		Description: "dinner",
		Date:        date,
	})
	require.NoError(t, err)

	newAmount := amount("75.25")
	updated, err := svc.Update(ctx, 1, created.ID, UpdateTransactionInput{Amount: &newAmount})
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(newAmount))
	assert.Equal(t, entity.TypeExpense, updated.Type)
	assert.Equal(t, "food", updated.Category)
	assert.Equal(t, "dinner", updated.Description)
	assert.Equal(t, date.String(), updated.Date.String())
}

func TestUpdateRevalidates(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount: amount("10.00"), Type: entity.TypeExpense, Category: "food",
	})
	require.NoError(t, err)

	bad := amount("-5.00")
	_, err = svc.Update(ctx, 1, created.ID, UpdateTransactionInput{Amount: &bad})
	assert.True(t, apperr.IsValidation(err))

	empty := ""
	_, err = svc.Update(ctx, 1, created.ID, UpdateTransactionInput{Category: &empty})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateCanClearDescription(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount: amount("10.00"), Type: entity.TypeExpense, Category: "food", Description: "dinner",
	})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update(ctx, 1, created.ID, UpdateTransactionInput{Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
}

func TestDeleteIsPermanentAndRepeatableFailure(t *testing.T) {
	svc := newTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateTransactionInput{
		Amount: amount("10.00"), Type: entity.TypeExpense, Category: "food",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, created.ID))

	_, err = svc.Get(ctx, 1, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	err = svc.Delete(ctx, 1, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
