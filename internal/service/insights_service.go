package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AzmathBegum/finance-tracker/internal/cache"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
)

// Insights is a rule-based aggregate summary of a user's transactions. The
// text is produced from fixed templates; no external inference is involved.
type Insights struct {
	Summary    string `json:"summary"`
	Suggestion string `json:"suggestion"`
}

const (
	noDataSummary    = "No transactions found."
	noDataSuggestion = "Start adding your income and expenses to get insights."
	positiveAdvice   = "You’re saving well!"
	negativeAdvice   = "Try reducing unnecessary expenses."
)

// InsightsService computes summaries from the transaction store. It never
// mutates store state; the only side channel is the optional Redis cache.
type InsightsService struct {
	transactions repository.TransactionStore
	insights     *cache.InsightsCache
}

func NewInsightsService(transactions repository.TransactionStore, insights *cache.InsightsCache) *InsightsService {
	return &InsightsService{transactions: transactions, insights: insights}
}

// Summarize totals income and expenses and names the category of the single
// highest-amount transaction. When several transactions share the maximum
// amount, the one appearing first in list order (newest date, then newest id)
// wins.
func (s *InsightsService) Summarize(ctx context.Context, userID int) (*Insights, error) {
	result := &Insights{}
	if s.insights.Get(ctx, userID, result) {
		return result, nil
	}

	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("Error loading transactions for insights")
		return nil, err
	}

	if len(transactions) == 0 {
		return &Insights{Summary: noDataSummary, Suggestion: noDataSuggestion}, nil
	}

	income := decimal.Zero
	expenses := decimal.Zero
	top := transactions[0]
	for _, tx := range transactions {
		switch tx.Type {
		case entity.TypeIncome:
			income = income.Add(tx.Amount)
		case entity.TypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
		if tx.Amount.GreaterThan(top.Amount) {
			top = tx
		}
	}

	balance := income.Sub(expenses)
	advice := negativeAdvice
	if balance.Sign() > 0 {
		advice = positiveAdvice
	}

	result = &Insights{
		Summary:    fmt.Sprintf("Your total income is ₹%s and expenses are ₹%s.", income.StringFixed(2), expenses.StringFixed(2)),
		Suggestion: fmt.Sprintf("Most spending is in %s. %s", top.Category, advice),
	}
	s.insights.Set(ctx, userID, result)
	return result, nil
}
