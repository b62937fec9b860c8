// Package report builds the dashboard summary and report charts from the
// bank and transaction collections.
package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// Service loads the two collections the dashboard cross-references.
// Read-only: the dashboard issues no mutations.
type Service struct {
	client interfaces.APIClient
	logger *common.Logger

	banks        []models.Bank
	transactions []models.Transaction
	lastError    string
}

// Summary is the set of dashboard aggregates, pure functions of the loaded
// collections.
type Summary struct {
	TotalBalance   decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	Accounts       int
	Transactions   int
}

// NewService creates a report service.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	return &Service{
		client:       client,
		logger:       logger,
		banks:        []models.Bank{},
		transactions: []models.Transaction{},
	}
}

// Load fetches banks and transactions concurrently with all-settle
// semantics: one slot failing leaves the other populated and surfaces a
// single message via Err.
func (s *Service) Load(ctx context.Context) {
	s.lastError = ""

	var g errgroup.Group

	g.Go(func() error {
		raw, err := s.client.Request(ctx, http.MethodGet, "/banks", nil)
		if err != nil {
			s.banks = []models.Bank{}
			return fmt.Errorf("banks: %s", err.Error())
		}
		s.banks = controller.DecodeCollection[models.Bank](raw, []string{"banks", "items"})
		return nil
	})

	g.Go(func() error {
		raw, err := s.client.Request(ctx, http.MethodGet, "/transaction", nil)
		if err != nil {
			s.transactions = []models.Transaction{}
			return fmt.Errorf("transactions: %s", err.Error())
		}
		s.transactions = controller.DecodeCollection[models.Transaction](raw, []string{"transactions", "items"})
		return nil
	})

	if err := g.Wait(); err != nil {
		s.lastError = err.Error()
		s.logger.Warn().Str("error", s.lastError).Msg("Dashboard load degraded")
	}
}

// Err returns the surfaced error banner, or "" when the last load succeeded.
func (s *Service) Err() string {
	return s.lastError
}

// Banks returns the loaded bank collection.
func (s *Service) Banks() []models.Bank {
	return s.banks
}

// Transactions returns the loaded transaction collection.
func (s *Service) Transactions() []models.Transaction {
	return s.transactions
}

// Summarize computes the dashboard aggregates for the month of ref.
func (s *Service) Summarize(ref time.Time) Summary {
	income, expense := models.MonthlyTotals(s.transactions, ref)
	return Summary{
		TotalBalance:   models.TotalBalance(s.banks),
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		Accounts:       len(s.banks),
		Transactions:   len(s.transactions),
	}
}

// MonthlyCashflow buckets income and expense per month for the trailing
// months period ending at ref, oldest first.
func (s *Service) MonthlyCashflow(ref time.Time, months int) []CashflowPoint {
	if months <= 0 {
		return nil
	}

	points := make([]CashflowPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		income, expense := models.MonthlyTotals(s.transactions, month)
		points = append(points, CashflowPoint{
			Month:   month,
			Income:  income,
			Expense: expense,
		})
	}
	return points
}

// CashflowPoint is one month's income and expense totals.
type CashflowPoint struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}
