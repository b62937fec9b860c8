// Package loans manages the debt obligations screen.
package loans

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// Service owns the loan collection.
type Service struct {
	*controller.Controller[models.Loan]
}

type loanPayload struct {
	ID                  string          `json:"id,omitempty"`
	Name                string          `json:"name"`
	EMI                 decimal.Decimal `json:"emi"`
	RemainingBalance    decimal.Decimal `json:"remainingBalance"`
	InterestRate        decimal.Decimal `json:"interestRate"`
	TotalDurationMonths int             `json:"totalDurationMonths"`
	PaidMonths          int             `json:"paidMonths"`
}

// NewService creates a loan service.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	s := &Service{}
	s.Controller = controller.New(resource(), client,
		controller.WithLogger[models.Loan](logger),
	)
	return s
}

func resource() controller.Resource[models.Loan] {
	return controller.Resource[models.Loan]{
		Name:       "loan",
		ListPath:   "/loan",
		CreatePath: "/loan/add",
		UpdatePath: func(models.Loan) string { return "/loan/update" },
		DeletePath: func(l models.Loan) string {
			return fmt.Sprintf("/loan/delete?loan_id=%s", l.ID)
		},
		WrapperKeys: []string{"loans", "items"},
		Match: func(l models.Loan, q string) bool {
			return strings.Contains(strings.ToLower(l.Name), strings.ToLower(q))
		},
		SeedForm: func(l models.Loan) map[string]string {
			return map[string]string{
				"name":         l.Name,
				"emi":          l.EMI.String(),
				"balance":      l.RemainingBalance.String(),
				"rate":         l.InterestRate.String(),
				"total_months": strconv.Itoa(l.TotalDurationMonths),
				"paid_months":  strconv.Itoa(l.PaidMonths),
			}
		},
		FormDefaults: func() map[string]string {
			return map[string]string{
				"name":         "",
				"emi":          "0",
				"balance":      "0",
				"rate":         "0",
				"total_months": "12",
				"paid_months":  "0",
			}
		},
		BuildPayload: buildPayload,
	}
}

func buildPayload(fields map[string]string, editing *models.Loan) (any, error) {
	name := strings.TrimSpace(fields["name"])
	if name == "" {
		return nil, errors.New("loan name is required")
	}

	emi, err := decimal.NewFromString(fields["emi"])
	if err != nil {
		return nil, fmt.Errorf("invalid payment amount %q", fields["emi"])
	}
	balance, err := decimal.NewFromString(fields["balance"])
	if err != nil {
		return nil, fmt.Errorf("invalid remaining balance %q", fields["balance"])
	}
	rate, err := decimal.NewFromString(fields["rate"])
	if err != nil {
		return nil, fmt.Errorf("invalid interest rate %q", fields["rate"])
	}
	totalMonths, err := strconv.Atoi(fields["total_months"])
	if err != nil || totalMonths < 0 {
		return nil, fmt.Errorf("invalid total duration %q", fields["total_months"])
	}
	paidMonths, err := strconv.Atoi(fields["paid_months"])
	if err != nil || paidMonths < 0 {
		return nil, fmt.Errorf("invalid paid months %q", fields["paid_months"])
	}

	payload := loanPayload{
		Name:                name,
		EMI:                 emi,
		RemainingBalance:    balance,
		InterestRate:        rate,
		TotalDurationMonths: totalMonths,
		PaidMonths:          paidMonths,
	}
	if editing != nil {
		payload.ID = editing.ID
	}
	return payload, nil
}

// DebtTotals returns the summed remaining balance and summed periodic
// payment across the loaded loans.
func (s *Service) DebtTotals() (debt, emi decimal.Decimal) {
	return models.DebtTotals(s.Items())
}
