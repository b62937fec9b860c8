// Package banks manages linked bank accounts
package banks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// Service owns the bank account collection for one screen.
type Service struct {
	*controller.Controller[models.Bank]
}

type bankPayload struct {
	ID          int64              `json:"id,omitempty"`
	Name        string             `json:"name"`
	AccountType models.AccountType `json:"account_type"`
	Balance     decimal.Decimal    `json:"balance"`
}

// NewService creates a bank account service.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	s := &Service{}
	s.Controller = controller.New(resource(), client,
		controller.WithLogger[models.Bank](logger),
	)
	return s
}

func resource() controller.Resource[models.Bank] {
	return controller.Resource[models.Bank]{
		Name:        "bank account",
		ListPath:    "/banks",
		CreatePath:  "/banks/add",
		UpdatePath:  func(models.Bank) string { return "/banks/update" },
		DeletePath:  func(b models.Bank) string { return fmt.Sprintf("/banks/delete?bank_id=%d", b.ID) },
		WrapperKeys: []string{"banks", "items"},
		Match: func(b models.Bank, q string) bool {
			return strings.Contains(strings.ToLower(b.Name), strings.ToLower(q))
		},
		SeedForm: func(b models.Bank) map[string]string {
			return map[string]string{
				"name":         b.Name,
				"balance":      b.Balance.String(),
				"account_type": string(b.AccountType),
			}
		},
		FormDefaults: func() map[string]string {
			return map[string]string{
				"name":         "",
				"balance":      "0",
				"account_type": string(models.AccountChecking),
			}
		},
		BuildPayload: buildPayload,
	}
}

func buildPayload(fields map[string]string, editing *models.Bank) (any, error) {
	name := strings.TrimSpace(fields["name"])
	if name == "" {
		return nil, errors.New("account name is required")
	}

	balance, err := decimal.NewFromString(fields["balance"])
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q", fields["balance"])
	}

	accountType := models.AccountType(fields["account_type"])
	if accountType != models.AccountChecking && accountType != models.AccountSavings {
		return nil, fmt.Errorf("invalid account type %q", fields["account_type"])
	}

	payload := bankPayload{
		Name:        name,
		AccountType: accountType,
		Balance:     balance,
	}
	if editing != nil {
		payload.ID = editing.ID
	}
	return payload, nil
}

// TotalBalance returns the sum of all account balances, recomputed from the
// live collection.
func (s *Service) TotalBalance() decimal.Decimal {
	return models.TotalBalance(s.Items())
}
