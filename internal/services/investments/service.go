// Package investments manages the portfolio holdings screen.
package investments

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

// Service owns the investment collection.
type Service struct {
	*controller.Controller[models.Investment]
}

type investmentPayload struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	ChangePercent  decimal.Decimal `json:"changePercent"`
}

// NewService creates an investment service.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	s := &Service{}
	s.Controller = controller.New(resource(), client,
		controller.WithLogger[models.Investment](logger),
	)
	return s
}

func resource() controller.Resource[models.Investment] {
	return controller.Resource[models.Investment]{
		Name:       "investment",
		ListPath:   "/investment",
		CreatePath: "/investment/add",
		UpdatePath: func(models.Investment) string { return "/investment/update" },
		DeletePath: func(inv models.Investment) string {
			return fmt.Sprintf("/investment/delete?investment_id=%s", inv.ID)
		},
		WrapperKeys: []string{"investments", "items"},
		Match: func(inv models.Investment, q string) bool {
			return strings.Contains(strings.ToLower(inv.Name), strings.ToLower(q))
		},
		SeedForm: func(inv models.Investment) map[string]string {
			return map[string]string{
				"name":     inv.Name,
				"invested": inv.InvestedAmount.String(),
				"current":  inv.CurrentValue.String(),
			}
		},
		FormDefaults: func() map[string]string {
			return map[string]string{
				"name":     "",
				"invested": "0",
				"current":  "0",
			}
		},
		BuildPayload: buildPayload,
	}
}

func buildPayload(fields map[string]string, editing *models.Investment) (any, error) {
	name := strings.TrimSpace(fields["name"])
	if name == "" {
		return nil, errors.New("investment name is required")
	}

	invested, err := decimal.NewFromString(fields["invested"])
	if err != nil {
		return nil, fmt.Errorf("invalid invested amount %q", fields["invested"])
	}
	current, err := decimal.NewFromString(fields["current"])
	if err != nil {
		return nil, fmt.Errorf("invalid current value %q", fields["current"])
	}

	payload := investmentPayload{
		Name:           name,
		InvestedAmount: invested,
		CurrentValue:   current,
		ChangePercent:  models.ComputeChangePercent(invested, current).Round(2),
	}
	if editing != nil {
		payload.ID = editing.ID
	}
	return payload, nil
}

// PortfolioTotals returns the summed current value, summed invested amount,
// and the gain across the loaded holdings.
func (s *Service) PortfolioTotals() (value, invested, gain decimal.Decimal) {
	return models.PortfolioTotals(s.Items())
}
