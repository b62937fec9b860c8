// Package transactions manages the transaction ledger screen: the primary
// collection plus the bank, category, and user collections it cross-references.
package transactions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// placeholderLabel stands in for a reference that does not resolve against
// the currently loaded collections.
const placeholderLabel = "Unknown"

// Service owns the transaction collection and its companion collections.
type Service struct {
	*controller.Controller[models.Transaction]

	client interfaces.APIClient

	banks      []models.Bank
	categories []models.Category
	user       *models.User
}

type transactionPayload struct {
	ID          int64           `json:"id,omitempty"`
	UserID      int64           `json:"user_id"`
	CategoryID  int64           `json:"category_id"`
	BankID      int64           `json:"bank_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// NewService creates a transaction service. Every load cycle fetches the
// transactions, banks, categories, and current user concurrently; one slot
// failing does not abort the others.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	s := &Service{client: client}

	s.Controller = controller.New(s.resource(), client,
		controller.WithLogger[models.Transaction](logger),
		controller.WithCompanions[models.Transaction](
			controller.Companion{Name: "banks", Load: s.loadBanks},
			controller.Companion{Name: "categories", Load: s.loadCategories},
			controller.Companion{Name: "user", Load: s.loadUser},
		),
	)
	return s
}

func (s *Service) resource() controller.Resource[models.Transaction] {
	return controller.Resource[models.Transaction]{
		Name:        "transaction",
		ListPath:    "/transaction",
		CreatePath:  "/transaction/add",
		UpdatePath:  func(models.Transaction) string { return "/transaction/update" },
		DeletePath: func(tx models.Transaction) string {
			return fmt.Sprintf("/transaction/delete?transaction_id=%d", tx.ID)
		},
		WrapperKeys: []string{"transactions", "items"},
		Match: func(tx models.Transaction, q string) bool {
			return strings.Contains(strings.ToLower(tx.Description), strings.ToLower(q))
		},
		SeedForm: func(tx models.Transaction) map[string]string {
			return map[string]string{
				"amount":      tx.Amount.String(),
				"type":        string(tx.Type),
				"category_id": strconv.FormatInt(tx.CategoryID, 10),
				"bank_id":     strconv.FormatInt(tx.BankID, 10),
				"description": tx.Description,
				"date":        tx.Date.UTC().Format(time.RFC3339),
			}
		},
		FormDefaults: s.formDefaults,
		BuildPayload: s.buildPayload,
	}
}

// formDefaults seeds a creation form: zero amount, first available
// references, current timestamp.
func (s *Service) formDefaults() map[string]string {
	categoryID := ""
	if cats := s.FormCategories(models.TransactionExpense); len(cats) > 0 && cats[0].ID != nil {
		categoryID = strconv.FormatInt(*cats[0].ID, 10)
	}
	bankID := ""
	if len(s.banks) > 0 {
		bankID = strconv.FormatInt(s.banks[0].ID, 10)
	}
	return map[string]string{
		"amount":      "0",
		"type":        string(models.TransactionExpense),
		"category_id": categoryID,
		"bank_id":     bankID,
		"description": "",
		"date":        time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *Service) buildPayload(fields map[string]string, editing *models.Transaction) (any, error) {
	if s.user == nil || s.user.ID == nil {
		return nil, errors.New("user session not loaded")
	}

	amount, err := decimal.NewFromString(fields["amount"])
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", fields["amount"])
	}
	if amount.IsNegative() {
		return nil, errors.New("amount must not be negative")
	}

	txType := models.TransactionType(fields["type"])
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		return nil, fmt.Errorf("invalid transaction type %q", fields["type"])
	}

	categoryID, err := strconv.ParseInt(fields["category_id"], 10, 64)
	if err != nil {
		return nil, errors.New("a category is required")
	}
	bankID, err := strconv.ParseInt(fields["bank_id"], 10, 64)
	if err != nil {
		return nil, errors.New("a bank account is required")
	}

	date, err := time.Parse(time.RFC3339, fields["date"])
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", fields["date"])
	}

	payload := transactionPayload{
		UserID:      *s.user.ID,
		CategoryID:  categoryID,
		BankID:      bankID,
		Type:        string(txType),
		Amount:      amount,
		Date:        date.UTC().Format(time.RFC3339),
		Description: fields["description"],
	}
	if editing != nil {
		payload.ID = editing.ID
	}
	return payload, nil
}

func (s *Service) loadBanks(ctx context.Context) error {
	raw, err := s.client.Request(ctx, http.MethodGet, "/banks", nil)
	if err != nil {
		s.banks = []models.Bank{}
		return err
	}
	s.banks = controller.DecodeCollection[models.Bank](raw, []string{"banks", "items"})
	return nil
}

func (s *Service) loadCategories(ctx context.Context) error {
	raw, err := s.client.Request(ctx, http.MethodGet, "/categories", nil)
	if err != nil {
		s.categories = []models.Category{}
		return err
	}
	s.categories = controller.DecodeCollection[models.Category](raw, []string{"categories", "items"})
	return nil
}

func (s *Service) loadUser(ctx context.Context) error {
	user, err := zenapi.Do[models.User](ctx, s.client, http.MethodGet, "/user/me", nil)
	if err != nil {
		s.user = nil
		return err
	}
	s.user = &user
	return nil
}

// Banks returns the companion bank collection.
func (s *Service) Banks() []models.Bank {
	return s.banks
}

// Categories returns the companion category collection.
func (s *Service) Categories() []models.Category {
	return s.categories
}

// User returns the current user, or nil when the slot failed to load.
func (s *Service) User() *models.User {
	return s.user
}

// FormCategories returns the categories offered for a transaction of the
// given type. Children share the parent's type filter.
func (s *Service) FormCategories(typ models.TransactionType) []models.Category {
	return models.FilterByType(s.categories, models.CategoryType(typ))
}

// CategoryName resolves a transaction's category reference for display,
// degrading to a placeholder when it does not resolve.
func (s *Service) CategoryName(tx models.Transaction) string {
	for _, cat := range s.categories {
		if cat.ID != nil && *cat.ID == tx.CategoryID {
			return cat.Name
		}
		for _, sub := range cat.SubCategories {
			if sub.ID != nil && *sub.ID == tx.CategoryID {
				return sub.Name
			}
		}
	}
	return placeholderLabel
}

// BankName resolves a transaction's bank reference for display, degrading to
// a placeholder when it does not resolve.
func (s *Service) BankName(tx models.Transaction) string {
	for _, b := range s.banks {
		if b.ID == tx.BankID {
			return b.Name
		}
	}
	return placeholderLabel
}

// MonthlyTotals returns income and expense sums for the month of ref.
func (s *Service) MonthlyTotals(ref time.Time) (income, expense decimal.Decimal) {
	return models.MonthlyTotals(s.Items(), ref)
}
