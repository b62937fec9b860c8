// Package categories manages transaction labels, grouped by type tab.
package categories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

const (
	defaultIcon   = "🏷️"
	defaultColour = "#14b8a6"
)

// Service owns the category collection. The screen shows one type tab at a
// time; creation forms inherit the active tab's type.
type Service struct {
	*controller.Controller[models.Category]

	activeTab models.CategoryType
}

type categoryPayload struct {
	Name      string              `json:"name"`
	Type      models.CategoryType `json:"type"`
	IsParent  bool                `json:"is_parent"`
	Colour    string              `json:"colour"`
	Icon      string              `json:"icon"`
	IsDefault bool                `json:"is_default"`
}

// NewService creates a category service with the expense tab active.
func NewService(client interfaces.APIClient, logger *common.Logger) *Service {
	s := &Service{activeTab: models.CategoryExpense}
	s.Controller = controller.New(s.resource(), client,
		controller.WithLogger[models.Category](logger),
	)
	return s
}

// This resource uses path-parameter endpoints, unlike the query-parameter
// conventions of the other resources.
func (s *Service) resource() controller.Resource[models.Category] {
	return controller.Resource[models.Category]{
		Name:        "category",
		ListPath:    "/categories",
		CreatePath:  "/categories/add",
		UpdatePath:  func(c models.Category) string { return fmt.Sprintf("/categories/%d", persistedID(c)) },
		DeletePath:  func(c models.Category) string { return fmt.Sprintf("/categories/%d", persistedID(c)) },
		WrapperKeys: []string{"categories", "items"},
		Match: func(c models.Category, q string) bool {
			return strings.Contains(strings.ToLower(c.Name), strings.ToLower(q))
		},
		SeedForm: func(c models.Category) map[string]string {
			return map[string]string{
				"name":   c.Name,
				"icon":   c.Icon,
				"colour": c.Colour,
			}
		},
		FormDefaults: func() map[string]string {
			return map[string]string{
				"name":   "",
				"icon":   defaultIcon,
				"colour": defaultColour,
			}
		},
		BuildPayload: s.buildPayload,
	}
}

func persistedID(c models.Category) int64 {
	if c.ID != nil {
		return *c.ID
	}
	return 0
}

func (s *Service) buildPayload(fields map[string]string, _ *models.Category) (any, error) {
	name := strings.TrimSpace(fields["name"])
	if name == "" {
		return nil, errors.New("category name is required")
	}

	return categoryPayload{
		Name:      name,
		Type:      s.activeTab,
		IsParent:  true,
		Colour:    fields["colour"],
		Icon:      fields["icon"],
		IsDefault: false,
	}, nil
}

// SetActiveTab switches the visible type tab.
func (s *Service) SetActiveTab(tab models.CategoryType) {
	s.activeTab = tab
}

// ActiveTab returns the visible type tab.
func (s *Service) ActiveTab() models.CategoryType {
	return s.activeTab
}

// Visible returns the categories on the active tab matching the search
// query. Filtering is purely client-side.
func (s *Service) Visible(query string) []models.Category {
	tab := models.FilterByType(s.Items(), s.activeTab)
	if strings.TrimSpace(query) == "" {
		return tab
	}

	matched := make([]models.Category, 0, len(tab))
	for _, c := range tab {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			matched = append(matched, c)
		}
	}
	return matched
}
