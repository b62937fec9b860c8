package models

import "github.com/google/uuid"

// CategoryType classifies a category and, transitively, its children.
type CategoryType string

const (
	CategoryIncome   CategoryType = "income"
	CategoryExpense  CategoryType = "expense"
	CategoryTransfer CategoryType = "transfer"
)

// Category is a transaction label, optionally nested one level deep.
// ID is nil until the backend has persisted the record; locally created
// categories carry a PendingID for list identity until the post-create
// reload replaces them with the persisted row.
type Category struct {
	ID            *int64     `json:"id,omitempty"`
	Name          string     `json:"name"`
	Type          CategoryType `json:"type"`
	IsParent      bool       `json:"is_parent"`
	ParentID      *int64     `json:"parent_id,omitempty"`
	IsDefault     bool       `json:"is_default"`
	Colour        string     `json:"colour"`
	Icon          string     `json:"icon"`
	SubCategories []Category `json:"sub_categories,omitempty"`

	// PendingID identifies a not-yet-persisted record locally. Never sent
	// over the wire.
	PendingID uuid.UUID `json:"-"`
}

// Persisted reports whether the backend has assigned this category an id.
func (c Category) Persisted() bool {
	return c.ID != nil
}

// EnsurePendingID assigns a local identity to an unpersisted category.
func (c *Category) EnsurePendingID() {
	if c.ID == nil && c.PendingID == uuid.Nil {
		c.PendingID = uuid.New()
	}
}

// FilterByType returns the categories matching the given type. Children share
// the parent's type filter, so a matching parent is returned with its
// sub-categories intact.
func FilterByType(cats []Category, typ CategoryType) []Category {
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}
