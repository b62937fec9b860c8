package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCategoryPersisted(t *testing.T) {
	id := int64(7)
	persisted := Category{ID: &id, Name: "Food"}
	pending := Category{Name: "Draft"}

	if !persisted.Persisted() {
		t.Error("category with id not reported persisted")
	}
	if pending.Persisted() {
		t.Error("category without id reported persisted")
	}
}

func TestCategoryEnsurePendingID(t *testing.T) {
	c := Category{Name: "Draft"}
	c.EnsurePendingID()

	if c.PendingID == uuid.Nil {
		t.Fatal("pending id not assigned")
	}

	first := c.PendingID
	c.EnsurePendingID()
	if c.PendingID != first {
		t.Error("pending id reassigned on second call")
	}

	// Persisted categories never get a pending id.
	id := int64(3)
	p := Category{ID: &id, Name: "Food"}
	p.EnsurePendingID()
	if p.PendingID != uuid.Nil {
		t.Error("persisted category assigned a pending id")
	}
}

func TestCategoryPendingIDNotSerialized(t *testing.T) {
	c := Category{Name: "Draft", Type: CategoryExpense, Colour: "#14b8a6", Icon: "tag"}
	c.EnsurePendingID()

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), c.PendingID.String()) {
		t.Error("pending id leaked into JSON payload")
	}
}

func TestFilterByType(t *testing.T) {
	cats := []Category{
		{Name: "Salary", Type: CategoryIncome},
		{Name: "Food", Type: CategoryExpense, SubCategories: []Category{{Name: "Groceries", Type: CategoryExpense}}},
		{Name: "Savings", Type: CategoryTransfer},
		{Name: "Rent", Type: CategoryExpense},
	}

	expense := FilterByType(cats, CategoryExpense)
	if len(expense) != 2 {
		t.Fatalf("got %d expense categories, want 2", len(expense))
	}
	if expense[0].Name != "Food" || expense[1].Name != "Rent" {
		t.Errorf("expense categories = %v", expense)
	}
	// Sub-categories travel with the parent.
	if len(expense[0].SubCategories) != 1 {
		t.Error("sub-categories lost in filtering")
	}
}
