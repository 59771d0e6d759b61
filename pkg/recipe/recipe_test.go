package recipe

import (
	"math"
	"testing"
	"time"

	"github.com/pastrylab/equilibra/pkg/errors"
)

func testRecipe(t *testing.T) *Recipe {
	t.Helper()
	r, err := New("ganache 65%", WithCategory("ganache de moldeo"))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return r
}

func TestNew(t *testing.T) {
	r, err := New("sorbete de mango",
		WithCategory("sorbete de fruta"),
		WithAuthor("mjf"),
		WithOrigin("obrador central"),
		WithNotes("versión de verano"),
		WithStatus(StatusTest),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if r.Name != "sorbete de mango" {
		t.Errorf("Name = %q, want %q", r.Name, "sorbete de mango")
	}
	if r.Category != "sorbete de fruta" {
		t.Errorf("Category = %q, want %q", r.Category, "sorbete de fruta")
	}
	if r.Status != StatusTest {
		t.Errorf("Status = %v, want %v", r.Status, StatusTest)
	}
	if r.Author != "mjf" || r.Origin != "obrador central" {
		t.Errorf("Author/Origin = %q/%q, want mjf/obrador central", r.Author, r.Origin)
	}
	if r.Created.IsZero() || r.Updated.IsZero() {
		t.Error("New() did not set timestamps")
	}
	if len(r.Items) != 0 {
		t.Errorf("New() items = %d, want 0", len(r.Items))
	}
}

func TestNewDefaultsToDraft(t *testing.T) {
	r, err := New("mousse de chocolate")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if r.Status != StatusDraft {
		t.Errorf("Status = %v, want %v", r.Status, StatusDraft)
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := New(name)
		if err == nil {
			t.Fatalf("New(%q) expected error", name)
		}
		if !errors.HasCode(err, errors.ErrCodeInvalidRecipe) {
			t.Errorf("New(%q) error code = %v, want %v", name, errors.CodeOf(err), errors.ErrCodeInvalidRecipe)
		}
	}
}

func TestNewRejectsUnknownStatus(t *testing.T) {
	_, err := New("ganache", WithStatus(Status("published")))
	if err == nil {
		t.Fatal("New() expected error for unknown status")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidRecipe) {
		t.Errorf("New() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidRecipe)
	}
}

func TestAddItem(t *testing.T) {
	r := testRecipe(t)

	if err := r.AddItem("nata 35% MG", 305); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if err := r.AddItem("chocolate negro 65%", 420); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if len(r.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(r.Items))
	}
	if r.Items[0].Ingredient != "nata 35% MG" || r.Items[0].Quantity != 305 {
		t.Errorf("Items[0] = %+v, want nata 35%% MG / 305", r.Items[0])
	}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	r := testRecipe(t)

	if err := r.AddItem("sacarosa", 100); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if err := r.AddItem("sacarosa", 50); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if len(r.Items) != 1 {
		t.Fatalf("Items = %d after merging, want 1", len(r.Items))
	}
	if r.Items[0].Quantity != 150 {
		t.Errorf("merged quantity = %g, want 150", r.Items[0].Quantity)
	}
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	r := testRecipe(t)

	for _, q := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		err := r.AddItem("sacarosa", q)
		if err == nil {
			t.Fatalf("AddItem(%g) expected error", q)
		}
		if !errors.HasCode(err, errors.ErrCodeInvalidQuantity) {
			t.Errorf("AddItem(%g) error code = %v, want %v", q, errors.CodeOf(err), errors.ErrCodeInvalidQuantity)
		}
	}
	if len(r.Items) != 0 {
		t.Errorf("Items = %d after rejected additions, want 0", len(r.Items))
	}
}

func TestAddItemRejectsEmptyIngredient(t *testing.T) {
	r := testRecipe(t)
	if err := r.AddItem("  ", 100); err == nil {
		t.Fatal("AddItem() expected error for empty ingredient")
	}
}

func TestAddItemRefreshesUpdated(t *testing.T) {
	r := testRecipe(t)
	past := time.Now().UTC().Add(-time.Hour)
	r.Updated = past

	if err := r.AddItem("sacarosa", 100); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if !r.Updated.After(past) {
		t.Errorf("Updated = %v, want after %v", r.Updated, past)
	}
}

func TestRemoveItem(t *testing.T) {
	r := testRecipe(t)
	for _, it := range []Item{{"nata 35% MG", 305}, {"sacarosa", 100}, {"agua", 50}} {
		if err := r.AddItem(it.Ingredient, it.Quantity); err != nil {
			t.Fatalf("AddItem() unexpected error: %v", err)
		}
	}

	if err := r.RemoveItem("sacarosa"); err != nil {
		t.Fatalf("RemoveItem() unexpected error: %v", err)
	}
	if len(r.Items) != 2 {
		t.Fatalf("Items = %d after removal, want 2", len(r.Items))
	}
	if r.Items[0].Ingredient != "nata 35% MG" || r.Items[1].Ingredient != "agua" {
		t.Errorf("remaining items = %q, %q; want nata 35%% MG, agua",
			r.Items[0].Ingredient, r.Items[1].Ingredient)
	}

	err := r.RemoveItem("sacarosa")
	if err == nil {
		t.Fatal("RemoveItem() expected error for absent ingredient")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("RemoveItem() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestSetQuantity(t *testing.T) {
	r := testRecipe(t)
	if err := r.AddItem("sacarosa", 100); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if err := r.SetQuantity("sacarosa", 80); err != nil {
		t.Fatalf("SetQuantity() unexpected error: %v", err)
	}
	if r.Items[0].Quantity != 80 {
		t.Errorf("quantity = %g after SetQuantity, want 80", r.Items[0].Quantity)
	}

	if err := r.SetQuantity("sacarosa", -1); err == nil {
		t.Fatal("SetQuantity() expected error for negative quantity")
	}

	err := r.SetQuantity("agua", 10)
	if err == nil {
		t.Fatal("SetQuantity() expected error for absent ingredient")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("SetQuantity() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestRename(t *testing.T) {
	r := testRecipe(t)

	if err := r.Rename("ganache 70%"); err != nil {
		t.Fatalf("Rename() unexpected error: %v", err)
	}
	if r.Name != "ganache 70%" {
		t.Errorf("Name = %q, want %q", r.Name, "ganache 70%")
	}

	if err := r.Rename(""); err == nil {
		t.Fatal("Rename() expected error for empty name")
	}
}

func TestSetCategory(t *testing.T) {
	r := testRecipe(t)

	r.SetCategory("mousse de chocolate")
	if r.Category != "mousse de chocolate" {
		t.Errorf("Category = %q, want %q", r.Category, "mousse de chocolate")
	}

	r.SetCategory("")
	if r.Category != "" {
		t.Errorf("Category = %q after clearing, want empty", r.Category)
	}
}

func TestSetStatus(t *testing.T) {
	r := testRecipe(t)

	if err := r.SetStatus(StatusConfirmed); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}
	if r.Status != StatusConfirmed {
		t.Errorf("Status = %v, want %v", r.Status, StatusConfirmed)
	}

	if err := r.SetStatus(Status("published")); err == nil {
		t.Fatal("SetStatus() expected error for unknown status")
	}
}

func TestTotalQuantity(t *testing.T) {
	r := testRecipe(t)
	if r.TotalQuantity() != 0 {
		t.Errorf("TotalQuantity() = %g for empty recipe, want 0", r.TotalQuantity())
	}

	if err := r.AddItem("nata 35% MG", 300); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if err := r.AddItem("sacarosa", 100); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if got := r.TotalQuantity(); got != 400 {
		t.Errorf("TotalQuantity() = %g, want 400", got)
	}
}

func TestItemShare(t *testing.T) {
	r := testRecipe(t)
	if err := r.AddItem("nata 35% MG", 300); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if err := r.AddItem("sacarosa", 100); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	share, err := r.ItemShare("nata 35% MG")
	if err != nil {
		t.Fatalf("ItemShare() unexpected error: %v", err)
	}
	if math.Abs(share-75) > 1e-9 {
		t.Errorf("ItemShare() = %g, want 75", share)
	}

	_, err = r.ItemShare("agua")
	if err == nil {
		t.Fatal("ItemShare() expected error for absent ingredient")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("ItemShare() error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestDuplicate(t *testing.T) {
	r := testRecipe(t)
	if err := r.AddItem("nata 35% MG", 300); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if err := r.SetStatus(StatusConfirmed); err != nil {
		t.Fatalf("SetStatus() unexpected error: %v", err)
	}

	dup := r.Duplicate()

	if dup.Name != "ganache 65% (copy)" {
		t.Errorf("Duplicate() name = %q, want %q", dup.Name, "ganache 65% (copy)")
	}
	if dup.Status != StatusDraft {
		t.Errorf("Duplicate() status = %v, want %v", dup.Status, StatusDraft)
	}
	if dup.Category != r.Category {
		t.Errorf("Duplicate() category = %q, want %q", dup.Category, r.Category)
	}

	// The copy owns its item slice.
	if err := r.AddItem("sacarosa", 50); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if len(dup.Items) != 1 {
		t.Errorf("Duplicate() items = %d after mutating original, want 1", len(dup.Items))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		recipe   *Recipe
		wantCode errors.ErrorCode
	}{
		{
			name:   "valid",
			recipe: &Recipe{Name: "ganache", Status: StatusDraft, Items: []Item{{"sacarosa", 100}}},
		},
		{
			name:     "nil recipe",
			recipe:   nil,
			wantCode: errors.ErrCodeInvalidRecipe,
		},
		{
			name:     "empty name",
			recipe:   &Recipe{Status: StatusDraft},
			wantCode: errors.ErrCodeInvalidRecipe,
		},
		{
			name:     "unknown status",
			recipe:   &Recipe{Name: "ganache", Status: Status("published")},
			wantCode: errors.ErrCodeInvalidRecipe,
		},
		{
			name: "duplicate items",
			recipe: &Recipe{Name: "ganache", Status: StatusDraft,
				Items: []Item{{"sacarosa", 100}, {"sacarosa", 50}}},
			wantCode: errors.ErrCodeInvalidRecipe,
		},
		{
			name: "empty item ingredient",
			recipe: &Recipe{Name: "ganache", Status: StatusDraft,
				Items: []Item{{"", 100}}},
			wantCode: errors.ErrCodeInvalidRecipe,
		},
		{
			name: "zero quantity",
			recipe: &Recipe{Name: "ganache", Status: StatusDraft,
				Items: []Item{{"sacarosa", 0}}},
			wantCode: errors.ErrCodeInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("Validate() error code = %v, want %v", errors.CodeOf(err), tt.wantCode)
			}
		})
	}
}
