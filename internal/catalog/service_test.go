package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrail-dev/moneytrail/internal/logger"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

type mockWriter struct {
	categorySaves int
	modeSaves     int
	budgetSaves   int
}

func (w *mockWriter) SaveCategories([]model.Category) error     { w.categorySaves++; return nil }
func (w *mockWriter) SavePaymentModes([]model.PaymentMode) error { w.modeSaves++; return nil }
func (w *mockWriter) SaveBudgets([]model.Budget) error           { w.budgetSaves++; return nil }

func newService(w *mockWriter) *Service {
	return NewService(logger.Nop(), w, DefaultCategories(), DefaultPaymentModes(), DefaultBudgets())
}

func limit(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestSlug(t *testing.T) {
	assert.Equal(t, "food_dining", Slug("Food Dining"))
	assert.Equal(t, "pet_care", Slug("  Pet   Care "))
	assert.Equal(t, "travel", Slug("Travel"))
}

func TestAddCategory_ExpenseCreatesBudget(t *testing.T) {
	w := &mockWriter{}
	svc := newService(w)
	budgetsBefore := len(svc.Budgets())

	cat, err := svc.AddCategory("Pet Care", "🐶", model.TypeExpense, limit(5000))
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)

	budgets := svc.Budgets()
	require.Len(t, budgets, budgetsBefore+1)
	added := budgets[len(budgets)-1]
	assert.Equal(t, cat.ID, added.ID, "budget shares the category id")
	assert.Equal(t, "pet_care", added.Category)
	assert.True(t, added.Limit.Equal(limit(5000)))
}

func TestAddCategory_IncomeSkipsBudget(t *testing.T) {
	svc := newService(&mockWriter{})
	budgetsBefore := len(svc.Budgets())

	_, err := svc.AddCategory("Dividends", "", model.TypeIncome, limit(5000))
	require.NoError(t, err)
	assert.Len(t, svc.Budgets(), budgetsBefore)
}

func TestAddCategory_Defaults(t *testing.T) {
	svc := newService(&mockWriter{})

	cat, err := svc.AddCategory("Misc", "", "", limit(5000))
	require.NoError(t, err)
	assert.Equal(t, "📁", cat.Icon)
	assert.Equal(t, model.TypeExpense, cat.Type)
}

func TestAddCategory_RequiresName(t *testing.T) {
	svc := newService(&mockWriter{})

	_, err := svc.AddCategory("", "", model.TypeExpense, limit(5000))
	require.Error(t, err)
}

func TestDeleteCategory_CascadesToBudget(t *testing.T) {
	svc := newService(&mockWriter{})

	cat, err := svc.AddCategory("Pet Care", "🐶", model.TypeExpense, limit(5000))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(cat.ID))

	for _, c := range svc.Categories() {
		assert.NotEqual(t, cat.ID, c.ID)
	}
	for _, b := range svc.Budgets() {
		assert.NotEqual(t, cat.ID, b.ID)
	}
}

func TestDeleteCategory_UnknownIsNoOp(t *testing.T) {
	w := &mockWriter{}
	svc := newService(w)
	before := len(svc.Categories())

	require.NoError(t, svc.DeleteCategory("missing"))
	assert.Len(t, svc.Categories(), before)
	assert.Zero(t, w.categorySaves)
}

func TestAddSubcategory_InheritsParentIcon(t *testing.T) {
	svc := newService(&mockWriter{})

	cat, err := svc.AddCategory("Travel", "✈️", model.TypeExpense, limit(5000))
	require.NoError(t, err)

	sub, err := svc.AddSubcategory(cat.ID, "Flights", "")
	require.NoError(t, err)
	assert.Equal(t, "✈️", sub.Icon)

	var found bool
	for _, c := range svc.Categories() {
		if c.ID == cat.ID {
			require.Len(t, c.Subcategories, 1)
			assert.Equal(t, sub.ID, c.Subcategories[0].ID)
			found = true
		}
	}
	assert.True(t, found)
}

func TestAddSubcategory_UnknownCategory(t *testing.T) {
	svc := newService(&mockWriter{})

	_, err := svc.AddSubcategory("missing", "Flights", "")
	require.Error(t, err)
}

func TestDeleteSubcategory(t *testing.T) {
	svc := newService(&mockWriter{})

	cat, err := svc.AddCategory("Travel", "✈️", model.TypeExpense, limit(5000))
	require.NoError(t, err)
	sub, err := svc.AddSubcategory(cat.ID, "Flights", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubcategory(cat.ID, sub.ID))

	for _, c := range svc.Categories() {
		if c.ID == cat.ID {
			assert.Empty(t, c.Subcategories)
		}
	}
}

func TestPaymentModes_AddAndDelete(t *testing.T) {
	svc := newService(&mockWriter{})
	before := len(svc.PaymentModes())

	mode, err := svc.AddPaymentMode("Wallet", "", "Paytm wallet")
	require.NoError(t, err)
	assert.Equal(t, "💳", mode.Icon)
	assert.Len(t, svc.PaymentModes(), before+1)

	require.NoError(t, svc.DeletePaymentMode(mode.ID))
	assert.Len(t, svc.PaymentModes(), before)
}

func TestBudgets_SetLimit(t *testing.T) {
	svc := newService(&mockWriter{})
	food := svc.Budgets()[0]

	require.NoError(t, svc.SetBudgetLimit(food.ID, limit(9000)))
	assert.True(t, svc.Budgets()[0].Limit.Equal(limit(9000)))
}

func TestBudgets_SetLimitUnknownIsNoOp(t *testing.T) {
	w := &mockWriter{}
	svc := newService(w)

	require.NoError(t, svc.SetBudgetLimit("missing", limit(9000)))
	assert.Zero(t, w.budgetSaves)
}

func TestBudgets_AddWithoutCategory(t *testing.T) {
	svc := newService(&mockWriter{})

	b, err := svc.AddBudget("", "Weekend Trips", limit(4000))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "weekend_trips", b.Category)
}

func TestBudgets_Delete(t *testing.T) {
	svc := newService(&mockWriter{})
	before := len(svc.Budgets())

	require.NoError(t, svc.DeleteBudget(svc.Budgets()[0].ID))
	assert.Len(t, svc.Budgets(), before-1)
}

func TestDefaults(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 9)
	assert.Equal(t, "Food & Dining", cats[0].Name)
	assert.Len(t, cats[0].Subcategories, 3)

	modes := DefaultPaymentModes()
	require.Len(t, modes, 5)

	budgets := DefaultBudgets()
	require.Len(t, budgets, 8)
	assert.Equal(t, "food", budgets[0].Category)
	assert.True(t, budgets[0].Limit.Equal(limit(8000)))
}
