package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// DefaultCategories returns the taxonomy seeded into a new workspace.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			ID: "1", Name: "Food & Dining", Icon: "🍔", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "1a", Name: "Groceries", Icon: "🛒"},
				{ID: "1b", Name: "Restaurants", Icon: "🍽️"},
				{ID: "1c", Name: "Food Delivery", Icon: "🛵"},
			},
		},
		{
			ID: "2", Name: "Transportation", Icon: "🚗", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "2a", Name: "Fuel", Icon: "⛽"},
				{ID: "2b", Name: "Public Transport", Icon: "🚌"},
				{ID: "2c", Name: "Cab/Taxi", Icon: "🚕"},
			},
		},
		{
			ID: "3", Name: "Shopping", Icon: "🛍️", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "3a", Name: "Clothes", Icon: "👕"},
				{ID: "3b", Name: "Electronics", Icon: "📱"},
				{ID: "3c", Name: "Home Items", Icon: "🏠"},
			},
		},
		{
			ID: "4", Name: "Entertainment", Icon: "🎬", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "4a", Name: "Movies", Icon: "🎥"},
				{ID: "4b", Name: "Subscriptions", Icon: "📺"},
				{ID: "4c", Name: "Games", Icon: "🎮"},
			},
		},
		{
			ID: "5", Name: "Utilities", Icon: "💡", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "5a", Name: "Electricity", Icon: "⚡"},
				{ID: "5b", Name: "Water", Icon: "💧"},
				{ID: "5c", Name: "Internet", Icon: "📶"},
			},
		},
		{
			ID: "6", Name: "Health", Icon: "💊", Type: model.TypeExpense,
			Subcategories: []model.Subcategory{
				{ID: "6a", Name: "Medicine", Icon: "💉"},
				{ID: "6b", Name: "Doctor", Icon: "🩺"},
				{ID: "6c", Name: "Gym", Icon: "🏋️"},
			},
		},
		{ID: "7", Name: "Salary", Icon: "💰", Type: model.TypeIncome},
		{ID: "8", Name: "Freelance", Icon: "💻", Type: model.TypeIncome},
		{ID: "9", Name: "Other", Icon: "📦", Type: model.TypeExpense},
	}
}

// DefaultPaymentModes returns the payment modes seeded into a new
// workspace.
func DefaultPaymentModes() []model.PaymentMode {
	return []model.PaymentMode{
		{ID: "1", Name: "Bank Account", Icon: "🏦", Description: "Direct bank transfer"},
		{ID: "2", Name: "Cash", Icon: "💵", Description: "Cash payment"},
		{ID: "3", Name: "UPI", Icon: "📱", Description: "GPay, PhonePe, Paytm, etc."},
		{ID: "4", Name: "Credit Card", Icon: "💳", Description: "Credit card payment"},
		{ID: "5", Name: "Debit Card", Icon: "💳", Description: "Debit card payment"},
	}
}

// DefaultBudgets returns the monthly limits seeded into a new workspace.
func DefaultBudgets() []model.Budget {
	limits := []struct {
		id, category, name string
		limit              int64
	}{
		{"1", "food", "Food & Dining", 8000},
		{"2", "transport", "Transportation", 3000},
		{"3", "shopping", "Shopping", 5000},
		{"4", "entertainment", "Entertainment", 2000},
		{"5", "utilities", "Utilities", 3000},
		{"6", "health", "Health", 3000},
		{"7", "education", "Education", 2000},
		{"8", "other", "Others", 2000},
	}

	budgets := make([]model.Budget, 0, len(limits))
	for _, l := range limits {
		budgets = append(budgets, model.Budget{
			ID:       l.id,
			Category: l.category,
			Name:     l.name,
			Limit:    decimal.NewFromInt(l.limit),
		})
	}
	return budgets
}
