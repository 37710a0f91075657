package model

import "github.com/shopspring/decimal"

// Category is a user-configurable taxonomy entry. Transactions reference
// categories by slug only; deleting a category leaves existing
// transaction labels orphaned, which is tolerated.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Type          TxType        `json:"type"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a nested entry under a Category.
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PaymentMode is a user-configurable payment instrument.
type PaymentMode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Budget is a per-category monthly spending limit. The pairing with a
// category is soft: budgets may exist without a matching category and
// vice versa.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
}
