// Package catalog manages the user-configurable taxonomy: categories
// with nested subcategories, payment modes, and per-category budgets.
// References between collections (and to transactions) are soft string
// keys; nothing here blocks an edit over referential integrity.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/id"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// Writer persists the catalog collections, each rewritten in full.
type Writer interface {
	SaveCategories([]model.Category) error
	SavePaymentModes([]model.PaymentMode) error
	SaveBudgets([]model.Budget) error
}

// Service owns the three catalog collections.
type Service struct {
	log          zerolog.Logger
	writer       Writer
	categories   []model.Category
	paymentModes []model.PaymentMode
	budgets      []model.Budget
}

// NewService creates a Service over previously loaded collections.
func NewService(log zerolog.Logger, w Writer, categories []model.Category, modes []model.PaymentMode, budgets []model.Budget) *Service {
	return &Service{
		log:          log,
		writer:       w,
		categories:   categories,
		paymentModes: modes,
		budgets:      budgets,
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug normalizes a display name into the identifier transactions store:
// lowercased, whitespace collapsed to underscores.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// Categories returns all categories.
func (s *Service) Categories() []model.Category { return s.categories }

// PaymentModes returns all payment modes.
func (s *Service) PaymentModes() []model.PaymentMode { return s.paymentModes }

// Budgets returns all budgets.
func (s *Service) Budgets() []model.Budget { return s.budgets }

// AddCategory creates a category. Expense categories also get a budget
// entry sharing the category's id, seeded with defaultLimit.
func (s *Service) AddCategory(name, icon string, txType model.TxType, defaultLimit decimal.Decimal) (model.Category, error) {
	if name == "" {
		return model.Category{}, fmt.Errorf("category name is required")
	}
	if icon == "" {
		icon = "📁"
	}
	if txType == "" {
		txType = model.TypeExpense
	}

	cat := model.Category{ID: id.New(), Name: name, Icon: icon, Type: txType}
	s.categories = append(s.categories, cat)
	if err := s.writer.SaveCategories(s.categories); err != nil {
		return model.Category{}, err
	}

	if txType == model.TypeExpense {
		s.budgets = append(s.budgets, model.Budget{
			ID:       cat.ID,
			Category: Slug(name),
			Name:     name,
			Limit:    defaultLimit,
		})
		if err := s.writer.SaveBudgets(s.budgets); err != nil {
			return model.Category{}, err
		}
	}

	s.log.Debug().Str("id", cat.ID).Str("name", name).Msg("category added")
	return cat, nil
}

// DeleteCategory removes a category and cascades to the budget sharing
// its id. Transactions keep their category strings; orphaned labels fall
// back to a default icon at display time. Unknown ids are a no-op.
func (s *Service) DeleteCategory(categoryID string) error {
	kept := s.categories[:0]
	removed := false
	for _, c := range s.categories {
		if c.ID == categoryID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}
	s.categories = kept
	if err := s.writer.SaveCategories(s.categories); err != nil {
		return err
	}

	keptBudgets := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID == categoryID {
			continue
		}
		keptBudgets = append(keptBudgets, b)
	}
	s.budgets = keptBudgets
	return s.writer.SaveBudgets(s.budgets)
}

// AddSubcategory appends a subcategory to a category. The icon defaults
// to the parent's icon.
func (s *Service) AddSubcategory(categoryID, name, icon string) (model.Subcategory, error) {
	if name == "" {
		return model.Subcategory{}, fmt.Errorf("subcategory name is required")
	}
	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		if icon == "" {
			icon = s.categories[i].Icon
		}
		sub := model.Subcategory{ID: id.New(), Name: name, Icon: icon}
		s.categories[i].Subcategories = append(s.categories[i].Subcategories, sub)
		if err := s.writer.SaveCategories(s.categories); err != nil {
			return model.Subcategory{}, err
		}
		return sub, nil
	}
	return model.Subcategory{}, fmt.Errorf("category %s not found", categoryID)
}

// DeleteSubcategory removes a subcategory from a category. Unknown ids
// are a no-op.
func (s *Service) DeleteSubcategory(categoryID, subID string) error {
	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		subs := s.categories[i].Subcategories[:0]
		for _, sub := range s.categories[i].Subcategories {
			if sub.ID == subID {
				continue
			}
			subs = append(subs, sub)
		}
		s.categories[i].Subcategories = subs
		return s.writer.SaveCategories(s.categories)
	}
	return nil
}

// AddPaymentMode creates a payment mode. No cascading relationship to
// transactions exists.
func (s *Service) AddPaymentMode(name, icon, description string) (model.PaymentMode, error) {
	if name == "" {
		return model.PaymentMode{}, fmt.Errorf("payment mode name is required")
	}
	if icon == "" {
		icon = "💳"
	}
	mode := model.PaymentMode{ID: id.New(), Name: name, Icon: icon, Description: description}
	s.paymentModes = append(s.paymentModes, mode)
	if err := s.writer.SavePaymentModes(s.paymentModes); err != nil {
		return model.PaymentMode{}, err
	}
	return mode, nil
}

// DeletePaymentMode removes a payment mode. Unknown ids are a no-op;
// transactions keep their mode strings.
func (s *Service) DeletePaymentMode(modeID string) error {
	kept := s.paymentModes[:0]
	removed := false
	for _, m := range s.paymentModes {
		if m.ID == modeID {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return nil
	}
	s.paymentModes = kept
	return s.writer.SavePaymentModes(s.paymentModes)
}

// AddBudget creates a standalone budget entry. When categoryID is empty
// a fresh id is assigned, so budgets can exist without a category.
func (s *Service) AddBudget(categoryID, name string, limit decimal.Decimal) (model.Budget, error) {
	if name == "" {
		return model.Budget{}, fmt.Errorf("budget name is required")
	}
	if categoryID == "" {
		categoryID = id.New()
	}
	b := model.Budget{ID: categoryID, Category: Slug(name), Name: name, Limit: limit}
	s.budgets = append(s.budgets, b)
	if err := s.writer.SaveBudgets(s.budgets); err != nil {
		return model.Budget{}, err
	}
	return b, nil
}

// SetBudgetLimit updates the limit on an existing budget. Unknown ids
// are a no-op.
func (s *Service) SetBudgetLimit(budgetID string, limit decimal.Decimal) error {
	for i := range s.budgets {
		if s.budgets[i].ID != budgetID {
			continue
		}
		s.budgets[i].Limit = limit
		return s.writer.SaveBudgets(s.budgets)
	}
	s.log.Debug().Str("id", budgetID).Msg("budget not found")
	return nil
}

// DeleteBudget removes a budget entry. Unknown ids are a no-op.
func (s *Service) DeleteBudget(budgetID string) error {
	kept := s.budgets[:0]
	removed := false
	for _, b := range s.budgets {
		if b.ID == budgetID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return nil
	}
	s.budgets = kept
	return s.writer.SaveBudgets(s.budgets)
}
