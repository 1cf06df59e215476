package domain

import "time"

// ExpenseCategory and ExpenseStatus values.
var (
	ExpenseCategory = NewLabelTable(
		Entry{"transport", "Transport", "blue"},
		Entry{"meals", "Repas", "teal"},
		Entry{"lodging", "Hébergement", "purple"},
		Entry{"supplies", "Fournitures", "orange"},
		Entry{"other", "Autre", "gray"},
	)
	ExpenseStatus = NewLabelTable(
		Entry{"pending", "En attente", "yellow"},
		Entry{"approved", "Approuvée", "green"},
		Entry{"rejected", "Rejetée", "red"},
		Entry{"reimbursed", "Remboursée", "gray"},
	)
)

// Expense is an expense claim.
type Expense struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Employee    string    `yaml:"employee"`
	Category    string    `yaml:"category"`
	Amount      XOF       `yaml:"amount"`
	Status      string    `yaml:"status"`
	Date        time.Time `yaml:"date"`
}
