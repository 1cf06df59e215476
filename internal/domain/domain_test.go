package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLabelLookup(t *testing.T) {
	assert.Equal(t, Label{Text: "Actif", Style: "green"}, PartyStatus.Lookup("active"))
	assert.Equal(t, Label{Text: "Bloqué", Style: "red"}, PartyStatus.Lookup("blocked"))
	assert.Equal(t, Label{Text: "unknown", Style: "gray"}, PartyStatus.Lookup("unknown"))
	assert.True(t, PartyStatus.Has("inactive"))
	assert.False(t, PartyStatus.Has("Inactive"))
}

func TestLabelValuesKeepOrder(t *testing.T) {
	assert.Equal(t, []string{"active", "inactive", "blocked"}, PartyStatus.Values())

	values := LoanStatus.Values()
	values[0] = "mutated"
	assert.Equal(t, "pending", LoanStatus.Values()[0])
}

func TestEveryTableHasStyles(t *testing.T) {
	tables := map[string]LabelTable{
		"PartyStatus": PartyStatus, "YesNo": YesNo, "CustomerSegment": CustomerSegment,
		"SupplierCategory": SupplierCategory, "DocumentType": DocumentType, "DocumentStatus": DocumentStatus,
		"EmailFolder": EmailFolder, "EmployeeStatus": EmployeeStatus, "ContractType": ContractType,
		"ContractStatus": ContractStatus, "LoanStatus": LoanStatus, "PayrollStatus": PayrollStatus,
		"DisciplinarySeverity": DisciplinarySeverity, "DisciplinaryStatus": DisciplinaryStatus,
		"EvaluationStatus": EvaluationStatus, "EvaluationRating": EvaluationRating,
		"TrainingStatus": TrainingStatus, "ExpenseCategory": ExpenseCategory, "ExpenseStatus": ExpenseStatus,
	}
	for name, table := range tables {
		assert.NotEmpty(t, table.Values(), name)
		for _, v := range table.Values() {
			l := table.Lookup(v)
			assert.NotEmpty(t, l.Text, "%s.%s", name, v)
			assert.NotEmpty(t, l.Style, "%s.%s", name, v)
		}
	}
}

func TestXOFString(t *testing.T) {
	tests := []struct {
		in   XOF
		want string
	}{
		{0, "0 FCFA"},
		{950, "950 FCFA"},
		{1000, "1\u202f000 FCFA"},
		{1250000, "1\u202f250\u202f000 FCFA"},
		{-45000, "-45\u202f000 FCFA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String(), "XOF(%d)", int64(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "05/03/2024", FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Jean Dupont", Contact{FirstName: "Jean", LastName: "Dupont"}.FullName())
	assert.Equal(t, "Dupont", Contact{LastName: "Dupont"}.FullName())
	assert.Equal(t, "Awa", Employee{FirstName: "Awa"}.FullName())
	assert.Equal(t, "yes", Email{Read: true}.ReadFlag())
	assert.Equal(t, "no", Email{}.ReadFlag())
}
