package domain

import "time"

// EmployeeStatus values.
var EmployeeStatus = NewLabelTable(
	Entry{"active", "En poste", "green"},
	Entry{"on_leave", "En congé", "yellow"},
	Entry{"terminated", "Sorti", "gray"},
)

// Employee is a member of staff.
type Employee struct {
	ID         string    `yaml:"id"`
	Matricule  string    `yaml:"matricule"`
	FirstName  string    `yaml:"first_name"`
	LastName   string    `yaml:"last_name"`
	Position   string    `yaml:"position"`
	Department string    `yaml:"department"`
	Email      string    `yaml:"email"`
	Phone      string    `yaml:"phone"`
	Status     string    `yaml:"status"`
	HireDate   time.Time `yaml:"hire_date"`
	BaseSalary XOF       `yaml:"base_salary"`
}

// FullName returns "First Last".
func (e Employee) FullName() string { return joinName(e.FirstName, e.LastName) }

// ContractType and ContractStatus values.
var (
	ContractType = NewLabelTable(
		Entry{"cdi", "CDI", "green"},
		Entry{"cdd", "CDD", "blue"},
		Entry{"internship", "Stage", "teal"},
		Entry{"consultant", "Consultant", "purple"},
	)
	ContractStatus = NewLabelTable(
		Entry{"active", "En cours", "green"},
		Entry{"expired", "Expiré", "yellow"},
		Entry{"terminated", "Résilié", "red"},
	)
)

// Contract is an employment contract.
type Contract struct {
	ID       string    `yaml:"id"`
	Employee string    `yaml:"employee"`
	Type     string    `yaml:"type"`
	Status   string    `yaml:"status"`
	Position string    `yaml:"position"`
	Start    time.Time `yaml:"start"`
	End      time.Time `yaml:"end"`
	Salary   XOF       `yaml:"salary"`
}

// LoanStatus values.
var LoanStatus = NewLabelTable(
	Entry{"pending", "En attente", "yellow"},
	Entry{"approved", "Accordé", "green"},
	Entry{"repaid", "Remboursé", "gray"},
	Entry{"rejected", "Refusé", "red"},
)

// Loan is a salary advance or staff loan.
type Loan struct {
	ID          string    `yaml:"id"`
	Employee    string    `yaml:"employee"`
	Reason      string    `yaml:"reason"`
	Amount      XOF       `yaml:"amount"`
	Installment XOF       `yaml:"installment"`
	Months      int       `yaml:"months"`
	Status      string    `yaml:"status"`
	Start       time.Time `yaml:"start"`
}

// PayrollStatus values.
var PayrollStatus = NewLabelTable(
	Entry{"draft", "Brouillon", "yellow"},
	Entry{"validated", "Validé", "blue"},
	Entry{"paid", "Payé", "green"},
)

// Payroll is one payslip line of a pay period.
type Payroll struct {
	ID         string `yaml:"id"`
	Employee   string `yaml:"employee"`
	Period     string `yaml:"period"`
	Gross      XOF    `yaml:"gross"`
	Deductions XOF    `yaml:"deductions"`
	Net        XOF    `yaml:"net"`
	Status     string `yaml:"status"`
}

// DisciplinarySeverity and DisciplinaryStatus values.
var (
	DisciplinarySeverity = NewLabelTable(
		Entry{"minor", "Mineure", "yellow"},
		Entry{"major", "Majeure", "orange"},
		Entry{"serious", "Grave", "red"},
	)
	DisciplinaryStatus = NewLabelTable(
		Entry{"open", "Ouvert", "yellow"},
		Entry{"closed", "Clôturé", "gray"},
	)
)

// DisciplinaryCase is a disciplinary procedure against an employee.
type DisciplinaryCase struct {
	ID          string    `yaml:"id"`
	Employee    string    `yaml:"employee"`
	Subject     string    `yaml:"subject"`
	Description string    `yaml:"description"`
	Severity    string    `yaml:"severity"`
	Status      string    `yaml:"status"`
	Sanction    string    `yaml:"sanction"`
	Date        time.Time `yaml:"date"`
}

// EvaluationStatus and EvaluationRating values.
var (
	EvaluationStatus = NewLabelTable(
		Entry{"scheduled", "Planifiée", "blue"},
		Entry{"completed", "Terminée", "green"},
		Entry{"cancelled", "Annulée", "gray"},
	)
	EvaluationRating = NewLabelTable(
		Entry{"excellent", "Excellent", "green"},
		Entry{"good", "Bon", "teal"},
		Entry{"average", "Moyen", "yellow"},
		Entry{"poor", "Insuffisant", "red"},
	)
)

// Evaluation is a periodic performance review.
type Evaluation struct {
	ID        string    `yaml:"id"`
	Employee  string    `yaml:"employee"`
	Evaluator string    `yaml:"evaluator"`
	Period    string    `yaml:"period"`
	Rating    string    `yaml:"rating"`
	Status    string    `yaml:"status"`
	Comments  string    `yaml:"comments"`
	Date      time.Time `yaml:"date"`
}

// TrainingStatus values.
var TrainingStatus = NewLabelTable(
	Entry{"planned", "Planifiée", "blue"},
	Entry{"ongoing", "En cours", "yellow"},
	Entry{"completed", "Terminée", "green"},
)

// Training is a training session.
type Training struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Trainer      string    `yaml:"trainer"`
	Location     string    `yaml:"location"`
	Participants int       `yaml:"participants"`
	Cost         XOF       `yaml:"cost"`
	Status       string    `yaml:"status"`
	Start        time.Time `yaml:"start"`
	End          time.Time `yaml:"end"`
}
