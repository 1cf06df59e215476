package catalog

import (
	"fmt"
	"strconv"

	"github.com/ohadaerp/erp/internal/domain"
	"github.com/ohadaerp/erp/internal/record"
)

func field[T any](name string, value func(T) string) record.Field[T] {
	return record.Field[T]{Name: name, Value: value}
}

func text(s string) Cell { return Cell{Text: s} }

func label(t domain.LabelTable, v string) Cell {
	l := t.Lookup(v)
	return Cell{Text: l.Text, Style: l.Style}
}

func money(x domain.XOF) Cell { return Cell{Text: x.String()} }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func contactSpec() Spec[domain.Contact] {
	return Spec[domain.Contact]{
		Schema: record.Schema[domain.Contact]{
			Kind: "contacts",
			ID:   func(c domain.Contact) string { return c.ID },
			Searchable: []record.Field[domain.Contact]{
				field("name", domain.Contact.FullName),
				field("company", func(c domain.Contact) string { return c.Company }),
				field("email", func(c domain.Contact) string { return c.Email }),
				field("phone", func(c domain.Contact) string { return c.Phone }),
				field("city", func(c domain.Contact) string { return c.City }),
			},
			Filterable: []record.Field[domain.Contact]{
				field("status", func(c domain.Contact) string { return c.Status }),
			},
		},
		Title:    "Contacts",
		ItemType: "contact",
		Module:   ModuleCRM,
		Columns: []Column{
			{Title: "NOM", Expansion: 3},
			{Title: "SOCIÉTÉ", Expansion: 3},
			{Title: "EMAIL", Expansion: 3},
			{Title: "VILLE", Expansion: 2},
			{Title: "STATUT", Expansion: 1},
		},
		Filters: []Filter{{Field: "status", Label: "Statut", Table: domain.PartyStatus}},
		Name:    domain.Contact.FullName,
		Cells: func(c domain.Contact) []Cell {
			return []Cell{
				text(c.FullName()),
				text(c.Company),
				text(c.Email),
				text(c.City),
				label(domain.PartyStatus, c.Status),
			}
		},
		Summary: func(c domain.Contact) string {
			return fmt.Sprintf("%s · %s", orDash(c.Position), orDash(c.Phone))
		},
		Detail: func(c domain.Contact) []DetailField {
			return []DetailField{
				{"Prénom", c.FirstName},
				{"Nom", c.LastName},
				{"Société", c.Company},
				{"Fonction", c.Position},
				{"Email", c.Email},
				{"Téléphone", c.Phone},
				{"Ville", c.City},
				{"Statut", domain.PartyStatus.Lookup(c.Status).Text},
			}
		},
	}
}

func customerSpec() Spec[domain.Customer] {
	return Spec[domain.Customer]{
		Schema: record.Schema[domain.Customer]{
			Kind: "customers",
			ID:   func(c domain.Customer) string { return c.ID },
			Searchable: []record.Field[domain.Customer]{
				field("name", func(c domain.Customer) string { return c.Name }),
				field("contact", func(c domain.Customer) string { return c.Contact }),
				field("email", func(c domain.Customer) string { return c.Email }),
				field("city", func(c domain.Customer) string { return c.City }),
				field("country", func(c domain.Customer) string { return c.Country }),
			},
			Filterable: []record.Field[domain.Customer]{
				field("segment", func(c domain.Customer) string { return c.Segment }),
				field("status", func(c domain.Customer) string { return c.Status }),
			},
		},
		Title:    "Clients",
		ItemType: "client",
		Module:   ModuleCRM,
		Columns: []Column{
			{Title: "CLIENT", Expansion: 3},
			{Title: "CONTACT", Expansion: 2},
			{Title: "VILLE", Expansion: 2},
			{Title: "SEGMENT", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
			{Title: "SOLDE", Expansion: 2, AlignEnd: true},
		},
		Filters: []Filter{
			{Field: "segment", Label: "Segment", Table: domain.CustomerSegment},
			{Field: "status", Label: "Statut", Table: domain.PartyStatus},
		},
		Name: func(c domain.Customer) string { return c.Name },
		Cells: func(c domain.Customer) []Cell {
			return []Cell{
				text(c.Name),
				text(c.Contact),
				text(c.City),
				label(domain.CustomerSegment, c.Segment),
				label(domain.PartyStatus, c.Status),
				money(c.Balance),
			}
		},
		Summary: func(c domain.Customer) string {
			return fmt.Sprintf("%s · %s · %s", orDash(c.Email), orDash(c.Phone), orDash(c.Country))
		},
		Detail: func(c domain.Customer) []DetailField {
			return []DetailField{
				{"Raison sociale", c.Name},
				{"Contact", c.Contact},
				{"Email", c.Email},
				{"Téléphone", c.Phone},
				{"Ville", c.City},
				{"Pays", c.Country},
				{"Segment", domain.CustomerSegment.Lookup(c.Segment).Text},
				{"Statut", domain.PartyStatus.Lookup(c.Status).Text},
				{"Solde", c.Balance.String()},
			}
		},
		DeleteTitle: "Supprimer le client",
		DeleteMessage: func(c domain.Customer) string {
			return fmt.Sprintf("Supprimer le client « %s » ? Ses factures, devis et paiements associés seront également supprimés. Cette action est irréversible.", c.Name)
		},
	}
}

func supplierSpec() Spec[domain.Supplier] {
	return Spec[domain.Supplier]{
		Schema: record.Schema[domain.Supplier]{
			Kind: "suppliers",
			ID:   func(s domain.Supplier) string { return s.ID },
			Searchable: []record.Field[domain.Supplier]{
				field("name", func(s domain.Supplier) string { return s.Name }),
				field("contact", func(s domain.Supplier) string { return s.Contact }),
				field("email", func(s domain.Supplier) string { return s.Email }),
				field("city", func(s domain.Supplier) string { return s.City }),
			},
			Filterable: []record.Field[domain.Supplier]{
				field("category", func(s domain.Supplier) string { return s.Category }),
				field("status", func(s domain.Supplier) string { return s.Status }),
			},
		},
		Title:    "Fournisseurs",
		ItemType: "fournisseur",
		Module:   ModuleCRM,
		Columns: []Column{
			{Title: "FOURNISSEUR", Expansion: 3},
			{Title: "CONTACT", Expansion: 2},
			{Title: "VILLE", Expansion: 2},
			{Title: "CATÉGORIE", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
			{Title: "À PAYER", Expansion: 2, AlignEnd: true},
		},
		Filters: []Filter{
			{Field: "category", Label: "Catégorie", Table: domain.SupplierCategory},
			{Field: "status", Label: "Statut", Table: domain.PartyStatus},
		},
		Name: func(s domain.Supplier) string { return s.Name },
		Cells: func(s domain.Supplier) []Cell {
			return []Cell{
				text(s.Name),
				text(s.Contact),
				text(s.City),
				label(domain.SupplierCategory, s.Category),
				label(domain.PartyStatus, s.Status),
				money(s.Payable),
			}
		},
		Summary: func(s domain.Supplier) string {
			return fmt.Sprintf("%s · %s", orDash(s.Email), orDash(s.Phone))
		},
		Detail: func(s domain.Supplier) []DetailField {
			return []DetailField{
				{"Raison sociale", s.Name},
				{"Contact", s.Contact},
				{"Email", s.Email},
				{"Téléphone", s.Phone},
				{"Ville", s.City},
				{"Catégorie", domain.SupplierCategory.Lookup(s.Category).Text},
				{"Statut", domain.PartyStatus.Lookup(s.Status).Text},
				{"Montant dû", s.Payable.String()},
			}
		},
		DeleteTitle: "Supprimer le fournisseur",
		DeleteMessage: func(s domain.Supplier) string {
			return fmt.Sprintf("Supprimer le fournisseur « %s » ? Ses bons de commande et factures d'achat associés seront également supprimés. Cette action est irréversible.", s.Name)
		},
	}
}

func documentSpec() Spec[domain.Document] {
	return Spec[domain.Document]{
		Schema: record.Schema[domain.Document]{
			Kind: "documents",
			ID:   func(d domain.Document) string { return d.ID },
			Searchable: []record.Field[domain.Document]{
				field("reference", func(d domain.Document) string { return d.Reference }),
				field("title", func(d domain.Document) string { return d.Title }),
				field("party", func(d domain.Document) string { return d.Party }),
			},
			Filterable: []record.Field[domain.Document]{
				field("type", func(d domain.Document) string { return d.Type }),
				field("status", func(d domain.Document) string { return d.Status }),
			},
		},
		Title:    "Documents",
		ItemType: "document",
		Module:   ModuleCRM,
		Columns: []Column{
			{Title: "RÉFÉRENCE", Expansion: 2},
			{Title: "TITRE", Expansion: 3},
			{Title: "TIERS", Expansion: 2},
			{Title: "TYPE", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
			{Title: "MONTANT", Expansion: 2, AlignEnd: true},
			{Title: "DATE", Expansion: 1},
		},
		Filters: []Filter{
			{Field: "type", Label: "Type", Table: domain.DocumentType},
			{Field: "status", Label: "Statut", Table: domain.DocumentStatus},
		},
		Name: func(d domain.Document) string { return d.Reference },
		Cells: func(d domain.Document) []Cell {
			return []Cell{
				text(d.Reference),
				text(d.Title),
				text(d.Party),
				label(domain.DocumentType, d.Type),
				label(domain.DocumentStatus, d.Status),
				money(d.Amount),
				text(domain.FormatDate(d.Date)),
			}
		},
		Summary: func(d domain.Document) string { return d.Title },
		Detail: func(d domain.Document) []DetailField {
			return []DetailField{
				{"Référence", d.Reference},
				{"Titre", d.Title},
				{"Tiers", d.Party},
				{"Type", domain.DocumentType.Lookup(d.Type).Text},
				{"Statut", domain.DocumentStatus.Lookup(d.Status).Text},
				{"Montant", d.Amount.String()},
				{"Date", domain.FormatDate(d.Date)},
			}
		},
	}
}

func emailSpec() Spec[domain.Email] {
	return Spec[domain.Email]{
		Schema: record.Schema[domain.Email]{
			Kind: "emails",
			ID:   func(e domain.Email) string { return e.ID },
			Searchable: []record.Field[domain.Email]{
				field("from", func(e domain.Email) string { return e.From }),
				field("to", func(e domain.Email) string { return e.To }),
				field("subject", func(e domain.Email) string { return e.Subject }),
				field("body", func(e domain.Email) string { return e.Body }),
			},
			Filterable: []record.Field[domain.Email]{
				field("folder", func(e domain.Email) string { return e.Folder }),
				field("read", domain.Email.ReadFlag),
			},
		},
		Title:    "Emails",
		ItemType: "email",
		Module:   ModuleCRM,
		Columns: []Column{
			{Title: "DE", Expansion: 2},
			{Title: "À", Expansion: 2},
			{Title: "OBJET", Expansion: 4},
			{Title: "DOSSIER", Expansion: 1},
			{Title: "LU", Expansion: 1},
			{Title: "DATE", Expansion: 1},
		},
		Filters: []Filter{
			{Field: "folder", Label: "Dossier", Table: domain.EmailFolder},
			{Field: "read", Label: "Lu", Table: domain.YesNo},
		},
		Name: func(e domain.Email) string { return e.Subject },
		Cells: func(e domain.Email) []Cell {
			return []Cell{
				text(e.From),
				text(e.To),
				text(e.Subject),
				label(domain.EmailFolder, e.Folder),
				label(domain.YesNo, e.ReadFlag()),
				text(domain.FormatDate(e.Date)),
			}
		},
		Summary: func(e domain.Email) string { return e.Body },
		Detail: func(e domain.Email) []DetailField {
			return []DetailField{
				{"De", e.From},
				{"À", e.To},
				{"Objet", e.Subject},
				{"Dossier", domain.EmailFolder.Lookup(e.Folder).Text},
				{"Lu", domain.YesNo.Lookup(e.ReadFlag()).Text},
				{"Date", domain.FormatDate(e.Date)},
				{"Message", e.Body},
			}
		},
	}
}

func employeeSpec() Spec[domain.Employee] {
	return Spec[domain.Employee]{
		Schema: record.Schema[domain.Employee]{
			Kind: "employees",
			ID:   func(e domain.Employee) string { return e.ID },
			Searchable: []record.Field[domain.Employee]{
				field("name", domain.Employee.FullName),
				field("matricule", func(e domain.Employee) string { return e.Matricule }),
				field("position", func(e domain.Employee) string { return e.Position }),
				field("email", func(e domain.Employee) string { return e.Email }),
			},
			Filterable: []record.Field[domain.Employee]{
				field("department", func(e domain.Employee) string { return e.Department }),
				field("status", func(e domain.Employee) string { return e.Status }),
			},
		},
		Title:    "Employés",
		ItemType: "employé",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "MATRICULE", Expansion: 1},
			{Title: "NOM", Expansion: 3},
			{Title: "POSTE", Expansion: 3},
			{Title: "SERVICE", Expansion: 2},
			{Title: "STATUT", Expansion: 1},
			{Title: "SALAIRE", Expansion: 2, AlignEnd: true},
		},
		Filters: []Filter{{Field: "status", Label: "Statut", Table: domain.EmployeeStatus}},
		Name:    domain.Employee.FullName,
		Cells: func(e domain.Employee) []Cell {
			return []Cell{
				text(e.Matricule),
				text(e.FullName()),
				text(e.Position),
				text(e.Department),
				label(domain.EmployeeStatus, e.Status),
				money(e.BaseSalary),
			}
		},
		Summary: func(e domain.Employee) string {
			return fmt.Sprintf("%s · %s · embauché le %s", orDash(e.Email), orDash(e.Phone), domain.FormatDate(e.HireDate))
		},
		Detail: func(e domain.Employee) []DetailField {
			return []DetailField{
				{"Matricule", e.Matricule},
				{"Prénom", e.FirstName},
				{"Nom", e.LastName},
				{"Poste", e.Position},
				{"Service", e.Department},
				{"Email", e.Email},
				{"Téléphone", e.Phone},
				{"Statut", domain.EmployeeStatus.Lookup(e.Status).Text},
				{"Date d'embauche", domain.FormatDate(e.HireDate)},
				{"Salaire de base", e.BaseSalary.String()},
			}
		},
		DeleteTitle: "Supprimer l'employé",
		DeleteMessage: func(e domain.Employee) string {
			return fmt.Sprintf("Supprimer l'employé « %s » ? Ses contrats, bulletins de paie, prêts, évaluations et dossiers disciplinaires seront également supprimés. Cette action est irréversible.", e.FullName())
		},
	}
}

func contractSpec() Spec[domain.Contract] {
	return Spec[domain.Contract]{
		Schema: record.Schema[domain.Contract]{
			Kind: "contracts",
			ID:   func(c domain.Contract) string { return c.ID },
			Searchable: []record.Field[domain.Contract]{
				field("employee", func(c domain.Contract) string { return c.Employee }),
				field("position", func(c domain.Contract) string { return c.Position }),
			},
			Filterable: []record.Field[domain.Contract]{
				field("type", func(c domain.Contract) string { return c.Type }),
				field("status", func(c domain.Contract) string { return c.Status }),
			},
		},
		Title:    "Contrats",
		ItemType: "contrat",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "POSTE", Expansion: 3},
			{Title: "TYPE", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
			{Title: "DÉBUT", Expansion: 1},
			{Title: "FIN", Expansion: 1},
			{Title: "SALAIRE", Expansion: 2, AlignEnd: true},
		},
		Filters: []Filter{
			{Field: "type", Label: "Type", Table: domain.ContractType},
			{Field: "status", Label: "Statut", Table: domain.ContractStatus},
		},
		Name: func(c domain.Contract) string {
			return fmt.Sprintf("%s (%s)", c.Employee, domain.ContractType.Lookup(c.Type).Text)
		},
		Cells: func(c domain.Contract) []Cell {
			return []Cell{
				text(c.Employee),
				text(c.Position),
				label(domain.ContractType, c.Type),
				label(domain.ContractStatus, c.Status),
				text(domain.FormatDate(c.Start)),
				text(domain.FormatDate(c.End)),
				money(c.Salary),
			}
		},
		Detail: func(c domain.Contract) []DetailField {
			return []DetailField{
				{"Employé", c.Employee},
				{"Poste", c.Position},
				{"Type", domain.ContractType.Lookup(c.Type).Text},
				{"Statut", domain.ContractStatus.Lookup(c.Status).Text},
				{"Début", domain.FormatDate(c.Start)},
				{"Fin", domain.FormatDate(c.End)},
				{"Salaire", c.Salary.String()},
			}
		},
	}
}

func loanSpec() Spec[domain.Loan] {
	return Spec[domain.Loan]{
		Schema: record.Schema[domain.Loan]{
			Kind: "loans",
			ID:   func(l domain.Loan) string { return l.ID },
			Searchable: []record.Field[domain.Loan]{
				field("employee", func(l domain.Loan) string { return l.Employee }),
				field("reason", func(l domain.Loan) string { return l.Reason }),
			},
			Filterable: []record.Field[domain.Loan]{
				field("status", func(l domain.Loan) string { return l.Status }),
			},
		},
		Title:    "Prêts",
		ItemType: "prêt",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "MOTIF", Expansion: 3},
			{Title: "MONTANT", Expansion: 2, AlignEnd: true},
			{Title: "MENSUALITÉ", Expansion: 2, AlignEnd: true},
			{Title: "STATUT", Expansion: 1},
		},
		Filters: []Filter{{Field: "status", Label: "Statut", Table: domain.LoanStatus}},
		Name: func(l domain.Loan) string {
			return fmt.Sprintf("%s (%s)", l.Employee, l.Amount)
		},
		Cells: func(l domain.Loan) []Cell {
			return []Cell{
				text(l.Employee),
				text(l.Reason),
				money(l.Amount),
				money(l.Installment),
				label(domain.LoanStatus, l.Status),
			}
		},
		Summary: func(l domain.Loan) string {
			return fmt.Sprintf("%d mensualités à partir du %s", l.Months, domain.FormatDate(l.Start))
		},
		Detail: func(l domain.Loan) []DetailField {
			return []DetailField{
				{"Employé", l.Employee},
				{"Motif", l.Reason},
				{"Montant", l.Amount.String()},
				{"Mensualité", l.Installment.String()},
				{"Durée (mois)", strconv.Itoa(l.Months)},
				{"Début", domain.FormatDate(l.Start)},
				{"Statut", domain.LoanStatus.Lookup(l.Status).Text},
			}
		},
	}
}

func payrollSpec() Spec[domain.Payroll] {
	return Spec[domain.Payroll]{
		Schema: record.Schema[domain.Payroll]{
			Kind: "payroll",
			ID:   func(p domain.Payroll) string { return p.ID },
			Searchable: []record.Field[domain.Payroll]{
				field("employee", func(p domain.Payroll) string { return p.Employee }),
				field("period", func(p domain.Payroll) string { return p.Period }),
			},
			Filterable: []record.Field[domain.Payroll]{
				field("period", func(p domain.Payroll) string { return p.Period }),
				field("status", func(p domain.Payroll) string { return p.Status }),
			},
		},
		Title:    "Paie",
		ItemType: "bulletin de paie",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "PÉRIODE", Expansion: 1},
			{Title: "BRUT", Expansion: 2, AlignEnd: true},
			{Title: "RETENUES", Expansion: 2, AlignEnd: true},
			{Title: "NET", Expansion: 2, AlignEnd: true},
			{Title: "STATUT", Expansion: 1},
		},
		Filters: []Filter{{Field: "status", Label: "Statut", Table: domain.PayrollStatus}},
		Name: func(p domain.Payroll) string {
			return fmt.Sprintf("%s %s", p.Employee, p.Period)
		},
		Cells: func(p domain.Payroll) []Cell {
			return []Cell{
				text(p.Employee),
				text(p.Period),
				money(p.Gross),
				money(p.Deductions),
				money(p.Net),
				label(domain.PayrollStatus, p.Status),
			}
		},
		Detail: func(p domain.Payroll) []DetailField {
			return []DetailField{
				{"Employé", p.Employee},
				{"Période", p.Period},
				{"Salaire brut", p.Gross.String()},
				{"Retenues", p.Deductions.String()},
				{"Net à payer", p.Net.String()},
				{"Statut", domain.PayrollStatus.Lookup(p.Status).Text},
			}
		},
	}
}

func disciplinarySpec() Spec[domain.DisciplinaryCase] {
	return Spec[domain.DisciplinaryCase]{
		Schema: record.Schema[domain.DisciplinaryCase]{
			Kind: "disciplinary",
			ID:   func(d domain.DisciplinaryCase) string { return d.ID },
			Searchable: []record.Field[domain.DisciplinaryCase]{
				field("employee", func(d domain.DisciplinaryCase) string { return d.Employee }),
				field("subject", func(d domain.DisciplinaryCase) string { return d.Subject }),
				field("description", func(d domain.DisciplinaryCase) string { return d.Description }),
			},
			Filterable: []record.Field[domain.DisciplinaryCase]{
				field("severity", func(d domain.DisciplinaryCase) string { return d.Severity }),
				field("status", func(d domain.DisciplinaryCase) string { return d.Status }),
			},
		},
		Title:    "Discipline",
		ItemType: "dossier disciplinaire",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "OBJET", Expansion: 4},
			{Title: "GRAVITÉ", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
			{Title: "DATE", Expansion: 1},
		},
		Filters: []Filter{
			{Field: "severity", Label: "Gravité", Table: domain.DisciplinarySeverity},
			{Field: "status", Label: "Statut", Table: domain.DisciplinaryStatus},
		},
		Name: func(d domain.DisciplinaryCase) string { return d.Subject },
		Cells: func(d domain.DisciplinaryCase) []Cell {
			return []Cell{
				text(d.Employee),
				text(d.Subject),
				label(domain.DisciplinarySeverity, d.Severity),
				label(domain.DisciplinaryStatus, d.Status),
				text(domain.FormatDate(d.Date)),
			}
		},
		Summary: func(d domain.DisciplinaryCase) string {
			return fmt.Sprintf("%s · sanction : %s", d.Description, orDash(d.Sanction))
		},
		Detail: func(d domain.DisciplinaryCase) []DetailField {
			return []DetailField{
				{"Employé", d.Employee},
				{"Objet", d.Subject},
				{"Description", d.Description},
				{"Gravité", domain.DisciplinarySeverity.Lookup(d.Severity).Text},
				{"Statut", domain.DisciplinaryStatus.Lookup(d.Status).Text},
				{"Sanction", orDash(d.Sanction)},
				{"Date", domain.FormatDate(d.Date)},
			}
		},
	}
}

func evaluationSpec() Spec[domain.Evaluation] {
	return Spec[domain.Evaluation]{
		Schema: record.Schema[domain.Evaluation]{
			Kind: "evaluations",
			ID:   func(e domain.Evaluation) string { return e.ID },
			Searchable: []record.Field[domain.Evaluation]{
				field("employee", func(e domain.Evaluation) string { return e.Employee }),
				field("evaluator", func(e domain.Evaluation) string { return e.Evaluator }),
				field("period", func(e domain.Evaluation) string { return e.Period }),
			},
			Filterable: []record.Field[domain.Evaluation]{
				field("rating", func(e domain.Evaluation) string { return e.Rating }),
				field("status", func(e domain.Evaluation) string { return e.Status }),
			},
		},
		Title:    "Évaluations",
		ItemType: "évaluation",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "ÉVALUATEUR", Expansion: 3},
			{Title: "PÉRIODE", Expansion: 1},
			{Title: "NOTE", Expansion: 1},
			{Title: "STATUT", Expansion: 1},
		},
		Filters: []Filter{
			{Field: "rating", Label: "Note", Table: domain.EvaluationRating},
			{Field: "status", Label: "Statut", Table: domain.EvaluationStatus},
		},
		Name: func(e domain.Evaluation) string {
			return fmt.Sprintf("%s %s", e.Employee, e.Period)
		},
		Cells: func(e domain.Evaluation) []Cell {
			return []Cell{
				text(e.Employee),
				text(e.Evaluator),
				text(e.Period),
				label(domain.EvaluationRating, e.Rating),
				label(domain.EvaluationStatus, e.Status),
			}
		},
		Summary: func(e domain.Evaluation) string { return e.Comments },
		Detail: func(e domain.Evaluation) []DetailField {
			return []DetailField{
				{"Employé", e.Employee},
				{"Évaluateur", e.Evaluator},
				{"Période", e.Period},
				{"Note", domain.EvaluationRating.Lookup(e.Rating).Text},
				{"Statut", domain.EvaluationStatus.Lookup(e.Status).Text},
				{"Date", domain.FormatDate(e.Date)},
				{"Commentaires", e.Comments},
			}
		},
	}
}

func trainingSpec() Spec[domain.Training] {
	return Spec[domain.Training]{
		Schema: record.Schema[domain.Training]{
			Kind: "trainings",
			ID:   func(t domain.Training) string { return t.ID },
			Searchable: []record.Field[domain.Training]{
				field("title", func(t domain.Training) string { return t.Title }),
				field("trainer", func(t domain.Training) string { return t.Trainer }),
				field("location", func(t domain.Training) string { return t.Location }),
			},
			Filterable: []record.Field[domain.Training]{
				field("status", func(t domain.Training) string { return t.Status }),
			},
		},
		Title:    "Formations",
		ItemType: "formation",
		Module:   ModuleHR,
		Columns: []Column{
			{Title: "FORMATION", Expansion: 4},
			{Title: "FORMATEUR", Expansion: 2},
			{Title: "LIEU", Expansion: 2},
			{Title: "PARTICIPANTS", Expansion: 1, AlignEnd: true},
			{Title: "STATUT", Expansion: 1},
			{Title: "DÉBUT", Expansion: 1},
		},
		Filters: []Filter{{Field: "status", Label: "Statut", Table: domain.TrainingStatus}},
		Name:    func(t domain.Training) string { return t.Title },
		Cells: func(t domain.Training) []Cell {
			return []Cell{
				text(t.Title),
				text(t.Trainer),
				text(t.Location),
				text(strconv.Itoa(t.Participants)),
				label(domain.TrainingStatus, t.Status),
				text(domain.FormatDate(t.Start)),
			}
		},
		Summary: func(t domain.Training) string {
			return fmt.Sprintf("du %s au %s · coût %s", domain.FormatDate(t.Start), domain.FormatDate(t.End), t.Cost)
		},
		Detail: func(t domain.Training) []DetailField {
			return []DetailField{
				{"Intitulé", t.Title},
				{"Formateur", t.Trainer},
				{"Lieu", t.Location},
				{"Participants", strconv.Itoa(t.Participants)},
				{"Coût", t.Cost.String()},
				{"Statut", domain.TrainingStatus.Lookup(t.Status).Text},
				{"Début", domain.FormatDate(t.Start)},
				{"Fin", domain.FormatDate(t.End)},
			}
		},
	}
}

func expenseSpec() Spec[domain.Expense] {
	return Spec[domain.Expense]{
		Schema: record.Schema[domain.Expense]{
			Kind: "expenses",
			ID:   func(e domain.Expense) string { return e.ID },
			Searchable: []record.Field[domain.Expense]{
				field("description", func(e domain.Expense) string { return e.Description }),
				field("employee", func(e domain.Expense) string { return e.Employee }),
			},
			Filterable: []record.Field[domain.Expense]{
				field("category", func(e domain.Expense) string { return e.Category }),
				field("status", func(e domain.Expense) string { return e.Status }),
			},
		},
		Title:    "Notes de frais",
		ItemType: "note de frais",
		Module:   ModuleFinance,
		Columns: []Column{
			{Title: "DESCRIPTION", Expansion: 4},
			{Title: "EMPLOYÉ", Expansion: 3},
			{Title: "CATÉGORIE", Expansion: 1},
			{Title: "MONTANT", Expansion: 2, AlignEnd: true},
			{Title: "STATUT", Expansion: 1},
			{Title: "DATE", Expansion: 1},
		},
		Filters: []Filter{
			{Field: "category", Label: "Catégorie", Table: domain.ExpenseCategory},
			{Field: "status", Label: "Statut", Table: domain.ExpenseStatus},
		},
		Name: func(e domain.Expense) string { return e.Description },
		Cells: func(e domain.Expense) []Cell {
			return []Cell{
				text(e.Description),
				text(e.Employee),
				label(domain.ExpenseCategory, e.Category),
				money(e.Amount),
				label(domain.ExpenseStatus, e.Status),
				text(domain.FormatDate(e.Date)),
			}
		},
		Detail: func(e domain.Expense) []DetailField {
			return []DetailField{
				{"Description", e.Description},
				{"Employé", e.Employee},
				{"Catégorie", domain.ExpenseCategory.Lookup(e.Category).Text},
				{"Montant", e.Amount.String()},
				{"Statut", domain.ExpenseStatus.Lookup(e.Status).Text},
				{"Date", domain.FormatDate(e.Date)},
			}
		},
	}
}
