package domain

import "time"

// Contact is a person in the CRM address book.
type Contact struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Company   string `yaml:"company"`
	Position  string `yaml:"position"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	City      string `yaml:"city"`
	Status    string `yaml:"status"`
}

// FullName returns "First Last".
func (c Contact) FullName() string { return joinName(c.FirstName, c.LastName) }

// CustomerSegment values.
var CustomerSegment = NewLabelTable(
	Entry{"company", "Entreprise", "blue"},
	Entry{"individual", "Particulier", "teal"},
	Entry{"public", "Administration", "purple"},
)

// Customer is a billed party.
type Customer struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Contact string `yaml:"contact"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
	Segment string `yaml:"segment"`
	Status  string `yaml:"status"`
	Balance XOF    `yaml:"balance"`
}

// SupplierCategory values.
var SupplierCategory = NewLabelTable(
	Entry{"goods", "Marchandises", "blue"},
	Entry{"services", "Services", "teal"},
	Entry{"logistics", "Logistique", "orange"},
)

// Supplier is a vendor the company buys from.
type Supplier struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Contact  string `yaml:"contact"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	City     string `yaml:"city"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
	Payable  XOF    `yaml:"payable"`
}

// DocumentType and DocumentStatus values.
var (
	DocumentType = NewLabelTable(
		Entry{"invoice", "Facture", "blue"},
		Entry{"quote", "Devis", "teal"},
		Entry{"contract", "Contrat", "purple"},
		Entry{"receipt", "Reçu", "green"},
		Entry{"other", "Autre", "gray"},
	)
	DocumentStatus = NewLabelTable(
		Entry{"draft", "Brouillon", "yellow"},
		Entry{"validated", "Validé", "green"},
		Entry{"archived", "Archivé", "gray"},
	)
)

// Document is a business document attached to a party.
type Document struct {
	ID        string    `yaml:"id"`
	Reference string    `yaml:"reference"`
	Title     string    `yaml:"title"`
	Party     string    `yaml:"party"`
	Type      string    `yaml:"type"`
	Status    string    `yaml:"status"`
	Amount    XOF       `yaml:"amount"`
	Date      time.Time `yaml:"date"`
}

// EmailFolder values.
var EmailFolder = NewLabelTable(
	Entry{"inbox", "Réception", "blue"},
	Entry{"sent", "Envoyés", "green"},
	Entry{"draft", "Brouillons", "yellow"},
	Entry{"archived", "Archives", "gray"},
)

// Email is a message exchanged with a contact.
type Email struct {
	ID      string    `yaml:"id"`
	From    string    `yaml:"from"`
	To      string    `yaml:"to"`
	Subject string    `yaml:"subject"`
	Body    string    `yaml:"body"`
	Folder  string    `yaml:"folder"`
	Read    bool      `yaml:"read"`
	Date    time.Time `yaml:"date"`
}

// ReadFlag returns the YesNo value of Read.
func (e Email) ReadFlag() string {
	if e.Read {
		return "yes"
	}
	return "no"
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
