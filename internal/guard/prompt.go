package guard

import (
	"fmt"
	"strings"
)

// DefaultTitle is used when a request carries no title.
const DefaultTitle = "Confirmer la suppression"

// Request describes the record being deleted for the confirmation dialog.
// Title and Message are optional.
type Request struct {
	Title    string
	ItemName string
	ItemType string
	Message  string
}

// Prompt is what the confirmation dialog renders.
type Prompt struct {
	Title    string
	ItemName string
	ItemType string
	Message  string
}

// Compose resolves the dialog copy. A custom message is used verbatim;
// otherwise a default warning naming the item is synthesized.
func Compose(r Request) Prompt {
	p := Prompt{
		Title:    r.Title,
		ItemName: r.ItemName,
		ItemType: r.ItemType,
		Message:  r.Message,
	}
	if strings.TrimSpace(p.Title) == "" {
		p.Title = DefaultTitle
	}
	if strings.TrimSpace(p.Message) == "" {
		p.Message = DefaultMessage(r.ItemType, r.ItemName)
	}
	return p
}

// DefaultMessage states that removing the named item is permanent and takes
// its associated data with it.
func DefaultMessage(itemType, itemName string) string {
	subject := fmt.Sprintf("« %s »", itemName)
	if itemType != "" {
		subject += fmt.Sprintf(" (%s)", itemType)
	}
	return fmt.Sprintf("Supprimer %s ? Cette action est irréversible : cet élément et toutes ses données associées seront définitivement supprimés.", subject)
}
