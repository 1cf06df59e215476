package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Button labels of the confirmation dialog.
const (
	ConfirmLabel = "Supprimer"
	CancelLabel  = "Annuler"
)

// Confirm is the deletion dialog: a modal with the prompt text and an
// inline error line shown after a failed attempt.
type Confirm struct {
	*tview.Modal
	theme     *Theme
	title     string
	message   string
	onConfirm func()
	onCancel  func()
}

// NewConfirm creates the dialog.
func NewConfirm(theme *Theme) *Confirm {
	m := tview.NewModal().
		AddButtons([]string{ConfirmLabel, CancelLabel})
	m.SetBackgroundColor(theme.BgColor)
	m.SetTextColor(theme.FgColor)
	m.SetButtonBackgroundColor(theme.TableCursorBg)
	m.SetButtonTextColor(theme.TableCursorFg)

	c := &Confirm{Modal: m, theme: theme}
	m.SetDoneFunc(func(_ int, label string) {
		switch label {
		case ConfirmLabel:
			if c.onConfirm != nil {
				c.onConfirm()
			}
		default:
			// Cancel button or Esc.
			if c.onCancel != nil {
				c.onCancel()
			}
		}
	})
	return c
}

// SetOnConfirm sets the callback of the "Supprimer" button.
func (c *Confirm) SetOnConfirm(fn func()) { c.onConfirm = fn }

// SetOnCancel sets the callback of "Annuler" and Esc.
func (c *Confirm) SetOnCancel(fn func()) { c.onCancel = fn }

// Show fills the dialog and focuses the cancel button.
func (c *Confirm) Show(title, message string) {
	c.title = title
	c.message = message
	c.render(nil)
	c.SetFocus(1)
}

// ShowError keeps the prompt and adds err under it.
func (c *Confirm) ShowError(err error) {
	c.render(err)
}

func (c *Confirm) render(err error) {
	text := fmt.Sprintf("[%s::b]%s[-:-:-]\n\n%s", Tag(c.theme.TitleColor), tview.Escape(c.title), tview.Escape(c.message))
	if err != nil {
		text += fmt.Sprintf("\n\n[%s]Échec : %s[-]", Tag(c.theme.FlashErrColor), tview.Escape(err.Error()))
	}
	c.SetText(text)
}

// Text returns the dialog text without markup.
func (c *Confirm) Text() (title, message string) {
	return c.title, c.message
}
