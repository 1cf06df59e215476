package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PromptMode is what the prompt's text is for.
type PromptMode int

const (
	PromptCommand PromptMode = iota
	PromptFilter
)

type promptStyle struct {
	label string
	title string
	// allowEmpty submits an empty line instead of ignoring it.
	allowEmpty bool
}

var promptStyles = map[PromptMode]promptStyle{
	PromptCommand: {label: ":", title: " Commande "},
	PromptFilter:  {label: "/", title: " Recherche ", allowEmpty: true},
}

const historySize = 20

// Prompt is the command and search input. Up and Down walk back through
// the lines submitted in the same mode.
type Prompt struct {
	*tview.InputField
	mode     PromptMode
	history  map[PromptMode][]string
	cursor   int
	onSubmit func(mode PromptMode, text string)
	onCancel func()
}

// NewPrompt creates the input.
func NewPrompt(theme *Theme) *Prompt {
	input := tview.NewInputField()
	input.SetBorder(true)
	input.SetBorderColor(theme.PromptBorderColor)
	input.SetTitleColor(theme.TitleColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)

	p := &Prompt{InputField: input, history: make(map[PromptMode][]string)}
	input.SetDoneFunc(p.done)
	input.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyUp:
			p.recall(-1)
			return nil
		case tcell.KeyDown:
			p.recall(1)
			return nil
		}
		return ev
	})
	return p
}

func (p *Prompt) done(key tcell.Key) {
	text := p.GetText()
	p.SetText("")
	switch key {
	case tcell.KeyEnter:
		if text == "" && !promptStyles[p.mode].allowEmpty {
			return
		}
		p.remember(text)
		if p.onSubmit != nil {
			p.onSubmit(p.mode, text)
		}
	case tcell.KeyEscape:
		if p.onCancel != nil {
			p.onCancel()
		}
	}
}

func (p *Prompt) remember(text string) {
	if text == "" {
		return
	}
	h := p.history[p.mode]
	if len(h) > 0 && h[len(h)-1] == text {
		return
	}
	h = append(h, text)
	if len(h) > historySize {
		h = h[len(h)-historySize:]
	}
	p.history[p.mode] = h
}

// recall moves the history cursor by step and shows that entry. Moving
// past the newest entry clears the line.
func (p *Prompt) recall(step int) {
	h := p.history[p.mode]
	if len(h) == 0 {
		return
	}
	p.cursor = max(0, min(len(h), p.cursor+step))
	if p.cursor == len(h) {
		p.SetText("")
		return
	}
	p.SetText(h[p.cursor])
}

// History returns the lines submitted in mode, oldest first.
func (p *Prompt) History(mode PromptMode) []string {
	return append([]string(nil), p.history[mode]...)
}

// SetOnSubmit sets the callback of Enter.
func (p *Prompt) SetOnSubmit(fn func(mode PromptMode, text string)) {
	p.onSubmit = fn
}

// SetOnCancel sets the callback of Esc.
func (p *Prompt) SetOnCancel(fn func()) {
	p.onCancel = fn
}

// ActivateWith switches to mode with text pre-filled, e.g. the current
// search term.
func (p *Prompt) ActivateWith(mode PromptMode, text string) {
	style := promptStyles[mode]
	p.mode = mode
	p.cursor = len(p.history[mode])
	p.SetLabel(style.label)
	p.SetTitle(style.title)
	p.SetText(text)
}

// Mode returns the current mode.
func (p *Prompt) Mode() PromptMode {
	return p.mode
}
