package ui

import "github.com/rivo/tview"

// Component is a page of the app. Name is its breadcrumb label and may
// change with the record it shows.
type Component interface {
	tview.Primitive
	Name() string
}

// Pages is the navigation stack of the app. The bottom page is the root
// and cannot be popped. At most one overlay, such as a dialog, is drawn
// above the top page without joining the stack.
type Pages struct {
	*tview.Pages
	components map[string]Component
	stack      []string
	overlay    string
	onChange   func(trail []string)
}

// NewPages creates an empty navigator.
func NewPages() *Pages {
	return &Pages{
		Pages:      tview.NewPages(),
		components: make(map[string]Component),
	}
}

// Register adds c as a hidden page called name.
func (p *Pages) Register(name string, c Component) {
	p.components[name] = c
	p.AddPage(name, c, true, false)
}

// RegisterOverlay adds an unresized hidden page for ShowOverlay.
func (p *Pages) RegisterOverlay(name string, prim tview.Primitive) {
	p.AddPage(name, prim, false, false)
}

// SetOnChange is called with the breadcrumb trail after every move.
func (p *Pages) SetOnChange(fn func(trail []string)) {
	p.onChange = fn
}

// Push shows name above the current page.
func (p *Pages) Push(name string) {
	if top := p.Current(); top != "" {
		p.HidePage(top)
	}
	p.stack = append(p.stack, name)
	p.raise(name)
}

// Pop returns to the previous page. It reports false at the root.
func (p *Pages) Pop() bool {
	if len(p.stack) <= 1 {
		return false
	}
	p.HidePage(p.stack[len(p.stack)-1])
	p.stack = p.stack[:len(p.stack)-1]
	p.raise(p.Current())
	return true
}

// Reset makes name the only page of the stack.
func (p *Pages) Reset(name string) {
	for _, n := range p.stack {
		p.HidePage(n)
	}
	p.stack = []string{name}
	p.raise(name)
}

func (p *Pages) raise(name string) {
	p.ShowPage(name)
	p.SendToFront(name)
	if p.overlay != "" {
		p.SendToFront(p.overlay)
	}
	p.notify()
}

// Current returns the top page name, or "" when empty.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Top returns the component of the top page, or nil.
func (p *Pages) Top() Component {
	return p.components[p.Current()]
}

// Depth returns the number of stacked pages.
func (p *Pages) Depth() int {
	return len(p.stack)
}

// Stack returns a copy of the page names, root first.
func (p *Pages) Stack() []string {
	return append([]string(nil), p.stack...)
}

// Trail returns the component names of the stack, root first.
func (p *Pages) Trail() []string {
	trail := make([]string, 0, len(p.stack))
	for _, name := range p.stack {
		if c, ok := p.components[name]; ok {
			trail = append(trail, c.Name())
		} else {
			trail = append(trail, name)
		}
	}
	return trail
}

// ShowOverlay draws the overlay page name above the stack.
func (p *Pages) ShowOverlay(name string) {
	p.overlay = name
	p.ShowPage(name)
	p.SendToFront(name)
}

// HideOverlay removes the overlay, if any.
func (p *Pages) HideOverlay() {
	if p.overlay == "" {
		return
	}
	p.HidePage(p.overlay)
	p.overlay = ""
}

// OverlayOpen reports whether an overlay is shown.
func (p *Pages) OverlayOpen() bool {
	return p.overlay != ""
}

// Refresh re-sends the trail, e.g. after the top component renamed itself.
func (p *Pages) Refresh() {
	p.notify()
}

func (p *Pages) notify() {
	if p.onChange != nil {
		p.onChange(p.Trail())
	}
}
