package keys

import (
	"github.com/gdamore/tcell/v2"
	"github.com/ohadaerp/erp/internal/tui/ui"
)

// Action is one key binding.
type Action struct {
	Key  tcell.Key
	Rune rune
	// Label is how the key is shown in the menu, e.g. "Space".
	Label       string
	Description string
	Handler     func()
	Visible     bool
	// Jump shows the hint in the numeric shortcut color.
	Jump bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

type binding struct {
	name   string
	action *Action
}

// Registry holds key bindings per view plus global ones, in registration
// order.
type Registry struct {
	global []binding
	views  map[string][]binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string][]binding)}
}

// AddGlobal registers a binding active in every view. Registering a name
// again replaces the earlier binding.
func (r *Registry) AddGlobal(name string, action *Action) {
	r.global = upsert(r.global, name, action)
}

// AddView registers a view-specific binding.
func (r *Registry) AddView(view, name string, action *Action) {
	r.views[view] = upsert(r.views[view], name, action)
}

func upsert(list []binding, name string, action *Action) []binding {
	for i := range list {
		if list[i].name == name {
			list[i].action = action
			return list
		}
	}
	return append(list, binding{name: name, action: action})
}

// Hints returns the visible bindings of view followed by the global ones.
func (r *Registry) Hints(view string) []ui.MenuHint {
	var hints []ui.MenuHint
	for _, list := range [][]binding{r.views[view], r.global} {
		for _, b := range list {
			if b.action.Visible {
				hints = append(hints, ui.MenuHint{
					Key:         b.action.Label,
					Description: b.action.Description,
					Jump:        b.action.Jump,
				})
			}
		}
	}
	return hints
}

// HandleEvent runs the first binding of view, then of the globals, that
// matches ev. It reports whether one did.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, list := range [][]binding{r.views[view], r.global} {
		for _, b := range list {
			if b.action.Matches(ev) {
				if b.action.Handler != nil {
					b.action.Handler()
				}
				return true
			}
		}
	}
	return false
}
