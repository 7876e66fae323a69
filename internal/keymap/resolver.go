package keymap

import (
	"slices"
	"strings"
)

// Resolver maps the key strings bubbletea reports to the actions of one
// screen. A key bound twice resolves to the later binding.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string // in binding order, for hints
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if prev, ok := r.actions[key]; ok && prev != b.Action {
				r.keys[prev] = slices.DeleteFunc(r.keys[prev], func(k string) bool { return k == key })
			}
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint formats the first key bound to action for on-screen labels, e.g.
// "F1", "Space" or "Ctrl+C". It returns "" for an unbound action.
func (r *Resolver) Hint(action Action) string {
	keys := r.keys[action]
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "Space"
	}
	parts := strings.Split(keys[0], "+")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}
