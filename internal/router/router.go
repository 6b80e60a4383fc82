// Package router maps an opaque key to a panel, falling back to a default.
package router

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Panel is a screen of the application
type Panel struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, args []string) int
}

// Router resolves keys to panels
type Router struct {
	panels   map[string]Panel
	aliases  map[string]string
	fallback string
}

// New creates a Router whose unknown keys resolve to the fallback panel.
// The fallback must be registered before Resolve is called.
func New(fallback string) *Router {
	return &Router{
		panels:   make(map[string]Panel),
		aliases:  make(map[string]string),
		fallback: fallback,
	}
}

// Register adds a panel under its name and any aliases. Names and aliases
// share one key space; it panics on a key that is already taken, which is a
// programming error.
func (r *Router) Register(p Panel, aliases ...string) {
	keys := append([]string{p.Name}, aliases...)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		nk := normalize(k)
		if seen[nk] || r.taken(nk) {
			panic(fmt.Sprintf("router: duplicate key %q", k))
		}
		seen[nk] = true
	}

	key := normalize(p.Name)
	r.panels[key] = p
	for _, alias := range aliases {
		r.aliases[normalize(alias)] = key
	}
}

func (r *Router) taken(key string) bool {
	_, isPanel := r.panels[key]
	_, isAlias := r.aliases[key]
	return isPanel || isAlias
}

// Resolve returns the panel for key. Empty or unknown keys resolve to the
// fallback panel; found reports whether key matched a registered panel.
func (r *Router) Resolve(key string) (panel Panel, found bool) {
	k := normalize(key)
	if target, ok := r.aliases[k]; ok {
		k = target
	}

	if p, ok := r.panels[k]; ok && k != "" {
		return p, true
	}

	return r.panels[normalize(r.fallback)], false
}

// Panels returns all registered panels sorted by name
func (r *Router) Panels() []Panel {
	out := make([]Panel, 0, len(r.panels))
	for _, p := range r.panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch resolves args[0] and runs the matching panel with the remaining
// arguments. When args[0] is not a known key the fallback panel receives all
// arguments.
func (r *Router) Dispatch(ctx context.Context, args []string) int {
	var key string
	if len(args) > 0 {
		key = args[0]
	}

	panel, found := r.Resolve(key)
	if panel.Run == nil {
		return 2
	}

	if found {
		return panel.Run(ctx, args[1:])
	}
	return panel.Run(ctx, args)
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(key, "/")))
}
