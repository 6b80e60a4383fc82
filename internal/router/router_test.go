package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, *[]string) {
	t.Helper()

	var visited []string
	panel := func(name string) Panel {
		return Panel{
			Name: name,
			Run: func(_ context.Context, args []string) int {
				visited = append(visited, name)
				return len(args)
			},
		}
	}

	r := New("home")
	r.Register(panel("home"))
	r.Register(panel("about"), "info")
	r.Register(panel("contact"), "mail")

	return r, &visited
}

func TestResolve(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		key      string
		expected string
		found    bool
	}{
		{key: "home", expected: "home", found: true},
		{key: "about", expected: "about", found: true},
		{key: "/contact", expected: "contact", found: true},
		{key: "ABOUT", expected: "about", found: true},
		{key: "info", expected: "about", found: true},
		{key: "mail", expected: "contact", found: true},
		{key: "", expected: "home", found: false},
		{key: "/", expected: "home", found: false},
		{key: "unknown", expected: "home", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, found := r.Resolve(tt.key)
			assert.Equal(t, tt.expected, p.Name)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestDispatch(t *testing.T) {
	r, visited := newTestRouter(t)

	code := r.Dispatch(context.Background(), []string{"about", "a", "b"})
	assert.Equal(t, 2, code, "panel receives arguments after the key")

	code = r.Dispatch(context.Background(), []string{"--flag"})
	assert.Equal(t, 1, code, "fallback receives all arguments")

	code = r.Dispatch(context.Background(), nil)
	assert.Equal(t, 0, code)

	assert.Equal(t, []string{"about", "home", "home"}, *visited)
}

func TestDispatch_NoFallbackRegistered(t *testing.T) {
	r := New("home")
	assert.Equal(t, 2, r.Dispatch(context.Background(), []string{"x"}))
}

func TestPanels_Sorted(t *testing.T) {
	r, _ := newTestRouter(t)

	names := make([]string, 0)
	for _, p := range r.Panels() {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"about", "contact", "home"}, names)
}

func TestRegister_Duplicate(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Panics(t, func() { r.Register(Panel{Name: "home"}) })
	assert.Panics(t, func() { r.Register(Panel{Name: "other"}, "info") })
	require.NotPanics(t, func() { r.Register(Panel{Name: "other"}, "misc") })
}

func TestRegister_NamesAndAliasesShareKeys(t *testing.T) {
	tests := []struct {
		name    string
		panel   Panel
		aliases []string
	}{
		{name: "alias equals panel name", panel: Panel{Name: "extra"}, aliases: []string{"about"}},
		{name: "name equals alias", panel: Panel{Name: "Info"}},
		{name: "alias equals own name", panel: Panel{Name: "extra"}, aliases: []string{"extra"}},
		{name: "repeated alias", panel: Panel{Name: "extra"}, aliases: []string{"x", "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t)

			assert.Panics(t, func() { r.Register(tt.panel, tt.aliases...) })

			// Nothing was registered and existing keys still resolve
			_, found := r.Resolve("extra")
			assert.False(t, found)
			p, found := r.Resolve("about")
			assert.True(t, found)
			assert.Equal(t, "about", p.Name)
			p, _ = r.Resolve("info")
			assert.Equal(t, "about", p.Name)
		})
	}
}
