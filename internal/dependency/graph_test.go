package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Nodes(t *testing.T) {
	g := Graph{"c": nil, "a": nil, "b": {"a"}}
	assert.Equal(t, []string{"a", "b", "c"}, g.Nodes())
	assert.Empty(t, Graph{}.Nodes())
}

func TestGraph_Clone(t *testing.T) {
	g := Graph{"a": {"b"}, "b": {}}
	clone := g.Clone()
	clone["a"][0] = "changed"
	clone["c"] = nil

	assert.Equal(t, "b", g["a"][0], "clone must not share edge slices")
	assert.False(t, g.Has("c"))
}

func TestGraph_Dependents(t *testing.T) {
	g := Graph{
		"k8s":  nil,
		"pf":   {"k8s"},
		"mcp1": {"pf"},
		"mcp2": {"pf", "k8s"},
	}

	tests := []struct {
		node     string
		expected []string
	}{
		{"k8s", []string{"mcp2", "pf"}},
		{"pf", []string{"mcp1", "mcp2"}},
		{"mcp1", nil},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.node, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.Dependents(tt.node))
		})
	}
}

func TestGraph_Merge(t *testing.T) {
	base := Graph{"api": {"auth"}, "auth": nil}
	extra := Graph{"api": {"auth", "cache"}, "cache": nil}

	merged := base.Merge(extra)

	assert.Equal(t, []string{"auth", "cache"}, merged["api"])
	assert.Equal(t, []string{}, merged["cache"])
	assert.Equal(t, []string{"auth"}, base["api"], "merge must not modify the receiver")
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a")
	s.Add("c")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	assert.True(t, NewSet("a").SubsetOf(s))
	assert.True(t, NewSet().SubsetOf(s))
	assert.False(t, NewSet("a", "z").SubsetOf(s))
}
