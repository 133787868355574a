// internal/dependency/graph.go
package dependency

import (
	"sort"
)

// Graph maps a service name to the names it depends on. An edge u -> v reads
// "u requires v to be present before u". The graph is owned by the caller and
// is never mutated by this package.
type Graph map[string][]string

// Nodes returns the graph's node names in lexical order.
func (g Graph) Nodes() []string {
	nodes := make([]string, 0, len(g))
	for name := range g {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// Has reports whether name is a node of the graph.
func (g Graph) Has(name string) bool {
	_, ok := g[name]
	return ok
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for name, deps := range g {
		depsCopy := make([]string, len(deps))
		copy(depsCopy, deps)
		out[name] = depsCopy
	}
	return out
}

// Dependents returns all nodes that have a direct dependency on name, in
// lexical order.
func (g Graph) Dependents(name string) []string {
	var res []string
	for node, deps := range g {
		for _, dep := range deps {
			if dep == name {
				res = append(res, node)
				break
			}
		}
	}
	sort.Strings(res)
	return res
}

// Merge returns a new graph holding the union of the nodes and edges of g and
// other. Duplicate edges are kept once, in first-seen order.
func (g Graph) Merge(other Graph) Graph {
	out := g.Clone()
	for name, deps := range other {
		existing := out[name]
		seen := make(map[string]struct{}, len(existing))
		for _, dep := range existing {
			seen[dep] = struct{}{}
		}
		for _, dep := range deps {
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			existing = append(existing, dep)
		}
		if existing == nil {
			existing = []string{}
		}
		out[name] = existing
	}
	return out
}

// Set is a set of service names.
type Set map[string]struct{}

// NewSet builds a set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SubsetOf reports whether every member of s is in other.
func (s Set) SubsetOf(other Set) bool {
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}
