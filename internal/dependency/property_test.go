package dependency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/giantswarm/collabkit/internal/api"
)

// drawAcyclicGraph builds a DAG where node i may only depend on nodes j < i.
// Node names are shuffled through a permutation so lexical order does not
// coincide with dependency order.
func drawAcyclicGraph(t *rapid.T) Graph {
	n := rapid.IntRange(0, 9).Draw(t, "nodes")
	names := rapid.Permutation(nodeNames(n)).Draw(t, "names")

	g := make(Graph, n)
	for i := 0; i < n; i++ {
		deps := []string{}
		for j := 0; j < i; j++ {
			if rapid.Bool().Draw(t, fmt.Sprintf("edge-%d-%d", i, j)) {
				deps = append(deps, names[j])
			}
		}
		g[names[i]] = deps
	}
	return g
}

func nodeNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("svc-%d", i)
	}
	return names
}

func TestProperty_ResolveIsTopologicalPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawAcyclicGraph(t)

		order, err := NewResolver().Resolve(g)
		require.NoError(t, err)
		require.Len(t, order, len(g))

		position := make(map[string]int, len(order))
		for i, name := range order {
			_, dup := position[name]
			require.False(t, dup, "node %s emitted twice", name)
			require.True(t, g.Has(name), "unknown node %s emitted", name)
			position[name] = i
		}

		for u, deps := range g {
			for _, v := range deps {
				require.Less(t, position[v], position[u], "%s must precede %s", v, u)
			}
		}
	})
}

func TestProperty_CycleChainIsClosedSimplePath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawAcyclicGraph(t)
		nodes := g.Nodes()
		if len(nodes) == 0 {
			g["solo"] = []string{"solo"}
		} else {
			// Close a cycle between two (possibly identical) nodes.
			i := rapid.IntRange(0, len(nodes)-1).Draw(t, "from")
			j := rapid.IntRange(0, len(nodes)-1).Draw(t, "to")
			g[nodes[i]] = append(g[nodes[i]], nodes[j])
			g[nodes[j]] = append(g[nodes[j]], nodes[i])
		}

		_, err := NewResolver().Resolve(g)

		var cycleErr *api.CircularDependencyError
		require.ErrorAs(t, err, &cycleErr)

		chain := cycleErr.Chain
		require.GreaterOrEqual(t, len(chain), 2)
		require.Equal(t, chain[0], chain[len(chain)-1], "chain must be closed")

		seen := make(map[string]bool)
		for _, name := range chain[:len(chain)-1] {
			require.False(t, seen[name], "node %s repeated inside chain %v", name, chain)
			seen[name] = true
		}

		for k := 0; k+1 < len(chain); k++ {
			require.Contains(t, g[chain[k]], chain[k+1], "chain step %s -> %s is not an edge", chain[k], chain[k+1])
		}
	})
}

func TestProperty_AllDependencies(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawAcyclicGraph(t)
		if len(g) == 0 {
			return
		}
		r := NewResolver()
		nodes := g.Nodes()
		x := nodes[rapid.IntRange(0, len(nodes)-1).Draw(t, "x")]

		first := r.AllDependencies(x, g)
		second := r.AllDependencies(x, g)

		require.Equal(t, first, second, "AllDependencies must be idempotent")
		require.False(t, first.Has(x), "AllDependencies must exclude the root")

		running := make(Set)
		for _, name := range nodes {
			if rapid.Bool().Draw(t, "running-"+name) {
				running.Add(name)
			}
		}
		require.Equal(t, first.SubsetOf(running), r.CanStart(x, g, running))
	})
}

func TestProperty_PrioritiesMatchOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawAcyclicGraph(t)
		r := NewResolver()

		order, err := r.Resolve(g)
		require.NoError(t, err)
		priorities, err := r.Priorities(g)
		require.NoError(t, err)

		require.Len(t, priorities, len(g))
		for i, name := range order {
			require.Equal(t, i, priorities[name])
		}
	})
}

func TestProperty_StartupBatchesRespectDependencies(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawAcyclicGraph(t)

		batches, err := NewResolver().StartupBatches(g)
		require.NoError(t, err)

		wave := make(map[string]int)
		total := 0
		for i, batch := range batches {
			for _, name := range batch {
				wave[name] = i
				total++
			}
		}
		require.Equal(t, len(g), total)

		for u, deps := range g {
			for _, v := range deps {
				require.Less(t, wave[v], wave[u])
			}
		}
	})
}
