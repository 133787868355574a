package dependency

import (
	"sort"
	"time"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// Resolver answers ordering questions about dependency graphs. It keeps no
// state between calls other than an optional result cache, so one Resolver
// may be shared by any number of goroutines.
type Resolver struct {
	cache   *resultCache
	metrics *metrics.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache memoizes successful Resolve results for ttl, keyed by the graph's
// content. A ttl <= 0 keeps entries until the process exits.
func WithCache(ttl time.Duration) Option {
	return func(r *Resolver) {
		r.cache = newResultCache(ttl)
	}
}

// WithMetrics records resolution outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns every node of g ordered so that each node appears after all
// of its dependencies.
//
// Cycle detection runs first and, when it finds one, returns a
// *api.CircularDependencyError without attempting a sort. Dependencies that
// are not nodes of g yield *api.MissingDependenciesError. Ties are broken
// lexically, so the same graph always resolves to the same order.
func (r *Resolver) Resolve(g Graph) ([]string, error) {
	if r.cache == nil {
		return r.resolve(g)
	}

	order, hit, err := r.cache.resolve(g, r.resolve)
	if hit {
		r.metrics.RecordResolution(metrics.ResultCacheHit)
	}
	return order, err
}

func (r *Resolver) resolve(g Graph) ([]string, error) {
	if chain := detectCycle(g); chain != nil {
		r.metrics.RecordResolution(metrics.ResultCycle)
		err := &api.CircularDependencyError{Chain: chain}
		logging.Debug("Resolver", "%v", err)
		return nil, err
	}

	if missing := missingDependencies(g); len(missing) > 0 {
		r.metrics.RecordResolution(metrics.ResultMissing)
		return nil, &api.MissingDependenciesError{Missing: missing}
	}

	order := topologicalSort(g)
	if len(order) < len(g) {
		// Unreachable after detectCycle, kept as a second line of defence.
		r.metrics.RecordResolution(metrics.ResultCycle)
		return nil, &api.CircularDependencyError{Chain: remaining(g, order)}
	}

	r.metrics.RecordResolution(metrics.ResultOK)
	logging.Debug("Resolver", "Resolved %d services", len(order))
	return order, nil
}

// Priorities maps each node to its index in the Resolve order.
func (r *Resolver) Priorities(g Graph) (map[string]int, error) {
	order, err := r.Resolve(g)
	if err != nil {
		return nil, err
	}

	priorities := make(map[string]int, len(order))
	for i, name := range order {
		priorities[name] = i
	}
	return priorities, nil
}

// DirectDependencies returns a copy of name's declared dependencies.
func (r *Resolver) DirectDependencies(name string, g Graph) ([]string, error) {
	deps, ok := g[name]
	if !ok {
		return nil, api.NewServiceNotFoundError(name)
	}
	depsCopy := make([]string, len(deps))
	copy(depsCopy, deps)
	return depsCopy, nil
}

// AllDependencies returns every node reachable from name through dependency
// edges, excluding name itself. An unknown name yields an empty set; callers
// that need to tell the two apart should check g.Has(name) first.
func (r *Resolver) AllDependencies(name string, g Graph) Set {
	result := make(Set)
	worklist := append([]string(nil), g[name]...)

	for len(worklist) > 0 {
		last := len(worklist) - 1
		current := worklist[last]
		worklist = worklist[:last]

		if current == name || result.Has(current) {
			continue
		}
		result.Add(current)
		worklist = append(worklist, g[current]...)
	}

	return result
}

// AllDependenciesSorted is AllDependencies in lexical order.
func (r *Resolver) AllDependenciesSorted(name string, g Graph) []string {
	return r.AllDependencies(name, g).Sorted()
}

// CanStart reports whether every transitive dependency of name is running.
func (r *Resolver) CanStart(name string, g Graph, running Set) bool {
	return r.AllDependencies(name, g).SubsetOf(running)
}

// NextStartable returns the lexically first pending service that is not yet
// running and whose dependencies are all running.
func (r *Resolver) NextStartable(g Graph, running, pending Set) (string, bool) {
	for _, name := range pending.Sorted() {
		if running.Has(name) {
			continue
		}
		if r.CanStart(name, g, running) {
			return name, true
		}
	}
	return "", false
}

// StartupBatches splits the resolved order into waves. Every member of a wave
// depends only on members of earlier waves, so the members of one wave can be
// started concurrently. Waves are sorted lexically.
func (r *Resolver) StartupBatches(g Graph) ([][]string, error) {
	if _, err := r.Resolve(g); err != nil {
		return nil, err
	}

	inDegree, dependents := buildIndex(g)

	var wave []string
	for name, degree := range inDegree {
		if degree == 0 {
			wave = append(wave, name)
		}
	}
	sort.Strings(wave)

	var batches [][]string
	for len(wave) > 0 {
		batches = append(batches, wave)

		var next []string
		for _, name := range wave {
			for _, dependent := range dependents[name] {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		sort.Strings(next)
		wave = next
	}

	return batches, nil
}

// detectCycle runs a depth-first search over g and returns the first cycle it
// finds as a closed chain (first and last element equal), or nil. Roots are
// visited in lexical order and neighbours in declared order. Edges to unknown
// nodes are ignored here; missingDependencies reports them.
func detectCycle(g Graph) []string {
	visited := make(map[string]bool, len(g))
	onStack := make(map[string]bool)
	var path []string

	var visit func(node string) []string
	visit = func(node string) []string {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, dep := range g[node] {
			if !g.Has(dep) {
				continue
			}
			if onStack[dep] {
				start := 0
				for i, n := range path {
					if n == dep {
						start = i
						break
					}
				}
				chain := make([]string, 0, len(path)-start+1)
				chain = append(chain, path[start:]...)
				return append(chain, dep)
			}
			if !visited[dep] {
				if chain := visit(dep); chain != nil {
					return chain
				}
			}
		}

		path = path[:len(path)-1]
		onStack[node] = false
		return nil
	}

	for _, node := range g.Nodes() {
		if visited[node] {
			continue
		}
		if chain := visit(node); chain != nil {
			return chain
		}
	}
	return nil
}

// missingDependencies returns the sorted, de-duplicated dependency names that
// are not nodes of g.
func missingDependencies(g Graph) []string {
	missing := make(Set)
	for _, deps := range g {
		for _, dep := range deps {
			if !g.Has(dep) {
				missing.Add(dep)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return missing.Sorted()
}

// buildIndex computes the in-degree of every node (its number of declared
// dependency edges) and the reverse adjacency from a dependency to the nodes
// that require it.
func buildIndex(g Graph) (map[string]int, map[string][]string) {
	inDegree := make(map[string]int, len(g))
	dependents := make(map[string][]string, len(g))
	for name, deps := range g {
		inDegree[name] += len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], name)
		}
	}
	return inDegree, dependents
}

// topologicalSort is Kahn's algorithm. The ready queue is kept sorted so the
// lexically smallest ready node is emitted first.
func topologicalSort(g Graph) []string {
	inDegree, dependents := buildIndex(g)

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(g))
	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		order = append(order, current)

		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = insertSorted(ready, dependent)
			}
		}
	}

	return order
}

func insertSorted(s []string, v string) []string {
	i := sort.SearchStrings(s, v)
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// remaining lists the nodes a partial order failed to emit.
func remaining(g Graph, order []string) []string {
	emitted := NewSet(order...)
	var rest []string
	for _, name := range g.Nodes() {
		if !emitted.Has(name) {
			rest = append(rest, name)
		}
	}
	return rest
}
