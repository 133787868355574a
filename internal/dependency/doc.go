// Package dependency resolves startup ordering for collabkit services.
//
// A Graph maps each service to the services it requires. The Resolver
// answers every ordering question the runtime asks about such a graph
// without mutating it or keeping state between calls.
//
// # Dependency Rules
//
//  1. No circular dependencies allowed. Resolve runs a depth-first cycle
//     search before sorting and reports the cycle as a closed chain,
//     "a -> b -> c -> a".
//  2. Every dependency must itself be a node. Unknown names are reported
//     together as a MissingDependenciesError; they are never ignored.
//  3. A service can start once all of its transitive dependencies run
//     (CanStart, NextStartable).
//
// # Operations
//
// Resolve: Kahn's algorithm, ties broken lexically.
//
// Priorities: index of each service in the Resolve order.
//
// StartupBatches: the order grouped into waves that can start concurrently.
//
// DirectDependencies / AllDependencies: declared edges and transitive closure.
//
// Report: all of the above in one structure with a text rendering.
//
// # Usage Example
//
//	resolver := dependency.NewResolver(dependency.WithCache(0))
//
//	graph := dependency.Graph{
//	    "database": {},
//	    "cache":    {},
//	    "auth":     {"database"},
//	    "api":      {"auth", "cache"},
//	}
//
//	order, err := resolver.Resolve(graph)
//	// order: [cache database auth api]
//
// # Thread Safety
//
// Resolver is safe for concurrent use. The optional cache is keyed by the
// graph's content; concurrent resolutions of the same graph share a single
// computation.
//
// # Error Handling
//
// Resolver errors are structural and never transient: CircularDependencyError
// and MissingDependenciesError from the api package, and NotFoundError from
// DirectDependencies. They are returned unchanged and never retried.
package dependency
