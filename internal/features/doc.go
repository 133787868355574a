// Package features decides which optional services are composed into the
// runtime and registers them.
//
// The known features and their soft dependencies are declared in a catalog.
// Which of them are enabled is runtime data, passed in as a Set built from
// configuration. A soft dependency never blocks anything: enabling ai while
// auth is off yields a warning from ValidateFeatureDependencies and ai is
// still loaded.
//
// LoadServices registers the enabled services in dependency order. Services
// that do not depend on each other are constructed concurrently, one wave at
// a time, and a failure of one service does not stop the others.
package features
