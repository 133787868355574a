// Package logging provides the leveled, subsystem-tagged logger used across
// collabkit.
//
// The package wraps Go's standard slog package behind four package-level
// functions so that call sites stay short and uniform:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "Loaded configuration from %s", path)
//	logging.Debug("Resolver", "Resolved %d services", len(order))
//	logging.Warn("FeatureLoader", "Feature %s requires %s", "ai", "auth")
//	logging.Error("Registry", err, "Failed to register %s", name)
//
// Every record carries a "subsystem" attribute and, for Error and WarnErr,
// an "error" attribute. Output is text by default; InitJSON switches to
// slog's JSON handler.
//
// # Subsystems
//
//   - Bootstrap: application construction
//   - ConfigLoader: configuration loading and validation
//   - Resolver: dependency resolution
//   - Registry: service registration
//   - FeatureLoader: feature-gated registration
//   - AdapterFactory: adapter construction and service configuration
//   - Dispatcher: adapter lookup
//
// # Uninitialized use
//
// When the package is used as a library without calling Init, debug and info
// records are dropped and warnings and errors go to stderr, so failures are
// never silently swallowed.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Init may be called again to
// replace the logger; in-flight calls observe either the old or new logger.
package logging
