// Package platform contains the concrete services composed by the runtime.
//
// Each service only tracks whether it has been configured and with what. The
// request builders of the individual platform APIs live elsewhere; a service
// here is the handle they hang off.
//
// A service moves from unconfigured to configured through Configure and back
// through Reset. Availability as seen by adapters is always derived from
// IsConfigured, never cached.
package platform
