// Package adapters wraps the platform services in api.ServiceAdapter facades
// and assembles them into an api.Dispatcher.
//
// Every adapter owns its service instance and reports availability straight
// from the service's IsConfigured, so resetting a service makes its adapter
// unavailable without touching the dispatcher.
package adapters
