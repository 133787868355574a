package api

// Canonical names of the subsystems known to the runtime. They are used as
// feature names, registry keys and adapter names alike.
const (
	ServiceCommunication = "communication"
	ServiceHR            = "hr"
	ServiceDocs          = "docs"
	ServiceAI            = "ai"
	ServiceAuth          = "auth"
)

// KnownServices lists the canonical service names in catalog order.
func KnownServices() []string {
	return []string{ServiceAuth, ServiceCommunication, ServiceHR, ServiceDocs, ServiceAI}
}
