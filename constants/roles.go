package constants

// Marketplace roles carried in the identity service's JWT claims.
const (
	RoleClient   = "client"
	RoleProvider = "provider"
	RoleAdmin    = "admin"

	// RoleAny allows any authenticated user through a role gate.
	RoleAny = "any"
)
