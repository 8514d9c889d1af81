package config

import "strings"

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps "METHOD /route/template" to its required security level.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Operational - Public
	"GET /healthz": SecurityPublic,
	"GET /metrics": SecurityPublic,

	// Catalogue - Public
	"GET /api/v1/kinds": SecurityPublic,

	// Dashboard - Access Protected
	"GET /api/v1/dashboard": SecurityAccess,

	// Vehicles - Access Protected
	"GET /api/v1/vehicles":                SecurityAccess,
	"POST /api/v1/vehicles":               SecurityAccess,
	"GET /api/v1/vehicles/{id}":           SecurityAccess,
	"PUT /api/v1/vehicles/{id}":           SecurityAccess,
	"DELETE /api/v1/vehicles/{id}":        SecurityAccess,
	"PATCH /api/v1/vehicles/{id}/mileage": SecurityAccess,
	"GET /api/v1/vehicles/{id}/services":  SecurityAccess,
	"POST /api/v1/vehicles/{id}/services": SecurityAccess,
	"GET /api/v1/vehicles/{id}/reminders": SecurityAccess,

	// Service records - Access Protected
	"GET /api/v1/services/{id}":    SecurityAccess,
	"PUT /api/v1/services/{id}":    SecurityAccess,
	"DELETE /api/v1/services/{id}": SecurityAccess,

	// Reminders - Access Protected
	"GET /api/v1/reminders":                SecurityAccess,
	"POST /api/v1/reminders/{id}/complete": SecurityAccess,
	"DELETE /api/v1/reminders/{id}":        SecurityAccess,

	// Documents - Access Protected
	"POST /api/v1/documents": SecurityAccess,
	"GET /api/v1/documents":  SecurityAccess,
}

// GetSecurityLevel returns the security level for a method and route template
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[strings.ToUpper(method)+" "+pathTemplate]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
