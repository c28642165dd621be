package ports

import "context"

// HealthStatus represents the health of one component
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Error     string                 `json:"error,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// HealthChecker defines the contract for component health checks
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}
