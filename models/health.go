package models

// HealthCheckResponse returns the health check response struct,
// leveraged by the deployment's liveness probe
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
