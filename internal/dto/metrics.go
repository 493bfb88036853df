package dto

import "time"

// MetricsSnapshot is a lightweight aggregate of service activity for API
// consumption, alongside the full Prometheus exposition.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	GenerationsTotal         uint64    `json:"generations_total"`
	AverageGenerationMs      float64   `json:"average_generation_ms"`
	SessionsScheduled        uint64    `json:"sessions_scheduled"`
	SessionsUnscheduled      uint64    `json:"sessions_unscheduled"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
