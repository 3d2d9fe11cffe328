package domain

import "time"

type HealthState string

const (
	HealthUp   HealthState = "UP"
	HealthDown HealthState = "DOWN"
)

// AggregateStatus is derived from the worst individual check.
type AggregateStatus string

const (
	StatusAvailable          AggregateStatus = "Available"
	StatusPartiallyAvailable AggregateStatus = "Partially Available"
	StatusUnavailable        AggregateStatus = "Unavailable"
)

type CheckResult struct {
	Name    string         `json:"name"`
	Status  HealthState    `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type StatusResponse struct {
	Status    AggregateStatus   `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Checks    []CheckResult     `json:"checks"`
}

// AggregateChecks derives the overall status from individual results.
func AggregateChecks(checks []CheckResult) AggregateStatus {
	up := 0
	for _, c := range checks {
		if c.Status == HealthUp {
			up++
		}
	}

	switch {
	case up == len(checks):
		return StatusAvailable
	case up == 0:
		return StatusUnavailable
	default:
		return StatusPartiallyAvailable
	}
}
