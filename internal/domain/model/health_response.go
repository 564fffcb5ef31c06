package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application.
// Components reporting UNKNOWN are disabled and do not bring the overall status down.
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
	Queue    ComponentHealthStatus `json:"queue"`
}

func ComponentUp() ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusUp,
		Details: map[string]string{"message": string(StatusUp)},
	}
}

func ComponentDown(err error) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusDown,
		Details: map[string]string{"message": err.Error()},
	}
}

func ComponentDisabled() ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusUnknown,
		Details: map[string]string{"message": "disabled"},
	}
}
