package benchmark

import "time"

// Result is the outcome of one benchmark cycle. Durations are kept as
// float seconds so the stored JSON reads like the Prometheus series.
type Result struct {
	AppId       string    `json:"app_id"`
	AppName     string    `json:"app_name"`
	ServiceId   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Region      string    `json:"region"`
	Image       string    `json:"image"`
	PublicURL   string    `json:"public_url"`
	StartedAt   time.Time `json:"started_at"`

	// CreationSeconds is the duration of the create-service API call.
	CreationSeconds float64 `json:"creation_seconds"`
	// AllocatingSeconds is measured from the end of the create-service
	// call to the first instance seen in an active state.
	AllocatingSeconds float64 `json:"allocating_seconds"`
	// ReadySeconds is measured from the end of the create-service call
	// to the first HTTP 200 from the public URL.
	ReadySeconds float64 `json:"ready_seconds"`

	Operations []Operation `json:"operations,omitempty"`
}
