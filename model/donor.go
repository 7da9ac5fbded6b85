// model/donor.go
package model

const (
	DonorEventUpdate = "UPDATE"
	DonorEventDelete = "DELETE"
)

// DonorAvailabilityEvent is pushed to realtime subscribers when a donor row
// changes through the gateway.
type DonorAvailabilityEvent struct {
	Event       string `json:"event"`
	DonorID     string `json:"donor_id"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}
