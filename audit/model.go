// audit/model.go
package audit

import "time"

// Entry is a write-once record of a privileged action.
type Entry struct {
	ID           string         `json:"id"`
	ActorID      string         `json:"actor_id"`
	ActorEmail   string         `json:"actor_email"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Details      map[string]any `json:"details"`
	CreatedAt    time.Time      `json:"created_at"`
}

const (
	// MaxRecent caps the read-side view.
	MaxRecent = 100
)
