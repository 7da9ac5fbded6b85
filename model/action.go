// model/action.go
package model

// AdminAction names a privileged mutation. Matching is case-sensitive.
type AdminAction string

const (
	ActionDeleteBloodRequest       AdminAction = "DELETE_BLOOD_REQUEST"
	ActionDeleteDonor              AdminAction = "DELETE_DONOR"
	ActionUpdateBloodRequestStatus AdminAction = "UPDATE_BLOOD_REQUEST_STATUS"
	ActionToggleDonorAvailability  AdminAction = "TOGGLE_DONOR_AVAILABILITY"
	ActionGrantRole                AdminAction = "GRANT_ROLE"
	ActionRevokeRole               AdminAction = "REVOKE_ROLE"

	// ActionDeleteUser is only recorded by the user-deletion gateway.
	ActionDeleteUser AdminAction = "DELETE_USER"
)

type AdminActionRequest struct {
	Action       AdminAction    `json:"action" binding:"required"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceId" binding:"required"`
	Data         map[string]any `json:"data,omitempty"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// ActionOutcome is what a successful action reports back to the caller and
// to the audit log.
type ActionOutcome struct {
	Message string         `json:"message"`
	Details map[string]any `json:"-"`
}
