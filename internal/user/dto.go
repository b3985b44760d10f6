package user

import "github.com/clovera/admin-api/internal"

// ApproveUserDTO is the request payload for approving a pending user.
// Approval is the action that assigns the role.
type ApproveUserDTO struct {
	Role string `json:"role"`
}

func (d ApproveUserDTO) Validate() error {
	if d.Role == "" {
		return internal.ErrRoleRequired
	}
	if _, ok := ParseRole(d.Role); !ok {
		return internal.ErrInvalidRole
	}
	return nil
}

// ListParams are the user-list filter controls: free-text query over
// name/email plus categorical role and status constraints.
type ListParams struct {
	Query  string
	Role   string
	Status string
}
