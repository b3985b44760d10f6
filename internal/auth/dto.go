package auth

import "github.com/clovera/admin-api/internal"

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields before the credential check runs.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// SessionView is the read model for GET /auth/session: the gate's state
// plus the admin when one is signed in.
type SessionView struct {
	State State  `json:"state"`
	Admin *Admin `json:"admin,omitempty"`
}
