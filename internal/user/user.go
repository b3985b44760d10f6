package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/clovera/admin-api/internal"
)

// Status is a staffing user's lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusBanned   Status = "banned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusRejected, StatusBanned:
		return true
	}
	return false
}

// Role is one of the fixed staffing roles assignable on approval.
type Role string

const (
	RoleNurse                 Role = "Nurse"
	RoleCNA                   Role = "CNA"
	RoleChargeNurse           Role = "Charge Nurse"
	RoleDoctor                Role = "Doctor"
	RoleManager               Role = "Manager"
	RolePhysicalTherapist     Role = "Physical Therapist"
	RoleSpeechTherapist       Role = "Speech Therapist"
	RoleOccupationalTherapist Role = "Occupational Therapist"
	RoleRespiratoryTherapist  Role = "Respiratory Therapist"
)

// Roles lists every assignable role, in display order.
var Roles = []Role{
	RoleNurse,
	RoleCNA,
	RoleChargeNurse,
	RoleDoctor,
	RoleManager,
	RolePhysicalTherapist,
	RoleSpeechTherapist,
	RoleOccupationalTherapist,
	RoleRespiratoryTherapist,
}

func ParseRole(value string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == value {
			return r, true
		}
	}
	return "", false
}

type DocumentType string

const (
	DocumentTypeID          DocumentType = "ID"
	DocumentTypeLicense     DocumentType = "License"
	DocumentTypeCertificate DocumentType = "Certificate"
	DocumentTypeDegree      DocumentType = "Degree"
	DocumentTypeReference   DocumentType = "Reference"
)

// Document is owned exclusively by its user; it has no lifecycle of its own
// beyond the verified flag flipped during review.
type Document struct {
	ID         string       `json:"id"`
	Type       DocumentType `json:"type"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	UploadDate time.Time    `json:"upload_date"`
	Verified   bool         `json:"verified"`
}

type User struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      *Role      `json:"role,omitempty"`
	Status    Status     `json:"status"`
	JoinDate  time.Time  `json:"join_date"`
	Address   string     `json:"address,omitempty"`
	City      string     `json:"city,omitempty"`
	State     string     `json:"state,omitempty"`
	ZipCode   string     `json:"zip_code,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	Documents []Document `json:"documents,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CheckInvariant enforces the role/status coupling: a pending user has no
// role yet, and assigning one is exactly the approval transition; an active
// user always has one.
func (u *User) CheckInvariant() error {
	if !u.Status.Valid() {
		return fmt.Errorf("user %s: invalid status %q", u.ID, u.Status)
	}
	if u.Status == StatusPending && u.Role != nil {
		return fmt.Errorf("user %s: pending user must not have a role", u.ID)
	}
	if u.Status == StatusActive && u.Role == nil {
		return fmt.Errorf("user %s: active user must have a role", u.ID)
	}
	return nil
}

// Approve moves a pending user to active, assigning the given role.
// Reapplying it to an already-active user is a no-op success.
func (u *User) Approve(role Role) error {
	switch u.Status {
	case StatusPending:
		u.Role = &role
		u.Status = StatusActive
		return nil
	case StatusActive:
		return nil
	case StatusRejected, StatusBanned:
		return internal.ErrInvalidUserStatus
	}
	return internal.ErrInvalidUserStatus
}

// Reject moves a pending user to the terminal rejected state. The record is
// retained with the terminal status rather than deleted.
func (u *User) Reject() error {
	switch u.Status {
	case StatusPending:
		u.Status = StatusRejected
		return nil
	case StatusRejected:
		return nil
	case StatusActive, StatusBanned:
		return internal.ErrInvalidUserStatus
	}
	return internal.ErrInvalidUserStatus
}

// Ban moves an active user to banned. Banning a pending user is refused:
// it would leave a non-pending user without a role.
func (u *User) Ban() error {
	switch u.Status {
	case StatusActive:
		u.Status = StatusBanned
		return nil
	case StatusBanned:
		return nil
	case StatusPending, StatusRejected:
		return internal.ErrInvalidUserStatus
	}
	return internal.ErrInvalidUserStatus
}

// Unban is the symmetric inverse of Ban; the role is kept across the pair.
func (u *User) Unban() error {
	switch u.Status {
	case StatusBanned:
		u.Status = StatusActive
		return nil
	case StatusActive:
		return nil
	case StatusPending, StatusRejected:
		return internal.ErrInvalidUserStatus
	}
	return internal.ErrInvalidUserStatus
}

// Clone returns a deep copy so store snapshots cannot alias live records.
func (u *User) Clone() *User {
	clone := *u
	if u.Role != nil {
		role := *u.Role
		clone.Role = &role
	}
	if u.Documents != nil {
		clone.Documents = make([]Document, len(u.Documents))
		copy(clone.Documents, u.Documents)
	}
	return &clone
}

// NewUser validates and builds a user record, enforcing the role/status
// invariant at construction time.
func NewUser(u User) (*User, error) {
	if u.ID == "" {
		return nil, errors.New("user id is required")
	}
	if err := u.CheckInvariant(); err != nil {
		return nil, err
	}
	return &u, nil
}
