package issue

import (
	"strings"
	"time"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/user"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusOpen, StatusInProgress, StatusResolved:
		return Status(value), true
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Response is an admin reply on an issue. Responses are append-only and
// keep insertion order.
type Response struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"admin_id"`
	AdminName string    `json:"admin_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Issue is a support issue raised by a staffing user. The reporter's name
// and role are denormalized onto the record for display.
type Issue struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name"`
	UserRole    user.Role  `json:"user_role"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Responses   []Response `json:"responses,omitempty"`
}

// SetStatus moves the issue between workflow states. Any distinct pair is a
// legal transition; setting the current status again is a no-op success.
func (i *Issue) SetStatus(status Status, now time.Time) bool {
	if i.Status == status {
		return false
	}
	i.Status = status
	i.UpdatedAt = now
	return true
}

// AddResponse appends a reply. A resolved issue is a hard write-lock on its
// response list, and blank replies are refused before anything is touched.
func (i *Issue) AddResponse(resp Response) error {
	if strings.TrimSpace(resp.Text) == "" {
		return internal.ErrEmptyReply
	}
	if i.Status == StatusResolved {
		return internal.ErrIssueResolved
	}
	i.Responses = append(i.Responses, resp)
	i.UpdatedAt = resp.CreatedAt
	return nil
}

func (i *Issue) Clone() *Issue {
	clone := *i
	if i.Responses != nil {
		clone.Responses = make([]Response, len(i.Responses))
		copy(clone.Responses, i.Responses)
	}
	return &clone
}
