package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the admin-console state machines. Each successful
// transition publishes one of these; subscribers turn them into operator
// notifications.
const (
	TypeUserApproved       = "user.approved"
	TypeUserRejected       = "user.rejected"
	TypeUserBanned         = "user.banned"
	TypeUserUnbanned       = "user.unbanned"
	TypeDocumentVerified   = "user.document_verified"
	TypeIssueStatusChanged = "issue.status_changed"
	TypeIssueReplied       = "issue.replied"
	TypeAdminLoggedIn      = "auth.login"
	TypeAdminLoggedOut     = "auth.logout"
)

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func NewUserApproved(userID, role string) BaseEvent {
	return newEvent(TypeUserApproved, map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
}

func NewUserRejected(userID string) BaseEvent {
	return newEvent(TypeUserRejected, map[string]interface{}{
		"user_id": userID,
	})
}

func NewUserBanned(userID string) BaseEvent {
	return newEvent(TypeUserBanned, map[string]interface{}{
		"user_id": userID,
	})
}

func NewUserUnbanned(userID string) BaseEvent {
	return newEvent(TypeUserUnbanned, map[string]interface{}{
		"user_id": userID,
	})
}

func NewDocumentVerified(userID, documentID string) BaseEvent {
	return newEvent(TypeDocumentVerified, map[string]interface{}{
		"user_id":     userID,
		"document_id": documentID,
	})
}

func NewIssueStatusChanged(issueID, status string) BaseEvent {
	return newEvent(TypeIssueStatusChanged, map[string]interface{}{
		"issue_id": issueID,
		"status":   status,
	})
}

func NewIssueReplied(issueID, adminID string) BaseEvent {
	return newEvent(TypeIssueReplied, map[string]interface{}{
		"issue_id": issueID,
		"admin_id": adminID,
	})
}

func NewAdminLoggedIn(adminID string) BaseEvent {
	return newEvent(TypeAdminLoggedIn, map[string]interface{}{
		"admin_id": adminID,
	})
}

func NewAdminLoggedOut(adminID string) BaseEvent {
	return newEvent(TypeAdminLoggedOut, map[string]interface{}{
		"admin_id": adminID,
	})
}
