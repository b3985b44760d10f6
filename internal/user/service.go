package user

import (
	"context"
	"log/slog"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/core/events"
	"github.com/clovera/admin-api/internal/filter"
)

// Repository defines the data access methods for users. Mutate applies fn
// to the live record under the store's writer lock so every transition is a
// single atomic update.
type Repository interface {
	List() []*User
	Get(id string) (*User, error)
	Mutate(id string, fn func(*User) error) (*User, error)
}

// Publisher emits transition notifications to whoever is listening.
type Publisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

// Service governs the user lifecycle state machine and the list screens.
type Service struct {
	repo   Repository
	bus    Publisher
	logger *slog.Logger
}

func NewService(repo Repository, bus Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func queryFields() []filter.Field[*User] {
	return []filter.Field[*User]{
		func(u *User) string { return u.FullName() },
		func(u *User) string { return u.Email },
	}
}

func roleField(u *User) string {
	if u.Role == nil {
		return ""
	}
	return string(*u.Role)
}

// ListUsers returns users matching the query and categorical filters,
// preserving store order.
func (s *Service) ListUsers(p ListParams) []*User {
	return filter.Apply(s.repo.List(), filter.Criteria[*User]{
		Query:       p.Query,
		QueryFields: queryFields(),
		Exact: []filter.ExactMatch[*User]{
			{Value: p.Role, Field: roleField},
			{Value: p.Status, Field: func(u *User) string { return string(u.Status) }},
		},
	})
}

// PendingUsers returns the approval queue, optionally narrowed by query.
func (s *Service) PendingUsers(query string) []*User {
	return filter.Apply(s.repo.List(), filter.Criteria[*User]{
		Query:       query,
		QueryFields: queryFields(),
		Exact: []filter.ExactMatch[*User]{
			{Value: string(StatusPending), Field: func(u *User) string { return string(u.Status) }},
		},
	})
}

func (s *Service) GetUser(id string) (*User, error) {
	return s.repo.Get(id)
}

// Approve transitions a pending user to active with the given role.
func (s *Service) Approve(ctx context.Context, id string, dto ApproveUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("approve validation failed", "user_id", id, "error", err)
		return nil, err
	}
	role, _ := ParseRole(dto.Role)

	updated, err := s.repo.Mutate(id, func(u *User) error {
		return u.Approve(role)
	})
	if err != nil {
		s.logger.Error("approve failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("user approved", "user_id", id, "role", role)
	s.publish(ctx, events.NewUserApproved(id, string(role)))
	return updated, nil
}

// Reject transitions a pending user to the terminal rejected state.
func (s *Service) Reject(ctx context.Context, id string) (*User, error) {
	updated, err := s.repo.Mutate(id, func(u *User) error {
		return u.Reject()
	})
	if err != nil {
		s.logger.Error("reject failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("user rejected", "user_id", id)
	s.publish(ctx, events.NewUserRejected(id))
	return updated, nil
}

// Ban suspends an active user.
func (s *Service) Ban(ctx context.Context, id string) (*User, error) {
	updated, err := s.repo.Mutate(id, func(u *User) error {
		return u.Ban()
	})
	if err != nil {
		s.logger.Error("ban failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("user banned", "user_id", id)
	s.publish(ctx, events.NewUserBanned(id))
	return updated, nil
}

// Unban restores a banned user to active with their role unchanged.
func (s *Service) Unban(ctx context.Context, id string) (*User, error) {
	updated, err := s.repo.Mutate(id, func(u *User) error {
		return u.Unban()
	})
	if err != nil {
		s.logger.Error("unban failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("user unbanned", "user_id", id)
	s.publish(ctx, events.NewUserUnbanned(id))
	return updated, nil
}

// VerifyDocument marks one of the user's submitted documents as verified.
func (s *Service) VerifyDocument(ctx context.Context, userID, documentID string) (*User, error) {
	updated, err := s.repo.Mutate(userID, func(u *User) error {
		for i := range u.Documents {
			if u.Documents[i].ID == documentID {
				u.Documents[i].Verified = true
				return nil
			}
		}
		return internal.ErrDocumentNotFound
	})
	if err != nil {
		s.logger.Error("verify document failed", "user_id", userID, "document_id", documentID, "error", err)
		return nil, err
	}

	s.logger.Info("document verified", "user_id", userID, "document_id", documentID)
	s.publish(ctx, events.NewDocumentVerified(userID, documentID))
	return updated, nil
}

func (s *Service) publish(ctx context.Context, event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishSync(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
