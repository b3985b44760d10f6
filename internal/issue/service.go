package issue

import (
	"context"
	"log/slog"
	"time"

	"github.com/clovera/admin-api/internal/core/events"
	"github.com/clovera/admin-api/internal/filter"
	"github.com/google/uuid"
)

// Repository defines the data access methods for issues. Mutate applies fn
// to the live record under the store's writer lock.
type Repository interface {
	List() []*Issue
	Get(id string) (*Issue, error)
	Mutate(id string, fn func(*Issue) error) (*Issue, error)
}

type Publisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

// Service governs the issue status workflow and reply attachment.
type Service struct {
	repo   Repository
	bus    Publisher
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, bus Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListIssues filters by query over title, description and reporter name,
// plus exact status and priority constraints.
func (s *Service) ListIssues(p ListParams) []*Issue {
	return filter.Apply(s.repo.List(), filter.Criteria[*Issue]{
		Query: p.Query,
		QueryFields: []filter.Field[*Issue]{
			func(i *Issue) string { return i.Title },
			func(i *Issue) string { return i.Description },
			func(i *Issue) string { return i.UserName },
		},
		Exact: []filter.ExactMatch[*Issue]{
			{Value: p.Status, Field: func(i *Issue) string { return string(i.Status) }},
			{Value: p.Priority, Field: func(i *Issue) string { return string(i.Priority) }},
		},
	})
}

func (s *Service) GetIssue(id string) (*Issue, error) {
	return s.repo.Get(id)
}

// SetStatus performs the explicit status-set operation. Reapplying the
// current status is a no-op success.
func (s *Service) SetStatus(ctx context.Context, id string, dto UpdateStatusDTO) (*Issue, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("status validation failed", "issue_id", id, "status", dto.Status, "error", err)
		return nil, err
	}
	status, _ := ParseStatus(dto.Status)

	changed := false
	updated, err := s.repo.Mutate(id, func(i *Issue) error {
		changed = i.SetStatus(status, s.now())
		return nil
	})
	if err != nil {
		s.logger.Error("status update failed", "issue_id", id, "error", err)
		return nil, err
	}

	if changed {
		s.logger.Info("issue status updated", "issue_id", id, "status", status)
		s.publish(ctx, events.NewIssueStatusChanged(id, string(status)))
	}
	return updated, nil
}

// AddResponse appends an admin reply with a process-assigned timestamp.
// The issue's status is left untouched.
func (s *Service) AddResponse(ctx context.Context, id, adminID, adminName, text string) (*Issue, error) {
	resp := Response{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		AdminName: adminName,
		Text:      text,
		CreatedAt: s.now(),
	}

	updated, err := s.repo.Mutate(id, func(i *Issue) error {
		return i.AddResponse(resp)
	})
	if err != nil {
		s.logger.Error("reply failed", "issue_id", id, "admin_id", adminID, "error", err)
		return nil, err
	}

	s.logger.Info("issue reply added", "issue_id", id, "admin_id", adminID, "response_id", resp.ID)
	s.publish(ctx, events.NewIssueReplied(id, adminID))
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
