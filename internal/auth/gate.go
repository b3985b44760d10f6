package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/core/events"
	"golang.org/x/crypto/bcrypt"
)

// SessionRepository is the durable storage behind the gate.
type SessionRepository interface {
	Save(admin Admin) error
	Load() (*Admin, error)
	Delete() error
}

type Publisher interface {
	PublishSync(ctx context.Context, event events.Event) error
}

// Credential is the single configured admin identity the gate checks logins
// against. A real credential-verification collaborator would replace it.
type Credential struct {
	Admin        Admin
	PasswordHash string
}

func CredentialFromConfig(cfg internal.AdminConfig) Credential {
	return Credential{
		Admin: Admin{
			ID:     cfg.ID,
			Name:   cfg.Name,
			Email:  cfg.Email,
			Role:   cfg.Role,
			Avatar: cfg.Avatar,
		},
		PasswordHash: cfg.PasswordHash,
	}
}

// Gate owns the current authenticated-admin value and its lifecycle. It is
// constructed once at process start and passed to whatever needs it; the
// session is never ambient package state.
type Gate struct {
	mu     sync.RWMutex
	state  State
	admin  *Admin
	store  SessionRepository
	tokens TokenGenerator
	cred   Credential
	bus    Publisher
	logger *slog.Logger
}

func NewGate(cred Credential, store SessionRepository, tokens TokenGenerator, bus Publisher, logger *slog.Logger) *Gate {
	return &Gate{
		state:  StateLoading,
		store:  store,
		tokens: tokens,
		cred:   cred,
		bus:    bus,
		logger: logger,
	}
}

// Restore is the single-shot startup read of the durable session record.
// Until it finishes the gate reports StateLoading and guards defer. It can
// never supersede a login or logout that settled the gate first.
func (g *Gate) Restore() {
	admin, err := g.store.Load()
	if err != nil {
		// Treat an unreadable store like no session; the console must
		// never fail to start over a stale session file.
		g.logger.Error("session restore failed", "error", err)
		admin = nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateLoading {
		// A login or logout landed while the record was being read; what
		// the gate holds now is fresher than the record.
		g.logger.Info("session restore skipped, gate already settled", "state", g.state)
		return
	}
	if admin != nil {
		g.admin = admin
		g.state = StateActive
		g.logger.Info("session restored", "admin_id", admin.ID)
	} else {
		g.state = StateAbsent
	}
}

// Login checks the credentials against the configured admin identity,
// persists the session and issues an access token. Nothing changes on
// failure.
func (g *Gate) Login(ctx context.Context, dto LoginDTO) (Session, error) {
	if err := dto.Validate(); err != nil {
		return Session{}, err
	}

	if dto.Email != g.cred.Admin.Email {
		return Session{}, internal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.cred.PasswordHash), []byte(dto.Password)); err != nil {
		return Session{}, internal.ErrInvalidCredentials
	}

	admin := g.cred.Admin

	token, err := g.tokens.GenerateAccessToken(admin)
	if err != nil {
		g.logger.Error("token generation failed", "error", err)
		return Session{}, internal.NewInternalError("failed to issue session token", err)
	}

	if err := g.store.Save(admin); err != nil {
		// Storage failures degrade to an in-memory session; the login
		// itself still succeeds.
		g.logger.Error("failed to persist session record", "error", err)
	}

	g.mu.Lock()
	g.admin = &admin
	g.state = StateActive
	g.mu.Unlock()

	g.logger.Info("admin logged in", "admin_id", admin.ID)
	g.publish(ctx, events.NewAdminLoggedIn(admin.ID))

	return Session{Admin: admin, AccessToken: token}, nil
}

// Logout clears the session and its durable record unconditionally.
func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	var adminID string
	if g.admin != nil {
		adminID = g.admin.ID
	}
	g.admin = nil
	g.state = StateAbsent
	g.mu.Unlock()

	if err := g.store.Delete(); err != nil {
		g.logger.Error("failed to delete session record", "error", err)
	}

	g.logger.Info("admin logged out", "admin_id", adminID)
	g.publish(ctx, events.NewAdminLoggedOut(adminID))
}

// Current reports the session and the gate's state. Callers must check the
// state before trusting the admin value.
func (g *Gate) Current() (*Admin, State) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.admin == nil {
		return nil, g.state
	}
	admin := *g.admin
	return &admin, g.state
}

// ValidateAccessToken validates a bearer token and returns its claims.
func (g *Gate) ValidateAccessToken(tokenString string) (*Claims, error) {
	return g.tokens.ValidateToken(tokenString)
}

func (g *Gate) publish(ctx context.Context, event events.BaseEvent) {
	if g.bus == nil {
		return
	}
	if err := g.bus.PublishSync(ctx, event); err != nil {
		g.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
