// Package store holds the canonical in-memory collections backing the admin
// console. All reads hand out deep copies and all writes go through a single
// RWMutex, so concurrent HTTP handlers never observe a partial transition.
package store

import (
	"sync"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/issue"
	"github.com/clovera/admin-api/internal/patient"
	"github.com/clovera/admin-api/internal/user"
)

type Store struct {
	mu sync.RWMutex

	users    []*user.User
	patients []*patient.Patient
	issues   []*issue.Issue

	userIndex    map[string]*user.User
	patientIndex map[string]*patient.Patient
	issueIndex   map[string]*issue.Issue
}

func New() *Store {
	return &Store{
		userIndex:    make(map[string]*user.User),
		patientIndex: make(map[string]*patient.Patient),
		issueIndex:   make(map[string]*issue.Issue),
	}
}

// NewSeeded builds a store pre-loaded with the canonical mock dataset.
func NewSeeded() (*Store, error) {
	s := New()
	for _, u := range SeedUsers() {
		if err := s.AddUser(u); err != nil {
			return nil, err
		}
	}
	for _, p := range SeedPatients() {
		if err := s.AddPatient(p); err != nil {
			return nil, err
		}
	}
	for _, i := range SeedIssues() {
		if err := s.AddIssue(i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) AddUser(u *user.User) error {
	if err := u.CheckInvariant(); err != nil {
		return internal.NewInternalError("refusing to store invalid user", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userIndex[u.ID]; exists {
		return internal.ErrDuplicateID
	}
	clone := u.Clone()
	s.users = append(s.users, clone)
	s.userIndex[clone.ID] = clone
	return nil
}

func (s *Store) AddPatient(p *patient.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.patientIndex[p.ID]; exists {
		return internal.ErrDuplicateID
	}
	clone := p.Clone()
	s.patients = append(s.patients, clone)
	s.patientIndex[clone.ID] = clone
	return nil
}

func (s *Store) AddIssue(i *issue.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.issueIndex[i.ID]; exists {
		return internal.ErrDuplicateID
	}
	clone := i.Clone()
	s.issues = append(s.issues, clone)
	s.issueIndex[clone.ID] = clone
	return nil
}

// Stats are the dashboard counters derived from the collections.
type Stats struct {
	TotalUsers   int `json:"total_users"`
	ActiveUsers  int `json:"active_users"`
	PendingUsers int `json:"pending_users"`
	Patients     int `json:"patients"`
	OpenIssues   int `json:"open_issues"`
}

func (s *Store) Counts() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalUsers: len(s.users),
		Patients:   len(s.patients),
	}
	for _, u := range s.users {
		switch u.Status {
		case user.StatusActive:
			stats.ActiveUsers++
		case user.StatusPending:
			stats.PendingUsers++
		}
	}
	for _, i := range s.issues {
		if i.Status == issue.StatusOpen {
			stats.OpenIssues++
		}
	}
	return stats
}

// Users exposes the store as the user package's Repository.
func (s *Store) Users() UserRepo { return UserRepo{s} }

// Patients exposes the store as the patient package's Repository.
func (s *Store) Patients() PatientRepo { return PatientRepo{s} }

// Issues exposes the store as the issue package's Repository.
func (s *Store) Issues() IssueRepo { return IssueRepo{s} }

type UserRepo struct{ s *Store }

func (r UserRepo) List() []*user.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*user.User, len(r.s.users))
	for i, u := range r.s.users {
		out[i] = u.Clone()
	}
	return out
}

func (r UserRepo) Get(id string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.userIndex[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return u.Clone(), nil
}

// Mutate applies fn to a draft copy under the writer lock and commits only
// on success, so a failed transition leaves the record untouched.
func (r UserRepo) Mutate(id string, fn func(*user.User) error) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	live, ok := r.s.userIndex[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}

	draft := live.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := draft.CheckInvariant(); err != nil {
		return nil, internal.NewInternalError("transition would violate user invariant", err)
	}

	*live = *draft
	return draft.Clone(), nil
}

type PatientRepo struct{ s *Store }

func (r PatientRepo) List() []*patient.Patient {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*patient.Patient, len(r.s.patients))
	for i, p := range r.s.patients {
		out[i] = p.Clone()
	}
	return out
}

func (r PatientRepo) Get(id string) (*patient.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.patientIndex[id]
	if !ok {
		return nil, internal.ErrPatientNotFound
	}
	return p.Clone(), nil
}

type IssueRepo struct{ s *Store }

func (r IssueRepo) List() []*issue.Issue {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*issue.Issue, len(r.s.issues))
	for i, is := range r.s.issues {
		out[i] = is.Clone()
	}
	return out
}

func (r IssueRepo) Get(id string) (*issue.Issue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.issueIndex[id]
	if !ok {
		return nil, internal.ErrIssueNotFound
	}
	return i.Clone(), nil
}

func (r IssueRepo) Mutate(id string, fn func(*issue.Issue) error) (*issue.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	live, ok := r.s.issueIndex[id]
	if !ok {
		return nil, internal.ErrIssueNotFound
	}

	draft := live.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	*live = *draft
	return draft.Clone(), nil
}
