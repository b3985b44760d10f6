package patient

import (
	"log/slog"

	"github.com/clovera/admin-api/internal/filter"
)

// Repository defines read access to the patient roster.
type Repository interface {
	List() []*Patient
	Get(id string) (*Patient, error)
}

// ListParams are the patient-list filter controls.
type ListParams struct {
	Query  string
	Status string
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListPatients filters by query over name, diagnosis and primary doctor,
// plus an exact status constraint.
func (s *Service) ListPatients(p ListParams) []*Patient {
	return filter.Apply(s.repo.List(), filter.Criteria[*Patient]{
		Query: p.Query,
		QueryFields: []filter.Field[*Patient]{
			func(pt *Patient) string { return pt.FullName() },
			func(pt *Patient) string { return pt.Diagnosis },
			func(pt *Patient) string { return pt.PrimaryDoctor },
		},
		Exact: []filter.ExactMatch[*Patient]{
			{Value: p.Status, Field: func(pt *Patient) string { return string(pt.Status) }},
		},
	})
}

func (s *Service) GetPatient(id string) (*Patient, error) {
	return s.repo.Get(id)
}
