package issue

import "github.com/clovera/admin-api/internal"

// UpdateStatusDTO is the request payload for the explicit status-set
// operation.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (d UpdateStatusDTO) Validate() error {
	if _, ok := ParseStatus(d.Status); !ok {
		return internal.ErrInvalidStatus
	}
	return nil
}

// AddResponseDTO is the reply payload. The admin identity is taken from the
// session, not the body.
type AddResponseDTO struct {
	Text string `json:"text"`
}

// ListParams are the issue-list filter controls.
type ListParams struct {
	Query    string
	Status   string
	Priority string
}
