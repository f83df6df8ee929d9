package client

import (
	"context"

	"github.com/agendalivre/agenda-crm/internal/audit"
	"github.com/agendalivre/agenda-crm/internal/authz"
	domain "github.com/agendalivre/agenda-crm/internal/domain/client"
	"github.com/agendalivre/agenda-crm/internal/models"
)

// Update sobrescreve os dados do cliente num único statement condicionado ao
// tenant; zero linhas atingidas significa que o par (tenant, id) não existe.
func (s *Service) Update(
	ctx context.Context,
	tenantID uint,
	role string,
	id uint,
	in domain.Input,
) (*models.Client, error) {

	if err := authz.Allow(role, authz.OpClientUpdate); err != nil {
		return nil, err
	}

	in, err := normalizeInput(in)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Update(ctx, tenantID, id, in)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errClientNotFound()
	}

	updated, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// removido entre o update e a releitura
		return nil, errClientNotFound()
	}

	s.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &updated.ID,
		Metadata: map[string]string{"role": role},
	})

	return updated, nil
}
