package client

import (
	"context"

	"github.com/agendalivre/agenda-crm/internal/audit"
	"github.com/agendalivre/agenda-crm/internal/authz"
)

// Delete remove o cliente em um único DELETE condicionado ao tenant.
// Não há janela check-then-act: a contagem de linhas decide entre
// sucesso e not-found.
func (s *Service) Delete(
	ctx context.Context,
	tenantID uint,
	role string,
	id uint,
) error {

	if err := authz.Allow(role, authz.OpClientDelete); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errClientNotFound()
	}

	s.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
		Metadata: map[string]string{"role": role},
	})

	return nil
}
