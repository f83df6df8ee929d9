package client

import (
	"context"

	"github.com/agendalivre/agenda-crm/internal/audit"
	"github.com/agendalivre/agenda-crm/internal/authz"
	domain "github.com/agendalivre/agenda-crm/internal/domain/client"
	"github.com/agendalivre/agenda-crm/internal/models"
)

// Create registra um cliente no tenant. O registro devolvido já carrega os
// campos gerados pelo banco (id, timestamps) via INSERT..RETURNING.
func (s *Service) Create(
	ctx context.Context,
	tenantID uint,
	role string,
	in domain.Input,
) (*models.Client, error) {

	if err := authz.Allow(role, authz.OpClientCreate); err != nil {
		return nil, err
	}

	in, err := normalizeInput(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, tenantID, in)
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &created.ID,
		Metadata: map[string]string{"role": role},
	})

	return created, nil
}
