package client

import (
	"context"

	"github.com/agendalivre/agenda-crm/internal/authz"
	"github.com/agendalivre/agenda-crm/internal/models"
)

// List devolve os clientes do tenant em ordem alfabética de nome.
func (s *Service) List(
	ctx context.Context,
	tenantID uint,
	role string,
) ([]models.Client, error) {

	if err := authz.Allow(role, authz.OpClientList); err != nil {
		return nil, err
	}

	return s.repo.FindAll(ctx, tenantID)
}
