package client

import (
	"time"

	"github.com/agendalivre/agenda-crm/internal/apperr"
	"github.com/agendalivre/agenda-crm/internal/audit"
	domain "github.com/agendalivre/agenda-crm/internal/domain/client"
)

// ======================================================
// SERVICE
// ======================================================

// Service concentra a regra de negócio de clientes: RBAC antes de qualquer
// acesso ao repositório, normalização de dados e erros de domínio tipados.
// Não conhece HTTP.
type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// HELPERS
// ======================================================

// Layouts aceitos para birth_date na entrada. Persistimos sempre só a data.
var birthDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeBirthDate trunca qualquer componente de hora: "1990-05-05T10:00:00Z"
// vira "1990-05-05". Ausente (nil) permanece ausente.
func normalizeBirthDate(in *string) (*string, error) {
	if in == nil {
		return nil, nil
	}

	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, *in); err == nil {
			s := t.Format("2006-01-02")
			return &s, nil
		}
	}

	return nil, apperr.Validation(
		"invalid_birth_date",
		"Data de nascimento inválida.",
	)
}

func normalizeInput(in domain.Input) (domain.Input, error) {
	bd, err := normalizeBirthDate(in.BirthDate)
	if err != nil {
		return domain.Input{}, err
	}
	in.BirthDate = bd
	return in, nil
}

func errClientNotFound() error {
	return apperr.NotFound(
		"client_not_found",
		"Cliente não encontrado.",
	)
}
