package client

import (
	"context"

	"github.com/agendalivre/agenda-crm/internal/models"
)

// Input é o payload já validado pelo controller. Opcionais como ponteiros:
// nil atravessa as camadas como ausência e vira NULL no banco.
type Input struct {
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	BirthDate *string
	Gender    *string
}

// Repository isola todo o SQL de clientes. O tenantID é SEMPRE o primeiro
// argumento: não existe assinatura que permita esquecer o escopo do tenant.
type Repository interface {
	FindAll(
		ctx context.Context,
		tenantID uint,
	) ([]models.Client, error)

	// FindByID devolve (nil, nil) quando não existe registro para o par
	// (tenant, id); ausência é dado, não erro.
	FindByID(
		ctx context.Context,
		tenantID uint,
		id uint,
	) (*models.Client, error)

	Create(
		ctx context.Context,
		tenantID uint,
		in Input,
	) (*models.Client, error)

	// Update e Delete são escritas condicionais num único statement:
	// devolvem o número de linhas atingidas (0 = par tenant/id inexistente).
	Update(
		ctx context.Context,
		tenantID uint,
		id uint,
		in Input,
	) (int64, error)

	Delete(
		ctx context.Context,
		tenantID uint,
		id uint,
	) (int64, error)
}
