package authz

import "github.com/agendalivre/agenda-crm/internal/apperr"

// Roles aceitos no token. Qualquer outro valor é negado em toda operação.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Operation string

const (
	OpClientList   Operation = "client:list"
	OpClientCreate Operation = "client:create"
	OpClientUpdate Operation = "client:update"
	OpClientDelete Operation = "client:delete"
)

// Tabela declarativa role x operação. Toda checagem de RBAC passa por aqui;
// nenhum service duplica condicionais de role.
var policy = map[Operation]map[string]bool{
	OpClientList: {
		RoleOwner: true,
		RoleAdmin: true,
		RoleStaff: true,
	},
	OpClientCreate: {
		RoleOwner: true,
		RoleAdmin: true,
	},
	OpClientUpdate: {
		RoleOwner: true,
		RoleAdmin: true,
	},
	OpClientDelete: {
		RoleOwner: true,
	},
}

func Allowed(role string, op Operation) bool {
	return policy[op][role]
}

// Allow devolve um erro de autorização pronto para o boundary mapear em 403.
func Allow(role string, op Operation) error {
	if Allowed(role, op) {
		return nil
	}
	return apperr.Unauthorized(
		"forbidden",
		"Seu perfil não tem permissão para esta operação.",
	)
}
