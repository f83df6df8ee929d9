package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendalivre/agenda-crm/internal/httperr"
	"github.com/agendalivre/agenda-crm/internal/middleware"
)

// authContext extrai tenant e role do contexto autenticado. Se o middleware
// não rodou (ordem errada, rota mal registrada), responde 401 na hora —
// nenhum handler chama o service sem identidade.
func authContext(c *gin.Context) (tenantID uint, role string, ok bool) {
	tenantVal, hasTenant := c.Get(middleware.ContextTenantID)
	roleVal, hasRole := c.Get(middleware.ContextUserRole)

	tenantID, tenantOK := tenantVal.(uint)
	role, roleOK := roleVal.(string)

	if !hasTenant || !hasRole || !tenantOK || !roleOK || role == "" {
		httperr.Unauthorized(c, "invalid_auth_context", "Contexto de autenticação inválido.")
		return 0, "", false
	}

	return tenantID, role, true
}
