package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/agendalivre/agenda-crm/internal/domain/client"
	"github.com/agendalivre/agenda-crm/internal/httperr"
	"github.com/agendalivre/agenda-crm/internal/httpresp"
	ucClient "github.com/agendalivre/agenda-crm/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	svc *ucClient.Service
}

func NewClientHandler(svc *ucClient.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     *string `json:"notes"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender"`
}

func (r ClientRequest) toInput() domain.Input {
	return domain.Input{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
		BirthDate: r.BirthDate,
		Gender:    r.Gender,
	}
}

func clientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Identificador de cliente inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST — GET /api/clients
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	tenantID, role, ok := authContext(c)
	if !ok {
		return
	}

	clients, err := h.svc.List(c.Request.Context(), tenantID, role)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, clients)
}

// ======================================================
// CREATE — POST /api/clients
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	tenantID, role, ok := authContext(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.svc.Create(c.Request.Context(), tenantID, role, req.toInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE — PUT /api/clients/:id
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	tenantID, role, ok := authContext(c)
	if !ok {
		return
	}

	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), tenantID, role, id, req.toInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE — DELETE /api/clients/:id
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	tenantID, role, ok := authContext(c)
	if !ok {
		return
	}

	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), tenantID, role, id); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}
