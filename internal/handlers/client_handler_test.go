package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-crm/internal/audit"
	infraRepo "github.com/agendalivre/agenda-crm/internal/infra/repository"
	"github.com/agendalivre/agenda-crm/internal/middleware"
	"github.com/agendalivre/agenda-crm/internal/models"
	ucClient "github.com/agendalivre/agenda-crm/internal/usecase/client"
)

func newClientService(t *testing.T) *ucClient.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.AuditLog{}))

	repo := infraRepo.NewClientGormRepository(db)
	return ucClient.NewService(repo, audit.NewDispatcher(audit.New(db)))
}

// injeta identidade direto no contexto, no lugar do AuthMiddleware real
func stubAuth(tenantID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextTenantID, tenantID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func newClientRouter(svc *ucClient.Service, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewClientHandler(svc)

	g := r.Group("/api")
	g.Use(mw...)
	{
		g.GET("/clients", h.List)
		g.POST("/clients", h.Create)
		g.PUT("/clients/:id", h.Update)
		g.DELETE("/clients/:id", h.Delete)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeClient(t *testing.T, w *httptest.ResponseRecorder) models.Client {
	t.Helper()

	var client models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
	return client
}

// ------------------------------
// Contexto ausente → 401
// ------------------------------

func TestMissingAuthContextIs401(t *testing.T) {
	svc := newClientService(t)
	r := newClientRouter(svc) // sem middleware: contexto vazio

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/clients"},
		{http.MethodPost, "/api/clients"},
		{http.MethodPut, "/api/clients/1"},
		{http.MethodDelete, "/api/clients/1"},
	} {
		w := doJSON(t, r, req.method, req.path, gin.H{"name": "Ana"})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
	}
}

// ------------------------------
// Fluxo principal
// ------------------------------

func TestCreateListUpdateDeleteFlow(t *testing.T) {
	svc := newClientService(t)
	owner := newClientRouter(svc, stubAuth(1, "owner"))

	w := doJSON(t, owner, http.MethodPost, "/api/clients", gin.H{
		"name":       "Ana",
		"birth_date": "1990-05-05T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeClient(t, w)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.BirthDate)
	assert.Equal(t, "1990-05-05", *created.BirthDate)

	w = doJSON(t, owner, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	w = doJSON(t, owner, http.MethodPut, "/api/clients/"+itoa(created.ID), gin.H{
		"name":  "Ana Paula",
		"email": "ana@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana Paula", decodeClient(t, w).Name)

	w = doJSON(t, owner, http.MethodDelete, "/api/clients/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doJSON(t, owner, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListOrderedByName(t *testing.T) {
	svc := newClientService(t)
	admin := newClientRouter(svc, stubAuth(1, "admin"))

	for _, name := range []string{"Zeca", "Ana", "Mário"} {
		w := doJSON(t, admin, http.MethodPost, "/api/clients", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	staff := newClientRouter(svc, stubAuth(1, "staff"))
	w := doJSON(t, staff, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "Ana", listed[0].Name)
	assert.Equal(t, "Mário", listed[1].Name)
	assert.Equal(t, "Zeca", listed[2].Name)
}

// ------------------------------
// RBAC → 403
// ------------------------------

func TestStaffCannotWrite(t *testing.T) {
	svc := newClientService(t)
	admin := newClientRouter(svc, stubAuth(1, "admin"))
	staff := newClientRouter(svc, stubAuth(1, "staff"))

	w := doJSON(t, admin, http.MethodPost, "/api/clients", gin.H{"name": "Ana"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeClient(t, w)

	w = doJSON(t, staff, http.MethodPost, "/api/clients", gin.H{"name": "Intruso"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, staff, http.MethodPut, "/api/clients/"+itoa(created.ID), gin.H{"name": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, staff, http.MethodDelete, "/api/clients/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// registro intacto
	w = doJSON(t, admin, http.MethodGet, "/api/clients", nil)
	var listed []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana", listed[0].Name)
}

func TestAdminCannotDelete(t *testing.T) {
	svc := newClientService(t)
	admin := newClientRouter(svc, stubAuth(1, "admin"))

	w := doJSON(t, admin, http.MethodPost, "/api/clients", gin.H{"name": "Ana"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeClient(t, w)

	w = doJSON(t, admin, http.MethodDelete, "/api/clients/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ------------------------------
// Not found → 404 (inclusive delete)
// ------------------------------

func TestUpdateAbsentIs404(t *testing.T) {
	svc := newClientService(t)
	owner := newClientRouter(svc, stubAuth(1, "owner"))

	w := doJSON(t, owner, http.MethodPut, "/api/clients/999", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAbsentIs404(t *testing.T) {
	svc := newClientService(t)
	owner := newClientRouter(svc, stubAuth(1, "owner"))

	w := doJSON(t, owner, http.MethodDelete, "/api/clients/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrossTenantDeleteIs404(t *testing.T) {
	svc := newClientService(t)
	t1 := newClientRouter(svc, stubAuth(1, "owner"))
	t2 := newClientRouter(svc, stubAuth(2, "owner"))

	w := doJSON(t, t2, http.MethodPost, "/api/clients", gin.H{"name": "Do T2"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeClient(t, w)

	// autenticado como t1, apagando id do t2: não achou, não vazou
	w = doJSON(t, t1, http.MethodDelete, "/api/clients/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, t2, http.MethodGet, "/api/clients", nil)
	var listed []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestCrossTenantListIsEmpty(t *testing.T) {
	svc := newClientService(t)
	t1 := newClientRouter(svc, stubAuth(1, "admin"))
	t2 := newClientRouter(svc, stubAuth(2, "staff"))

	w := doJSON(t, t1, http.MethodPost, "/api/clients", gin.H{"name": "Só do T1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, t2, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ------------------------------
// Validação de corpo → 400
// ------------------------------

func TestInvalidBodyIs400(t *testing.T) {
	svc := newClientService(t)
	owner := newClientRouter(svc, stubAuth(1, "owner"))

	// sem name
	w := doJSON(t, owner, http.MethodPost, "/api/clients", gin.H{"phone": "11999990000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// email malformado
	w = doJSON(t, owner, http.MethodPost, "/api/clients", gin.H{
		"name":  "Ana",
		"email": "nao-e-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// birth_date ilegível
	w = doJSON(t, owner, http.MethodPost, "/api/clients", gin.H{
		"name":       "Ana",
		"birth_date": "05/05/1990",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// id não numérico
	w = doJSON(t, owner, http.MethodDelete, "/api/clients/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
