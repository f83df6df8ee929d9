package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-crm/internal/audit"
	"github.com/agendalivre/agenda-crm/internal/config"
	"github.com/agendalivre/agenda-crm/internal/handlers"
	infraRepo "github.com/agendalivre/agenda-crm/internal/infra/repository"
	"github.com/agendalivre/agenda-crm/internal/middleware"
	ucClient "github.com/agendalivre/agenda-crm/internal/usecase/client"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 SERVICES
	// ======================================================
	clientService := ucClient.NewService(clientRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(clientService)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
		}
	}
}
