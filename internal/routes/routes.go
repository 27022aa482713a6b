package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/c14220110/rota-backend/config"
	rotaControllers "github.com/c14220110/rota-backend/internal/rota/controllers"
	rotaRoutes "github.com/c14220110/rota-backend/internal/rota/routes"
	rotaServices "github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/c14220110/rota-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, cfg *config.Config, rotaService *rotaServices.RotaService, authService *rotaServices.AuthService, hub *ws.Hub) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	rotaController := rotaControllers.NewRotaController(rotaService)
	employeeController := rotaControllers.NewEmployeeController(rotaService)
	authController := rotaControllers.NewAuthController(authService)

	// Grup API utama
	api := e.Group("/api")
	rotaRoutes.RegisterRotaRoutes(api, rotaController, employeeController, authController, []byte(cfg.JWTSecret))

	e.GET("/ws", ws.ServeWS(hub))
}
