package routes

import (
	"github.com/c14220110/rota-backend/internal/common/middlewares"
	"github.com/c14220110/rota-backend/internal/rota/controllers"
	"github.com/c14220110/rota-backend/internal/rota/models"
	"github.com/labstack/echo/v4"
)

// RegisterRotaRoutes memasang endpoint rota di bawah group /rota.
func RegisterRotaRoutes(api *echo.Group, rc *controllers.RotaController, ec *controllers.EmployeeController, ac *controllers.AuthController, secret []byte) {
	jwt := middlewares.JWTMiddleware(secret)
	managerOnly := middlewares.RequireGrade(models.GradeManager.String())

	rota := api.Group("/rota")
	rota.POST("/login", ac.LoginHandler) // Tidak pakai JWT
	rota.GET("", rc.GetRotaHandler)
	rota.POST("/assign", rc.AssignShiftHandler, jwt, managerOnly)

	employees := rota.Group("/employees")
	employees.GET("", ec.ListEmployeesHandler)
	employees.GET("/:name", ec.GetEmployeeHandler)
	employees.POST("", ec.AddEmployeeHandler, jwt, managerOnly)
	employees.PUT("/:name/requests", ec.RequestShiftHandler, jwt)
}
