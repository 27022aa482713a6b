package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/rota-backend/config"
	"github.com/c14220110/rota-backend/internal/routes"
	rotaServices "github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/c14220110/rota-backend/ws"
)

func main() {
	cfg := config.LoadConfig()

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	rotaService := rotaServices.NewRotaService(cfg.RotaDays, cfg.AllowDoubleBooking, hub)
	authService := rotaServices.NewAuthService(cfg.ManagerUsername, cfg.ManagerPasswordHash, []byte(cfg.JWTSecret), cfg.JWTTTL)

	if cfg.SeedDemo {
		if err := rotaServices.SeedDemo(rotaService); err != nil {
			log.Fatalf("Gagal mengisi data demo: %v", err)
		}
		log.Printf("Rota:\n%s", rotaService.Report())
		for _, line := range rotaService.EmployeeReport() {
			log.Println(line)
		}
	}
	if cfg.JWTSecret == "" || cfg.ManagerPasswordHash == "" {
		log.Println("Warning: JWT_SECRET or MANAGER_PASSWORD_HASH is empty. Login and write endpoints are disabled.")
	}

	e := echo.New()
	e.HideBanner = true
	routes.Init(e, cfg, rotaService, authService, hub)

	log.Printf("Server berjalan pada port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
