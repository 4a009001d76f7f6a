package main

import (
	"fmt"

	"absensi-rfid-backend/config"
	"absensi-rfid-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend di domain/port lain
	app.Use(logger.New()) // Log request di terminal

	// Serve foto siswa yang diupload
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupPresensiRoutes(app, config.DB)
	routes.SetupMasterDataRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)
	routes.SetupSettingsRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
