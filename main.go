package main

import (
	"log"

	"stayhub/config"
	"stayhub/database"
	amenityRoutes "stayhub/routers/amenityRoutes"
	authRoutes "stayhub/routers/authRoutes"
	placeRoutes "stayhub/routers/placeRoutes"
	reviewRoutes "stayhub/routers/reviewRoutes"
	userRoutes "stayhub/routers/userRoutes"
	"stayhub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.ConnectDb()

	facade := services.NewFacade(db, services.BcryptHasher{Cost: config.AppConfig.SaltRound})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, facade)
	userRoutes.SetupUserRoutes(app, facade)
	placeRoutes.SetupPlaceRoutes(app, facade)
	reviewRoutes.SetupReviewRoutes(app, facade)
	amenityRoutes.SetupAmenityRoutes(app, facade)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
