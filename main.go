package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/config"
	"github.com/jetrolopez1/snapframe-hub-sub000/database"
	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/router"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.SeedDefaults(db); err != nil {
		utils.ErrorLogger.Printf("Seeding defaults failed: %v", err)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.ServiceOption{},
		&models.Package{},
		&models.PackageService{},
		&models.GroupSession{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
