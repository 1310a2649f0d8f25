package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

// SeedDefaults creates the initial admin user and a starter catalog on an
// empty database. Existing rows are left alone, so it is safe to run at
// every startup.
func SeedDefaults(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("cambiame"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:     "Administrador",
			Email:    "admin@snapframe.local",
			Password: string(hashed),
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded default admin user: %s", admin.Email)
	}

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []models.Service{
			{Description: "Sesion de estudio", Type: "sesion", BasePrice: 500, Active: true},
			{Description: "Fotografia para credencial", Type: "impresion", BasePrice: 80, Active: true},
			{Description: "Restauracion de fotografia", Type: "restauracion", BasePrice: 250, Active: true},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}

		options := []models.ServiceOption{
			{
				ServiceID: services[0].ID,
				Name:      "tamano",
				Kind:      models.OptionKindDropdown,
				Choices:   `{"5x7": 0, "8x10": 50, "13x18": 120}`,
				Required:  true,
			},
			{
				ServiceID: services[0].ID,
				Name:      "retoque",
				Kind:      models.OptionKindCheckbox,
				Choices:   `{"true": 30}`,
			},
		}
		if err := db.Create(&options).Error; err != nil {
			return err
		}
		utils.InfoLogger.Println("Seeded starter service catalog")
	}

	return nil
}
