package db

import (
	"log"

	"github.com/cleaningnetwork/marketplace-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.CleanerProfile{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
		&models.PlatformSettings{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()
	seedPlatformSettings()

	log.Println("✅ Migrations applied successfully!")
}

// seedRoles creates the three platform roles if they don't exist
func seedRoles() {
	roles := []models.Role{
		{Name: "customer", Description: "Customer who books cleanings"},
		{Name: "cleaner", Description: "Cleaner who offers services and manages bookings"},
		{Name: "admin", Description: "Administrator with full access"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

// seedPlatformSettings guarantees the singleton settings row exists.
// Reads and writes elsewhere never create a second row.
func seedPlatformSettings() {
	var count int64
	DB.Model(&models.PlatformSettings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.DefaultPlatformSettings()
	if err := DB.Create(&settings).Error; err != nil {
		log.Printf("Failed to seed platform settings: %v", err)
	}
}
