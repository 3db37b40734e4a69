package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/config"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/db"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
)

// Roles are shared reference data: the auth flows only ever attach them by
// id, so they must exist before the first registration. Role 1 is the
// platform default for new users.
var roles = []model.Role{
	{ID: 1, Name: "CLIENT_USER"},
	{ID: 2, Name: "EMPLOYEE_USER"},
	{ID: 3, Name: "ADMIN_USER"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Role{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	res := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles)
	if res.Error != nil {
		log.Fatalf("Failed to seed roles: %v", res.Error)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New roles created: %d", res.RowsAffected)
	log.Printf("  - Total roles processed: %d", len(roles))
}
