package database

import (
	"log"
	"time"

	"inspectpro/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn, adminEmail, adminPassword string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(adminEmail, adminPassword)
	seedDefaultUsers()
	seedInspectionTypes()
}

// Migrate runs the schema migrations. Split out so tests can run it
// against their own store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Location{},
		&models.Equipment{},
		&models.InspectionType{},
		&models.Project{},
		&models.AuditLog{},
	)
}

// admin account comes from env/config only, never from the API
func createDefaultAdmin(email, password string) {
	if email == "" {
		email = "admin@inspectpro.local"
	}
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Email:        email,
		DisplayName:  "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", email)
}

// one demo account per non-admin role
func seedDefaultUsers() {
	type seedUser struct {
		Email       string
		DisplayName string
		Password    string
		Role        models.UserRole
	}

	users := []seedUser{
		{
			Email:       "manager@inspectpro.local",
			DisplayName: "Demo Manager",
			Password:    "Manager123!",
			Role:        models.RoleManager,
		},
		{
			Email:       "supervisor@inspectpro.local",
			DisplayName: "Demo Supervisor",
			Password:    "Supervisor123!",
			Role:        models.RoleSupervisor,
		},
		{
			Email:       "lead@inspectpro.local",
			DisplayName: "Demo Lead Inspector",
			Password:    "Lead123!",
			Role:        models.RoleLeadInspector,
		},
		{
			Email:       "inspector@inspectpro.local",
			DisplayName: "Demo Inspector",
			Password:    "Inspector123!",
			Role:        models.RoleInspector,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Email, err)
			continue
		}

		user := models.User{
			Email:        u.Email,
			DisplayName:  u.DisplayName,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Email, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Email, u.Role)
	}
}

func seedInspectionTypes() {
	types := []models.InspectionType{
		{Code: "VI", Name: "External Visual Inspection", Technique: models.TechniqueVisual},
		{Code: "AUT", Name: "AUT / Corrosion Mapping", Technique: models.TechniqueAUT},
		{Code: "IC", Name: "Integrity Check", Technique: models.TechniqueIntegrity},
	}

	for _, it := range types {
		var count int64
		if err := DB.Model(&models.InspectionType{}).
			Where("code = ?", it.Code).
			Count(&count).Error; err != nil {
			log.Printf("failed to check inspection type %s: %v", it.Code, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&it).Error; err != nil {
			log.Printf("failed to create inspection type %s: %v", it.Code, err)
		}
	}
}
