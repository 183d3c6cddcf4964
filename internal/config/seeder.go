package config

import (
	"log"
	"os"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedEmployees(); err != nil {
		return err
	}
	if err := s.seedUserAccounts(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedEmployees preloads demo employees when the table is empty
func (s *Seeder) seedEmployees() error {
	var count int64
	if err := s.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []*models.Employee{
		{FirstName: "Morgan", LastName: "SHIRLEY", Role: "Senior full stack developer"},
		{FirstName: "Bilbo", LastName: "Baggins", Role: "burglar"},
		{FirstName: "Frodo", LastName: "Tolkien", Role: "thief"},
	}

	for _, employee := range employees {
		if err := s.db.Create(employee).Error; err != nil {
			return err
		}
		log.Printf("🌱 Preloaded employee %s %s (%s)", employee.FirstName, employee.LastName, employee.Role)
	}

	return nil
}

// seedUserAccounts seeds demo login accounts when none exist.
// Passwords come from env so demo defaults never reach production.
func (s *Seeder) seedUserAccounts() error {
	var count int64
	if err := s.db.Model(&models.UserAccount{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		email    string
		pwdEnv   string
		pwdDef   string
	}{
		{"morgan", "morgan@email.com", "SEED_PASSWORD_MORGAN", "pwd1"},
		{"mark", "mark@email.com", "SEED_PASSWORD_MARK", "pwd2"},
	}

	for _, a := range accounts {
		raw := os.Getenv(a.pwdEnv)
		if raw == "" {
			raw = a.pwdDef // demo only
		}

		hash, err := password.Hash(raw)
		if err != nil {
			return err
		}

		user := &models.UserAccount{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hash,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("🌱 Seeded user account: %s", user.Username)
	}

	return nil
}
