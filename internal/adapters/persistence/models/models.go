package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee represents the employees table
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Role      string    `gorm:"size:100;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeResponse DTO
type EmployeeResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (e *Employee) ToResponse() *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Role:      e.Role,
	}
}

// ToResponseList converts a slice of employees to response DTOs
func ToResponseList(employees []*Employee) []*EmployeeResponse {
	responses := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, e.ToResponse())
	}
	return responses
}

// UserAccount represents the user_accounts table.
// Accounts are seeded once and never mutated through the API.
type UserAccount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

func (UserAccount) TableName() string {
	return "user_accounts"
}

// UserAccountResponse DTO (never carries the password hash)
type UserAccountResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *UserAccount) ToResponse() *UserAccountResponse {
	return &UserAccountResponse{
		Username: u.Username,
		Email:    u.Email,
	}
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&UserAccount{},
	)
}
