package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role is the closed set of account roles. Authorization decisions switch
// exhaustively over these values.
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PersonName string    `json:"person_name" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Role       Role      `json:"role" gorm:"not null"`
}

func NewUser(personName, email, passwordHash string, role Role) *User {
	return &User{
		ID:         uuid.New(),
		PersonName: personName,
		Email:      email,
		Password:   passwordHash,
		Role:       role,
	}
}

type UserClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}
