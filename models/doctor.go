package models

import "github.com/google/uuid"

type Doctor struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"not null"`
	Specialization string    `json:"specialization" gorm:"not null"`
	IsAvailable    bool      `json:"is_available"`
}

func NewDoctor(userID uuid.UUID, name, specialization string, isAvailable bool) *Doctor {
	return &Doctor{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Specialization: specialization,
		IsAvailable:    isAvailable,
	}
}

func (d *Doctor) SetAvailability(isAvailable bool) {
	d.IsAvailable = isAvailable
}
