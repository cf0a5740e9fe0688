package models

import "github.com/google/uuid"

type AppointmentRequest struct {
	PersonName string    `json:"person_name" validate:"required"`
	Date       string    `json:"date" validate:"required"`
	Time       string    `json:"time" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
	DoctorID   uuid.UUID `json:"doctor_id"`
	PatientID  uuid.UUID `json:"patient_id"`
}

type AppointmentResponse struct {
	ID          uuid.UUID         `json:"id"`
	PersonName  string            `json:"person_name"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
	DoctorID    *uuid.UUID        `json:"doctor_id,omitempty"`
	DoctorName  *string           `json:"doctor_name,omitempty"`
	DoctorNotes string            `json:"doctor_notes,omitempty"`
}

type DoctorRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Specialization string `json:"specialization" binding:"required,max=100"`
	IsAvailable    bool   `json:"is_available"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	IsAvailable    bool      `json:"is_available"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
