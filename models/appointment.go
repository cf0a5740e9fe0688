package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusCompleted AppointmentStatus = "Completed"
)

var (
	ErrNotAssignedDoctor = errors.New("only the assigned doctor can add notes")
	ErrNotesRequired     = errors.New("doctor notes are required")
)

type Appointment struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	PersonName  string            `json:"person_name" gorm:"not null"`
	Date        string            `json:"date" gorm:"not null"`
	Time        string            `json:"time" gorm:"not null"`
	Reason      string            `json:"reason" gorm:"not null"`
	PatientID   uuid.UUID         `json:"patient_id" gorm:"type:uuid;not null"`
	DoctorID    *uuid.UUID        `json:"doctor_id" gorm:"type:uuid"`
	Status      AppointmentStatus `json:"status" gorm:"not null;default:Pending"`
	DoctorNotes string            `json:"doctor_notes"`
}

func NewAppointment(personName, date, timeSlot, reason string, patientID uuid.UUID) *Appointment {
	return &Appointment{
		ID:         uuid.New(),
		PersonName: personName,
		Date:       date,
		Time:       timeSlot,
		Reason:     reason,
		PatientID:  patientID,
		Status:     StatusPending,
	}
}

// AssignDoctor links a doctor to the appointment. Re-assignment is allowed
// from any status, including Completed.
func (a *Appointment) AssignDoctor(doctorID uuid.UUID) {
	a.DoctorID = &doctorID
}

// AddDoctorNotes records notes on the appointment. Only the assigned doctor
// may write them and notes must not be blank.
func (a *Appointment) AddDoctorNotes(doctorID uuid.UUID, notes string) error {
	if a.DoctorID == nil || *a.DoctorID != doctorID {
		return ErrNotAssignedDoctor
	}
	if strings.TrimSpace(notes) == "" {
		return ErrNotesRequired
	}
	a.DoctorNotes = notes
	return nil
}

// MarkCompleted moves the appointment from Pending to Completed. It reports
// false when the caller is not the assigned doctor or the appointment is not
// Pending, so a second completion attempt is a no-op.
func (a *Appointment) MarkCompleted(doctorID uuid.UUID) bool {
	if a.DoctorID == nil || *a.DoctorID != doctorID {
		return false
	}
	if a.Status != StatusPending {
		return false
	}
	a.Status = StatusCompleted
	return true
}
