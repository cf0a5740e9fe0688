package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic-connect/models"
)

type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

func (s *DoctorService) AddDoctor(req *models.DoctorRequest, userID uuid.UUID) (bool, error) {
	doctor := models.NewDoctor(userID, req.Name, req.Specialization, req.IsAvailable)
	if err := s.db.Create(doctor).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *DoctorService) SetAvailable(doctorID uuid.UUID, isAvailable bool) (bool, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	doctor.SetAvailability(isAvailable)
	if err := s.db.Save(&doctor).Error; err != nil {
		return false, err
	}
	return true, nil
}

// AddNotes writes doctor notes on an appointment. It reports false when the
// notes are blank, the appointment does not exist, or it is assigned to a
// different doctor.
func (s *DoctorService) AddNotes(doctorID, appointmentID uuid.UUID, notes string) (bool, error) {
	if strings.TrimSpace(notes) == "" {
		return false, nil
	}

	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ? AND doctor_id = ?", appointmentID, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := appointment.AddDoctorNotes(doctorID, notes); err != nil {
		return false, nil
	}
	if err := s.db.Save(&appointment).Error; err != nil {
		return false, err
	}
	return true, nil
}

// MarkCompleted completes a Pending appointment assigned to the given doctor.
// Any other combination, including a repeat completion, reports false and
// changes nothing.
func (s *DoctorService) MarkCompleted(doctorID, appointmentID uuid.UUID) (bool, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ? AND doctor_id = ?", appointmentID, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if !appointment.MarkCompleted(doctorID) {
		return false, nil
	}
	if err := s.db.Save(&appointment).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *DoctorService) GetAllDoctors() ([]models.DoctorResponse, error) {
	var doctors []models.Doctor
	if err := s.db.Find(&doctors).Error; err != nil {
		return nil, err
	}

	responses := make([]models.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		responses = append(responses, models.DoctorResponse{
			ID:             doctor.ID,
			Name:           doctor.Name,
			Specialization: doctor.Specialization,
			IsAvailable:    doctor.IsAvailable,
		})
	}
	return responses, nil
}

// GetDoctorByID returns a single doctor, or nil when no doctor has that id.
func (s *DoctorService) GetDoctorByID(doctorID uuid.UUID) (*models.DoctorResponse, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &models.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		IsAvailable:    doctor.IsAvailable,
	}, nil
}

// RemoveDoctor deletes the doctor's appointments, the doctor row, and the
// backing account in a single transaction. A missing account row does not
// abort the cascade.
func (s *DoctorService) RemoveDoctor(doctorID uuid.UUID) (bool, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctorID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", doctor.UserID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetDoctorIDByUserID resolves the doctor profile linked to an account.
// It returns uuid.Nil when the account has no doctor profile.
func (s *DoctorService) GetDoctorIDByUserID(userID uuid.UUID) (uuid.UUID, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return doctor.ID, nil
}
