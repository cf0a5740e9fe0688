package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic-connect/models"
)

var (
	ErrNilRequest     = errors.New("appointment request is required")
	ErrDoctorNotFound = errors.New("selected doctor does not exist")
)

// AppointmentService owns all reads and writes on appointments. Every
// mutating call persists immediately; there is no deferred commit.
type AppointmentService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db, validate: validator.New()}
}

func (s *AppointmentService) AddAppointment(req *models.AppointmentRequest) (*models.AppointmentResponse, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	if req.DoctorID != uuid.Nil {
		var count int64
		if err := s.db.Model(&models.Doctor{}).Where("id = ?", req.DoctorID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrDoctorNotFound
		}
	}

	appointment := models.NewAppointment(req.PersonName, req.Date, req.Time, req.Reason, req.PatientID)
	if req.DoctorID != uuid.Nil {
		appointment.AssignDoctor(req.DoctorID)
	}

	if err := s.db.Create(appointment).Error; err != nil {
		return nil, err
	}

	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

// AssignDoctor attaches a doctor to an existing appointment. The referenced
// doctor is not validated here; only the booking path checks it exists.
func (s *AppointmentService) AssignDoctor(appointmentID, doctorID uuid.UUID) (bool, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	appointment.AssignDoctor(doctorID)
	if err := s.db.Save(&appointment).Error; err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAppointment removes an appointment only when it belongs to the given
// patient.
func (s *AppointmentService) DeleteAppointment(appointmentID, patientID uuid.UUID) (bool, error) {
	result := s.db.Where("id = ? AND patient_id = ?", appointmentID, patientID).Delete(&models.Appointment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *AppointmentService) DeleteAppointmentAsAdmin(appointmentID uuid.UUID) (bool, error) {
	result := s.db.Where("id = ?", appointmentID).Delete(&models.Appointment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetAllForAdmin returns every appointment joined with its doctor's name. The
// join is a left outer join so an appointment whose doctor no longer exists
// still yields a row, with a null doctor name.
func (s *AppointmentService) GetAllForAdmin() ([]models.AppointmentResponse, error) {
	appointments := []models.AppointmentResponse{}
	err := s.db.Model(&models.Appointment{}).
		Select("appointments.id, appointments.person_name, appointments.date, appointments.time, appointments.reason, appointments.status, appointments.doctor_id, appointments.doctor_notes, doctors.name AS doctor_name").
		Joins("LEFT JOIN doctors ON doctors.id = appointments.doctor_id").
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentService) GetForDoctor(doctorID uuid.UUID) ([]models.AppointmentResponse, error) {
	if doctorID == uuid.Nil {
		return []models.AppointmentResponse{}, nil
	}

	var appointments []models.Appointment
	if err := s.db.Where("doctor_id = ?", doctorID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return toAppointmentResponses(appointments), nil
}

func (s *AppointmentService) GetForPatient(patientID uuid.UUID) ([]models.AppointmentResponse, error) {
	var appointments []models.Appointment
	if err := s.db.Where("patient_id = ?", patientID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return toAppointmentResponses(appointments), nil
}

func toAppointmentResponse(a *models.Appointment) models.AppointmentResponse {
	return models.AppointmentResponse{
		ID:          a.ID,
		PersonName:  a.PersonName,
		Date:        a.Date,
		Time:        a.Time,
		Reason:      a.Reason,
		Status:      a.Status,
		DoctorID:    a.DoctorID,
		DoctorNotes: a.DoctorNotes,
	}
}

func toAppointmentResponses(appointments []models.Appointment) []models.AppointmentResponse {
	responses := make([]models.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, toAppointmentResponse(&appointments[i]))
	}
	return responses
}
