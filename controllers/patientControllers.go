package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-connect/authentication"
	"clinic-connect/models"
	"clinic-connect/services"
)

type PatientController struct {
	appointments *services.AppointmentService
	doctors      *services.DoctorService
	accounts     *services.AccountService
	email        services.Mailer
}

func NewPatientController(appointments *services.AppointmentService, doctors *services.DoctorService, accounts *services.AccountService, email services.Mailer) *PatientController {
	return &PatientController{appointments: appointments, doctors: doctors, accounts: accounts, email: email}
}

func (ctl *PatientController) patientID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(authentication.ContextUserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// Dashboard returns the patient's own appointments and the doctors available
// for booking.
func (ctl *PatientController) Dashboard(c *gin.Context) {
	patientID, ok := ctl.patientID(c)
	if !ok {
		return
	}

	appointments, err := ctl.appointments.GetForPatient(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	doctors, err := ctl.doctors.GetAllDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Patient dashboard fetched successfully",
		"data": gin.H{
			"appointments":      appointments,
			"available_doctors": doctors,
		},
	})
}

func (ctl *PatientController) BookAppointment(c *gin.Context) {
	patientID, ok := ctl.patientID(c)
	if !ok {
		return
	}

	var req models.AppointmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.PatientID = patientID

	appointment, err := ctl.appointments.AddAppointment(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNilRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	// confirmation mail is best effort; booking already succeeded
	ctl.sendConfirmation(patientID, appointment)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"data":    appointment,
	})
}

func (ctl *PatientController) sendConfirmation(patientID uuid.UUID, appointment *models.AppointmentResponse) {
	user, err := ctl.accounts.GetUserByID(patientID)
	if err != nil {
		log.Println("confirmation email skipped, account lookup failed:", err)
		return
	}

	doctorName := ""
	if appointment.DoctorID != nil {
		if doctor, err := ctl.doctors.GetDoctorByID(*appointment.DoctorID); err == nil && doctor != nil {
			doctorName = doctor.Name
		}
	}

	pdf, err := services.GenerateAppointmentPDF(appointment, doctorName)
	if err != nil {
		log.Println("failed to generate appointment summary:", err)
		return
	}

	msg := "Your appointment has been booked. A summary is attached."
	if doctorName != "" {
		msg = fmt.Sprintf("Your appointment with %s has been booked. A summary is attached.", doctorName)
	}
	if err := ctl.email.SendWithAttachment(user.Email, "Appointment confirmation", msg, "appointment.pdf", pdf); err != nil {
		log.Println("failed to send confirmation email:", err)
	}
}

func (ctl *PatientController) CancelAppointment(c *gin.Context) {
	ctl.deleteOwn(c, "Appointment cancelled successfully")
}

func (ctl *PatientController) DeleteAppointment(c *gin.Context) {
	ctl.deleteOwn(c, "Appointment deleted successfully")
}

func (ctl *PatientController) deleteOwn(c *gin.Context, message string) {
	patientID, ok := ctl.patientID(c)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	deleted, err := ctl.appointments.DeleteAppointment(appointmentID, patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": message,
	})
}

func (ctl *PatientController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}
