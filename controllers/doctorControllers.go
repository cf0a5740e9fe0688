package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-connect/authentication"
	"clinic-connect/services"
)

type DoctorController struct {
	appointments *services.AppointmentService
	doctors      *services.DoctorService
}

func NewDoctorController(appointments *services.AppointmentService, doctors *services.DoctorService) *DoctorController {
	return &DoctorController{appointments: appointments, doctors: doctors}
}

// doctorID resolves the caller's doctor profile from the token claims. It
// aborts with 401 when the account has no linked doctor.
func (ctl *DoctorController) doctorID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(authentication.ContextUserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return uuid.Nil, false
	}

	doctorID, err := ctl.doctors.GetDoctorIDByUserID(userID.(uuid.UUID))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve doctor profile"})
		return uuid.Nil, false
	}
	if doctorID == uuid.Nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No doctor profile linked to this account"})
		return uuid.Nil, false
	}
	return doctorID, true
}

func (ctl *DoctorController) Dashboard(c *gin.Context) {
	doctorID, ok := ctl.doctorID(c)
	if !ok {
		return
	}

	appointments, err := ctl.appointments.GetForDoctor(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor dashboard fetched successfully",
		"data":    appointments,
	})
}

func (ctl *DoctorController) CompleteAppointment(c *gin.Context) {
	doctorID, ok := ctl.doctorID(c)
	if !ok {
		return
	}

	var req struct {
		AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	done, err := ctl.doctors.MarkCompleted(doctorID, req.AppointmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete appointment"})
		return
	}
	if !done {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found or already completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment marked as completed",
	})
}

func (ctl *DoctorController) AddNotes(c *gin.Context) {
	doctorID, ok := ctl.doctorID(c)
	if !ok {
		return
	}

	var req struct {
		AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
		Notes         string    `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Notes) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor notes are required"})
		return
	}

	added, err := ctl.doctors.AddNotes(doctorID, req.AppointmentID, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add notes"})
		return
	}
	if !added {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found or not assigned to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Notes added successfully",
	})
}

func (ctl *DoctorController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}
