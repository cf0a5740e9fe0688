package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-connect/models"
	"clinic-connect/services"
)

type AdminController struct {
	appointments *services.AppointmentService
	doctors      *services.DoctorService
	accounts     *services.AccountService
}

func NewAdminController(appointments *services.AppointmentService, doctors *services.DoctorService, accounts *services.AccountService) *AdminController {
	return &AdminController{appointments: appointments, doctors: doctors, accounts: accounts}
}

// Dashboard returns every appointment joined with its doctor's name plus the
// full doctor list.
func (ctl *AdminController) Dashboard(c *gin.Context) {
	appointments, err := ctl.appointments.GetAllForAdmin()
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
		"Message": "Admin dashboard fetched successfully",
		"data": gin.H{
			"appointments": appointments,
			"doctors":      doctors,
		},
	})
}

func (ctl *AdminController) AssignDoctor(c *gin.Context) {
	var req struct {
		AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
		DoctorID      uuid.UUID `json:"doctor_id" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := ctl.appointments.AssignDoctor(req.AppointmentID, req.DoctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign doctor"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor assigned successfully",
	})
}

func (ctl *AdminController) AddDoctor(c *gin.Context) {
	var req models.DoctorRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, password, err := ctl.accounts.CreateDoctorAccount(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor account"})
		return
	}

	if _, err := ctl.doctors.AddDoctor(&req, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor added successfully",
		"data": gin.H{
			"doctor_email":       req.Email,
			"generated_password": password,
		},
	})
}

func (ctl *AdminController) RemoveDoctor(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	ok, err := ctl.doctors.RemoveDoctor(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove doctor"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctor with this ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor and related appointments removed successfully",
	})
}

func (ctl *AdminController) RemoveAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	ok, err := ctl.appointments.DeleteAppointmentAsAdmin(appointmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove appointment"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment removed successfully",
	})
}

// Edit toggles a doctor's availability flag.
func (ctl *AdminController) Edit(c *gin.Context) {
	var req struct {
		DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
		IsAvailable *bool     `json:"is_available" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := ctl.doctors.SetAvailable(req.DoctorID, *req.IsAvailable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctor with this ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor availability updated successfully",
	})
}
