package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinic-connect/authentication"
	"clinic-connect/controllers"
	"clinic-connect/models"
)

func Setup(account *controllers.AccountController, admin *controllers.AdminController, doctor *controllers.DoctorController, patient *controllers.PatientController) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	limiter := authentication.NewRateLimiter(5, 10)

	r.POST("/account/register", limiter.Middleware(), account.Register)
	r.POST("/account/login", limiter.Middleware(), account.Login)
	r.POST("/account/forgot-password", limiter.Middleware(), account.ForgotPassword)
	r.POST("/account/reset-password", account.ResetPassword)
	r.POST("/account/logout", account.Logout)

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(authentication.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/dashboard", admin.Dashboard)
		adminRoutes.POST("/assign-doctor", admin.AssignDoctor)
		adminRoutes.POST("/add-doctor", admin.AddDoctor)
		adminRoutes.POST("/remove-doctor/:id", admin.RemoveDoctor)
		adminRoutes.POST("/remove-appointment/:id", admin.RemoveAppointment)
		adminRoutes.POST("/edit", admin.Edit)
	}

	doctorRoutes := r.Group("/doctor")
	doctorRoutes.Use(authentication.RequireRole(models.RoleDoctor))
	{
		doctorRoutes.GET("/dashboard", doctor.Dashboard)
		doctorRoutes.POST("/complete-appointment", doctor.CompleteAppointment)
		doctorRoutes.POST("/add-notes", doctor.AddNotes)
		doctorRoutes.GET("/logout", doctor.Logout)
	}

	patientRoutes := r.Group("/patient")
	patientRoutes.Use(authentication.RequireRole(models.RolePatient))
	{
		patientRoutes.GET("/dashboard", patient.Dashboard)
		patientRoutes.POST("/book-appointment", patient.BookAppointment)
		patientRoutes.POST("/cancel-appointment/:id", patient.CancelAppointment)
		patientRoutes.POST("/delete-appointment/:id", patient.DeleteAppointment)
		patientRoutes.GET("/logout", patient.Logout)
	}

	return r
}
