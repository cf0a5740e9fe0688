package main

import (
	"log"

	"clinic-connect/configuration"
	"clinic-connect/controllers"
	"clinic-connect/routes"
	"clinic-connect/services"
)

func main() {
	db, err := configuration.ConfigDB()
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := configuration.InitRedis()
	if err != nil {
		log.Fatal(err)
	}

	emailService := services.NewEmailService()
	accountService := services.NewAccountService(db, services.NewRedisTokenStore(rdb), emailService)
	appointmentService := services.NewAppointmentService(db)
	doctorService := services.NewDoctorService(db)

	if err := accountService.SeedAdmin(); err != nil {
		log.Fatal("failed to seed admin account: ", err)
	}

	account := controllers.NewAccountController(accountService)
	admin := controllers.NewAdminController(appointmentService, doctorService, accountService)
	doctor := controllers.NewDoctorController(appointmentService, doctorService)
	patient := controllers.NewPatientController(appointmentService, doctorService, accountService, emailService)

	r := routes.Setup(account, admin, doctor, patient)

	// Run the engine in default port
	if err := r.Run(); err != nil {
		log.Fatal(err)
	}
}
