package main

import (
	"log"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-connect/configuration"
	"clinic-connect/models"
)

var specializations = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var reasons = []string{
	"Checkup",
	"Back pain",
	"Follow-up visit",
	"Skin rash",
	"Headache",
	"Blood pressure review",
	"Vaccination",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	db, err := configuration.ConfigDB()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	doctorIDs, err := seedDoctors(db, 10)
	if err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	patientIDs, err := seedPatients(db, 50)
	if err != nil {
		log.Fatalf("seed patients: %v", err)
	}
	if err := seedAppointments(db, doctorIDs, patientIDs, 100); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

func seedDoctors(db *gorm.DB, count int) ([]uuid.UUID, error) {
	log.Printf("seeding %d doctors", count)

	hash, err := bcrypt.GenerateFromPassword([]byte("Doc@demo123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		user := models.NewUser(gofakeit.Name(), gofakeit.Email(), string(hash), models.RoleDoctor)
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}

		spec := specializations[gofakeit.Number(0, len(specializations)-1)]
		doctor := models.NewDoctor(user.ID, user.PersonName, spec, gofakeit.Bool())
		if err := db.Create(doctor).Error; err != nil {
			return nil, err
		}
		ids = append(ids, doctor.ID)
	}
	return ids, nil
}

func seedPatients(db *gorm.DB, count int) ([]uuid.UUID, error) {
	log.Printf("seeding %d patients", count)

	hash, err := bcrypt.GenerateFromPassword([]byte("Patient@demo123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		user := models.NewUser(gofakeit.Name(), gofakeit.Email(), string(hash), models.RolePatient)
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

func seedAppointments(db *gorm.DB, doctorIDs, patientIDs []uuid.UUID, count int) error {
	log.Printf("seeding %d appointments", count)

	for i := 0; i < count; i++ {
		patientID := patientIDs[gofakeit.Number(0, len(patientIDs)-1)]
		date := gofakeit.FutureDate().Format("2006-01-02")
		timeSlot := gofakeit.RandomString([]string{"09:00", "09:30", "10:00", "10:30", "11:00", "14:00", "14:30", "15:00"})
		reason := reasons[gofakeit.Number(0, len(reasons)-1)]

		appointment := models.NewAppointment(gofakeit.Name(), date, timeSlot, reason, patientID)

		// most bookings get a doctor, and some of those are already done
		if gofakeit.Number(0, 9) < 7 {
			doctorID := doctorIDs[gofakeit.Number(0, len(doctorIDs)-1)]
			appointment.AssignDoctor(doctorID)
			if gofakeit.Bool() {
				appointment.MarkCompleted(doctorID)
				appointment.DoctorNotes = gofakeit.Sentence(8)
			}
		}

		if err := db.Create(appointment).Error; err != nil {
			return err
		}
	}
	return nil
}
