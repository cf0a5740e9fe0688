package models_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"clinic-connect/models"
)

func TestNewAppointmentDefaults(t *testing.T) {
	patientID := uuid.New()
	a := models.NewAppointment("John", "2026-08-31", "10:00", "Checkup", patientID)

	if a.ID == uuid.Nil {
		t.Error("ID not generated")
	}
	if a.Status != models.StatusPending {
		t.Errorf("Status = %q, want Pending", a.Status)
	}
	if a.DoctorID != nil {
		t.Error("new appointment should have no doctor")
	}
	if a.PatientID != patientID {
		t.Errorf("PatientID = %s, want %s", a.PatientID, patientID)
	}
}

func TestAddDoctorNotesOwnership(t *testing.T) {
	a := models.NewAppointment("John", "2026-08-31", "10:00", "Checkup", uuid.New())
	doctorID := uuid.New()

	if err := a.AddDoctorNotes(doctorID, "notes"); !errors.Is(err, models.ErrNotAssignedDoctor) {
		t.Fatalf("err = %v, want ErrNotAssignedDoctor for unassigned appointment", err)
	}

	a.AssignDoctor(doctorID)

	if err := a.AddDoctorNotes(uuid.New(), "notes"); !errors.Is(err, models.ErrNotAssignedDoctor) {
		t.Fatalf("err = %v, want ErrNotAssignedDoctor for other doctor", err)
	}
	if err := a.AddDoctorNotes(doctorID, "  "); !errors.Is(err, models.ErrNotesRequired) {
		t.Fatalf("err = %v, want ErrNotesRequired", err)
	}
	if err := a.AddDoctorNotes(doctorID, "Prescribed rest"); err != nil {
		t.Fatalf("AddDoctorNotes: %v", err)
	}
	if a.DoctorNotes != "Prescribed rest" {
		t.Errorf("DoctorNotes = %q", a.DoctorNotes)
	}
}

func TestMarkCompletedTransitions(t *testing.T) {
	a := models.NewAppointment("John", "2026-08-31", "10:00", "Checkup", uuid.New())
	doctorID := uuid.New()

	if a.MarkCompleted(doctorID) {
		t.Fatal("completed an appointment with no assigned doctor")
	}

	a.AssignDoctor(doctorID)
	if a.MarkCompleted(uuid.New()) {
		t.Fatal("completed by a doctor who is not assigned")
	}
	if !a.MarkCompleted(doctorID) {
		t.Fatal("assigned doctor could not complete a pending appointment")
	}
	if a.Status != models.StatusCompleted {
		t.Fatalf("Status = %q, want Completed", a.Status)
	}
	if a.MarkCompleted(doctorID) {
		t.Fatal("completed the same appointment twice")
	}
	if a.Status != models.StatusCompleted {
		t.Fatalf("Status = %q after repeat attempt, want Completed", a.Status)
	}
}

func TestAssignDoctorAfterCompletion(t *testing.T) {
	a := models.NewAppointment("John", "2026-08-31", "10:00", "Checkup", uuid.New())
	first := uuid.New()
	a.AssignDoctor(first)
	a.MarkCompleted(first)

	// re-assignment has no status guard
	second := uuid.New()
	a.AssignDoctor(second)
	if a.DoctorID == nil || *a.DoctorID != second {
		t.Errorf("DoctorID = %v, want %s", a.DoctorID, second)
	}
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"Patient", "Doctor", "Admin"} {
		role, err := models.ParseRole(name)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", name, err)
		}
		if string(role) != name {
			t.Errorf("ParseRole(%q) = %q", name, role)
		}
	}
	if _, err := models.ParseRole("patient"); err == nil {
		t.Error("ParseRole is case sensitive, lowercase should fail")
	}
	if _, err := models.ParseRole("Superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}
