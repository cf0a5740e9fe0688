package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"clinic-connect/models"
)

// GenerateAppointmentPDF renders a booking summary attached to the
// confirmation email.
func GenerateAppointmentPDF(appointment *models.AppointmentResponse, doctorName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Clinic Connect - Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Summary", "1", 1, "C", false, 0, "")

	addDetail(pdf, "Appointment ID", appointment.ID.String())
	addDetail(pdf, "Patient Name", appointment.PersonName)
	addDetail(pdf, "Date", appointment.Date)
	addDetail(pdf, "Time", appointment.Time)
	addDetail(pdf, "Reason", appointment.Reason)
	addDetail(pdf, "Status", string(appointment.Status))
	if doctorName != "" {
		addDetail(pdf, "Doctor", doctorName)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Thank you, %s. Your appointment has been booked. Please arrive ten minutes early.", appointment.PersonName), "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated summary", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
