package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/harish-chowdari/hospital-management/configuration"
	"github.com/harish-chowdari/hospital-management/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// overridable in tests so no SMTP dial happens
var prescriptionMailer = SendEmailWithAttachment

// AddPrescription appends prescription entries to an appointment and closes it.
// Entries are appended, never replaced; issuing a second prescription keeps the
// earlier lines. The patient gets the prescription as a PDF by email.
func AddPrescription(c *gin.Context) {
	id := c.Param("id")

	var appt models.Appointment
	if err := configuration.DB.Preload("Entries").Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	var entries []models.PrescriptionEntry
	if err := c.BindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prescription entries are required"})
		return
	}
	for _, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all the prescription fields"})
			return
		}
	}

	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].AppointmentID = appt.ID
	}
	if err := configuration.DB.Create(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add prescription"})
		return
	}

	if err := configuration.DB.Model(&appt).Update("status", models.StatusClosed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment status"})
		return
	}

	appt.Status = models.StatusClosed
	appt.Entries = append(appt.Entries, entries...)

	// Mailing the PDF is best effort; the prescription is already saved.
	var patient models.Patient
	if err := configuration.DB.Where("id = ?", appt.PatientID).First(&patient).Error; err == nil {
		pdfData, err := GeneratePrescriptionPDF(appt, patient)
		if err != nil {
			log.Println("Failed to generate prescription PDF:", err)
		} else if err := prescriptionMailer("Prescription e-mail", "Your prescription is attached", patient.Email, "prescription.pdf", pdfData); err != nil {
			log.Println("Failed to send prescription email:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"appointment": appt,
	})
}

// GeneratePrescriptionPDF renders the appointment's prescription entries as a PDF.
func GeneratePrescriptionPDF(appt models.Appointment, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Hospital Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Prescription", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Patient Name", patient.Name, true)
	addDetail(pdf, "Specialty", appt.Specialty, true)
	addDetail(pdf, "Appointment Date", appt.Date, true)
	addDetail(pdf, "Time Slot", appt.Time, true)

	pdf.CellFormat(0, 10, "Medicines", "1", 1, "C", false, 0, "")
	for _, entry := range appt.Entries {
		addDetail(pdf, "Medicine", entry.MedicineName, false)
		addDetail(pdf, "Dosage", dosageLine(entry), false)
		addDetail(pdf, "Duration", entry.Duration, false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated prescription", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dosageLine(entry models.PrescriptionEntry) string {
	meals := []struct {
		name   string
		before bool
		after  bool
	}{
		{"breakfast", entry.BeforeBreakfast, entry.AfterBreakfast},
		{"lunch", entry.BeforeLunch, entry.AfterLunch},
		{"dinner", entry.BeforeDinner, entry.AfterDinner},
	}

	line := ""
	for _, meal := range meals {
		if meal.before {
			line += fmt.Sprintf("before %s, ", meal.name)
		}
		if meal.after {
			line += fmt.Sprintf("after %s, ", meal.name)
		}
	}
	if line == "" {
		return "as directed"
	}
	return line[:len(line)-2]
}

// addDetail adds a label/value line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
