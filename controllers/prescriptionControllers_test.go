package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/harish-chowdari/hospital-management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSilentMailer(t *testing.T) *[]string {
	t.Helper()

	var recipients []string
	prev := prescriptionMailer
	prescriptionMailer = func(subject, msg, email, attachmentName string, attachmentData []byte) error {
		recipients = append(recipients, email)
		return nil
	}
	t.Cleanup(func() { prescriptionMailer = prev })
	return &recipients
}

func entryPayload(medicine string) map[string]any {
	return map[string]any{
		"medicine_name":    medicine,
		"before_breakfast": true,
		"after_breakfast":  false,
		"before_lunch":     false,
		"after_lunch":      true,
		"before_dinner":    false,
		"after_dinner":     true,
		"duration":         "5 days",
	}
}

func TestAddPrescriptionAppendsAndCloses(t *testing.T) {
	setupTestDB(t)
	withSilentMailer(t)
	r := testRouter()

	id := createTestAppointment(t, r, "patient-1", "provider-1", "2025-06-01", "10:00 AM")

	first := performRequest(t, r, http.MethodPost, "/appointments/"+id+"/prescription",
		[]map[string]any{entryPayload("Amoxicillin")})
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, true, decodeBody(t, first)["success"])

	// a second issue appends, never replaces
	second := performRequest(t, r, http.MethodPost, "/appointments/"+id+"/prescription",
		[]map[string]any{entryPayload("Paracetamol")})
	require.Equal(t, http.StatusOK, second.Code)

	get := performRequest(t, r, http.MethodGet, "/appointments/"+id, nil)
	var appt models.Appointment
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &appt))

	require.Len(t, appt.Entries, 2)
	names := []string{appt.Entries[0].MedicineName, appt.Entries[1].MedicineName}
	assert.ElementsMatch(t, []string{"Amoxicillin", "Paracetamol"}, names)
	assert.Equal(t, models.StatusClosed, appt.Status)
}

func TestAddPrescriptionEmailsThePatient(t *testing.T) {
	setupTestDB(t)
	recipients := withSilentMailer(t)
	r := testRouter()

	created := performRequest(t, r, http.MethodPost, "/patients", map[string]any{
		"name":  "Asha",
		"email": "asha@example.com",
		"phone": "9999999999",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	patientID := decodeBody(t, created)["data"].(map[string]any)["id"].(string)

	id := createTestAppointment(t, r, patientID, "provider-1", "2025-06-01", "10:00 AM")

	w := performRequest(t, r, http.MethodPost, "/appointments/"+id+"/prescription",
		[]map[string]any{entryPayload("Amoxicillin")})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"asha@example.com"}, *recipients)
}

func TestAddPrescriptionRejectsEmptyEntries(t *testing.T) {
	setupTestDB(t)
	withSilentMailer(t)
	r := testRouter()

	id := createTestAppointment(t, r, "patient-1", "provider-1", "2025-06-01", "10:00 AM")

	w := performRequest(t, r, http.MethodPost, "/appointments/"+id+"/prescription", []map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddPrescriptionRejectsIncompleteEntry(t *testing.T) {
	setupTestDB(t)
	withSilentMailer(t)
	r := testRouter()

	id := createTestAppointment(t, r, "patient-1", "provider-1", "2025-06-01", "10:00 AM")

	entry := entryPayload("Amoxicillin")
	entry["duration"] = ""
	w := performRequest(t, r, http.MethodPost, "/appointments/"+id+"/prescription", []map[string]any{entry})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddPrescriptionMissingAppointment(t *testing.T) {
	setupTestDB(t)
	withSilentMailer(t)
	r := testRouter()

	w := performRequest(t, r, http.MethodPost, "/appointments/nope/prescription",
		[]map[string]any{entryPayload("Amoxicillin")})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePrescriptionPDF(t *testing.T) {
	appt := models.Appointment{
		Specialty: "Cardiology",
		Date:      "2025-06-01",
		Time:      "10:00 AM",
		Entries: []models.PrescriptionEntry{{
			MedicineName:    "Amoxicillin",
			BeforeBreakfast: true,
			AfterDinner:     true,
			Duration:        "5 days",
		}},
	}
	patient := models.Patient{Name: "Asha", Email: "asha@example.com"}

	data, err := GeneratePrescriptionPDF(appt, patient)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestDosageLine(t *testing.T) {
	entry := models.PrescriptionEntry{BeforeBreakfast: true, AfterDinner: true}
	assert.Equal(t, "before breakfast, after dinner", dosageLine(entry))

	assert.Equal(t, "as directed", dosageLine(models.PrescriptionEntry{}))
}
