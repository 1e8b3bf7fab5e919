package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/harish-chowdari/hospital-management/configuration"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB points the shared configuration.DB at a fresh in-memory sqlite
// database and restores the previous handle when the test ends.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	require.NoError(t, err)

	configuration.Migrate(db)

	prev := configuration.DB
	configuration.DB = db
	t.Cleanup(func() { configuration.DB = prev })
}

// testRouter mounts the handlers without the auth middlewares so requests can
// be exercised directly.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/patients", CreatePatient)
	r.GET("/patients/:id", GetPatient)
	r.POST("/providers", CreateProvider)
	r.GET("/providers/:id", GetProvider)
	r.GET("/specialties/:specialty/providers", GetProvidersBySpecialty)
	r.GET("/providers/:id/availability", GetAvailability)
	r.POST("/providers/:id/availability", SaveAvailability)
	r.GET("/providers/:id/slots", GetAvailableTimeSlots)

	r.POST("/appointments", CreateAppointment)
	r.GET("/appointments", ListAppointments)
	r.GET("/appointments/:id", GetAppointmentByID)
	r.PUT("/appointments/:id", UpdateAppointment)
	r.DELETE("/appointments/:id", SoftDeleteAppointment)
	r.POST("/appointments/:id/prescription", AddPrescription)

	r.POST("/resources", CreateResource)
	r.GET("/resources/:appointmentId", GetResourceByAppointment)

	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createTestAppointment(t *testing.T, r *gin.Engine, patientID, providerID, date, timeSlot string) string {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/appointments", map[string]any{
		"patient_id":  patientID,
		"provider_id": providerID,
		"specialty":   "Cardiology",
		"date":        date,
		"time":        timeSlot,
		"symptoms":    "chest pain",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	id, ok := data["id"].(string)
	require.True(t, ok)
	return id
}
